package kvstore

import (
	"context"
	"sync"

	"tableside/internal/domain"
)

// Memory is an in-process Store used in tests and single-node deployments.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
	subs   map[string][]chan string
}

func NewMemory() *Memory {
	return &Memory{
		values: make(map[string]string),
		subs:   make(map[string][]chan string),
	}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	for _, ch := range m.subs[key] {
		// Slow subscribers miss intermediate values rather than block writers.
		select {
		case ch <- value:
		default:
		}
	}
	return nil
}

func (m *Memory) Subscribe(_ context.Context, key string) (<-chan string, func()) {
	ch := make(chan string, 1)
	m.mu.Lock()
	m.subs[key] = append(m.subs[key], ch)
	m.mu.Unlock()

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		subs := m.subs[key]
		for i, c := range subs {
			if c == ch {
				m.subs[key] = append(subs[:i], subs[i+1:]...)
				close(c)
				return
			}
		}
	}
	return ch, cancel
}
