// Package kvstore is the explicit key-value state service backing what the
// customer UI keeps per device: selected theme, saved payment methods, tip
// popularity counts. Consumers get change notifications through Subscribe
// instead of polling the store on a timer.
package kvstore

import "context"

// Store is a small get/set/subscribe contract. Get returns
// domain.ErrNotFound for missing keys.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Subscribe delivers every subsequent value written to key until the
	// returned cancel function is called.
	Subscribe(ctx context.Context, key string) (<-chan string, func())
}
