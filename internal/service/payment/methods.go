package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tableside/internal/domain"
	"tableside/internal/kvstore"
)

// Methods manages the payment methods a customer device has saved. The
// list lives in the per-device state store under a device-scoped key, so
// nothing card-shaped ever reaches the relational schema.
type Methods struct {
	store kvstore.Store
}

func NewMethods(store kvstore.Store) *Methods {
	return &Methods{store: store}
}

type AddMethodInput struct {
	Type  string `json:"type"`
	Last4 string `json:"last4"`
	Brand string `json:"brand"`
	Name  string `json:"name"`
}

func (m *Methods) List(ctx context.Context, deviceID string) ([]domain.SavedPaymentMethod, error) {
	return m.load(ctx, deviceID)
}

// Add appends a method. The first method saved on a device becomes the
// default automatically.
func (m *Methods) Add(ctx context.Context, deviceID string, in AddMethodInput) (*domain.SavedPaymentMethod, error) {
	switch in.Type {
	case domain.PaymentTypeCard, domain.PaymentTypeApple, domain.PaymentTypeGoogle:
	default:
		return nil, domain.Invalidf("unsupported payment method type %q", in.Type)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalidf("name required")
	}

	methods, err := m.load(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	method := domain.SavedPaymentMethod{
		ID:        uuid.NewString(),
		Type:      in.Type,
		Last4:     strings.TrimSpace(in.Last4),
		Brand:     strings.TrimSpace(in.Brand),
		Name:      name,
		IsDefault: len(methods) == 0,
	}
	methods = append(methods, method)
	if err := m.save(ctx, deviceID, methods); err != nil {
		return nil, err
	}
	return &method, nil
}

// SetDefault marks one method as default and clears the flag everywhere else.
func (m *Methods) SetDefault(ctx context.Context, deviceID, methodID string) error {
	methods, err := m.load(ctx, deviceID)
	if err != nil {
		return err
	}
	found := false
	for i := range methods {
		methods[i].IsDefault = methods[i].ID == methodID
		if methods[i].IsDefault {
			found = true
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	return m.save(ctx, deviceID, methods)
}

// Remove deletes a method. If it was the default, the first remaining
// method is promoted so a populated list always has a default.
func (m *Methods) Remove(ctx context.Context, deviceID, methodID string) error {
	methods, err := m.load(ctx, deviceID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range methods {
		if methods[i].ID == methodID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}

	wasDefault := methods[idx].IsDefault
	methods = append(methods[:idx], methods[idx+1:]...)
	if wasDefault && len(methods) > 0 {
		methods[0].IsDefault = true
	}
	return m.save(ctx, deviceID, methods)
}

func (m *Methods) load(ctx context.Context, deviceID string) ([]domain.SavedPaymentMethod, error) {
	raw, err := m.store.Get(ctx, methodsKey(deviceID))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var methods []domain.SavedPaymentMethod
	if err := json.Unmarshal([]byte(raw), &methods); err != nil {
		return nil, fmt.Errorf("decode saved payment methods: %w", err)
	}
	return methods, nil
}

func (m *Methods) save(ctx context.Context, deviceID string, methods []domain.SavedPaymentMethod) error {
	data, err := json.Marshal(methods)
	if err != nil {
		return fmt.Errorf("marshal saved payment methods: %w", err)
	}
	return m.store.Set(ctx, methodsKey(deviceID), string(data))
}

func methodsKey(deviceID string) string {
	return "payment-methods:" + deviceID
}
