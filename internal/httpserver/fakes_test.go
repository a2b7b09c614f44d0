package httpserver

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tableside/internal/domain"
	"tableside/internal/kvstore"
	menurepo "tableside/internal/repository/menu"
	orderrepo "tableside/internal/repository/order"
	restaurantrepo "tableside/internal/repository/restaurant"
	sessionrepo "tableside/internal/repository/session"
	"tableside/internal/service/auth"
	"tableside/internal/service/menu"
	"tableside/internal/service/order"
	"tableside/internal/service/payment"
	"tableside/internal/tips"
)

// In-memory repository fakes so handler tests exercise the real services
// without a database.

type fakeRestaurantRepo struct {
	byID      map[string]*domain.Restaurant
	createErr error
}

func newFakeRestaurantRepo() *fakeRestaurantRepo {
	return &fakeRestaurantRepo{byID: map[string]*domain.Restaurant{}}
}

func (r *fakeRestaurantRepo) Create(_ context.Context, in restaurantrepo.CreateInput) (*domain.Restaurant, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, existing := range r.byID {
		if existing.AccessID == in.AccessID || existing.Email == in.Email {
			return nil, domain.ErrAlreadyExists
		}
	}
	rest := &domain.Restaurant{
		ID:            uuid.NewString(),
		AccessID:      in.AccessID,
		Name:          in.Name,
		Email:         in.Email,
		PasswordHash:  in.PasswordHash,
		Phone:         in.Phone,
		Address:       in.Address,
		TaxRate:       0.08,
		SurchargeRate: 0.03,
		CreatedAt:     time.Now(),
	}
	r.byID[rest.ID] = rest
	return rest, nil
}

func (r *fakeRestaurantRepo) GetByID(_ context.Context, id string) (*domain.Restaurant, error) {
	if rest, ok := r.byID[id]; ok {
		return rest, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeRestaurantRepo) GetByAccessID(_ context.Context, accessID string) (*domain.Restaurant, error) {
	for _, rest := range r.byID {
		if rest.AccessID == accessID {
			return rest, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeRestaurantRepo) GetByEmail(_ context.Context, email string) (*domain.Restaurant, error) {
	for _, rest := range r.byID {
		if rest.Email == email {
			return rest, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeRestaurantRepo) GetByEmailOrAccessID(_ context.Context, identifier string) (*domain.Restaurant, error) {
	identifier = strings.ToLower(identifier)
	for _, rest := range r.byID {
		if strings.ToLower(rest.Email) == identifier || strings.ToLower(rest.AccessID) == identifier {
			return rest, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeSessionRepo struct {
	byToken map[string]sessionrepo.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byToken: map[string]sessionrepo.Session{}}
}

func (r *fakeSessionRepo) Create(_ context.Context, s sessionrepo.Session) error {
	if _, ok := r.byToken[s.Token]; ok {
		return domain.ErrAlreadyExists
	}
	s.CreatedAt = time.Now()
	r.byToken[s.Token] = s
	return nil
}

func (r *fakeSessionRepo) Get(_ context.Context, token string) (*sessionrepo.Session, error) {
	if s, ok := r.byToken[token]; ok {
		return &s, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeSessionRepo) Delete(_ context.Context, token string) error {
	if _, ok := r.byToken[token]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byToken, token)
	return nil
}

type fakeMenuRepo struct {
	items      map[string]*domain.MenuItem
	categories map[string]*domain.Category
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{
		items:      map[string]*domain.MenuItem{},
		categories: map[string]*domain.Category{},
	}
}

func (r *fakeMenuRepo) ListItems(_ context.Context, restaurantID string) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, it := range r.items {
		if it.RestaurantID == restaurantID {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (r *fakeMenuRepo) GetItem(_ context.Context, restaurantID, id string) (*domain.MenuItem, error) {
	if it, ok := r.items[id]; ok && it.RestaurantID == restaurantID {
		copied := *it
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeMenuRepo) CreateItem(_ context.Context, in menurepo.CreateItemInput) (*domain.MenuItem, error) {
	it := &domain.MenuItem{
		ID:           uuid.NewString(),
		RestaurantID: in.RestaurantID,
		CategoryID:   in.CategoryID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		ImageURL:     in.ImageURL,
		IsAvailable:  true,
		DisplayOrder: in.DisplayOrder,
		CreatedAt:    time.Now(),
	}
	r.items[it.ID] = it
	copied := *it
	return &copied, nil
}

func (r *fakeMenuRepo) UpdateItem(_ context.Context, restaurantID, id string, in menurepo.UpdateItemInput) (*domain.MenuItem, error) {
	it, ok := r.items[id]
	if !ok || it.RestaurantID != restaurantID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		it.Name = *in.Name
	}
	if in.Description != nil {
		it.Description = *in.Description
	}
	if in.Price != nil {
		it.Price = *in.Price
	}
	if in.ImageURL != nil {
		it.ImageURL = *in.ImageURL
	}
	if in.IsAvailable != nil {
		it.IsAvailable = *in.IsAvailable
	}
	if in.DisplayOrder != nil {
		it.DisplayOrder = *in.DisplayOrder
	}
	if in.CategoryID != nil {
		it.CategoryID = in.CategoryID
	}
	copied := *it
	return &copied, nil
}

func (r *fakeMenuRepo) DeleteItem(_ context.Context, restaurantID, id string) error {
	if it, ok := r.items[id]; ok && it.RestaurantID == restaurantID {
		delete(r.items, id)
		return nil
	}
	return domain.ErrNotFound
}

func (r *fakeMenuRepo) ListCategories(_ context.Context, restaurantID string) ([]domain.Category, error) {
	var out []domain.Category
	for _, cat := range r.categories {
		if cat.RestaurantID == restaurantID {
			out = append(out, *cat)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (r *fakeMenuRepo) CreateCategory(_ context.Context, in menurepo.CreateCategoryInput) (*domain.Category, error) {
	for _, cat := range r.categories {
		if cat.RestaurantID == in.RestaurantID && cat.Name == in.Name {
			return nil, domain.ErrAlreadyExists
		}
	}
	cat := &domain.Category{
		ID:           uuid.NewString(),
		RestaurantID: in.RestaurantID,
		Name:         in.Name,
		DisplayOrder: in.DisplayOrder,
		CreatedAt:    time.Now(),
	}
	r.categories[cat.ID] = cat
	copied := *cat
	return &copied, nil
}

type fakeOrderRepo struct {
	orders []domain.Order
	err    error
}

func (r *fakeOrderRepo) CreateWithItems(_ context.Context, in orderrepo.CreateOrderInput, items []orderrepo.CreateOrderItemInput) (*domain.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	o := domain.Order{
		ID:            fmt.Sprintf("order-%d", len(r.orders)+1),
		RestaurantID:  in.RestaurantID,
		TableID:       in.TableID,
		TableNumber:   in.TableNumber,
		Status:        "completed",
		Subtotal:      in.Subtotal,
		Tax:           in.Tax,
		Tip:           in.Tip,
		Total:         in.Total,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: "completed",
		ItemCount:     len(items),
		CreatedAt:     time.Now(),
	}
	r.orders = append(r.orders, o)
	return &o, nil
}

func (r *fakeOrderRepo) ListByDateRange(_ context.Context, restaurantID string, from, to time.Time) ([]domain.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Order
	for _, o := range r.orders {
		if o.RestaurantID == restaurantID && !o.CreatedAt.Before(from) && o.CreatedAt.Before(to) {
			out = append(out, o)
		}
	}
	return out, nil
}

type testEnv struct {
	restaurants *fakeRestaurantRepo
	sessions    *fakeSessionRepo
	menu        *fakeMenuRepo
	orders      *fakeOrderRepo
	state       kvstore.Store
	deps        Deps
}

func newTestEnv() *testEnv {
	env := &testEnv{
		restaurants: newFakeRestaurantRepo(),
		sessions:    newFakeSessionRepo(),
		menu:        newFakeMenuRepo(),
		orders:      &fakeOrderRepo{},
		state:       kvstore.NewMemory(),
	}
	tracker := tips.NewTracker(env.state)
	env.deps = Deps{
		Auth:     auth.New(env.restaurants, env.sessions, time.Hour),
		Menu:     menu.New(env.menu),
		Orders:   order.New(env.orders),
		Payments: payment.NewWithDelay(tracker, time.Millisecond),
		Methods:  payment.NewMethods(env.state),
		State:    env.state,
	}
	return env
}

func (e *testEnv) router() *gin.Engine {
	return buildRouter(log.New(io.Discard, "", 0), nil, e.deps, nil)
}
