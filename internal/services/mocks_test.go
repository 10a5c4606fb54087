package services

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"hotel-backoffice/internal/entities"
	"hotel-backoffice/internal/repositories"
	"hotel-backoffice/pkg/utils"
)

func ctxAs(identity *entities.Identity) context.Context {
	return utils.WithIdentity(context.Background(), identity)
}

func staffIn(role string, units ...string) *entities.Identity {
	id := &entities.Identity{UserID: "user-1", Username: "tester"}
	if role != "" {
		id.Role = &entities.Role{ID: 1, Role: role}
	}
	for _, bu := range units {
		id.Assignments = append(id.Assignments, entities.Assignment{UserID: "user-1", BusinessUnitID: bu})
	}
	return id
}

type mockInvoiceRepo struct{ mock.Mock }

func (m *mockInvoiceRepo) FindInvoiceWithApplications(ctx context.Context, businessUnitID, invoiceID string) (*entities.ARInvoice, error) {
	args := m.Called(ctx, businessUnitID, invoiceID)
	inv, _ := args.Get(0).(*entities.ARInvoice)
	return inv, args.Error(1)
}

func (m *mockInvoiceRepo) DeleteInvoice(ctx context.Context, invoiceID string) error {
	return m.Called(ctx, invoiceID).Error(0)
}

type mockUoMRepo struct{ mock.Mock }

func (m *mockUoMRepo) ListUoMs(ctx context.Context) ([]entities.UoM, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]entities.UoM)
	return list, args.Error(1)
}

func (m *mockUoMRepo) DeleteUoM(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) ListCategoriesWithItemCount(ctx context.Context, businessUnitID string) ([]entities.InventoryCategory, error) {
	args := m.Called(ctx, businessUnitID)
	list, _ := args.Get(0).([]entities.InventoryCategory)
	return list, args.Error(1)
}

type mockMenuRepo struct{ mock.Mock }

func (m *mockMenuRepo) ListActiveMenuItems(ctx context.Context, businessUnitID string) ([]entities.MenuItem, error) {
	args := m.Called(ctx, businessUnitID)
	list, _ := args.Get(0).([]entities.MenuItem)
	return list, args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*entities.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entities.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetAssignments(ctx context.Context, userID string) ([]entities.Assignment, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]entities.Assignment)
	return list, args.Error(1)
}

type mockBusinessUnitRepo struct{ mock.Mock }

func (m *mockBusinessUnitRepo) ListBusinessUnits(ctx context.Context) ([]entities.BusinessUnit, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]entities.BusinessUnit)
	return list, args.Error(1)
}

type mockCatalogRepo struct{ mock.Mock }

func (m *mockCatalogRepo) ListActiveAccommodations(ctx context.Context, businessUnitID string) ([]entities.Accommodation, error) {
	args := m.Called(ctx, businessUnitID)
	list, _ := args.Get(0).([]entities.Accommodation)
	return list, args.Error(1)
}

func (m *mockCatalogRepo) ListActiveServices(ctx context.Context, businessUnitID string) ([]entities.HotelService, error) {
	args := m.Called(ctx, businessUnitID)
	list, _ := args.Get(0).([]entities.HotelService)
	return list, args.Error(1)
}

// memoryCache — кеш в памяти вместо Redis.
type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string]string)}
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.data[key] = value.(string)
	return nil
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return "", c.err
	}
	v, ok := c.data[key]
	if !ok {
		return "", repositories.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}
