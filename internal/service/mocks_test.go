package service

import (
	"context"

	"simusmart/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository is a mock implementation of CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogRepository) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogRepository) AddProduct(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockCatalogRepository) UpdateProduct(ctx context.Context, p model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockCatalogRepository) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogRepository) AdjustStock(ctx context.Context, deltas map[string]int) ([]string, error) {
	args := m.Called(ctx, deltas)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCatalogRepository) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCatalogRepository) AddCategory(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCatalogRepository) UpdateCategory(ctx context.Context, c model.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCatalogRepository) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogRepository) DeleteCategoryIfUnused(ctx context.Context, id string) (*model.Category, int, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).(*model.Category), args.Int(1), args.Error(2)
}

func (m *MockCatalogRepository) CountProductsInCategory(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)
	return args.Int(0), args.Error(1)
}

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) ListOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) SetStatus(ctx context.Context, id string, status model.OrderStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockOrderRepository) SetPaymentStatus(ctx context.Context, id string, status model.PaymentStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockOrderRepository) MarkStockDeducted(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockReviewRepository is a mock implementation of ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) ListReviews(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func (m *MockReviewRepository) GetReview(ctx context.Context, id string) (*model.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewRepository) AddReview(ctx context.Context, r model.Review) (model.Review, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(model.Review), args.Error(1)
}

func (m *MockReviewRepository) UpdateReview(ctx context.Context, r model.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReviewRepository) SetStatus(ctx context.Context, id string, status model.ReviewStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockReviewRepository) DeleteReview(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockSettingsRepository is a mock implementation of SettingsRepository.
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (model.StoreSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.StoreSettings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, s model.StoreSettings) (model.StoreSettings, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(model.StoreSettings), args.Error(1)
}

func (m *MockSettingsRepository) AddSocialLink(ctx context.Context, l model.SocialLink) (model.SocialLink, error) {
	args := m.Called(ctx, l)
	return args.Get(0).(model.SocialLink), args.Error(1)
}

func (m *MockSettingsRepository) UpdateSocialLink(ctx context.Context, l model.SocialLink) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockSettingsRepository) DeleteSocialLink(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSettingsRepository) AddQuickLink(ctx context.Context, l model.QuickLink) (model.QuickLink, error) {
	args := m.Called(ctx, l)
	return args.Get(0).(model.QuickLink), args.Error(1)
}

func (m *MockSettingsRepository) UpdateQuickLink(ctx context.Context, l model.QuickLink) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockSettingsRepository) DeleteQuickLink(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSettingsRepository) AddPaymentMethod(ctx context.Context, pm model.PaymentMethod) (model.PaymentMethod, error) {
	args := m.Called(ctx, pm)
	return args.Get(0).(model.PaymentMethod), args.Error(1)
}

func (m *MockSettingsRepository) UpdatePaymentMethod(ctx context.Context, pm model.PaymentMethod) error {
	return m.Called(ctx, pm).Error(0)
}

func (m *MockSettingsRepository) DeletePaymentMethod(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockAuthenticator is a mock implementation of Authenticator.
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, creds model.Credentials) (*model.User, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
