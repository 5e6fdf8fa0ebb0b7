package service

import (
	"context"
	"errors"
	"testing"

	"simusmart/internal/model"
	"simusmart/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testCategories = []model.Category{
	{ID: "laptops", Name: "Laptops", ImageURL: "https://img/laptops"},
	{ID: "audio", Name: "Audio", ImageURL: "https://img/audio"},
}

func TestCatalogService_ListProducts(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name           string
		filter         model.ProductFilter
		expectedFilter model.ProductFilter
		mockReturn     []model.Product
		mockError      error
		expectError    bool
	}{
		{
			name:           "Query is trimmed",
			filter:         model.ProductFilter{Query: "  zen ", Category: "Laptops"},
			expectedFilter: model.ProductFilter{Query: "zen", Category: "Laptops"},
			mockReturn:     []model.Product{{ID: "p2", Name: "Zenith Laptop Pro"}},
		},
		{
			name:           "Empty result",
			filter:         model.ProductFilter{Query: "toaster"},
			expectedFilter: model.ProductFilter{Query: "toaster"},
			mockReturn:     []model.Product{},
		},
		{
			name:        "Repository error",
			mockError:   errors.New("boom"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCatalogRepository)
			service := NewCatalogService(mockRepo, logger)

			mockRepo.On("ListProducts", ctx, tt.expectedFilter).Return(tt.mockReturn, tt.mockError)

			products, err := service.ListProducts(ctx, tt.filter)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, products)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, products)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty id", func(t *testing.T) {
		mockRepo := new(MockCatalogRepository)
		service := NewCatalogService(mockRepo, zerolog.Nop())

		_, err := service.GetProduct(ctx, "")
		assert.ErrorIs(t, err, model.ErrNotFound)
		mockRepo.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
	})

	t.Run("Found", func(t *testing.T) {
		mockRepo := new(MockCatalogRepository)
		service := NewCatalogService(mockRepo, zerolog.Nop())
		p := &model.Product{ID: "p1", Name: "AuraPhone X"}
		mockRepo.On("GetProduct", ctx, "p1").Return(p, nil)

		got, err := service.GetProduct(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})
}

func TestCatalogService_AddProduct(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	valid := model.Product{Name: "Zenith Laptop Air", Price: 99900, Category: "Laptops", Stock: 4}

	tests := []struct {
		name        string
		input       model.Product
		expectAdd   bool
		expectedErr error
	}{
		{name: "Valid product", input: valid, expectAdd: true},
		{name: "Unknown category is accepted", input: model.Product{Name: "Mystery", Category: "Gadgets"}, expectAdd: true},
		{name: "Blank name", input: model.Product{Name: "  ", Category: "Laptops"}, expectedErr: model.ErrValidationFailed},
		{name: "Negative price", input: model.Product{Name: "X", Price: -1, Category: "Laptops"}, expectedErr: model.ErrValidationFailed},
		{name: "Negative stock", input: model.Product{Name: "X", Stock: -1, Category: "Laptops"}, expectedErr: model.ErrValidationFailed},
		{name: "Missing category", input: model.Product{Name: "X"}, expectedErr: model.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCatalogRepository)
			service := NewCatalogService(mockRepo, logger)

			if tt.expectAdd {
				stored := tt.input
				stored.ID = "prod-1"
				mockRepo.On("ListCategories", ctx).Return(testCategories, nil)
				mockRepo.On("AddProduct", ctx, tt.input).Return(stored, nil)
			}

			added, err := service.AddProduct(ctx, tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				mockRepo.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "prod-1", added.ID)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing id", func(t *testing.T) {
		mockRepo := new(MockCatalogRepository)
		service := NewCatalogService(mockRepo, zerolog.Nop())

		err := service.UpdateProduct(ctx, model.Product{Name: "X", Category: "Audio"})
		assert.ErrorIs(t, err, model.ErrValidationFailed)
	})

	t.Run("Not found is passed through", func(t *testing.T) {
		mockRepo := new(MockCatalogRepository)
		service := NewCatalogService(mockRepo, zerolog.Nop())
		p := model.Product{ID: "gone", Name: "X", Category: "Audio"}

		mockRepo.On("ListCategories", ctx).Return(testCategories, nil)
		mockRepo.On("UpdateProduct", ctx, p).Return(model.NotFoundf("product gone not found"))

		err := service.UpdateProduct(ctx, p)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("Name is trimmed before storing", func(t *testing.T) {
		mockRepo := new(MockCatalogRepository)
		service := NewCatalogService(mockRepo, zerolog.Nop())

		mockRepo.On("ListCategories", ctx).Return(testCategories, nil)
		mockRepo.On("UpdateProduct", ctx, model.Product{ID: "p1", Name: "EchoBuds", Category: "Audio"}).Return(nil)

		err := service.UpdateProduct(ctx, model.Product{ID: "p1", Name: " EchoBuds ", Category: "Audio"})
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_AddCategory(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		input         model.Category
		expectedStore model.Category
		expectedErr   error
	}{
		{
			name:          "Default image",
			input:         model.Category{Name: "Drones"},
			expectedStore: model.Category{Name: "Drones", ImageURL: DefaultCategoryImage},
		},
		{
			name:          "Own image kept",
			input:         model.Category{Name: " Drones ", ImageURL: "https://img/drones"},
			expectedStore: model.Category{Name: "Drones", ImageURL: "https://img/drones"},
		},
		{
			name:        "Blank name",
			input:       model.Category{Name: " "},
			expectedErr: model.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCatalogRepository)
			service := NewCatalogService(mockRepo, zerolog.Nop())

			if tt.expectedErr == nil {
				stored := tt.expectedStore
				stored.ID = "cat-1"
				mockRepo.On("AddCategory", ctx, tt.expectedStore).Return(stored, nil)
			}

			added, err := service.AddCategory(ctx, tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "cat-1", added.ID)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_UpdateCategory(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCatalogRepository)
	service := NewCatalogService(mockRepo, zerolog.Nop())

	renamed := model.Category{ID: "audio", Name: "Sound", ImageURL: "https://img/audio"}
	mockRepo.On("GetCategory", ctx, "audio").Return(&testCategories[1], nil)
	mockRepo.On("UpdateCategory", ctx, renamed).Return(nil)

	require.NoError(t, service.UpdateCategory(ctx, renamed))
	assert.ErrorIs(t, service.UpdateCategory(ctx, model.Category{ID: "audio"}), model.ErrValidationFailed)
	assert.ErrorIs(t, service.UpdateCategory(ctx, model.Category{Name: "X"}), model.ErrValidationFailed)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_DeleteCategory(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Blocked while products use the name", func(t *testing.T) {
		mockRepo := new(MockCatalogRepository)
		service := NewCatalogService(mockRepo, logger)

		mockRepo.On("DeleteCategoryIfUnused", ctx, "laptops").Return(&testCategories[0], 2, nil)

		err := service.DeleteCategory(ctx, "laptops")

		assert.ErrorIs(t, err, model.ErrConstraintBlocked)
		var inUse *model.CategoryInUseError
		require.ErrorAs(t, err, &inUse)
		assert.Equal(t, 2, inUse.BlockingCount)
		assert.Equal(t, "Laptops", inUse.CategoryName)
		mockRepo.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything)
	})

	t.Run("Deleted when unused", func(t *testing.T) {
		mockRepo := new(MockCatalogRepository)
		service := NewCatalogService(mockRepo, logger)

		mockRepo.On("DeleteCategoryIfUnused", ctx, "audio").Return(&testCategories[1], 0, nil)

		require.NoError(t, service.DeleteCategory(ctx, "audio"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown category", func(t *testing.T) {
		mockRepo := new(MockCatalogRepository)
		service := NewCatalogService(mockRepo, logger)

		mockRepo.On("DeleteCategoryIfUnused", ctx, "nope").Return(nil, 0, model.NotFoundf("category nope not found"))

		assert.ErrorIs(t, service.DeleteCategory(ctx, "nope"), model.ErrNotFound)
	})
}

// interleavingCatalog runs between after a product count, standing in for a
// request that writes while a category delete is deciding.
type interleavingCatalog struct {
	repository.CatalogRepository
	between func()
}

func (c *interleavingCatalog) CountProductsInCategory(ctx context.Context, name string) (int, error) {
	n, err := c.CatalogRepository.CountProductsInCategory(ctx, name)
	c.between()
	return n, err
}

func TestCatalogService_DeleteCategory_WriteBetweenReads(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := repository.NewCatalogRepository([]model.Category{{ID: "c1", Name: "Audio"}}, nil, logger)
	added := false
	wrapped := &interleavingCatalog{
		CatalogRepository: repo,
		between: func() {
			if added {
				return
			}
			added = true
			_, err := repo.AddProduct(ctx, model.Product{Name: "EchoBuds", Category: "Audio", Stock: 1})
			require.NoError(t, err)
		},
	}
	service := NewCatalogService(wrapped, logger)

	err := service.DeleteCategory(ctx, "c1")

	count, countErr := repo.CountProductsInCategory(ctx, "Audio")
	require.NoError(t, countErr)
	_, getErr := repo.GetCategory(ctx, "c1")
	if err == nil {
		assert.ErrorIs(t, getErr, model.ErrNotFound)
		assert.Zero(t, count, "deleted category still referenced by products")
		return
	}
	assert.ErrorIs(t, err, model.ErrConstraintBlocked)
	assert.NoError(t, getErr)
}
