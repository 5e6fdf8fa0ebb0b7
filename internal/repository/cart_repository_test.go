package repository

import (
	"context"
	"testing"

	"simusmart/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_Add(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		productID   string
		quantity    int
		expectedErr error
	}{
		{name: "Valid", productID: "p1", quantity: 2},
		{name: "Zero quantity", productID: "p1", quantity: 0, expectedErr: model.ErrValidationFailed},
		{name: "Negative quantity", productID: "p1", quantity: -1, expectedErr: model.ErrValidationFailed},
		{name: "Missing product id", productID: "", quantity: 1, expectedErr: model.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewCartRepository(zerolog.Nop())
			err := repo.Add(ctx, tt.productID, tt.quantity)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, repo.Items(ctx))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []model.CartItem{{ProductID: tt.productID, Quantity: tt.quantity}}, repo.Items(ctx))
		})
	}
}

func TestCartRepository_Lifecycle(t *testing.T) {
	repo := NewCartRepository(zerolog.Nop())
	ctx := context.Background()

	assert.Equal(t, 0, repo.Count(ctx))

	require.NoError(t, repo.Add(ctx, "p1", 2))
	require.NoError(t, repo.Add(ctx, "p2", 1))
	require.NoError(t, repo.Add(ctx, "p1", 3))

	assert.Equal(t, []model.CartItem{{ProductID: "p1", Quantity: 5}, {ProductID: "p2", Quantity: 1}}, repo.Items(ctx))
	assert.Equal(t, 6, repo.Count(ctx))

	require.NoError(t, repo.SetQuantity(ctx, "p2", 4))
	assert.Equal(t, 9, repo.Count(ctx))

	assert.ErrorIs(t, repo.SetQuantity(ctx, "p2", -1), model.ErrValidationFailed)
	assert.ErrorIs(t, repo.SetQuantity(ctx, "p9", 1), model.ErrNotFound)

	require.NoError(t, repo.SetQuantity(ctx, "p1", 0))
	assert.Equal(t, []model.CartItem{{ProductID: "p2", Quantity: 4}}, repo.Items(ctx))

	require.NoError(t, repo.Remove(ctx, "p2"))
	assert.ErrorIs(t, repo.Remove(ctx, "p2"), model.ErrNotFound)
	assert.Equal(t, 0, repo.Count(ctx))

	require.NoError(t, repo.Add(ctx, "p3", 1))
	repo.Clear(ctx)
	assert.Empty(t, repo.Items(ctx))
	assert.Equal(t, 0, repo.Count(ctx))
}
