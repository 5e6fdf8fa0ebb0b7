package editor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"simusmart/internal/model"
	"simusmart/internal/repository"
	"simusmart/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	catalog    repository.CatalogRepository
	settings   repository.SettingsRepository
	dispatcher *Dispatcher
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	logger := zerolog.Nop()

	catalog := repository.NewCatalogRepository(
		[]model.Category{{ID: "audio", Name: "Audio", ImageURL: "https://img/audio"}},
		[]model.Product{{ID: "prod6", Name: "EchoBuds", Price: 8900, Category: "Audio", Stock: 40}},
		logger,
	)
	settings, err := repository.NewSettingsRepository(model.StoreSettings{
		ShopName: "SimuSmart",
		Socials:  []model.SocialLink{{ID: "s1", Name: "Facebook", URL: "https://facebook.com", Icon: "Facebook"}},
	}, logger)
	require.NoError(t, err)

	return fixture{
		catalog:  catalog,
		settings: settings,
		dispatcher: NewDispatcher(
			service.NewCatalogService(catalog, logger),
			service.NewSettingsService(settings, logger),
			logger,
		),
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("order")
	assert.ErrorIs(t, err, model.ErrValidationFailed)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		kind        Kind
		body        string
		expected    Draft
		expectedErr bool
	}{
		{
			name:     "Product",
			kind:     KindProduct,
			body:     `{"name":"ChronoWatch","price":45000,"category":"Watches","stock":3}`,
			expected: ProductDraft{model.Product{Name: "ChronoWatch", Price: 45000, Category: "Watches", Stock: 3}},
		},
		{
			name:     "Category with id",
			kind:     KindCategory,
			body:     `{"id":"audio","name":"Sound"}`,
			expected: CategoryDraft{model.Category{ID: "audio", Name: "Sound"}},
		},
		{
			name:     "Social link",
			kind:     KindSocialLink,
			body:     `{"name":"Twitter","url":"https://x.com","icon":"Twitter"}`,
			expected: SocialLinkDraft{model.SocialLink{Name: "Twitter", URL: "https://x.com", Icon: "Twitter"}},
		},
		{
			name:     "Quick link",
			kind:     KindQuickLink,
			body:     `{"text":"FAQ","url":"/faq"}`,
			expected: QuickLinkDraft{model.QuickLink{Text: "FAQ", URL: "/faq"}},
		},
		{
			name:     "Payment method",
			kind:     KindPaymentMethod,
			body:     `{"name":"M-Pesa","details":"Till 555","logoUrl":"data:image/png;base64,AA"}`,
			expected: PaymentMethodDraft{model.PaymentMethod{Name: "M-Pesa", Details: "Till 555", LogoURL: "data:image/png;base64,AA"}},
		},
		{name: "Field of another kind", kind: KindQuickLink, body: `{"text":"FAQ","icon":"x"}`, expectedErr: true},
		{name: "Malformed", kind: KindCategory, body: `{"name":`, expectedErr: true},
		{name: "Empty body", kind: KindCategory, body: ``, expectedErr: true},
		{name: "Unknown kind", kind: "order", body: `{}`, expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Decode(tt.kind, []byte(tt.body))

			if tt.expectedErr {
				assert.ErrorIs(t, err, model.ErrValidationFailed)
				assert.Nil(t, d)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
			assert.Equal(t, tt.kind, d.Kind())
		})
	}
}

func TestDispatcher_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("New product is added", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.dispatcher.Commit(ctx, ProductDraft{model.Product{Name: "PodMini", Price: 4500, Category: "Audio", Stock: 9}})
		require.NoError(t, err)
		assert.True(t, res.Created)
		assert.Equal(t, KindProduct, res.Kind)

		added, ok := res.Item.(model.Product)
		require.True(t, ok)
		assert.NotEmpty(t, added.ID)

		count, err := f.catalog.CountProductsInCategory(ctx, "Audio")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("Existing product is updated", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.dispatcher.Commit(ctx, ProductDraft{model.Product{ID: "prod6", Name: "EchoBuds 2", Price: 9900, Category: "Audio", Stock: 40}})
		require.NoError(t, err)
		assert.False(t, res.Created)

		p, err := f.catalog.GetProduct(ctx, "prod6")
		require.NoError(t, err)
		assert.Equal(t, "EchoBuds 2", p.Name)
		assert.Equal(t, p, res.Item)
	})

	t.Run("New category gets the default image", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.dispatcher.Commit(ctx, CategoryDraft{model.Category{Name: "Drones"}})
		require.NoError(t, err)
		c := res.Item.(model.Category)
		assert.Equal(t, service.DefaultCategoryImage, c.ImageURL)
	})

	t.Run("Social link without id", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.dispatcher.Commit(ctx, SocialLinkDraft{model.SocialLink{Name: "Twitter", URL: "https://x.com", Icon: "Twitter"}})
		require.NoError(t, err)

		link := res.Item.(model.SocialLink)
		assert.True(t, strings.HasPrefix(link.ID, "soc-"))

		s, err := f.settings.Get(ctx)
		require.NoError(t, err)
		require.Len(t, s.Socials, 2)
		assert.Equal(t, model.SocialLink{ID: link.ID, Name: "Twitter", URL: "https://x.com", Icon: "Twitter"}, s.Socials[1])
	})

	t.Run("Quick link and payment method", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.dispatcher.Commit(ctx, QuickLinkDraft{model.QuickLink{Text: "FAQ", URL: "/faq"}})
		require.NoError(t, err)
		_, err = f.dispatcher.Commit(ctx, PaymentMethodDraft{model.PaymentMethod{Name: "Card"}})
		require.NoError(t, err)

		_, err = f.dispatcher.Commit(ctx, PaymentMethodDraft{model.PaymentMethod{ID: "missing", Name: "Card"}})
		assert.ErrorIs(t, err, model.ErrNotFound)

		s, err := f.settings.Get(ctx)
		require.NoError(t, err)
		assert.Len(t, s.QuickLinks, 1)
		assert.Len(t, s.PaymentMethods, 1)
	})

	t.Run("Invalid draft", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.dispatcher.Commit(ctx, ProductDraft{model.Product{Name: ""}})
		assert.ErrorIs(t, err, model.ErrValidationFailed)
	})

	t.Run("Nil draft", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.dispatcher.Commit(ctx, nil)
		assert.Error(t, err)
	})
}

type fakeCommitter struct {
	committed []Draft
	err       error
}

func (c *fakeCommitter) Commit(ctx context.Context, d Draft) (*Result, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.committed = append(c.committed, d)
	return &Result{Kind: d.Kind(), Created: d.IsNew()}, nil
}

func TestModal(t *testing.T) {
	ctx := context.Background()

	t.Run("Save commits and closes", func(t *testing.T) {
		c := &fakeCommitter{}
		m := NewModal(c)
		d := CategoryDraft{model.Category{Name: "Drones"}}

		m.Open(d)
		open, ok := m.Draft()
		require.True(t, ok)
		assert.Equal(t, d, open)

		res, err := m.Save(ctx)
		require.NoError(t, err)
		assert.True(t, res.Created)
		assert.Equal(t, []Draft{d}, c.committed)

		_, ok = m.Draft()
		assert.False(t, ok)
	})

	t.Run("Close discards", func(t *testing.T) {
		c := &fakeCommitter{}
		m := NewModal(c)

		m.Open(QuickLinkDraft{model.QuickLink{Text: "FAQ"}})
		m.Close()

		_, err := m.Save(ctx)
		assert.ErrorIs(t, err, model.ErrValidationFailed)
		assert.Empty(t, c.committed)
	})

	t.Run("Failed save keeps the draft open", func(t *testing.T) {
		m := NewModal(&fakeCommitter{err: errors.New("boom")})
		d := ProductDraft{model.Product{ID: "prod6"}}

		m.Open(d)
		_, err := m.Save(ctx)
		assert.Error(t, err)

		open, ok := m.Draft()
		require.True(t, ok)
		assert.Equal(t, d, open)
	})
}
