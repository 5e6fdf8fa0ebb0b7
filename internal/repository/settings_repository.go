package repository

import (
	"context"
	"strings"
	"sync"

	"simusmart/internal/model"

	"github.com/rs/zerolog"
)

// listEntry is an item of one of the lists embedded in StoreSettings.
type listEntry[T any] interface {
	ItemID() string
	WithID(id string) T
}

// settingsRepository implements SettingsRepository in memory.
type settingsRepository struct {
	mu       sync.RWMutex
	settings model.StoreSettings
	logger   zerolog.Logger
}

// NewSettingsRepository creates the settings store from its initial value.
// Missing list item ids are generated.
func NewSettingsRepository(initial model.StoreSettings, logger zerolog.Logger) (SettingsRepository, error) {
	r := &settingsRepository{
		logger: logger.With().Str("repository", "settings").Logger(),
	}

	normalized, err := normalizeSettings(initial)
	if err != nil {
		return nil, err
	}
	r.settings = normalized

	return r, nil
}

// Get returns a deep copy of the current settings.
func (r *settingsRepository) Get(ctx context.Context) (model.StoreSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.settings.Clone(), nil
}

// Save atomically replaces the settings.
func (r *settingsRepository) Save(ctx context.Context, s model.StoreSettings) (model.StoreSettings, error) {
	normalized, err := normalizeSettings(s)
	if err != nil {
		return model.StoreSettings{}, err
	}

	r.mu.Lock()
	r.settings = normalized
	r.mu.Unlock()

	r.logger.Debug().
		Str("shop_name", normalized.ShopName).
		Bool("inline_logo", strings.HasPrefix(normalized.LogoURL, "data:")).
		Int("logo_length", len(normalized.LogoURL)).
		Msg("settings saved")

	return normalized.Clone(), nil
}

func (r *settingsRepository) AddSocialLink(ctx context.Context, l model.SocialLink) (model.SocialLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, added, err := addEntry(r.settings.Socials, l, prefixSocialLink, "social link")
	if err != nil {
		return model.SocialLink{}, err
	}
	r.settings.Socials = list
	return added, nil
}

func (r *settingsRepository) UpdateSocialLink(ctx context.Context, l model.SocialLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return updateEntry(r.settings.Socials, l, "social link")
}

func (r *settingsRepository) DeleteSocialLink(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := deleteEntry(r.settings.Socials, id, "social link")
	if err != nil {
		return err
	}
	r.settings.Socials = list
	return nil
}

func (r *settingsRepository) AddQuickLink(ctx context.Context, l model.QuickLink) (model.QuickLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, added, err := addEntry(r.settings.QuickLinks, l, prefixQuickLink, "quick link")
	if err != nil {
		return model.QuickLink{}, err
	}
	r.settings.QuickLinks = list
	return added, nil
}

func (r *settingsRepository) UpdateQuickLink(ctx context.Context, l model.QuickLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return updateEntry(r.settings.QuickLinks, l, "quick link")
}

func (r *settingsRepository) DeleteQuickLink(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := deleteEntry(r.settings.QuickLinks, id, "quick link")
	if err != nil {
		return err
	}
	r.settings.QuickLinks = list
	return nil
}

func (r *settingsRepository) AddPaymentMethod(ctx context.Context, m model.PaymentMethod) (model.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, added, err := addEntry(r.settings.PaymentMethods, m, prefixPaymentMethod, "payment method")
	if err != nil {
		return model.PaymentMethod{}, err
	}
	r.settings.PaymentMethods = list
	return added, nil
}

func (r *settingsRepository) UpdatePaymentMethod(ctx context.Context, m model.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return updateEntry(r.settings.PaymentMethods, m, "payment method")
}

func (r *settingsRepository) DeletePaymentMethod(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := deleteEntry(r.settings.PaymentMethods, id, "payment method")
	if err != nil {
		return err
	}
	r.settings.PaymentMethods = list
	return nil
}

// normalizeSettings deep-copies s, fills in missing list ids and rejects
// duplicate ids within a list.
func normalizeSettings(s model.StoreSettings) (model.StoreSettings, error) {
	s = s.Clone()

	var err error
	if s.Socials, err = normalizeList(s.Socials, prefixSocialLink, "social link"); err != nil {
		return model.StoreSettings{}, err
	}
	if s.QuickLinks, err = normalizeList(s.QuickLinks, prefixQuickLink, "quick link"); err != nil {
		return model.StoreSettings{}, err
	}
	if s.PaymentMethods, err = normalizeList(s.PaymentMethods, prefixPaymentMethod, "payment method"); err != nil {
		return model.StoreSettings{}, err
	}

	return s, nil
}

func normalizeList[T listEntry[T]](list []T, prefix, kind string) ([]T, error) {
	seen := make(map[string]struct{}, len(list))
	for i, item := range list {
		id := item.ItemID()
		if id == "" {
			id = newID(prefix)
			list[i] = item.WithID(id)
		}
		if _, dup := seen[id]; dup {
			return nil, model.Invalidf("duplicate %s id %q", kind, id)
		}
		seen[id] = struct{}{}
	}
	return list, nil
}

func addEntry[T listEntry[T]](list []T, item T, prefix, kind string) ([]T, T, error) {
	var zero T
	id := item.ItemID()
	if id == "" {
		item = item.WithID(newID(prefix))
	} else if entryIndex(list, id) >= 0 {
		return nil, zero, model.Invalidf("%s %s already exists", kind, id)
	}
	return append(list, item), item, nil
}

func updateEntry[T listEntry[T]](list []T, item T, kind string) error {
	i := entryIndex(list, item.ItemID())
	if i < 0 {
		return model.NotFoundf("%s %s not found", kind, item.ItemID())
	}
	list[i] = item
	return nil
}

func deleteEntry[T listEntry[T]](list []T, id, kind string) ([]T, error) {
	i := entryIndex(list, id)
	if i < 0 {
		return nil, model.NotFoundf("%s %s not found", kind, id)
	}
	return append(list[:i], list[i+1:]...), nil
}

func entryIndex[T listEntry[T]](list []T, id string) int {
	for i := range list {
		if list[i].ItemID() == id {
			return i
		}
	}
	return -1
}
