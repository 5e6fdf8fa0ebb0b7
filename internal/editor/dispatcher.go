package editor

import (
	"context"
	"fmt"

	"simusmart/internal/service"

	"github.com/rs/zerolog"
)

// Result is the outcome of committing a draft.
type Result struct {
	Kind    Kind `json:"kind"`
	Created bool `json:"created"`
	Item    any  `json:"item"`
}

// Committer writes a draft to its store.
type Committer interface {
	Commit(ctx context.Context, d Draft) (*Result, error)
}

// Dispatcher routes each draft variant to the service that owns it. A draft
// without an ID is added, one with an ID replaces the existing entity.
type Dispatcher struct {
	catalog  service.CatalogService
	settings service.SettingsService
	logger   zerolog.Logger
}

// NewDispatcher creates a dispatcher over the catalog and settings services.
func NewDispatcher(catalog service.CatalogService, settings service.SettingsService, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		catalog:  catalog,
		settings: settings,
		logger:   logger.With().Str("component", "editor").Logger(),
	}
}

// Commit saves d through its typed handler.
func (d *Dispatcher) Commit(ctx context.Context, draft Draft) (*Result, error) {
	if draft == nil {
		return nil, fmt.Errorf("nil draft")
	}

	var (
		item any
		err  error
	)
	switch v := draft.(type) {
	case ProductDraft:
		item, err = d.commitProduct(ctx, v)
	case CategoryDraft:
		item, err = d.commitCategory(ctx, v)
	case SocialLinkDraft:
		item, err = d.commitSocialLink(ctx, v)
	case QuickLinkDraft:
		item, err = d.commitQuickLink(ctx, v)
	case PaymentMethodDraft:
		item, err = d.commitPaymentMethod(ctx, v)
	default:
		return nil, fmt.Errorf("unsupported draft %T", draft)
	}
	if err != nil {
		d.logger.Warn().Err(err).Str("kind", string(draft.Kind())).Msg("form rejected")
		return nil, err
	}

	d.logger.Debug().
		Str("kind", string(draft.Kind())).
		Bool("created", draft.IsNew()).
		Msg("form committed")

	return &Result{Kind: draft.Kind(), Created: draft.IsNew(), Item: item}, nil
}

func (d *Dispatcher) commitProduct(ctx context.Context, v ProductDraft) (any, error) {
	if v.IsNew() {
		return d.catalog.AddProduct(ctx, v.Product)
	}
	if err := d.catalog.UpdateProduct(ctx, v.Product); err != nil {
		return nil, err
	}
	return d.catalog.GetProduct(ctx, v.ID)
}

func (d *Dispatcher) commitCategory(ctx context.Context, v CategoryDraft) (any, error) {
	if v.IsNew() {
		return d.catalog.AddCategory(ctx, v.Category)
	}
	if err := d.catalog.UpdateCategory(ctx, v.Category); err != nil {
		return nil, err
	}
	return d.catalog.GetCategory(ctx, v.ID)
}

func (d *Dispatcher) commitSocialLink(ctx context.Context, v SocialLinkDraft) (any, error) {
	if v.IsNew() {
		return d.settings.AddSocialLink(ctx, v.SocialLink)
	}
	return v.SocialLink, d.settings.UpdateSocialLink(ctx, v.SocialLink)
}

func (d *Dispatcher) commitQuickLink(ctx context.Context, v QuickLinkDraft) (any, error) {
	if v.IsNew() {
		return d.settings.AddQuickLink(ctx, v.QuickLink)
	}
	return v.QuickLink, d.settings.UpdateQuickLink(ctx, v.QuickLink)
}

func (d *Dispatcher) commitPaymentMethod(ctx context.Context, v PaymentMethodDraft) (any, error) {
	if v.IsNew() {
		return d.settings.AddPaymentMethod(ctx, v.PaymentMethod)
	}
	return v.PaymentMethod, d.settings.UpdatePaymentMethod(ctx, v.PaymentMethod)
}
