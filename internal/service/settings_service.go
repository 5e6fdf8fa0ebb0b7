package service

import (
	"context"
	"fmt"
	"strings"

	"simusmart/internal/model"
	"simusmart/internal/repository"

	"github.com/rs/zerolog"
)

// settingsService implements SettingsService.
type settingsService struct {
	settingsRepo repository.SettingsRepository
	logger       zerolog.Logger
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo repository.SettingsRepository, logger zerolog.Logger) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		logger:       logger.With().Str("service", "settings").Logger(),
	}
}

func (s *settingsService) Get(ctx context.Context) (model.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get settings")
		return model.StoreSettings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// Save replaces the settings with a full edited copy.
func (s *settingsService) Save(ctx context.Context, settings model.StoreSettings) (model.StoreSettings, error) {
	if strings.TrimSpace(settings.ShopName) == "" {
		return model.StoreSettings{}, model.Invalidf("shop name is required")
	}

	saved, err := s.settingsRepo.Save(ctx, settings)
	if err != nil {
		s.logger.Warn().Err(err).Msg("settings rejected")
		return model.StoreSettings{}, err
	}

	s.logger.Info().Str("shop_name", saved.ShopName).Msg("settings saved")

	return saved, nil
}

func (s *settingsService) AddSocialLink(ctx context.Context, l model.SocialLink) (model.SocialLink, error) {
	if strings.TrimSpace(l.Name) == "" || strings.TrimSpace(l.URL) == "" {
		return model.SocialLink{}, model.Invalidf("social link name and url are required")
	}
	return s.settingsRepo.AddSocialLink(ctx, l)
}

func (s *settingsService) UpdateSocialLink(ctx context.Context, l model.SocialLink) error {
	if strings.TrimSpace(l.Name) == "" || strings.TrimSpace(l.URL) == "" {
		return model.Invalidf("social link name and url are required")
	}
	return s.settingsRepo.UpdateSocialLink(ctx, l)
}

func (s *settingsService) DeleteSocialLink(ctx context.Context, id string) error {
	return s.settingsRepo.DeleteSocialLink(ctx, id)
}

func (s *settingsService) AddQuickLink(ctx context.Context, l model.QuickLink) (model.QuickLink, error) {
	if strings.TrimSpace(l.Text) == "" {
		return model.QuickLink{}, model.Invalidf("quick link text is required")
	}
	return s.settingsRepo.AddQuickLink(ctx, l)
}

func (s *settingsService) UpdateQuickLink(ctx context.Context, l model.QuickLink) error {
	if strings.TrimSpace(l.Text) == "" {
		return model.Invalidf("quick link text is required")
	}
	return s.settingsRepo.UpdateQuickLink(ctx, l)
}

func (s *settingsService) DeleteQuickLink(ctx context.Context, id string) error {
	return s.settingsRepo.DeleteQuickLink(ctx, id)
}

func (s *settingsService) AddPaymentMethod(ctx context.Context, m model.PaymentMethod) (model.PaymentMethod, error) {
	if strings.TrimSpace(m.Name) == "" {
		return model.PaymentMethod{}, model.Invalidf("payment method name is required")
	}
	return s.settingsRepo.AddPaymentMethod(ctx, m)
}

func (s *settingsService) UpdatePaymentMethod(ctx context.Context, m model.PaymentMethod) error {
	if strings.TrimSpace(m.Name) == "" {
		return model.Invalidf("payment method name is required")
	}
	return s.settingsRepo.UpdatePaymentMethod(ctx, m)
}

func (s *settingsService) DeletePaymentMethod(ctx context.Context, id string) error {
	return s.settingsRepo.DeletePaymentMethod(ctx, id)
}
