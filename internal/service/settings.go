package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/TNRIN/DRESS/internal/domain"
	"github.com/TNRIN/DRESS/internal/repository"
)

// orderNumberPrefix prefixes every composed order identifier.
const orderNumberPrefix = "ORD-"

// SettingsService owns the store settings and the in-memory order counter.
// The counter is reseeded from the settings document on every process start
// and is never written back, so order numbers are only unique within one
// process lifetime.
type SettingsService struct {
	logger *slog.Logger

	mu          sync.Mutex
	settings    domain.StoreSettings
	counter     int64
	initialized bool
}

// NewSettingsService creates an uninitialized settings service. Call Load
// before serving; the accessors still answer with hardcoded fallbacks if
// that never happens.
func NewSettingsService(logger *slog.Logger) *SettingsService {
	return &SettingsService{logger: logger}
}

// Load reads the settings document from the source. Any failure substitutes
// the built-in defaults; the service always ends up initialized.
func (s *SettingsService) Load(ctx context.Context, src repository.SettingsSource) {
	settings, err := src.Load(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "store settings unavailable, using defaults",
			slog.String("error", err.Error()),
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.counter = settings.LastOrderNumber
	s.initialized = true

	s.logger.InfoContext(ctx, "store settings loaded",
		slog.String("store", settings.StoreName),
		slog.String("currency", settings.Currency),
		slog.Int64("last_order_number", settings.LastOrderNumber),
	)
}

// Settings returns a copy of the current store settings.
func (s *SettingsService) Settings() domain.StoreSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return domain.DefaultStoreSettings()
	}
	return s.settings
}

// NextOrderNumber advances the in-memory counter and returns a formatted
// order identifier. An uninitialized service yields a randomized fallback
// identifier instead of failing.
func (s *SettingsService) NextOrderNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		s.logger.Error("settings never initialized, issuing fallback order number")
		return fmt.Sprintf("ERR-%03d", rand.IntN(1000))
	}

	s.counter++
	return fmt.Sprintf("%s%d", orderNumberPrefix, s.counter)
}

// FormatCurrency renders amount with two fraction digits prefixed by the
// configured currency code.
func (s *SettingsService) FormatCurrency(amount float64) string {
	return fmt.Sprintf("%s %.2f", s.Settings().Currency, amount)
}

// ShippingFee returns the configured flat shipping fee.
func (s *SettingsService) ShippingFee() float64 {
	return s.Settings().ShippingFee
}

// AdminContact returns the messaging handle orders are handed off to.
func (s *SettingsService) AdminContact() string {
	return s.Settings().AdminContact
}
