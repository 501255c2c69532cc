package config_test

import (
	"testing"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/services"
	"github.com/srgjo27/hotel_booking/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ARCHIVE_ENABLED", "REDIS_ENABLED", "REDIS_HOST", "REDIS_PORT", "DB_NAME",
		"RATE_SINGLE", "RATE_DOUBLE", "ADDITIONAL_CHARGES", "DISCOUNT_RATE", "MEAL_COST",
		"DEFAULT_GUEST_COUNT", "CHECKIN_POLICY", "CHECKOUT_PRICING"} {
		t.Setenv(key, "")
	}

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.ArchiveEnabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, "hotel_booking", cfg.Database.DBName)
	assert.Equal(t, services.DefaultEngineConfig(), cfg.Engine)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("RATE_DOUBLE", "4000")
	t.Setenv("DISCOUNT_RATE", "0.2")
	t.Setenv("DEFAULT_GUEST_COUNT", "1")
	t.Setenv("CHECKIN_POLICY", "strict")
	t.Setenv("CHECKOUT_PRICING", "legacy")
	t.Setenv("ALLOWED_EMAIL_DOMAIN", "gmail.com")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "gmail.com", cfg.AllowedEmailDomain)
	assert.Equal(t, 4000.0, cfg.Engine.Pricing.Rates[domain.TierDouble])
	assert.Equal(t, services.DefaultSingleRate, cfg.Engine.Pricing.Rates[domain.TierSingle])
	assert.Equal(t, 0.2, cfg.Engine.Pricing.DiscountRate)
	assert.Equal(t, 1, cfg.Engine.DefaultGuestCount)
	assert.Equal(t, services.CheckInStrict, cfg.Engine.CheckInPolicy)
	assert.Equal(t, services.CheckoutLegacy, cfg.Engine.CheckoutPricing)
}

func TestFromEnv_ZeroPricingAllowed(t *testing.T) {
	t.Setenv("MEAL_COST", "0")
	t.Setenv("DISCOUNT_RATE", "1")
	t.Setenv("ADDITIONAL_CHARGES", "0")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.Engine.Pricing.MealCost)
	assert.Equal(t, 1.0, cfg.Engine.Pricing.DiscountRate)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		"MEAL_COST":          "lots",
		"RATE_SINGLE":        "-2500",
		"RATE_DOUBLE":        "-1",
		"ADDITIONAL_CHARGES": "-100",
		"DISCOUNT_RATE":      "1.5",
		"ARCHIVE_ENABLED":    "maybe",
		"CHECKIN_POLICY":     "whoever",
		"CHECKOUT_PRICING":   "free",
	}

	t.Run("negative discount", func(t *testing.T) {
		t.Setenv("DISCOUNT_RATE", "-0.1")

		_, err := config.FromEnv()
		assert.Error(t, err)
	})

	t.Run("negative meal cost", func(t *testing.T) {
		t.Setenv("MEAL_COST", "-1500")

		_, err := config.FromEnv()
		assert.Error(t, err)
	})

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := config.FromEnv()
			assert.Error(t, err)
		})
	}
}
