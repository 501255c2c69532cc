package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/services"
	"github.com/srgjo27/hotel_booking/internal/platform/database"
)

type RedisConfig struct {
	Enabled bool
	Host    string
	Port    string
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type Config struct {
	Port               string
	AllowedEmailDomain string
	ArchiveEnabled     bool
	Database           database.Config
	Redis              RedisConfig
	Engine             services.EngineConfig
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using OS environment variables.")
	}

	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Port:               envOrDefault("PORT", "8080"),
		AllowedEmailDomain: envOrDefault("ALLOWED_EMAIL_DOMAIN", ""),
		Database: database.Config{
			Host:     envOrDefault("DB_HOST", "localhost"),
			Port:     envOrDefault("DB_PORT", "5432"),
			User:     envOrDefault("DB_USER", "postgres"),
			Password: envOrDefault("DB_PASSWORD", ""),
			DBName:   envOrDefault("DB_NAME", "hotel_booking"),
		},
		Redis: RedisConfig{
			Host: envOrDefault("REDIS_HOST", "localhost"),
			Port: envOrDefault("REDIS_PORT", "6379"),
		},
		Engine: services.DefaultEngineConfig(),
	}

	var err error
	if cfg.ArchiveEnabled, err = envBool("ARCHIVE_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.Redis.Enabled, err = envBool("REDIS_ENABLED", false); err != nil {
		return Config{}, err
	}

	p := &cfg.Engine.Pricing
	if p.Rates[domain.TierSingle], err = envFloat("RATE_SINGLE", p.Rates[domain.TierSingle]); err != nil {
		return Config{}, err
	}
	if p.Rates[domain.TierDouble], err = envFloat("RATE_DOUBLE", p.Rates[domain.TierDouble]); err != nil {
		return Config{}, err
	}
	if p.AdditionalCharges, err = envFloat("ADDITIONAL_CHARGES", p.AdditionalCharges); err != nil {
		return Config{}, err
	}
	if p.DiscountRate, err = envFloat("DISCOUNT_RATE", p.DiscountRate); err != nil {
		return Config{}, err
	}
	if p.MealCost, err = envFloat("MEAL_COST", p.MealCost); err != nil {
		return Config{}, err
	}

	if err := checkPricing(*p); err != nil {
		return Config{}, err
	}

	if cfg.Engine.DefaultGuestCount, err = envInt("DEFAULT_GUEST_COUNT", cfg.Engine.DefaultGuestCount); err != nil {
		return Config{}, err
	}

	switch policy := strings.ToUpper(envOrDefault("CHECKIN_POLICY", string(services.CheckInWalkIn))); services.CheckInPolicy(policy) {
	case services.CheckInWalkIn, services.CheckInStrict:
		cfg.Engine.CheckInPolicy = services.CheckInPolicy(policy)
	default:
		return Config{}, fmt.Errorf("CHECKIN_POLICY %q must be WALK_IN or STRICT", policy)
	}

	switch pricing := strings.ToUpper(envOrDefault("CHECKOUT_PRICING", string(services.CheckoutStored))); services.CheckoutPricing(pricing) {
	case services.CheckoutStored, services.CheckoutLegacy:
		cfg.Engine.CheckoutPricing = services.CheckoutPricing(pricing)
	default:
		return Config{}, fmt.Errorf("CHECKOUT_PRICING %q must be STORED or LEGACY", pricing)
	}

	return cfg, nil
}

func checkPricing(p services.Pricing) error {
	for _, tier := range []domain.Tier{domain.TierSingle, domain.TierDouble} {
		if p.Rates[tier] < 0 {
			return fmt.Errorf("RATE_%s must not be negative, got %v", tier, p.Rates[tier])
		}
	}
	if p.AdditionalCharges < 0 {
		return fmt.Errorf("ADDITIONAL_CHARGES must not be negative, got %v", p.AdditionalCharges)
	}
	if p.MealCost < 0 {
		return fmt.Errorf("MEAL_COST must not be negative, got %v", p.MealCost)
	}
	if p.DiscountRate < 0 || p.DiscountRate > 1 {
		return fmt.Errorf("DISCOUNT_RATE must be between 0 and 1, got %v", p.DiscountRate)
	}
	return nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envFloat(key string, def float64) (float64, error) {
	raw := envOrDefault(key, "")
	if raw == "" {
		return def, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func envInt(key string, def int) (int, error) {
	raw := envOrDefault(key, "")
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func envBool(key string, def bool) (bool, error) {
	raw := envOrDefault(key, "")
	if raw == "" {
		return def, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
