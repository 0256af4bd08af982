// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// SeedConfig provides settings for sample-data seeding at startup.
type SeedConfig interface {
	IsSeedEnabled() bool
}

// ScoringConfig provides the default weight configuration for the scoring
// engine. Values are raw integers; the scoring package owns validation.
type ScoringConfig interface {
	GetDefaultWeights() (companySize, budget, timeline, industry, engagement int)
}

// Config holds the full application configuration.
type Config struct {
	Env string

	SeedEnabled bool

	WeightCompanySize int
	WeightBudget      int
	WeightTimeline    int
	WeightIndustry    int
	WeightEngagement  int
}

// IsSeedEnabled reports whether the sample dataset is loaded at startup.
func (c *Config) IsSeedEnabled() bool { return c.SeedEnabled }

// GetDefaultWeights returns the configured default factor weights.
func (c *Config) GetDefaultWeights() (companySize, budget, timeline, industry, engagement int) {
	return c.WeightCompanySize, c.WeightBudget, c.WeightTimeline, c.WeightIndustry, c.WeightEngagement
}

// Load reads configuration from the environment, with .env support for
// local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		SeedEnabled:       strings.EqualFold(getEnv("CRM_SEED", "true"), "true"),
		WeightCompanySize: getEnvInt("CRM_WEIGHT_COMPANY_SIZE", 25),
		WeightBudget:      getEnvInt("CRM_WEIGHT_BUDGET", 25),
		WeightTimeline:    getEnvInt("CRM_WEIGHT_TIMELINE", 20),
		WeightIndustry:    getEnvInt("CRM_WEIGHT_INDUSTRY", 15),
		WeightEngagement:  getEnvInt("CRM_WEIGHT_ENGAGEMENT", 15),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Env) {
	case "development", "test", "production":
	default:
		return fmt.Errorf("invalid APP_ENV %q", c.Env)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
