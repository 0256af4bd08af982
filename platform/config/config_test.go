package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected development env, got %q", cfg.Env)
	}
	if !cfg.IsSeedEnabled() {
		t.Fatal("seeding should default to enabled")
	}
	cs, b, tl, in, en := cfg.GetDefaultWeights()
	if cs+b+tl+in+en != 100 {
		t.Fatalf("default weights do not sum to 100: %d %d %d %d %d", cs, b, tl, in, en)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("CRM_SEED", "false")
	t.Setenv("CRM_WEIGHT_ENGAGEMENT", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Env != "test" {
		t.Fatalf("expected test env, got %q", cfg.Env)
	}
	if cfg.IsSeedEnabled() {
		t.Fatal("seeding should be disabled")
	}
	if cfg.WeightEngagement != 30 {
		t.Fatalf("expected engagement weight 30, got %d", cfg.WeightEngagement)
	}
}

func TestLoadRejectsUnknownEnv(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	if _, err := Load(); err == nil {
		t.Fatal("expected invalid APP_ENV to be rejected")
	}
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("CRM_WEIGHT_BUDGET", "lots")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.WeightBudget != 25 {
		t.Fatalf("expected fallback 25, got %d", cfg.WeightBudget)
	}
}
