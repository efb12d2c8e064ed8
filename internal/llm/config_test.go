package llm

import "testing"

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("TOPIQ_LLM_PROVIDER", "openai")
	t.Setenv("TOPIQ_OPENAI_API_KEY", "sk-test")
	t.Setenv("TOPIQ_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("api key = %q, want sk-test", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateMissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestValidateUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestValidateMockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini (highest priority)", cfg.Provider)
	}
}

func TestDiscoverConfigNothingSet(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	if _, ok := DiscoverConfig(); ok {
		t.Error("expected discovery to fail with no keys set")
	}
}
