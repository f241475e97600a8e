package explain

import "testing"

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SENSEI_LLM_PROVIDER",
		"SENSEI_ANTHROPIC_API_KEY", "SENSEI_OPENAI_API_KEY",
		"SENSEI_GEMINI_API_KEY", "SENSEI_OPENROUTER_API_KEY",
		"GEMINI_API_KEY", "OPENAI_API_KEY",
		"ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("SENSEI_LLM_PROVIDER", "openai")
	t.Setenv("SENSEI_OPENAI_API_KEY", "sk-test")
	t.Setenv("SENSEI_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Fatalf("expected openai, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("unexpected API key: %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("unexpected model: %q", cfg.OpenAI.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Fatalf("expected anthropic default, got %q", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("unexpected default model: %q", cfg.Anthropic.Model)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error without an API key")
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a discovered config")
	}
	// Gemini is absent so OpenAI wins over Anthropic.
	if cfg.Provider != "openai" {
		t.Fatalf("expected openai, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-openai" {
		t.Errorf("unexpected API key: %q", cfg.OpenAI.APIKey)
	}
}

func TestDiscoverConfig_NoneFound(t *testing.T) {
	clearProviderEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no discovered config")
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "llama-on-a-floppy"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestValidate_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock provider should not require a key: %v", err)
	}
}
