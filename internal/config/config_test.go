package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRESQL_URI", "")
	t.Setenv("PG_DSN", "")
	t.Setenv("PG_ENABLED", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("CHAT_RESPONSE_SELECTION", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.PostgreSQL.Enabled {
		t.Error("Expected PostgreSQL to be disabled without a DSN")
	}
	if cfg.Redis.Enabled {
		t.Error("Expected Redis to be disabled without REDIS_ADDR")
	}
	if cfg.OpenAI.Enabled {
		t.Error("Expected OpenAI to be disabled without an API key")
	}
	if cfg.Chat.ResponseSelection != "random" {
		t.Errorf("ResponseSelection = %q, want random", cfg.Chat.ResponseSelection)
	}
	if cfg.Listing.MaxImages != 10 {
		t.Errorf("MaxImages = %d, want 10", cfg.Listing.MaxImages)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CHAT_RESPONSE_SELECTION", "round_robin")
	t.Setenv("CHAT_TYPING_DELAY_MS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.PostgreSQL.Enabled {
		t.Error("Expected PostgreSQL to be enabled with DATABASE_URL")
	}
	if cfg.GetPostgreSQLDSN() != "postgres://u:p@db:5432/x" {
		t.Errorf("GetPostgreSQLDSN() = %q", cfg.GetPostgreSQLDSN())
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "redis:6379" {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.Chat.TypingDelayMs != 1500 {
		t.Errorf("Invalid int should fall back to default, got %d", cfg.Chat.TypingDelayMs)
	}
}

func TestLoad_InvalidSelection(t *testing.T) {
	t.Setenv("CHAT_RESPONSE_SELECTION", "loudest")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for unknown response selection")
	}
}

func TestGetPostgreSQLDSN_FromParts(t *testing.T) {
	cfg := &Config{PostgreSQL: PostgreSQLConfig{
		Host: "localhost", Port: 5432, User: "postgres", Password: "secret",
		Database: "property_chat", SSLMode: "disable",
	}}

	want := "host=localhost port=5432 user=postgres password=secret dbname=property_chat sslmode=disable"
	if got := cfg.GetPostgreSQLDSN(); got != want {
		t.Errorf("GetPostgreSQLDSN() = %q, want %q", got, want)
	}
}
