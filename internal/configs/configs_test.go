package configs

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ENVIRONMENT", "PORT", "ALLOWED_ORIGINS", "DATA_DIR", "CONNECT_RATE", "CONNECT_BURST"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Environment != "development" {
		t.Fatalf("Environment = %q", cfg.Environment)
	}
	if cfg.Port != 3000 {
		t.Fatalf("Port = %d", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 0 {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.DataDir != "data" {
		t.Fatalf("DataDir = %q", cfg.DataDir)
	}
	if cfg.ConnectRate != 1 || cfg.ConnectBurst != 5 {
		t.Fatalf("rate limit = %v/%d", cfg.ConnectRate, cfg.ConnectBurst)
	}
}

func TestLoadConfigPortValidation(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		port    string
		wantErr bool
	}{
		{"8080", false},
		{"1024", false},
		{"65535", false},
		{"80", true},
		{"70000", true},
		{"not-a-number", true},
	}

	for _, tt := range tests {
		t.Setenv("PORT", tt.port)
		_, err := LoadConfig()
		if gotErr := err != nil; gotErr != tt.wantErr {
			t.Fatalf("PORT=%q: err = %v, wantErr %v", tt.port, err, tt.wantErr)
		}
	}
}

func TestLoadConfigOrigins(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Fatalf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}

func TestLoadConfigRateLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONNECT_RATE", "2.5")
	t.Setenv("CONNECT_BURST", "10")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ConnectRate != 2.5 || cfg.ConnectBurst != 10 {
		t.Fatalf("rate limit = %v/%d", cfg.ConnectRate, cfg.ConnectBurst)
	}

	t.Setenv("CONNECT_RATE", "fast")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for invalid CONNECT_RATE")
	}
}
