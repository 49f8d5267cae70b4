package config

import (
	"os"
	"testing"

	apperrors "userroster/pkg/errors"
)

func TestIsValidDatabaseURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{
			name: "http scheme",
			url:  "http://localhost:5984/users",
			want: true,
		},
		{
			name: "https scheme",
			url:  "https://db.example.com/users",
			want: true,
		},
		{
			name: "postgres scheme",
			url:  "postgres://db:5432/users",
			want: true,
		},
		{
			name: "ftp scheme",
			url:  "ftp://db.example.com/users",
			want: false,
		},
		{
			name: "no scheme",
			url:  "localhost:5984",
			want: false,
		},
		{
			name: "empty url",
			url:  "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDatabaseURL(tt.url); got != tt.want {
				t.Errorf("IsValidDatabaseURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				DatabaseURL: "http://localhost:5984/users",
				Cache:       CacheSettings{Enabled: true, TTL: 300},
			},
			wantErr: false,
		},
		{
			name: "ttl at minimum",
			cfg: Config{
				DatabaseURL: "http://localhost:5984/users",
				Cache:       CacheSettings{Enabled: true, TTL: 60},
			},
			wantErr: false,
		},
		{
			name: "ttl below minimum",
			cfg: Config{
				DatabaseURL: "http://localhost:5984/users",
				Cache:       CacheSettings{Enabled: true, TTL: 59},
			},
			wantErr: true,
		},
		{
			name: "cache disabled ignores ttl",
			cfg: Config{
				DatabaseURL: "http://localhost:5984/users",
				Cache:       CacheSettings{Enabled: false, TTL: 0},
			},
			wantErr: false,
		},
		{
			name: "unsupported scheme",
			cfg: Config{
				DatabaseURL: "ftp://db.example.com/users",
				Cache:       CacheSettings{Enabled: true, TTL: 300},
			},
			wantErr: true,
		},
		{
			name: "empty url",
			cfg: Config{
				Cache: CacheSettings{Enabled: false},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && !apperrors.IsConfigurationError(err) {
				t.Errorf("Validate() error = %v, want a configuration error", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		cleanup func()
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "defaults",
			setup:   func() {},
			cleanup: func() {},
			check: func(t *testing.T, cfg *Config) {
				if cfg.DatabaseURL != defaultDatabaseURL {
					t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, defaultDatabaseURL)
				}
				if !cfg.Cache.Enabled {
					t.Error("Cache.Enabled = false, want true")
				}
				if cfg.Cache.TTL != defaultCacheTTL {
					t.Errorf("Cache.TTL = %d, want %d", cfg.Cache.TTL, defaultCacheTTL)
				}
			},
		},
		{
			name: "env overrides",
			setup: func() {
				os.Setenv("DATABASE_URL", "https://db.example.com/users")
				os.Setenv("CACHE_ENABLED", "false")
				os.Setenv("CACHE_TTL", "120")
			},
			cleanup: func() {
				os.Unsetenv("DATABASE_URL")
				os.Unsetenv("CACHE_ENABLED")
				os.Unsetenv("CACHE_TTL")
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.DatabaseURL != "https://db.example.com/users" {
					t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
				}
				if cfg.Cache.Enabled {
					t.Error("Cache.Enabled = true, want false")
				}
				if cfg.Cache.TTL != 120 {
					t.Errorf("Cache.TTL = %d, want 120", cfg.Cache.TTL)
				}
			},
		},
		{
			name: "invalid int falls back to default",
			setup: func() {
				os.Setenv("CACHE_TTL", "not-a-number")
			},
			cleanup: func() {
				os.Unsetenv("CACHE_TTL")
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Cache.TTL != defaultCacheTTL {
					t.Errorf("Cache.TTL = %d, want %d", cfg.Cache.TTL, defaultCacheTTL)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.cleanup()

			cfg, err := LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}
