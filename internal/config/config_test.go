package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.Port != 8080 {
		t.Errorf("API.Port = %d, want 8080", cfg.API.Port)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want 5432", cfg.Database.Port)
	}
	if !cfg.API.MigrateOnStart {
		t.Error("MigrateOnStart should default to true")
	}
	if cfg.Cache.RedisURL != "" {
		t.Error("cache should be disabled by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("API_PORT", "9090")
	t.Setenv("REDIS_URL", "redis://cache:6379/0")
	t.Setenv("MIGRATE_ON_START", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Host != "db.internal" || cfg.Database.Port != 6432 {
		t.Errorf("database config = %+v", cfg.Database)
	}
	if cfg.API.Port != 9090 {
		t.Errorf("API.Port = %d", cfg.API.Port)
	}
	if cfg.Cache.RedisURL != "redis://cache:6379/0" {
		t.Errorf("Cache.RedisURL = %q", cfg.Cache.RedisURL)
	}
	if cfg.API.MigrateOnStart {
		t.Error("MigrateOnStart should be false")
	}
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid DB_PORT")
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "ecomm",
		Password: "secret",
		DBName:   "ecomm",
		SSLMode:  "disable",
	}

	want := "host=localhost port=5432 user=ecomm password=secret dbname=ecomm sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
