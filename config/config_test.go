package config

import "testing"

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "localhost",
		Port:     "5432",
		UserName: "drivefleet",
		Password: "secret",
		DBName:   "drivefleet",
		SSLMode:  "require",
	}

	want := "host=localhost port=5432 user=drivefleet password=secret dbname=drivefleet sslmode=require"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}

func TestPostgresConfig_DSNDefaultsSSLMode(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "db",
		Port:     "5432",
		UserName: "app",
		Password: "pw",
		DBName:   "sales",
	}

	want := "host=db port=5432 user=app password=pw dbname=sales sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	if _, err := LoadWithEnv[Config]("no-such-env", t.TempDir()); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
