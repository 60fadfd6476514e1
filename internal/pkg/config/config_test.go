package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	var cfg Config
	lookuper := envconfig.MapLookuper(map[string]string{
		"SESSION_SECRET":        "s3cret",
		"BOOTSTRAP_ADMIN_EMAIL": "Admin@x.com",
	})
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		t.Fatalf("process: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Session.Secret != "s3cret" || cfg.Session.BootstrapAdminEmail != "Admin@x.com" {
		t.Fatalf("unexpected session config: %+v", cfg.Session)
	}
	if cfg.Session.SyncTTL != 10*time.Minute || cfg.Session.SignInURL != "/auth/signin" {
		t.Fatalf("unexpected session defaults: %+v", cfg.Session)
	}
	if cfg.Mongo.Database != "event_portal" || cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("unexpected store defaults: %+v %+v", cfg.Mongo, cfg.Redis)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development env")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	var cfg Config
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(map[string]string{}),
	})
	if err == nil {
		t.Fatalf("expected error when SESSION_SECRET is missing")
	}
}
