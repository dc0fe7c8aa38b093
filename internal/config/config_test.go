package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv(envUsername, "user@example.com")
	t.Setenv(envPassword, "hunter2")

	creds, err := CredentialsFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Username != "user@example.com" || creds.Password != "hunter2" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestCredentialsFromEnvMissing(t *testing.T) {
	t.Setenv(envUsername, "")
	t.Setenv(envPassword, "")

	_, err := CredentialsFromEnv()
	if err == nil {
		t.Fatalf("expected error for missing environment variables")
	}
	if !strings.Contains(err.Error(), envUsername) || !strings.Contains(err.Error(), envPassword) {
		t.Fatalf("expected both variable names in error, got: %v", err)
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv(envSettings, "")

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings != DefaultSettings() {
		t.Fatalf("expected defaults, got: %+v", settings)
	}
	if err := settings.Validate(); err != nil {
		t.Fatalf("defaults must validate, got: %v", err)
	}
}

func TestLoadSettingsFileOverridesDefaults(t *testing.T) {
	path := writeTempFile(t, `
mailbox: "Lists"
batch_size: 100
`)
	t.Setenv(envSettings, path)

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Mailbox != "Lists" || settings.BatchSize != 100 {
		t.Fatalf("expected file values, got: %+v", settings)
	}
	// Keys absent from the file keep their defaults.
	if settings.FolderPrefix != "Archives" || settings.TLS != TLSStartTLS {
		t.Fatalf("expected defaults for unset keys, got: %+v", settings)
	}
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	path := writeTempFile(t, "not: [valid_yaml")
	t.Setenv(envSettings, path)

	if _, err := LoadSettings(); err == nil {
		t.Fatalf("expected error for invalid YAML")
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	t.Setenv(envSettings, filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := LoadSettings(); err == nil {
		t.Fatalf("expected error for missing settings file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Settings) {}},
		{name: "implicit tls", mutate: func(s *Settings) { s.TLS = TLSImplicit }},
		{name: "empty mailbox", mutate: func(s *Settings) { s.Mailbox = " " }, wantErr: true},
		{name: "empty prefix", mutate: func(s *Settings) { s.FolderPrefix = "" }, wantErr: true},
		{name: "zero batch size", mutate: func(s *Settings) { s.BatchSize = 0 }, wantErr: true},
		{name: "oversized batch", mutate: func(s *Settings) { s.BatchSize = 100000 }, wantErr: true},
		{name: "unknown tls mode", mutate: func(s *Settings) { s.TLS = "plaintext" }, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			settings := DefaultSettings()
			tc.mutate(&settings)
			err := settings.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestAddr(t *testing.T) {
	starttls := DefaultSettings()
	implicit := DefaultSettings()
	implicit.TLS = TLSImplicit

	if addr, err := starttls.Addr("mail.example.com"); err != nil || addr != "mail.example.com:143" {
		t.Fatalf("expected starttls default port, got %q, %v", addr, err)
	}
	if addr, err := implicit.Addr("mail.example.com"); err != nil || addr != "mail.example.com:993" {
		t.Fatalf("expected implicit default port, got %q, %v", addr, err)
	}
	if addr, err := starttls.Addr("mail.example.com:1143"); err != nil || addr != "mail.example.com:1143" {
		t.Fatalf("expected explicit port kept, got %q, %v", addr, err)
	}
	if _, err := starttls.Addr("  "); err == nil {
		t.Fatalf("expected error for empty server")
	}
}
