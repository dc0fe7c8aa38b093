package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/varesa/imap-archive/internal/archive"
)

const (
	envUsername = "IMAP_USERNAME"
	envPassword = "IMAP_PASSWORD"
	envSettings = "IMAP_ARCHIVE_CONFIG"
)

// TLS modes for the IMAP connection.
const (
	TLSStartTLS = "starttls"
	TLSImplicit = "implicit"
)

// Settings holds the non-secret tunables, loaded from an optional YAML file.
// Every field has a default reproducing the plain command-line behavior.
type Settings struct {
	Mailbox      string `yaml:"mailbox"`
	FolderPrefix string `yaml:"folder_prefix"`
	BatchSize    int    `yaml:"batch_size"`
	TLS          string `yaml:"tls"`
}

// Credentials holds the IMAP login from environment variables.
type Credentials struct {
	Username string
	Password string
}

func DefaultSettings() Settings {
	return Settings{
		Mailbox:      "INBOX",
		FolderPrefix: archive.DefaultFolderPrefix,
		BatchSize:    archive.MaxBatchUIDs,
		TLS:          TLSStartTLS,
	}
}

// LoadSettings reads the YAML settings file named by IMAP_ARCHIVE_CONFIG.
// When the variable is unset the defaults are returned as-is; keys missing
// from the file keep their defaults.
func LoadSettings() (Settings, error) {
	settings := DefaultSettings()

	path := strings.TrimSpace(os.Getenv(envSettings))
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Validate checks the settings before any network activity.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Mailbox) == "" {
		return errors.New("mailbox is required")
	}
	if strings.TrimSpace(s.FolderPrefix) == "" {
		return errors.New("folder_prefix is required")
	}
	if s.BatchSize < 1 || s.BatchSize > 1000 {
		return fmt.Errorf("batch_size must be between 1 and 1000, got %d", s.BatchSize)
	}
	switch s.TLS {
	case TLSStartTLS, TLSImplicit:
	default:
		return fmt.Errorf("unknown tls mode %q (want %q or %q)", s.TLS, TLSStartTLS, TLSImplicit)
	}
	return nil
}

// Port returns the default IMAP port for the TLS mode.
func (s Settings) Port() int {
	if s.TLS == TLSImplicit {
		return 993
	}
	return 143
}

// Addr completes server with the mode's default port when none is given.
func (s Settings) Addr(server string) (string, error) {
	server = strings.TrimSpace(server)
	if server == "" {
		return "", errors.New("server address is required")
	}
	if _, _, err := net.SplitHostPort(server); err == nil {
		return server, nil
	}
	return net.JoinHostPort(server, strconv.Itoa(s.Port())), nil
}

// Summary returns a concise settings summary for the run log.
func (s Settings) Summary() string {
	return fmt.Sprintf(
		"Settings\n"+
			"- mailbox: %s\n"+
			"- folder prefix: %s\n"+
			"- batch size: %d\n"+
			"- tls: %s",
		s.Mailbox,
		s.FolderPrefix,
		s.BatchSize,
		s.TLS,
	)
}

// CredentialsFromEnv loads the IMAP login and fails with one descriptive
// error naming every missing variable, before any network activity.
func CredentialsFromEnv() (Credentials, error) {
	missing := []string{}

	user := strings.TrimSpace(os.Getenv(envUsername))
	if user == "" {
		missing = append(missing, envUsername)
	}

	pass := os.Getenv(envPassword)
	if strings.TrimSpace(pass) == "" {
		missing = append(missing, envPassword)
	}

	if len(missing) > 0 {
		return Credentials{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return Credentials{Username: user, Password: pass}, nil
}
