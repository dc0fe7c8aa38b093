package sessionmgr

import (
	"crypto/tls"
	"strings"

	giimap "github.com/emersion/go-imap/v2"
	giimapclient "github.com/emersion/go-imap/v2/imapclient"
	"github.com/pkg/errors"

	"github.com/varesa/imap-archive/internal/archive"
)

type Option func(*IMAPConnector)

// ServerConnector is the connection lifecycle exposed to the concern
// managers.
type ServerConnector interface {
	Connect() error
	Close() error

	IMAPClient() *giimapclient.Client
}

// IMAPConnector owns the IMAP session: dialing, login, the MOVE capability
// precondition, and source mailbox selection.
type IMAPConnector struct {
	Addr      string
	Username  string
	Password  string
	Mailbox   string
	StartTLS  bool
	TLSConfig *tls.Config

	client *giimapclient.Client
}

func WithAddr(a string) Option {
	return func(c *IMAPConnector) {
		c.Addr = a
	}
}

func WithCreds(username string, password string) Option {
	return func(c *IMAPConnector) {
		c.Username = username
		c.Password = password
	}
}

func WithMailbox(mailbox string) Option {
	return func(c *IMAPConnector) {
		c.Mailbox = mailbox
	}
}

// WithStartTLS switches from implicit TLS to a cleartext dial upgraded via
// STARTTLS.
func WithStartTLS(enabled bool) Option {
	return func(c *IMAPConnector) {
		c.StartTLS = enabled
	}
}

func WithTLSConfig(config *tls.Config) Option {
	return func(c *IMAPConnector) {
		c.TLSConfig = config
	}
}

func NewServerConnector(opts ...Option) *IMAPConnector {
	c := &IMAPConnector{Mailbox: "INBOX"}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Connect dials the server, logs in, verifies the server advertises MOVE,
// and selects the source mailbox.
func (c *IMAPConnector) Connect() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("IMAP address is required")
	}
	if strings.TrimSpace(c.Username) == "" || strings.TrimSpace(c.Password) == "" {
		return errors.New("IMAP credentials are required")
	}
	if strings.TrimSpace(c.Mailbox) == "" {
		c.Mailbox = "INBOX"
	}

	var options *giimapclient.Options
	if c.TLSConfig != nil {
		options = &giimapclient.Options{TLSConfig: c.TLSConfig}
	}

	dial := giimapclient.DialTLS
	if c.StartTLS {
		dial = giimapclient.DialStartTLS
	}

	client, err := dial(c.Addr, options)
	if err != nil {
		return errors.Wrapf(err, "dial %s", c.Addr)
	}

	if err := client.Login(c.Username, c.Password).Wait(); err != nil {
		_ = client.Logout().Wait()
		return errors.Wrap(err, "login")
	}

	if !client.Caps().Has(giimap.CapMove) {
		_ = client.Logout().Wait()
		return errors.Wrap(archive.ErrProtocol, "server does not advertise MOVE")
	}

	selected, err := client.Select(c.Mailbox, nil).Wait()
	if err != nil {
		_ = client.Logout().Wait()
		return errors.Wrapf(err, "select %q", c.Mailbox)
	}
	if selected.UIDValidity == 0 {
		_ = client.Logout().Wait()
		return errors.Wrapf(archive.ErrProtocol, "mailbox %q reported no UIDVALIDITY", c.Mailbox)
	}

	c.client = client
	return nil
}

// Close logs out and clears the connection.
func (c *IMAPConnector) Close() error {
	if c.client == nil {
		return nil
	}
	err := c.client.Logout().Wait()
	c.client = nil
	return err
}

// IMAPClient exposes the live client to the concern managers. Nil until
// Connect succeeds.
func (c *IMAPConnector) IMAPClient() *giimapclient.Client {
	return c.client
}
