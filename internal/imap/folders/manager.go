package folders

import (
	"context"
	"errors"
	"strings"

	giimapclient "github.com/emersion/go-imap/v2/imapclient"
)

type Folders interface {
	ListFolders(ctx context.Context, pattern string) ([]string, error)
	CreateFolder(ctx context.Context, name string) error
}

// Interface to initialize the manager
type ClientProvider interface {
	IMAPClient() *giimapclient.Client
}

type IMAPFolderManager struct {
	provider func() *giimapclient.Client
}

func New(provider ClientProvider) *IMAPFolderManager {
	return &IMAPFolderManager{provider: provider.IMAPClient}
}

// ListFolders returns the mailbox names matching pattern via LIST. The
// pattern may be an exact name, which matches at most one mailbox.
func (m *IMAPFolderManager) ListFolders(ctx context.Context, pattern string) ([]string, error) {
	if m.provider == nil || m.provider() == nil {
		return nil, errors.New("IMAP client is not connected")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(pattern) == "" {
		return nil, errors.New("list pattern is required")
	}

	list, err := m.provider().List("", pattern, nil).Collect()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(list))
	for _, data := range list {
		names = append(names, data.Mailbox)
	}
	return names, nil
}

// CreateFolder creates the mailbox name via CREATE.
func (m *IMAPFolderManager) CreateFolder(ctx context.Context, name string) error {
	if m.provider == nil || m.provider() == nil {
		return errors.New("IMAP client is not connected")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return errors.New("folder name is required")
	}

	return m.provider().Create(name, nil).Wait()
}
