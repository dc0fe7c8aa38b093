package searches

import (
	"context"
	"errors"

	giimap "github.com/emersion/go-imap/v2"
	giimapclient "github.com/emersion/go-imap/v2/imapclient"
)

type Searcher interface {
	SearchAll(ctx context.Context) ([]uint32, error)
}

// Interface to initialize the manager
type ClientProvider interface {
	IMAPClient() *giimapclient.Client
}

type IMAPSearchManager struct {
	provider func() *giimapclient.Client
}

func New(provider ClientProvider) *IMAPSearchManager {
	return &IMAPSearchManager{provider: provider.IMAPClient}
}

// SearchAll returns every UID in the selected mailbox via UID SEARCH ALL,
// preserving server order.
func (m *IMAPSearchManager) SearchAll(ctx context.Context) ([]uint32, error) {
	if m.provider == nil || m.provider() == nil {
		return nil, errors.New("IMAP client is not connected")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := m.provider().UIDSearch(&giimap.SearchCriteria{}, nil).Wait()
	if err != nil {
		return nil, err
	}

	uids := data.AllUIDs()
	all := make([]uint32, 0, len(uids))
	for _, uid := range uids {
		all = append(all, uint32(uid))
	}
	return all, nil
}
