package selectors

import (
	"context"
	"errors"

	giimap "github.com/emersion/go-imap/v2"
	giimapclient "github.com/emersion/go-imap/v2/imapclient"

	"github.com/varesa/imap-archive/internal/archive"
)

type Fetcher interface {
	FetchInternalDates(ctx context.Context, uids []uint32) ([]archive.MessageDate, error)
}

// Interface to initialize the manager
type ClientProvider interface {
	IMAPClient() *giimapclient.Client
}

type IMAPSelectorManager struct {
	provider func() *giimapclient.Client
}

func New(provider ClientProvider) *IMAPSelectorManager {
	return &IMAPSelectorManager{provider: provider.IMAPClient}
}

// FetchInternalDates returns the UID and internal date of each message in
// uids via UID FETCH (UID INTERNALDATE). A message the server no longer has
// simply produces no record.
func (m *IMAPSelectorManager) FetchInternalDates(ctx context.Context, uids []uint32) ([]archive.MessageDate, error) {
	if m.provider == nil || m.provider() == nil {
		return nil, errors.New("IMAP client is not connected")
	}
	if len(uids) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var uidSet giimap.UIDSet
	for _, uid := range uids {
		uidSet.AddNum(giimap.UID(uid))
	}

	fetchOptions := &giimap.FetchOptions{
		UID:          true,
		InternalDate: true,
	}

	fetchCmd := m.provider().Fetch(uidSet, fetchOptions)
	records := make([]archive.MessageDate, 0, len(uids))
	for {
		if err := ctx.Err(); err != nil {
			_ = fetchCmd.Close()
			return nil, err
		}

		msg := fetchCmd.Next()
		if msg == nil {
			break
		}

		var record archive.MessageDate
		for {
			item := msg.Next()
			if item == nil {
				break
			}
			switch data := item.(type) {
			case giimapclient.FetchItemDataUID:
				record.UID = uint32(data.UID)
			case giimapclient.FetchItemDataInternalDate:
				record.InternalDate = data.Time
			}
		}
		records = append(records, record)
	}

	if err := fetchCmd.Close(); err != nil {
		return nil, err
	}

	return records, nil
}
