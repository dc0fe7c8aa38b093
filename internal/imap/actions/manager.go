package actions

import (
	"context"
	"errors"
	"strings"

	giimap "github.com/emersion/go-imap/v2"
	giimapclient "github.com/emersion/go-imap/v2/imapclient"
)

type Actions interface {
	MoveMessages(ctx context.Context, uids []uint32, destination string) error
}

// Interface to initialize the manager
type ClientProvider interface {
	IMAPClient() *giimapclient.Client
}

type IMAPActionManager struct {
	provider func() *giimapclient.Client
}

func New(provider ClientProvider) *IMAPActionManager {
	return &IMAPActionManager{provider: provider.IMAPClient}
}

// MoveMessages relocates uids from the selected mailbox into destination
// with a single UID MOVE.
func (c *IMAPActionManager) MoveMessages(ctx context.Context, uids []uint32, destination string) error {
	if c.provider == nil || c.provider() == nil {
		return errors.New("IMAP client is not connected")
	}
	if len(uids) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(destination) == "" {
		return errors.New("destination mailbox is required")
	}

	var uidSet giimap.UIDSet
	for _, uid := range uids {
		uidSet.AddNum(giimap.UID(uid))
	}

	if _, err := c.provider().Move(uidSet, destination).Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}
