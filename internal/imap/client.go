package imap

import (
	"github.com/varesa/imap-archive/internal/archive"
	"github.com/varesa/imap-archive/internal/imap/actions"
	"github.com/varesa/imap-archive/internal/imap/folders"
	"github.com/varesa/imap-archive/internal/imap/searches"
	"github.com/varesa/imap-archive/internal/imap/selectors"
	"github.com/varesa/imap-archive/internal/imap/sessionmgr"
)

// Client bundles the session managers behind one value. It implements
// archive.Session once Connect has succeeded.
type Client struct {
	*sessionmgr.IMAPConnector
	*searches.IMAPSearchManager
	*selectors.IMAPSelectorManager
	*actions.IMAPActionManager
	*folders.IMAPFolderManager
}

var _ archive.Session = (*Client)(nil)

func New(opts ...sessionmgr.Option) *Client {
	session := sessionmgr.NewServerConnector(opts...)
	client := &Client{
		session,
		searches.New(session),
		selectors.New(session),
		actions.New(session),
		folders.New(session),
	}
	return client
}
