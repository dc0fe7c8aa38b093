package archive

//go:generate mockgen -destination=../mock/session.go -package=mock -source ports.go

import (
	"context"
	"time"
)

// MessageDate is one fetched metadata record: a message identifier paired
// with the date the server recorded for it.
type MessageDate struct {
	UID          uint32
	InternalDate time.Time
}

// Session is the mailbox collaborator the archive core drives. The facade in
// internal/imap implements it against a live server; tests use the generated
// mock in internal/mock.
type Session interface {
	// ListFolders returns the mailbox names matching pattern. Callers here
	// always pass an exact folder name, so 0 or 1 entries are expected.
	ListFolders(ctx context.Context, pattern string) ([]string, error)
	CreateFolder(ctx context.Context, name string) error
	// SearchAll returns every UID in the selected mailbox, in server order.
	SearchAll(ctx context.Context) ([]uint32, error)
	FetchInternalDates(ctx context.Context, uids []uint32) ([]MessageDate, error)
	MoveMessages(ctx context.Context, uids []uint32, destination string) error
}
