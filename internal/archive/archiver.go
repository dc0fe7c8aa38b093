package archive

import (
	"context"
	"log/slog"
)

// Mover is the slice of the mailbox session the archiver needs.
type Mover interface {
	MoveMessages(ctx context.Context, uids []uint32, destination string) error
}

// Archiver relocates a year's worth of messages into its archive folder.
type Archiver struct {
	session Mover
	prefix  string
	logger  *slog.Logger
}

func NewArchiver(session Mover, prefix string, logger *slog.Logger) *Archiver {
	return &Archiver{session: session, prefix: prefix, logger: logger}
}

// Archive issues a single MOVE relocating uids into the folder for year. The
// move is all-or-nothing per call; a rejection is surfaced, never retried.
func (a *Archiver) Archive(ctx context.Context, year int, uids []uint32) error {
	name := FolderName(a.prefix, year)
	a.logger.Info("archiving messages",
		slog.Int("year", year),
		slog.Int("count", len(uids)),
		slog.String("uids", UIDSetString(uids)))
	if err := a.session.MoveMessages(ctx, uids, name); err != nil {
		return &MoveError{Folder: name, Err: err}
	}
	return nil
}
