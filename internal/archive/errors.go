package archive

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMissingUID reports a fetched record without a message identifier.
	ErrMissingUID = errors.New("fetched record has no UID")
	// ErrMissingDate reports a fetched record without an internal date.
	ErrMissingDate = errors.New("fetched record has no internal date")
	// ErrYearOutOfRange reports an internal date whose year does not fit the
	// four-digit folder naming scheme.
	ErrYearOutOfRange = errors.New("internal date year is not a four-digit number")
	// ErrProtocol reports a server response that breaks an IMAP invariant
	// this program relies on.
	ErrProtocol = errors.New("protocol invariant violated")
)

// FolderCreateError reports a CREATE the server rejected.
type FolderCreateError struct {
	Folder string
	Err    error
}

func (e *FolderCreateError) Error() string {
	return fmt.Sprintf("create folder %q: %v", e.Folder, e.Err)
}

func (e *FolderCreateError) Unwrap() error { return e.Err }

// MoveError reports a MOVE the server rejected.
type MoveError struct {
	Folder string
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move messages to %q: %v", e.Folder, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }
