package archive

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/pkg/errors"
)

// DefaultFolderPrefix is the folder hierarchy archived mail lands under.
const DefaultFolderPrefix = "Archives"

// FolderName returns the archive folder for a year, e.g. "Archives/2019".
func FolderName(prefix string, year int) string {
	return prefix + "/" + strconv.Itoa(year)
}

// FolderCache remembers which years already have an archive folder on the
// server. It only grows: a year is recorded strictly after its folder was
// seen or created. Safe for concurrent use.
type FolderCache struct {
	mu    sync.Mutex
	years map[int]struct{}
}

func NewFolderCache() *FolderCache {
	return &FolderCache{years: make(map[int]struct{})}
}

// Ensure runs provision for year unless the year is already cached, caching
// it only when provision succeeds. The whole check-then-provision sequence is
// one critical section, so concurrent callers can never race to create the
// same folder twice.
func (c *FolderCache) Ensure(year int, provision func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.years[year]; ok {
		return nil
	}
	if err := provision(); err != nil {
		return err
	}
	c.years[year] = struct{}{}
	return nil
}

// FolderSession is the slice of the mailbox session the provisioner needs.
type FolderSession interface {
	ListFolders(ctx context.Context, pattern string) ([]string, error)
	CreateFolder(ctx context.Context, name string) error
}

// Provisioner makes sure the archive folder for a year exists on the server,
// asking at most once per year for the life of the process.
type Provisioner struct {
	session FolderSession
	cache   *FolderCache
	prefix  string
	logger  *slog.Logger
}

func NewProvisioner(session FolderSession, cache *FolderCache, prefix string, logger *slog.Logger) *Provisioner {
	return &Provisioner{session: session, cache: cache, prefix: prefix, logger: logger}
}

// EnsureFolder guarantees the archive folder for year exists, consulting the
// cache first so the server sees at most one LIST and one CREATE per year. A
// failed CREATE is not cached, so a later call in the same run retries.
func (p *Provisioner) EnsureFolder(ctx context.Context, year int) error {
	return p.cache.Ensure(year, func() error {
		name := FolderName(p.prefix, year)

		folders, err := p.session.ListFolders(ctx, name)
		if err != nil {
			return errors.Wrapf(err, "list folder %q", name)
		}
		if len(folders) > 1 {
			// An exact-name LIST can only match one folder.
			return errors.Wrapf(ErrProtocol, "listing %q matched %d folders", name, len(folders))
		}

		if len(folders) == 1 {
			p.logger.Info("caching existing folder", slog.Int("year", year))
			return nil
		}

		p.logger.Info("creating missing folder", slog.Int("year", year))
		if err := p.session.CreateFolder(ctx, name); err != nil {
			return &FolderCreateError{Folder: name, Err: err}
		}
		return nil
	})
}
