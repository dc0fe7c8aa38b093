package archive

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/pkg/errors"
)

// Runner drives a full archiving pass: enumerate the mailbox, batch the
// UIDs, classify each batch by year, then provision and move year by year.
// Batches are processed one at a time and the first error aborts the run.
type Runner struct {
	session     Session
	provisioner *Provisioner
	archiver    *Archiver
	logger      *slog.Logger
	prefix      string
	batchSize   int
	now         func() time.Time
}

type RunnerOption func(*Runner)

func WithSession(session Session) RunnerOption {
	return func(r *Runner) {
		r.session = session
	}
}

func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

func WithBatchSize(size int) RunnerOption {
	return func(r *Runner) {
		r.batchSize = size
	}
}

func WithFolderPrefix(prefix string) RunnerOption {
	return func(r *Runner) {
		r.prefix = prefix
	}
}

// WithNow overrides the clock the classifier derives the current year from.
func WithNow(now func() time.Time) RunnerOption {
	return func(r *Runner) {
		r.now = now
	}
}

func NewRunner(opts ...RunnerOption) (*Runner, error) {
	r := &Runner{
		prefix:    DefaultFolderPrefix,
		batchSize: MaxBatchUIDs,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.session == nil {
		return nil, errors.New("requires session")
	}

	if r.logger == nil {
		return nil, errors.New("requires logger")
	}

	if r.batchSize < 1 {
		return nil, errors.New("batch size must be positive")
	}

	if r.prefix == "" {
		return nil, errors.New("folder prefix must not be empty")
	}

	r.provisioner = NewProvisioner(r.session, NewFolderCache(), r.prefix, r.logger)
	r.archiver = NewArchiver(r.session, r.prefix, r.logger)
	return r, nil
}

// Run moves every message not dated in the current year into its per-year
// archive folder. Messages moved by an earlier run are naturally absent from
// the source mailbox, so re-running after a failure picks up where it
// stopped.
func (r *Runner) Run(ctx context.Context) error {
	uids, err := r.session.SearchAll(ctx)
	if err != nil {
		return errors.Wrap(err, "search mailbox")
	}
	r.logger.Info("mailbox enumerated", slog.Int("messages", len(uids)))

	moved := make(map[int]int)
	batches := 0
	for batch := range Batches(uids, r.batchSize) {
		batches++
		if err := r.processBatch(ctx, batch, moved); err != nil {
			return err
		}
	}

	total := 0
	for _, year := range sortedKeys(moved) {
		r.logger.Info("year archived", slog.Int("year", year), slog.Int("messages", moved[year]))
		total += moved[year]
	}
	r.logger.Info("run complete",
		slog.Int("batches", batches),
		slog.Int("years", len(moved)),
		slog.Int("moved", total))
	return nil
}

func (r *Runner) processBatch(ctx context.Context, batch []uint32, moved map[int]int) error {
	r.logger.Info("processing batch", slog.Int("messages", len(batch)))

	records, err := r.session.FetchInternalDates(ctx, batch)
	if err != nil {
		return errors.Wrap(err, "fetch internal dates")
	}

	groups, err := YearGroups(records, r.now())
	if err != nil {
		return err
	}

	for _, year := range sortedKeys(groups) {
		if err := r.provisioner.EnsureFolder(ctx, year); err != nil {
			return err
		}
		if err := r.archiver.Archive(ctx, year, groups[year]); err != nil {
			return err
		}
		moved[year] += len(groups[year])
	}
	return nil
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
