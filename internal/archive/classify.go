package archive

import (
	"slices"
	"time"

	"github.com/pkg/errors"
)

// YearGroups groups fetched records by the calendar year of their internal
// date. Messages dated in the current year (taken from now once per batch)
// stay behind: they are active mail, not archive material. A malformed
// record aborts the run instead of being skipped, since silently misfiling
// mail is worse than stopping.
//
// UIDs keep the order they were first seen in; a UID repeated within a batch
// is recorded once.
func YearGroups(records []MessageDate, now time.Time) (map[int][]uint32, error) {
	current := now.Year()
	groups := make(map[int][]uint32)
	for _, rec := range records {
		if rec.UID == 0 {
			return nil, errors.Wrapf(ErrMissingUID, "record dated %s", rec.InternalDate)
		}
		if rec.InternalDate.IsZero() {
			return nil, errors.Wrapf(ErrMissingDate, "UID %d", rec.UID)
		}
		year := rec.InternalDate.Year()
		if year < 1000 || year > 9999 {
			return nil, errors.Wrapf(ErrYearOutOfRange, "UID %d dated %s", rec.UID, rec.InternalDate)
		}
		if year == current {
			continue
		}
		if slices.Contains(groups[year], rec.UID) {
			continue
		}
		groups[year] = append(groups[year], rec.UID)
	}
	return groups, nil
}
