package archive

import (
	"iter"
	"strconv"
	"strings"
)

// MaxBatchUIDs bounds how many UIDs a single FETCH or MOVE carries.
const MaxBatchUIDs = 256

// Batches partitions uids into consecutive slices of at most size elements,
// preserving order. The final batch holds the remainder; an empty batch is
// never yielded. A size below 1 falls back to MaxBatchUIDs.
func Batches(uids []uint32, size int) iter.Seq[[]uint32] {
	if size < 1 {
		size = MaxBatchUIDs
	}
	return func(yield func([]uint32) bool) {
		for start := 0; start < len(uids); start += size {
			end := start + size
			if end > len(uids) {
				end = len(uids)
			}
			if !yield(uids[start:end]) {
				return
			}
		}
	}
}

// UIDSetString renders uids as a comma-separated decimal set, e.g. "5,9,12".
func UIDSetString(uids []uint32) string {
	var b strings.Builder
	for i, uid := range uids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(uid), 10))
	}
	return b.String()
}
