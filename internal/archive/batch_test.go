package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatches(t *testing.T) {
	cases := []struct {
		name      string
		count     int
		size      int
		wantSizes []int
	}{
		{name: "empty input yields nothing", count: 0, size: 256, wantSizes: nil},
		{name: "single partial batch", count: 5, size: 256, wantSizes: []int{5}},
		{name: "exact multiple", count: 512, size: 256, wantSizes: []int{256, 256}},
		{name: "remainder batch", count: 600, size: 256, wantSizes: []int{256, 256, 88}},
		{name: "size one", count: 3, size: 1, wantSizes: []int{1, 1, 1}},
		{name: "size below one falls back to default", count: 300, size: 0, wantSizes: []int{256, 44}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uids := make([]uint32, tc.count)
			for i := range uids {
				uids[i] = uint32(i + 1)
			}

			var sizes []int
			next := uint32(1)
			for batch := range Batches(uids, tc.size) {
				assert.NotEmpty(t, batch, "empty batch must never be emitted")
				sizes = append(sizes, len(batch))
				for _, uid := range batch {
					assert.Equal(t, next, uid, "order must be preserved")
					next++
				}
			}
			assert.Equal(t, tc.wantSizes, sizes)
		})
	}
}

func TestBatchesStopsWhenConsumerStops(t *testing.T) {
	uids := make([]uint32, 1000)
	seen := 0
	for range Batches(uids, 10) {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestUIDSetString(t *testing.T) {
	assert.Equal(t, "", UIDSetString(nil))
	assert.Equal(t, "", UIDSetString([]uint32{}))
	assert.Equal(t, "5", UIDSetString([]uint32{5}))
	assert.Equal(t, "5,9,12", UIDSetString([]uint32{5, 9, 12}))
}
