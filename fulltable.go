// Copyright (c) 2026 martinevsky

package countbits

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

const (
	// one entry per possible uint32, about 16 GiB of uint32 entries
	fullTableEntries = 1 << 32

	// workers filling the table in parallel; must divide the entry
	// count so the partitions come out equal with no remainder
	fullTableWorkers = 4
)

// FullTable counts bits by indexing a table with one entry per
// possible input.  The table is built on the first call to Count and
// exactly once, regardless of how many goroutines race on first
// access; later calls are plain unsynchronized loads from the
// completed table.  Building the standard 2^32 entry table takes
// seconds and allocates about 16 GiB; if that allocation fails the
// runtime aborts the process, which is deliberate — falling back to a
// slower strategy would corrupt the comparison.
type FullTable struct {
	once    sync.Once
	table   []uint32
	entries uint64
	workers int
	builds  atomic.Uint32
}

// NewFullTable returns an unbuilt table covering the full 32 bit
// domain.  Nothing is allocated until the first Count call.
func NewFullTable() *FullTable {
	return newFullTable(fullTableEntries, fullTableWorkers)
}

// newFullTable sizes the table domain explicitly so the build
// machinery can be exercised without 16 GiB.  workers must divide
// entries evenly.
func newFullTable(entries uint64, workers int) *FullTable {
	if entries%uint64(workers) != 0 {
		panic("countbits: workers must divide table entries evenly")
	}

	return &FullTable{entries: entries, workers: workers}
}

// Count returns the number of bits set in v.  The first call from any
// goroutine builds the table; every caller observes the completed
// table before reading from it.
func (t *FullTable) Count(v uint32) int {
	t.once.Do(t.build)
	return int(t.table[v])
}

// build allocates and fills the table, splitting the domain into
// equal disjoint contiguous partitions, one worker each.  Workers
// fill their partition through the eleven bit table strategy, which
// is already built by this point.  The table is published only after
// every worker has joined.
func (t *FullTable) build() {
	t.builds.Add(1)

	table := make([]uint32, t.entries)
	batch := t.entries / uint64(t.workers)

	var g errgroup.Group
	for i := 0; i < t.workers; i++ {
		start, finish := uint64(i)*batch, uint64(i+1)*batch
		g.Go(func() error {
			for n := start; n < finish; n++ {
				table[n] = uint32(countEleven(uint32(n)))
			}

			return nil
		})
	}
	g.Wait()

	t.table = table
}

// shared process-wide instance, handed out by SharedFullTable
var sharedFullTable = NewFullTable()

// SharedFullTable returns the process-wide full table.  It is built on
// first use and retained for the remainder of the process.
func SharedFullTable() *FullTable {
	return sharedFullTable
}

// countFull is the strategy entry for the shared full table.
func countFull(v uint32) int {
	return sharedFullTable.Count(v)
}
