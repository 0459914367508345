package machine

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConcurrentMachinesNoDataRace builds many independent Machine
// instances across a bounded worker pool and drives each through an
// insert/step/eject sequence, asserting (under `go test -race`) that no
// package-level mutable state is shared across instances.
//
// Grounded on the worker-pool shape of the superoptimizer's task channel
// plus bounded goroutine pool (pkg/search/worker.go's `for task := range
// ch` workers joined by a sync.WaitGroup) — this module has no production
// concurrency (spec.md §5), so this pattern is confined to test code.
func TestConcurrentMachinesNoDataRace(t *testing.T) {
	const tasks = 64
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}

	ch := make(chan int, tasks)
	for i := 0; i < tasks; i++ {
		ch <- i
	}
	close(ch)

	var wg sync.WaitGroup
	errs := make(chan error, tasks)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range ch {
				errs <- driveOneMachine()
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func driveOneMachine() error {
	rom := make([]byte, 0x10000)
	rom[0xFFFC], rom[0xFFFD] = 0x00, 0x02

	mach, err := New(Config{ROM: rom, FPIBankCount: 4})
	if err != nil {
		return err
	}
	mach.MMU().Banks.WriteRaw(0, 0x0200, 0xEA) // NOP in bank 0 RAM at $0200

	if err := mach.InsertDisk(Drive525_1, NibbleDisk{Nibbles: []byte{1, 2, 3}, BitLength: 24}); err != nil {
		return err
	}
	if err := mach.Run(8); err != nil {
		return err
	}
	mach.EjectDisk(Drive525_1)
	return nil
}
