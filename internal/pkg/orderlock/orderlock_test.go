package orderlock_test

import (
	"sync"
	"testing"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/orderlock"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Lock(t *testing.T) {
	t.Run("should serialize operations on the same order", func(t *testing.T) {
		registry := orderlock.NewRegistry()
		orderID := kernel.NewUUID()

		const workers = 16
		counter := 0
		var wg sync.WaitGroup
		wg.Add(workers)

		for range workers {
			go func() {
				defer wg.Done()
				unlock := registry.Lock(orderID)
				defer unlock()
				counter++
			}()
		}

		wg.Wait()
		assert.Equal(t, workers, counter)
	})

	t.Run("should not block operations on another order", func(t *testing.T) {
		registry := orderlock.NewRegistry()

		unlockFirst := registry.Lock(kernel.NewUUID())
		defer unlockFirst()

		done := make(chan struct{})
		go func() {
			unlock := registry.Lock(kernel.NewUUID())
			unlock()
			close(done)
		}()

		<-done
	})

	t.Run("should allow reacquiring after unlock", func(t *testing.T) {
		registry := orderlock.NewRegistry()
		orderID := kernel.NewUUID()

		unlock := registry.Lock(orderID)
		unlock()

		unlock = registry.Lock(orderID)
		unlock()
	})
}
