package memory

import (
	"fmt"
	"sync"
	"time"

	"postboard/domain/core/valueobjects"
	"postboard/pkg/utils"
)

var baseTime = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

// sequentialIDs returns a generator of zero-padded IDs so that later IDs sort higher
func sequentialIDs(prefix string) valueobjects.IDGenerator {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%04d", prefix, n)
	}
}

func newTestStore() (*EntityStore, *utils.StubClock) {
	clock := utils.NewStubClock(baseTime)
	store := NewEntityStore(
		WithClock(clock),
		WithIDGenerator(sequentialIDs("id")),
	)
	return store, clock
}
