package utils_test

import (
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"shomadhan-be/utils"
)

// TestGenerateTrackingID_Format verifies the SMD-<timestamp>-<random> shape.
func TestGenerateTrackingID_Format(t *testing.T) {
	id := utils.GenerateTrackingID()

	assert.True(t, strings.HasPrefix(id, "SMD-"), "tracking id should carry the public prefix")
	assert.Regexp(t, regexp.MustCompile(`^SMD-[0-9A-Z]+-[0-9A-Z]{4}$`), id)
	assert.True(t, utils.IsTrackingID(id), "generated id should pass its own validator")

	parts := strings.Split(id, "-")
	assert.Len(t, parts, 3)
	assert.Len(t, parts[2], 4, "random block is always 4 chars")
}

// TestGenerateTrackingID_Unique generates a batch sequentially. Duplicates
// are tolerated by design (the store's unique index plus retry handles
// them), but they must stay rare.
func TestGenerateTrackingID_Unique(t *testing.T) {
	const total = 1000
	seen := make(map[string]bool)
	for i := 0; i < total; i++ {
		seen[utils.GenerateTrackingID()] = true
	}
	assert.GreaterOrEqual(t, len(seen), total-2, "same-millisecond collisions should be rare")
}

// TestGenerateTrackingID_ConcurrentUnique exercises same-millisecond races:
// the random block keeps concurrent generators from colliding in practice,
// and every id stays well-formed under contention.
func TestGenerateTrackingID_ConcurrentUnique(t *testing.T) {
	const workers = 8
	const perWorker = 100

	var mu sync.Mutex
	seen := make(map[string]bool)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := utils.GenerateTrackingID()
				assert.True(t, utils.IsTrackingID(id))
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, len(seen), workers*perWorker-2, "same-millisecond collisions should be rare")
}

func TestNormalizeTrackingID(t *testing.T) {
	assert.Equal(t, "SMD-ABC123-XY9Z", utils.NormalizeTrackingID("  smd-abc123-xy9z "))
}

func TestIsTrackingID_RejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "SMD-", "not-an-id", "SMD-ABC", "SMD-ABC-XY", "ABC-123-WXYZ"} {
		assert.False(t, utils.IsTrackingID(s), "%q should not validate", s)
	}
	// lookups are case-normalized before validation
	assert.True(t, utils.IsTrackingID("smd-mf1k2j3l-a9x2"))
}
