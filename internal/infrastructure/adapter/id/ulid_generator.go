package id

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
)

// ULIDGenerator issues monotonic ULIDs, prefixed as "prefix_ULID"
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// NewULIDGenerator creates a generator backed by crypto/rand
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

var _ core.IDGenerator = (*ULIDGenerator)(nil)

// NewID returns a new identifier. An empty prefix yields the bare ULID.
func (g *ULIDGenerator) NewID(prefix string) string {
	g.mu.Lock()
	id := ulid.MustNew(ulid.Timestamp(g.now()), g.entropy)
	g.mu.Unlock()

	if prefix == "" {
		return id.String()
	}
	return strings.ToLower(prefix) + "_" + id.String()
}
