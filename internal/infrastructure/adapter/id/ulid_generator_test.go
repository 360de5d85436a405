package id

import (
	"sort"
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestULIDGenerator_NewID(t *testing.T) {
	g := NewULIDGenerator()

	prefixed := g.NewID("topup")
	require.True(t, strings.HasPrefix(prefixed, "topup_"))
	_, err := ulid.Parse(strings.TrimPrefix(prefixed, "topup_"))
	assert.NoError(t, err)

	bare := g.NewID("")
	assert.Len(t, bare, ulid.EncodedSize)
}

func TestULIDGenerator_Monotonic(t *testing.T) {
	g := NewULIDGenerator()

	ids := make([]string, 200)
	for i := range ids {
		ids[i] = g.NewID("txn")
	}

	assert.True(t, sort.StringsAreSorted(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, len(ids))
}
