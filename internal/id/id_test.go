package id_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cemcobancem/notevault/internal/id"
)

func TestGenerate_Prefix(t *testing.T) {
	got, err := id.Generate(id.PrefixNote)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got, "note-"), "got %s", got)
}

func TestGenerate_Unique(t *testing.T) {
	seen := map[string]bool{}
	for range 1000 {
		v := id.MustGenerate(id.PrefixTask)
		require.False(t, seen[v], "duplicate id %s", v)
		seen[v] = true
	}
}
