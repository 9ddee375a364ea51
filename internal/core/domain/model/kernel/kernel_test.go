package kernel_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain lowercase", "nasr city", "nasrcity"},
		{"mixed case and separators", "6th of October", "6thofoctober"},
		{"punctuation and digits", "6 October- El Montazah", "6octoberelmontazah"},
		{"already a token", "maadi", "maadi"},
		{"empty", "", ""},
		{"only separators", " -_. ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kernel.TokenKey(tt.in))
		})
	}
}

func TestAddressKey(t *testing.T) {
	assert.Equal(t, "12 tahrir st apt 3", kernel.AddressKey("12, Tahrir St. — Apt #3"))
	assert.Equal(t, "", kernel.AddressKey("  ...  "))

	t.Run("idempotent", func(t *testing.T) {
		once := kernel.AddressKey("12 Tahrir St, Apt 3")
		assert.Equal(t, once, kernel.AddressKey(once))
	})
}

func TestSimilarityRatio(t *testing.T) {
	t.Run("identical strings are fully similar", func(t *testing.T) {
		assert.InDelta(t, 1.0, kernel.SimilarityRatio("nasrcity", "nasrcity"), 1e-12)
	})

	t.Run("disjoint strings score zero", func(t *testing.T) {
		assert.InDelta(t, 0.0, kernel.SimilarityRatio("abc", "xyz"), 1e-12)
	})

	t.Run("single transposition stays above the zone threshold", func(t *testing.T) {
		// "nasrcty" is a one-character drop from "nasrcity": ratio 14/15.
		assert.GreaterOrEqual(t, kernel.SimilarityRatio("nasrcty", "nasrcity"), 0.84)
	})

	t.Run("symmetric enough for threshold checks", func(t *testing.T) {
		ab := kernel.SimilarityRatio("heliopolis", "heliopolos")
		ba := kernel.SimilarityRatio("heliopolos", "heliopolis")
		assert.InDelta(t, ab, ba, 1e-12)
	})
}

func TestParseTimestamp(t *testing.T) {
	t.Run("dashed layout", func(t *testing.T) {
		ts, ok := kernel.ParseTimestamp("2025-03-01 14:30")
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 3, 1, 14, 30, 0, 0, time.UTC), ts)
	})

	t.Run("slashed layout", func(t *testing.T) {
		ts, ok := kernel.ParseTimestamp("2025/03/01 14:30")
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 3, 1, 14, 30, 0, 0, time.UTC), ts)
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		_, ok := kernel.ParseTimestamp("  2025-03-01 14:30 ")
		assert.True(t, ok)
	})

	t.Run("rejects empty and malformed input", func(t *testing.T) {
		_, ok := kernel.ParseTimestamp("")
		assert.False(t, ok)

		_, ok = kernel.ParseTimestamp("01-03-2025 14:30")
		assert.False(t, ok)

		_, ok = kernel.ParseTimestamp("2025-03-01")
		assert.False(t, ok)
	})
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, 3, 1, 9, 5, 0, 0, time.UTC)
	formatted := kernel.FormatTimestamp(ts)
	assert.Equal(t, "2025-03-01 09:05", formatted)

	reparsed, ok := kernel.ParseTimestamp(formatted)
	require.True(t, ok)
	assert.True(t, reparsed.Equal(ts))
}
