package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimitStr(t *testing.T) {
	require.Equal(t, "short", LimitStr("short", 10))
	require.Equal(t, "exact", LimitStr("exact", 5))
	require.Equal(t, "lon...", LimitStr("longer text", 3))
}

func TestTokenizeWords(t *testing.T) {
	require.Equal(t, []string{"a", " ", "small", " ", "fox"}, TokenizeWords("a small fox"))
	require.Equal(t, []string{"it's", " ", "two-part"}, TokenizeWords("it's two-part"))
}

func TestDiffWordsFindsRemovals(t *testing.T) {
	deltas := DiffWords("a scary gun story", "a story")

	var removed []string
	for _, d := range deltas {
		if d.Op < 0 && d.Text != " " {
			removed = append(removed, d.Text)
		}
	}
	require.Contains(t, removed, "scary")
	require.Contains(t, removed, "gun")
}

func TestDiffWordsIdenticalInputs(t *testing.T) {
	for _, d := range DiffWords("same text", "same text") {
		require.Equal(t, 0, d.Op)
	}
}
