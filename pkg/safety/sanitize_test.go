package safety

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizePassesCleanPrompt(t *testing.T) {
	in := "a story about a brave bunny who learns to share"
	require.Equal(t, in, Sanitize(in))
}

func TestSanitizeIdempotentOnCleanInput(t *testing.T) {
	prompts := []string{
		"a dragon who bakes bread for the whole village",
		"two friends build a treehouse together",
		DefaultPrompt,
	}
	for _, p := range prompts {
		once := Sanitize(p)
		require.Equal(t, once, Sanitize(once))
	}
}

func TestSanitizeRemovesUnsafeTerms(t *testing.T) {
	cases := map[string]string{
		"a story with a gun in the castle":           "gun",
		"the knight wants to kill the dragon":        "kill",
		"a scary ghost haunts the drunk pirate":      "ghost",
		"the stupid wizard drinks beer all day long": "beer",
	}
	for in, banned := range cases {
		out := Sanitize(in)
		require.NotContains(t, strings.ToLower(out), banned, "input %q", in)
	}
}

func TestSanitizeIsCaseInsensitive(t *testing.T) {
	out := Sanitize("the KILL switch and the Gun and the ZoMbIe in a big friendly castle")
	lower := strings.ToLower(out)
	require.NotContains(t, lower, "kill")
	require.NotContains(t, lower, "gun")
	require.NotContains(t, lower, "zombie")
}

func TestSanitizeOnlyFilteredTermsYieldsDefault(t *testing.T) {
	require.Equal(t, DefaultPrompt, Sanitize("kill blood gun"))
	require.Equal(t, DefaultPrompt, Sanitize("ZOMBIE horror DEATH"))
	require.Equal(t, DefaultPrompt, Sanitize(""))
	require.Equal(t, DefaultPrompt, Sanitize("   "))
}

func TestSanitizeKeepsSafeRemainder(t *testing.T) {
	out := Sanitize("a gun princess explores a wonderful castle")
	require.Contains(t, out, "princess")
	require.Contains(t, out, "castle")
	require.NotContains(t, out, "gun")
}

func TestSanitizeDoesNotMangleInnocentWords(t *testing.T) {
	// words that merely contain a filtered substring must survive
	out := Sanitize("a skillful helper walks toward a warm hello")
	require.Contains(t, out, "skillful")
	require.Contains(t, out, "toward")
	require.Contains(t, out, "warm")
	require.Contains(t, out, "hello")
}
