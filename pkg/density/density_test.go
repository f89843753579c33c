package density

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTierForAgeBands(t *testing.T) {
	cases := map[int]Tier{
		3:  VerySimple,
		4:  VerySimple,
		5:  Simple,
		6:  Simple,
		7:  Moderate,
		8:  Moderate,
		9:  Advanced,
		10: Advanced,
		11: Preteen,
		12: Preteen,
	}
	for age, want := range cases {
		require.Equal(t, want, TierForAge(age), "age %d", age)
	}
}

func TestTierForAgeClampsOutOfRange(t *testing.T) {
	require.Equal(t, TierForAge(3), TierForAge(0))
	require.Equal(t, TierForAge(3), TierForAge(-7))
	require.Equal(t, TierForAge(12), TierForAge(13))
	require.Equal(t, TierForAge(12), TierForAge(99))
}

func TestTierMonotonicInAge(t *testing.T) {
	prev := TierForAge(MinAge)
	for age := MinAge + 1; age <= MaxAge; age++ {
		cur := TierForAge(age)
		require.GreaterOrEqual(t, cur, prev, "tier must not decrease at age %d", age)
		prev = cur
	}
}

func TestEveryTierHasConfig(t *testing.T) {
	for _, tier := range []Tier{VerySimple, Simple, Moderate, Advanced, Preteen} {
		cfg := ForTier(tier)
		require.NotEmpty(t, cfg.Vocabulary, "tier %s", tier)
		require.NotEmpty(t, cfg.Themes, "tier %s", tier)
		require.NotEmpty(t, cfg.Emotions, "tier %s", tier)
		require.NotEmpty(t, cfg.Conflicts, "tier %s", tier)
		require.Less(t, cfg.SentenceWords[0], cfg.SentenceWords[1], "tier %s", tier)
		require.Less(t, cfg.WordsPerPage[0], cfg.WordsPerPage[1], "tier %s", tier)
	}
}

func TestForAgeMatchesForTier(t *testing.T) {
	for age := 0; age <= 15; age++ {
		require.Equal(t, ForTier(TierForAge(age)), ForAge(age))
	}
}
