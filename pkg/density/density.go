package density

// Tier is a discrete age band driving vocabulary and sentence complexity in
// generated stories.
type Tier int

const (
	VerySimple Tier = iota // ages 3-4
	Simple                 // ages 5-6
	Moderate               // ages 7-8
	Advanced               // ages 9-10
	Preteen                // ages 11-12
)

const (
	MinAge = 3
	MaxAge = 12
)

func (t Tier) String() string {
	switch t {
	case VerySimple:
		return "very_simple"
	case Simple:
		return "simple"
	case Moderate:
		return "moderate"
	case Advanced:
		return "advanced"
	case Preteen:
		return "preteen"
	}
	return "unknown"
}

// ClampAge narrows an age into the supported [3,12] range. Ages below 3
// behave as 3, above 12 as 12.
func ClampAge(age int) int {
	if age < MinAge {
		return MinAge
	}
	if age > MaxAge {
		return MaxAge
	}
	return age
}

// TierForAge maps an age to its density tier. Band upper bounds are
// inclusive.
func TierForAge(age int) Tier {
	switch age = ClampAge(age); {
	case age <= 4:
		return VerySimple
	case age <= 6:
		return Simple
	case age <= 8:
		return Moderate
	case age <= 10:
		return Advanced
	default:
		return Preteen
	}
}

// Config is the declarative generation-style record for one tier. All fields
// feed prompt compilation only; nothing here is persisted.
type Config struct {
	Vocabulary      string
	SentenceWords   [2]int // min and max words per sentence
	WordsPerPage    [2]int // min and max words per page
	SentencesPage   [2]int // min and max sentences per page
	Themes          []string
	Emotions        []string
	Conflicts       []string
	Tense           string
	DialogueStyle   string
	Narrative       string
	GoodExample     string
	BadExample      string
	ExampleSentence string
}

var configs = map[Tier]Config{
	VerySimple: {
		Vocabulary:      "very simple everyday words a toddler hears at home",
		SentenceWords:   [2]int{3, 7},
		WordsPerPage:    [2]int{20, 35},
		SentencesPage:   [2]int{3, 5},
		Themes:          []string{"naming feelings", "bedtime", "animal friends", "colors and shapes", "helping at home"},
		Emotions:        []string{"happy", "sad", "excited", "sleepy"},
		Conflicts:       []string{"a lost toy", "a small mess to clean up", "waiting for a turn"},
		Tense:           "present tense",
		DialogueStyle:   "short, repeated exclamations",
		Narrative:       "repetition and rhythm, one idea per sentence",
		GoodExample:     "Bun the bunny hops. Hop, hop, hop! Where is her red ball?",
		BadExample:      "Bun contemplated the whereabouts of her favorite crimson plaything.",
		ExampleSentence: "The little star says hello!",
	},
	Simple: {
		Vocabulary:      "simple familiar words with an occasional new word explained by context",
		SentenceWords:   [2]int{5, 10},
		WordsPerPage:    [2]int{35, 55},
		SentencesPage:   [2]int{4, 6},
		Themes:          []string{"friendship", "sharing", "trying again", "small adventures", "kindness"},
		Emotions:        []string{"proud", "worried", "curious", "brave", "grateful"},
		Conflicts:       []string{"a friend who feels left out", "a tricky task that takes practice", "getting a little lost and found again"},
		Tense:           "past tense",
		DialogueStyle:   "short friendly exchanges",
		Narrative:       "simple beginning, middle, and happy end",
		GoodExample:     "Milo tried once more, and this time his paper boat floated all the way across the puddle.",
		BadExample:      "Milo's perseverance ultimately culminated in nautical success.",
		ExampleSentence: "Pip the penguin packed his little blue bag for the trip.",
	},
	Moderate: {
		Vocabulary:      "everyday vocabulary with some richer describing words",
		SentenceWords:   [2]int{8, 14},
		WordsPerPage:    [2]int{55, 80},
		SentencesPage:   [2]int{4, 7},
		Themes:          []string{"teamwork", "honesty", "curiosity and discovery", "standing up for a friend", "appreciating differences"},
		Emotions:        []string{"nervous", "determined", "embarrassed", "relieved", "delighted"},
		Conflicts:       []string{"a misunderstanding between friends", "a secret that should be shared", "a challenge that needs a clever plan"},
		Tense:           "past tense",
		DialogueStyle:   "natural back-and-forth conversation",
		Narrative:       "a clear problem the hero works to solve, with one small setback",
		GoodExample:     "The map was smudged, but Nora noticed the lighthouse drawn in the corner and knew exactly which way to row.",
		BadExample:      "The cartographic document's illegibility presented a navigational conundrum.",
		ExampleSentence: "Deep in the whispering forest, a door no taller than a teacup stood open.",
	},
	Advanced: {
		Vocabulary:      "varied vocabulary including some challenging words made clear by context",
		SentenceWords:   [2]int{10, 18},
		WordsPerPage:    [2]int{80, 110},
		SentencesPage:   [2]int{5, 8},
		Themes:          []string{"responsibility", "perspective taking", "perseverance through setbacks", "friendship under strain", "imagination and invention"},
		Emotions:        []string{"conflicted", "hopeful", "disappointed", "astonished", "content"},
		Conflicts:       []string{"competing loyalties between friends", "an ambition that requires sacrifice", "a mystery with a surprising but gentle answer"},
		Tense:           "past tense",
		DialogueStyle:   "dialogue that reveals character and moves the plot",
		Narrative:       "rising action with a turning point the hero earns",
		GoodExample:     "Sam had promised to keep the greenhouse secret, but watching Theo search all afternoon made the promise feel heavier than the watering can.",
		BadExample:      "Sam experienced significant cognitive dissonance regarding prior confidentiality commitments.",
		ExampleSentence: "The observatory's great brass telescope creaked as it turned toward the comet.",
	},
	Preteen: {
		Vocabulary:      "rich vocabulary with figurative language used sparingly",
		SentenceWords:   [2]int{12, 20},
		WordsPerPage:    [2]int{100, 130},
		SentencesPage:   [2]int{5, 9},
		Themes:          []string{"identity and belonging", "earning trust", "leadership and humility", "facing change", "creativity against the odds"},
		Emotions:        []string{"uncertain", "resolute", "wistful", "exhilarated", "at peace"},
		Conflicts:       []string{"an important choice with no perfect option", "rebuilding trust after a mistake", "an expedition that tests preparation and nerve"},
		Tense:           "past tense",
		DialogueStyle:   "distinct voices with subtext kept light",
		Narrative:       "parallel threads that braid together in the finale",
		GoodExample:     "The tide charts said one thing and her grandmother's stories said another; Rhea packed for both, which is how explorers are made.",
		BadExample:      "Rhea synthesized conflicting hydrological data sources into her logistical planning paradigm.",
		ExampleSentence: "By the third morning the mountain no longer felt like a stranger.",
	},
}

// ForTier returns the static configuration for a tier. Every tier has exactly
// one config; a miss is a programming error.
func ForTier(t Tier) Config {
	cfg, ok := configs[t]
	if !ok {
		panic("density: no config for tier " + t.String())
	}
	return cfg
}

// ForAge resolves an age straight to its tier's configuration.
func ForAge(age int) Config {
	return ForTier(TierForAge(age))
}
