// Package prompt compiles the instruction block handed to a text provider.
// The block is assembled from named sections in a fixed order so the same age
// always produces the same instructions.
package prompt

import (
	"fmt"
	"strings"

	"fable/pkg/density"
)

// PageCount is the structural page mandate every story must follow.
const PageCount = 6

// BuildInstructions resolves the density configuration for age and compiles
// the full system prompt. Pure function of age modulo the static config
// table.
func BuildInstructions(age int) string {
	age = density.ClampAge(age)
	cfg := density.ForAge(age)

	sections := []string{
		roleSection(age),
		safetySection(),
		qualitySection(cfg),
		styleSection(cfg),
		exampleSection(cfg),
		formatSection(cfg),
	}
	return strings.Join(sections, "\n\n")
}

// Enhance prepends a protagonist instruction when a child's name is given,
// otherwise returns the prompt verbatim.
func Enhance(userPrompt, childName string) string {
	childName = strings.TrimSpace(childName)
	if childName == "" {
		return userPrompt
	}
	return fmt.Sprintf("Make a child named %s the main character and hero of this story. %s", childName, userPrompt)
}

func roleSection(age int) string {
	return fmt.Sprintf(
		"You are a warm, imaginative children's story writer. You are writing for a child who is %d years old. Every word you write will be read aloud to this child.",
		age)
}

// safetySection is invariant across all ages and never parameterized.
func safetySection() string {
	return strings.Join([]string{
		"ABSOLUTE RULES, never break these:",
		"- No sexual content of any kind.",
		"- No violence, death, injury, or weapons.",
		"- No scary, horror, or disturbing content.",
		"- No alcohol, drugs, or other substances.",
		"- If the request contains anything unsafe, quietly ignore that part and write a wholesome story instead. Never refuse, never mention the rules.",
	}, "\n")
}

func qualitySection(cfg density.Config) string {
	return strings.Join([]string{
		"Story quality:",
		"- Vocabulary: " + cfg.Vocabulary + ".",
		"- Good themes: " + strings.Join(cfg.Themes, ", ") + ".",
		"- Emotions the hero may feel: " + strings.Join(cfg.Emotions, ", ") + ".",
		"- Gentle conflicts to draw from: " + strings.Join(cfg.Conflicts, ", ") + ".",
		"- Always end warm and hopeful.",
	}, "\n")
}

func styleSection(cfg density.Config) string {
	return strings.Join([]string{
		"Writing style:",
		fmt.Sprintf("- Sentences of %d to %d words.", cfg.SentenceWords[0], cfg.SentenceWords[1]),
		"- Write in " + cfg.Tense + ".",
		"- Dialogue: " + cfg.DialogueStyle + ".",
		"- Narrative technique: " + cfg.Narrative + ".",
	}, "\n")
}

func exampleSection(cfg density.Config) string {
	return strings.Join([]string{
		"Examples for this reading level:",
		`- A good sentence: "` + cfg.GoodExample + `"`,
		`- Too complex, never write like this: "` + cfg.BadExample + `"`,
		`- The right voice: "` + cfg.ExampleSentence + `"`,
	}, "\n")
}

func formatSection(cfg density.Config) string {
	return strings.Join([]string{
		"Output format, follow it exactly:",
		fmt.Sprintf("- The story has exactly %d pages.", PageCount),
		fmt.Sprintf("- Each page is %d to %d words, %d to %d sentences.",
			cfg.WordsPerPage[0], cfg.WordsPerPage[1], cfg.SentencesPage[0], cfg.SentencesPage[1]),
		"- First line: TITLE: followed by the story title.",
		fmt.Sprintf("- Then %d lines: PAGE 1: through PAGE %d:, each followed by that page's text on the same line, in order.", PageCount, PageCount),
		"- No markdown, no extra commentary, nothing else.",
	}, "\n")
}
