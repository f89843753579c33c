package safety

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"fable/pkg/utils"
)

// DefaultPrompt replaces a prompt that has nothing left after filtering.
const DefaultPrompt = "a magical adventure with friendship and kindness"

// minUsableLen is the shortest filtered prompt worth sending upstream.
const minUsableLen = 5

// One pattern per category. Matches are deleted in place; the prompt as a
// whole is never rejected.
var filters = []*regexp.Regexp{
	// sexual content
	regexp.MustCompile(`(?i)\b(?:sex|sexy|sexual|naked|nude|porn\w*|erotic\w*)\b`),
	// violence and death
	regexp.MustCompile(`(?i)\b(?:kill\w*|murder\w*|dead|death|die|dies|dying|blood\w*|gore|gory|violen\w*|stab\w*|shoot\w*|fight\w*|war)\b`),
	// abuse
	regexp.MustCompile(`(?i)\b(?:abuse\w*|torture\w*|beat(?:s|en|ing)?|hurt\w*|slap\w*|punch\w*|kidnap\w*)\b`),
	// substances
	regexp.MustCompile(`(?i)\b(?:drug\w*|alcohol\w*|drunk|beer|wine|vodka|cigarette\w*|smoking|vape|vaping)\b`),
	// weapons
	regexp.MustCompile(`(?i)\b(?:gun\w*|knife|knives|pistol\w*|rifle\w*|sword\w*|bomb\w*|explosive\w*|grenade\w*)\b`),
	// fear and horror
	regexp.MustCompile(`(?i)\b(?:horror|terrifying|nightmare\w*|demon\w*|zombie\w*|ghost\w*|haunted|creepy|scary|evil)\b`),
	// profanity and insults
	regexp.MustCompile(`(?i)\b(?:damn\w*|hell|crap\w*|stupid|idiot\w*|moron\w*|hate\w*|ugly|loser\w*)\b`),
}

var spaceRX = regexp.MustCompile(`\s{2,}`)

// Sanitize removes unsafe terms from a raw user prompt. It is the single
// safety gate before any text reaches a provider; no provider-side moderation
// is assumed. Total and deterministic: every input yields a usable prompt.
func Sanitize(raw string) string {
	cleaned := raw
	for _, rx := range filters {
		cleaned = rx.ReplaceAllString(cleaned, "")
	}
	cleaned = strings.TrimSpace(spaceRX.ReplaceAllString(cleaned, " "))

	if removed := removedWords(raw, cleaned); len(removed) > 0 {
		log.Debug("sanitized prompt", "removed", removed)
	}

	if len(cleaned) < minUsableLen {
		log.Info("prompt unusable after filtering, using default")
		return DefaultPrompt
	}
	return cleaned
}

func removedWords(before, after string) []string {
	var out []string
	for _, d := range utils.DiffWords(before, after) {
		if d.Op < 0 && strings.TrimSpace(d.Text) != "" {
			out = append(out, d.Text)
		}
	}
	return out
}
