package story

import (
	"context"
	"fmt"
	"time"
)

const defaultHero = "Alex"

const mockTitle = "The Magical Garden"

// mockPages is the fixed fallback story. Every page mentions the hero by
// name so a personalized request still feels personalized.
var mockPages = []string{
	"Once upon a time, in a valley kissed by golden sunlight, there lived a curious child named %[1]s. More than anything, %[1]s loved exploring the woods behind the little cottage at the edge of town.",
	"One bright morning, %[1]s stumbled upon a tiny gate hidden beneath a curtain of ivy. It creaked softly as %[1]s pushed it open and stepped into the most beautiful garden anyone had ever seen.",
	"Flowers of every color swayed and hummed soft melodies. A friendly ladybug landed on %[1]s's finger and whispered, \"Welcome, %[1]s! We've been waiting for someone with a kind heart.\"",
	"%[1]s spent the whole afternoon learning the garden's secrets: how the roses told jokes, how the butterflies painted rainbows in the sky, and how the pond reflected not just %[1]s's face, but %[1]s's dreams.",
	"As the sun began to set, painting everything in shades of pink and gold, %[1]s promised the garden to come back soon. The flowers waved their petals goodbye.",
	"And %[1]s did return, every single day, because %[1]s had learned the most wonderful secret of all: the most magical places are the ones you discover with an open heart. The End.",
}

// mockStory produces the deterministic placeholder story after a simulated
// generation delay. The delay respects ctx so an abandoned request stops
// immediately.
func (s *Service) mockStory(ctx context.Context, childName string) (title string, body []string, err error) {
	select {
	case <-time.After(s.mockDelay):
	case <-ctx.Done():
		return "", nil, ctx.Err()
	}

	hero := childName
	if hero == "" {
		hero = defaultHero
	}

	body = make([]string, len(mockPages))
	for i, p := range mockPages {
		body[i] = fmt.Sprintf(p, hero)
	}
	return mockTitle, body, nil
}
