// Package story orchestrates the generation pipeline: prompt enhancement,
// sanitization, text generation, page parsing, optional illustration, and
// final assembly. It is the sole error boundary for generation; every
// provider failure degrades to a usable story.
package story

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/segmentio/ksuid"

	"fable/pkg/illustrate"
	"fable/pkg/inference"
	"fable/pkg/pages"
	"fable/pkg/prompt"
	"fable/pkg/safety"
	"fable/pkg/utils"
)

// Story is the persisted record handed to the store and the mobile client.
// Stories are immutable once created. Pages is never empty.
type Story struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Pages           []string  `json:"pages"`
	ChildPhotoURI   string    `json:"childPhotoUri,omitzero"`
	IllustrationURL string    `json:"illustrationUrl,omitzero"`
	Prompt          string    `json:"prompt"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Request is one story-creation call. ChildAge 0 means unspecified and
// defaults to 5.
type Request struct {
	ChildPhotoURI string `json:"childPhotoUri"`
	Prompt        string `json:"prompt"`
	ChildName     string `json:"childName,omitzero"`
	ChildAge      int    `json:"childAge,omitzero"`
}

const (
	defaultAge     = 5
	previewLen     = 150
	defaultLatency = 2800 * time.Millisecond
)

// Service drives story creation. Both providers are optional: a nil text
// provider forces the mock path, a nil image client just disables
// illustrations. Safe for concurrent use; each call is independent.
type Service struct {
	text      inference.Inferencer
	images    *illustrate.Client
	mockDelay time.Duration
}

func NewService(text inference.Inferencer, images *illustrate.Client) *Service {
	return &Service{
		text:      text,
		images:    images,
		mockDelay: defaultLatency,
	}
}

// SetMockDelay overrides the simulated generation latency of the mock path.
func (s *Service) SetMockDelay(d time.Duration) {
	s.mockDelay = d
}

// CreateStory always returns a usable story: the live pipeline on success,
// the deterministic mock on any failure or when no text provider is
// configured. The only error it returns is ctx cancellation, in which case no
// story is emitted.
func (s *Service) CreateStory(ctx context.Context, req Request) (Story, error) {
	if req.ChildAge == 0 {
		req.ChildAge = defaultAge
	}
	enhanced := prompt.Enhance(req.Prompt, req.ChildName)

	if s.text != nil {
		res, err := s.generateLive(ctx, enhanced, req.ChildAge)
		if err == nil {
			st := s.assemble(req, enhanced, res.Title, res.Pages)
			if err := s.illustrateStory(ctx, &st); err != nil {
				return Story{}, err
			}
			return st, nil
		}
		if ctx.Err() != nil {
			return Story{}, ctx.Err()
		}
		log.Error("live generation failed, falling back to mock", "error", err)
	}

	title, body, err := s.mockStory(ctx, req.ChildName)
	if err != nil {
		return Story{}, err
	}
	return s.assemble(req, enhanced, title, body), nil
}

// generateLive runs the sanitize, compile, infer, parse chain. Any failure
// abandons the whole attempt; no partial live result is kept.
func (s *Service) generateLive(ctx context.Context, enhanced string, age int) (pages.Result, error) {
	safe := safety.Sanitize(enhanced)
	instructions := prompt.BuildInstructions(age)

	raw, err := s.text.Infer(ctx, instructions, safe)
	if err != nil {
		return pages.Result{}, err
	}

	res := pages.Parse(raw)
	if res.Degraded {
		log.Warn("provider output degraded to single page", "title", res.Title)
	}
	return res, nil
}

// illustrateStory is non-fatal: a failed or unconfigured image endpoint
// leaves the story text-only. Cancellation is the exception and propagates,
// so an abandoned request never emits a story.
func (s *Service) illustrateStory(ctx context.Context, st *Story) error {
	if s.images == nil {
		return nil
	}
	url, err := s.images.Generate(ctx, st.Title, utils.LimitStr(st.Pages[0], previewLen))
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn("illustration failed, continuing without image", "error", err)
		return nil
	}
	st.IllustrationURL = url
	return nil
}

func (s *Service) assemble(req Request, enhanced, title string, body []string) Story {
	return Story{
		ID:            NewID(),
		Title:         title,
		Pages:         body,
		ChildPhotoURI: req.ChildPhotoURI,
		Prompt:        enhanced,
		CreatedAt:     time.Now().UTC(),
	}
}

// NewID returns a globally unique story id derived from time and randomness.
func NewID() string {
	return "story_" + ksuid.New().String()
}
