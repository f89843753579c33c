// Package illustrate requests story illustrations from a self-hosted
// image-generation endpoint. The endpoint stores the image remotely and
// returns a durable public URL; no image bytes pass through this service.
package illustrate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"fable/pkg/flight"
	"fable/pkg/inference"
)

const (
	imageSize      = 1024
	defaultTimeout = 60 * time.Second
)

// Client talks to the image endpoint. Identical prompts are coalesced and
// cached through a flight cache; the returned URLs never expire, so reuse is
// safe.
type Client struct {
	endpoint string
	http     *http.Client
	urls     *flight.Cache[string, string]
}

type generateRequest struct {
	Prompt string `json:"prompt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type generateResponse struct {
	URL string `json:"url"`
}

func New(endpoint string) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: defaultTimeout},
	}
	c.urls = flight.New(c.request)
	c.urls.Expiry(0)
	return c
}

// Generate builds the illustration prompt for a story and returns the hosted
// image URL.
func (c *Client) Generate(ctx context.Context, title, preview string) (string, error) {
	return c.urls.Get(ctx, illustrationPrompt(title, preview))
}

// illustrationPrompt embeds the title and a short body preview into the fixed
// picture-book style template.
func illustrationPrompt(title, preview string) string {
	return "Children's book illustration, watercolor style, vibrant warm colors, no text in the image. " +
		fmt.Sprintf("Scene: %q - %s. ", title, preview) +
		"Soft lighting, dreamy atmosphere, suitable for young children."
}

func (c *Client) request(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Prompt: prompt, Width: imageSize, Height: imageSize})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debug("requesting illustration", "endpoint", c.endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		return "", &inference.ProviderError{Provider: "z-image", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &inference.ProviderError{
			Provider:   "z-image",
			StatusCode: resp.StatusCode,
			Body:       string(b),
		}
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &inference.ProviderError{Provider: "z-image", Err: fmt.Errorf("decoding response: %w", err)}
	}
	if out.URL == "" {
		return "", &inference.ProviderError{Provider: "z-image", Err: fmt.Errorf("response missing url")}
	}
	return out.URL, nil
}
