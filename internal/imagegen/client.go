// Package imagegen attaches illustrations to presentation slides through
// a public image-generation-by-URL service. One HTTP round trip per
// slide, no polling.
package imagegen

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/learnwithai/backend/internal/content"
)

const (
	defaultBaseURL = "https://image.pollinations.ai"
	defaultWidth   = 1280
	defaultHeight  = 720

	// Pause between per-slide requests. Politeness toward the image
	// service, not a correctness requirement.
	defaultDelay = 2 * time.Second
)

// Client generates slide images.
type Client struct {
	baseURL string
	client  *http.Client
	width   int
	height  int
	delay   time.Duration
	now     func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the image service base URL (for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithDelay sets the pause between slide requests.
func WithDelay(d time.Duration) Option {
	return func(c *Client) { c.delay = d }
}

// WithDimensions sets the generated image size.
func WithDimensions(width, height int) Option {
	return func(c *Client) {
		c.width = width
		c.height = height
	}
}

// NewClient creates an image client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
		width:   defaultWidth,
		height:  defaultHeight,
		delay:   defaultDelay,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Seed builds a uniqueness seed from the current time, the slide number
// and a random token, so regenerating a deck never reuses cached images.
func (c *Client) Seed(slideNumber int) string {
	token := make([]byte, 4)
	if _, err := rand.Read(token); err != nil {
		// Timestamp and slide number still vary the seed.
		return fmt.Sprintf("%d-%d", c.now().UnixMilli(), slideNumber)
	}
	return fmt.Sprintf("%d-%d-%s", c.now().UnixMilli(), slideNumber, hex.EncodeToString(token))
}

// BuildImageURL constructs the image service URL for a prompt and seed.
func (c *Client) BuildImageURL(promptText, seed string) string {
	q := url.Values{}
	q.Set("width", fmt.Sprint(c.width))
	q.Set("height", fmt.Sprint(c.height))
	q.Set("seed", seed)
	q.Set("nologo", "true")
	return fmt.Sprintf("%s/prompt/%s?%s", c.baseURL, url.PathEscape(promptText), q.Encode())
}

// GenerateSlideImage produces the image URL for one slide and verifies the
// service will serve it. Synchronous, single round trip.
func (c *Client) GenerateSlideImage(ctx context.Context, promptText string, slideNumber int, presentationID string) (string, error) {
	if promptText == "" {
		return "", fmt.Errorf("slide %d has no image prompt", slideNumber)
	}

	imageURL := c.BuildImageURL(promptText, c.Seed(slideNumber))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image service returned status %d", resp.StatusCode)
	}

	slog.Debug("slide image generated",
		"presentation", presentationID,
		"slide", slideNumber,
	)
	return imageURL, nil
}

// AttachImages generates an image for every slide with an image prompt,
// strictly one at a time with a pause between calls. A slide's HasImage
// flips only when its request succeeds; failures are logged and skipped so
// the deck stays usable. Progress is reported as a percentage after each
// slide.
func (c *Client) AttachImages(ctx context.Context, pres *content.LecturePresentation, onProgress func(pct int)) error {
	total := len(pres.Slides)
	allDone := true

	for i := range pres.Slides {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		slide := &pres.Slides[i]

		if slide.ImagePrompt != "" {
			imageURL, err := c.GenerateSlideImage(ctx, slide.ImagePrompt, slide.SlideNumber, pres.ID)
			if err != nil {
				allDone = false
				slog.Warn("slide image generation failed",
					"presentation", pres.ID,
					"slide", slide.SlideNumber,
					"error", err,
				)
			} else {
				slide.ImageURL = imageURL
				slide.HasImage = true
			}
		}

		if onProgress != nil {
			onProgress((i + 1) * 100 / total)
		}

		if i < total-1 && c.delay > 0 {
			select {
			case <-time.After(c.delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	pres.ImagesGenerated = allDone
	return nil
}
