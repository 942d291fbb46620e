package content

import "fmt"

// Slide count bounds enforced on every generated deck.
const (
	MinSlides = 8
	MaxSlides = 10
)

// PPTSlide is one slide in a lecture presentation. ImageURL and HasImage
// are filled in after the image endpoint succeeds for the slide; every
// other field is immutable once generated.
type PPTSlide struct {
	SlideNumber int    `json:"slideNumber"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ImagePrompt string `json:"imagePrompt,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	HasImage    bool   `json:"hasImage"`
}

// LecturePresentation is a slide deck generated for a single lecture.
type LecturePresentation struct {
	ID              string     `json:"id"`
	LectureNumber   int        `json:"lectureNumber"`
	Slides          []PPTSlide `json:"slides"`
	TotalSlides     int        `json:"totalSlides"`
	ImagesGenerated bool       `json:"imagesGenerated"`
}

// Validate enforces the strict 8-10 slide bound.
func (p *LecturePresentation) Validate() error {
	n := len(p.Slides)
	if n < MinSlides || n > MaxSlides {
		return fmt.Errorf("presentation has %d slides, expected between %d and %d", n, MinSlides, MaxSlides)
	}
	if p.TotalSlides != n {
		return fmt.Errorf("totalSlides %d does not match %d slides", p.TotalSlides, n)
	}
	return nil
}
