package imagegen

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/learnwithai/backend/internal/content"
)

func TestBuildImageURL(t *testing.T) {
	c := NewClient(WithBaseURL("http://img.test"), WithDimensions(640, 360))

	got := c.BuildImageURL("a friendly classroom drawing", "seed-1")
	if !strings.HasPrefix(got, "http://img.test/prompt/") {
		t.Errorf("BuildImageURL() = %q", got)
	}
	for _, want := range []string{"width=640", "height=360", "seed=seed-1", "nologo=true"} {
		if !strings.Contains(got, want) {
			t.Errorf("BuildImageURL() = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got, " ") {
		t.Errorf("prompt not escaped in %q", got)
	}
}

func TestSeed_Unique(t *testing.T) {
	c := NewClient()
	if c.Seed(1) == c.Seed(1) {
		t.Error("two seeds for the same slide are identical")
	}
}

func TestGenerateSlideImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithDelay(0))
	url, err := c.GenerateSlideImage(t.Context(), "a tree", 3, "pres-1")
	if err != nil {
		t.Fatalf("GenerateSlideImage() error = %v", err)
	}
	if !strings.HasPrefix(url, srv.URL) {
		t.Errorf("url = %q", url)
	}

	if _, err := c.GenerateSlideImage(t.Context(), "", 3, "pres-1"); err == nil {
		t.Error("empty prompt accepted")
	}
}

func TestGenerateSlideImage_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithDelay(0))
	if _, err := c.GenerateSlideImage(t.Context(), "a tree", 1, "p"); err == nil {
		t.Error("GenerateSlideImage() error = nil on 502")
	}
}

func deck(n int) *content.LecturePresentation {
	slides := make([]content.PPTSlide, n)
	for i := range slides {
		slides[i] = content.PPTSlide{
			SlideNumber: i + 1,
			Title:       "Slide",
			Content:     "a",
			ImagePrompt: "a drawing",
		}
	}
	return &content.LecturePresentation{ID: "pres-1", Slides: slides, TotalSlides: n}
}

func TestAttachImages(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithDelay(0))
	pres := deck(4)

	var progress []int
	err := c.AttachImages(t.Context(), pres, func(pct int) { progress = append(progress, pct) })
	if err != nil {
		t.Fatalf("AttachImages() error = %v", err)
	}
	if got := calls.Load(); got != 4 {
		t.Errorf("image requests = %d, want 4", got)
	}
	for i, slide := range pres.Slides {
		if !slide.HasImage || slide.ImageURL == "" {
			t.Errorf("slide %d has no image after success", i+1)
		}
	}
	wantProgress := []int{25, 50, 75, 100}
	if len(progress) != 4 {
		t.Fatalf("progress callbacks = %v", progress)
	}
	for i := range wantProgress {
		if progress[i] != wantProgress[i] {
			t.Errorf("progress[%d] = %d, want %d", i, progress[i], wantProgress[i])
		}
	}
	if !pres.ImagesGenerated {
		t.Error("ImagesGenerated = false after full success")
	}
}

func TestAttachImages_PartialFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Fail the second request only.
		if calls.Add(1) == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithDelay(0))
	pres := deck(3)

	if err := c.AttachImages(t.Context(), pres, nil); err != nil {
		t.Fatalf("AttachImages() error = %v, want nil on per-slide failure", err)
	}
	if pres.Slides[0].HasImage != true || pres.Slides[1].HasImage != false || pres.Slides[2].HasImage != true {
		t.Errorf("HasImage flags = %v %v %v, want true false true",
			pres.Slides[0].HasImage, pres.Slides[1].HasImage, pres.Slides[2].HasImage)
	}
	if pres.ImagesGenerated {
		t.Error("ImagesGenerated = true despite a failed slide")
	}
}

func TestAttachImages_SkipsSlidesWithoutPrompt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithDelay(0))
	pres := deck(3)
	pres.Slides[1].ImagePrompt = ""

	if err := c.AttachImages(t.Context(), pres, nil); err != nil {
		t.Fatalf("AttachImages() error = %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("image requests = %d, want 2 (promptless slide skipped)", got)
	}
	if pres.Slides[1].HasImage {
		t.Error("promptless slide marked as having an image")
	}
	// A skipped slide is not a failure.
	if !pres.ImagesGenerated {
		t.Error("ImagesGenerated = false despite only a promptless skip")
	}
}
