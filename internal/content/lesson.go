package content

import "fmt"

// TeachPackCards is the six-card teaching scaffold attached to every
// lecture. Display code consumes all six fields unconditionally, so the
// lesson pipeline backfills any the model omitted with empty strings.
type TeachPackCards struct {
	TodaysPlan string `json:"todaysPlan"`
	Start      string `json:"start"`
	Explain    string `json:"explain"`
	Do         string `json:"do"`
	Talk       string `json:"talk"`
	Check      string `json:"check"`
}

// Lecture is a single session within a lesson plan.
type Lecture struct {
	LectureNumber     int            `json:"lectureNumber"`
	Title             string         `json:"title"`
	Duration          int            `json:"duration"`
	Topics            []string       `json:"topics"`
	Complexity        string         `json:"complexity"`
	HasRecap          bool           `json:"hasRecap"`
	RecapContent      string         `json:"recapContent,omitempty"`
	TeachPackCards    TeachPackCards `json:"teachPackCards"`
	IsActivityLecture bool           `json:"isActivityLecture"`
}

// LessonPlan is a multi-lecture plan for teaching one topic.
type LessonPlan struct {
	ID            string    `json:"id"`
	Board         string    `json:"board"`
	ClassLevel    int       `json:"classLevel"`
	Subject       string    `json:"subject"`
	Topic         string    `json:"topic"`
	TotalMinutes  int       `json:"totalMinutes"`
	TotalLectures int       `json:"totalLectures"`
	Lectures      []Lecture `json:"lectures"`
	Homework      string    `json:"homework"`
	ParentMessage string    `json:"parentMessage"`
	TeachingPace  string    `json:"teachingPace"`
	Language      string    `json:"language"`
}

// Validate enforces the lecture sequencing rules: the requested lecture
// count, no recap on lecture one, recaps on the middle lectures, and the
// final lecture flagged as the activity lecture.
func (p *LessonPlan) Validate() error {
	if len(p.Lectures) != p.TotalLectures {
		return fmt.Errorf("plan has %d lectures, expected %d", len(p.Lectures), p.TotalLectures)
	}
	for i := range p.Lectures {
		lec := &p.Lectures[i]
		if lec.LectureNumber != i+1 {
			return fmt.Errorf("lecture %d numbered %d", i+1, lec.LectureNumber)
		}
		if i == 0 && lec.HasRecap {
			return fmt.Errorf("lecture 1 must not have a recap")
		}
		if i > 0 && !lec.HasRecap {
			return fmt.Errorf("lecture %d must have a recap", i+1)
		}
	}
	if n := len(p.Lectures); n > 0 && !p.Lectures[n-1].IsActivityLecture {
		return fmt.Errorf("final lecture must be the activity lecture")
	}
	return nil
}
