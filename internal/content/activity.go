package content

import "fmt"

// ActivityType distinguishes solo from group activities.
type ActivityType string

const (
	SoloActivity  ActivityType = "solo"
	GroupActivity ActivityType = "group"
)

// ActivityInstructions is the setup/steps/reflection block of an activity.
type ActivityInstructions struct {
	Setup      string   `json:"setup"`
	Steps      []string `json:"steps"`
	Reflection string   `json:"reflection"`
}

// SELSTEMActivity is a social-emotional-learning or STEM classroom
// activity generated for a class level and subject.
type SELSTEMActivity struct {
	ID                  string               `json:"id"`
	ClassLevel          int                  `json:"classLevel"`
	Subject             string               `json:"subject"`
	ActivityType        ActivityType         `json:"activityType"`
	Title               string               `json:"title"`
	SELFocus            []string             `json:"selFocus"`
	RealWorldConnection string               `json:"realWorldConnection"`
	Materials           []string             `json:"materials"`
	Duration            string               `json:"duration"`
	Instructions        ActivityInstructions `json:"instructions"`
	LearningObjectives  []string             `json:"learningObjectives"`
	AssessmentCriteria  []string             `json:"assessmentCriteria"`
	Extensions          []string             `json:"extensions"`
}

// Validate checks the fields the activity display consumes unconditionally.
func (a *SELSTEMActivity) Validate() error {
	if a.ActivityType != SoloActivity && a.ActivityType != GroupActivity {
		return fmt.Errorf("activity type must be %q or %q, got %q", SoloActivity, GroupActivity, a.ActivityType)
	}
	if a.Title == "" {
		return fmt.Errorf("activity has no title")
	}
	if len(a.Instructions.Steps) == 0 {
		return fmt.Errorf("activity has no instruction steps")
	}
	return nil
}
