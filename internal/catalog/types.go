package catalog

// Board is an education board loaded from YAML (e.g. CBSE, ICSE, a state
// board).
type Board struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Country  string    `yaml:"country"`
	Subjects []Subject `yaml:"subjects"`
}

// Subject is a subject offered by a board across a class range.
type Subject struct {
	Name      string `yaml:"name"`
	FromClass int    `yaml:"from_class"`
	ToClass   int    `yaml:"to_class"`
}

// Offers reports whether the subject is taught at the class level.
func (s Subject) Offers(classLevel int) bool {
	return classLevel >= s.FromClass && classLevel <= s.ToClass
}
