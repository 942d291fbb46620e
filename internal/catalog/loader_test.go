package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

const cbseYAML = `id: cbse
name: Central Board of Secondary Education
country: India
subjects:
  - name: Science
    from_class: 1
    to_class: 8
  - name: Sanskrit
    from_class: 5
    to_class: 8
`

func TestLoader(t *testing.T) {
	dir := writeCatalog(t, map[string]string{
		"cbse.yaml": cbseYAML,
		"icse.yml":  "id: icse\nname: ICSE\ncountry: India\nsubjects:\n  - name: English\n    from_class: 1\n    to_class: 8\n",
		"notes.txt": "not a board file",
	})

	l, err := NewLoader(dir)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	if got := len(l.AllBoards()); got != 2 {
		t.Errorf("AllBoards() = %d boards, want 2", got)
	}

	b, ok := l.GetBoard("CBSE") // lookup is case-insensitive
	if !ok {
		t.Fatal("GetBoard(CBSE) not found")
	}
	if b.Name != "Central Board of Secondary Education" {
		t.Errorf("board name = %q", b.Name)
	}

	if l.DisplayName("cbse") != b.Name {
		t.Errorf("DisplayName(cbse) = %q", l.DisplayName("cbse"))
	}
	if l.DisplayName("unknown") != "unknown" {
		t.Errorf("DisplayName(unknown) = %q, want the id unchanged", l.DisplayName("unknown"))
	}
}

func TestHasSubject(t *testing.T) {
	dir := writeCatalog(t, map[string]string{"cbse.yaml": cbseYAML})
	l, err := NewLoader(dir)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	tests := []struct {
		board   string
		subject string
		class   int
		want    bool
	}{
		{"cbse", "Science", 3, true},
		{"cbse", "science", 3, true}, // subject match is case-insensitive
		{"cbse", "Sanskrit", 3, false},
		{"cbse", "Sanskrit", 5, true},
		{"cbse", "Science", 9, false},
		{"other", "Science", 3, false},
	}
	for _, tt := range tests {
		if got := l.HasSubject(tt.board, tt.subject, tt.class); got != tt.want {
			t.Errorf("HasSubject(%q, %q, %d) = %v, want %v", tt.board, tt.subject, tt.class, got, tt.want)
		}
	}
}

func TestLoader_SkipsInvalidYAML(t *testing.T) {
	dir := writeCatalog(t, map[string]string{
		"good.yaml": cbseYAML,
		"bad.yaml":  "id: [unclosed",
	})

	l, err := NewLoader(dir)
	if err != nil {
		t.Fatalf("NewLoader() error = %v, want invalid files skipped", err)
	}
	if got := len(l.AllBoards()); got != 1 {
		t.Errorf("AllBoards() = %d boards, want 1", got)
	}
}

func TestSubjectOffers(t *testing.T) {
	s := Subject{Name: "Science", FromClass: 2, ToClass: 6}
	for class, want := range map[int]bool{1: false, 2: true, 6: true, 7: false} {
		if got := s.Offers(class); got != want {
			t.Errorf("Offers(%d) = %v, want %v", class, got, want)
		}
	}
}
