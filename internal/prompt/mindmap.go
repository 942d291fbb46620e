package prompt

import (
	"fmt"
	"strings"
)

// MindMapParams parameterizes the mind map builder. SummaryJSON is the
// serialized summary the map is derived from.
type MindMapParams struct {
	ChapterName string
	ClassLevel  int
	Language    string
	SummaryJSON string
}

// BuildMindMapPrompt builds the tree-generation prompt. The map is a
// separate generation call over the summary JSON, not a mechanical
// transformation of it, so the model may regroup topics for readability.
func BuildMindMapPrompt(p MindMapParams) string {
	d := DepthForClass(p.ClassLevel)
	var b strings.Builder
	b.WriteString(languageRule(p.Language))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Convert the chapter summary below into a mind map for class %d students.\n\n", p.ClassLevel)
	fmt.Fprintf(&b, "The root node is the chapter %q. First-level branches are the main topics (about %d-%d of them), then sub-topics, then short key-point leaves. Keep node labels under 8 words.\n",
		p.ChapterName, d.MainTopics.Min, d.MainTopics.Max)
	b.WriteString("Alternate branch directions between \"right\" and \"left\" on the first level. Set \"expanded\": true on every node. Give every node a unique short \"id\".\n\n")
	b.WriteString("Use exactly this JSON shape:\n")
	fmt.Fprintf(&b, `{
  "format": "node_tree",
  "nodeData": {
    "id": "root",
    "topic": %q,
    "expanded": true,
    "children": [
      {"id": "m1", "topic": "...", "direction": "right", "expanded": true, "children": [...]}
    ]
  }
}`, p.ChapterName)
	b.WriteString("\n\nCHAPTER SUMMARY JSON:\n")
	b.WriteString(p.SummaryJSON)
	b.WriteString("\n\n")
	b.WriteString(jsonOnlyRule)
	b.WriteString("\n")
	b.WriteString(languageRule(p.Language))
	return b.String()
}
