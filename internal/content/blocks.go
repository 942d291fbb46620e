package content

import (
	"fmt"
	"strings"
)

// EditorBlock is one block in the client-side rich-text editor's document
// model. Summaries are edited as a flat block list and reassembled into
// the tree afterwards.
type EditorBlock struct {
	Type  string `json:"type"` // "header" or "paragraph"
	Level int    `json:"level,omitempty"`
	Text  string `json:"text"`
}

const keyPointSep = "</b>: "

// SummaryToBlocks flattens a summary tree into editor blocks. Main topics
// become level-2 headers, sub-topics level-3 headers, and each key point a
// paragraph of the form <b>point</b>: description so the pair survives the
// round trip.
func SummaryToBlocks(s *SummaryStructure) []EditorBlock {
	blocks := []EditorBlock{{Type: "header", Level: 1, Text: s.ChapterName}}
	for _, mt := range s.MainTopics {
		blocks = append(blocks, EditorBlock{Type: "header", Level: 2, Text: mt.Name})
		for _, st := range mt.SubTopics {
			blocks = append(blocks, EditorBlock{Type: "header", Level: 3, Text: st.Name})
			for _, kp := range st.KeyPoints {
				blocks = append(blocks, EditorBlock{
					Type: "paragraph",
					Text: "<b>" + kp.Point + keyPointSep + kp.Description,
				})
			}
		}
	}
	return blocks
}

// BlocksToSummary rebuilds a summary tree from editor blocks, preserving
// topic and sub-topic ordering and every key point's point/description
// pair.
func BlocksToSummary(blocks []EditorBlock, classLevel int) (*SummaryStructure, error) {
	s := &SummaryStructure{ClassLevel: classLevel}
	for i, b := range blocks {
		switch {
		case b.Type == "header" && b.Level == 1:
			s.ChapterName = b.Text
		case b.Type == "header" && b.Level == 2:
			s.MainTopics = append(s.MainTopics, MainTopic{Name: b.Text})
		case b.Type == "header" && b.Level == 3:
			if len(s.MainTopics) == 0 {
				return nil, fmt.Errorf("block %d: sub-topic %q before any main topic", i, b.Text)
			}
			mt := &s.MainTopics[len(s.MainTopics)-1]
			mt.SubTopics = append(mt.SubTopics, SubTopic{Name: b.Text})
		case b.Type == "paragraph":
			if len(s.MainTopics) == 0 {
				return nil, fmt.Errorf("block %d: key point before any main topic", i)
			}
			mt := &s.MainTopics[len(s.MainTopics)-1]
			if len(mt.SubTopics) == 0 {
				return nil, fmt.Errorf("block %d: key point before any sub-topic", i)
			}
			st := &mt.SubTopics[len(mt.SubTopics)-1]
			st.KeyPoints = append(st.KeyPoints, parseKeyPoint(b.Text))
		default:
			return nil, fmt.Errorf("block %d: unsupported block type %q", i, b.Type)
		}
	}
	return s, nil
}

func parseKeyPoint(text string) KeyPoint {
	point, desc, found := strings.Cut(text, keyPointSep)
	if !found {
		return KeyPoint{Point: strings.TrimPrefix(text, "<b>")}
	}
	return KeyPoint{
		Point:       strings.TrimPrefix(point, "<b>"),
		Description: desc,
	}
}
