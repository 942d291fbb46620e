package content

import "fmt"

// MindMapNode is a node in the generated mind map tree. The tree is
// LLM-produced, so its depth and branching are only approximately bounded
// by the depth tables and must be validated.
type MindMapNode struct {
	ID        string        `json:"id"`
	Topic     string        `json:"topic"`
	Direction string        `json:"direction,omitempty"`
	Expanded  bool          `json:"expanded"`
	Children  []MindMapNode `json:"children,omitempty"`
}

// MindMapData is a rooted mind map in node-tree format, ready for an
// external renderer.
type MindMapData struct {
	Format string      `json:"format"`
	Root   MindMapNode `json:"nodeData"`
}

// NodeTreeFormat is the only format tag the renderer accepts.
const NodeTreeFormat = "node_tree"

// Validate checks the root is present and the tree stays within sane
// bounds for the renderer.
func (m *MindMapData) Validate() error {
	if m.Format != NodeTreeFormat {
		return fmt.Errorf("unsupported mind map format %q", m.Format)
	}
	if m.Root.Topic == "" {
		return fmt.Errorf("mind map root has no topic")
	}
	const maxDepth = 6
	if d := m.Root.depth(); d > maxDepth {
		return fmt.Errorf("mind map depth %d exceeds maximum %d", d, maxDepth)
	}
	return nil
}

// NodeCount returns the total number of nodes including the root.
func (m *MindMapData) NodeCount() int {
	return m.Root.count()
}

func (n *MindMapNode) count() int {
	total := 1
	for i := range n.Children {
		total += n.Children[i].count()
	}
	return total
}

func (n *MindMapNode) depth() int {
	max := 0
	for i := range n.Children {
		if d := n.Children[i].depth(); d > max {
			max = d
		}
	}
	return max + 1
}
