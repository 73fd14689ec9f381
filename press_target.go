package tactile

import "strings"

// DefaultTargetNames lists the conventional names of a button's visible face,
// highest priority first. Matching is case-insensitive; the casing variants
// mirror what asset pipelines emit.
var DefaultTargetNames = []string{
	"Frontplate", "FrontPlate", "Front",
	"Backplate", "BackPlate",
	"AnimatedContent", "Icon", "RawImage", "Backglow",
	"Label", "Text",
}

// ResolveTarget picks the node whose scale a press animation should drive so
// that pressing a compound button scales its visible face rather than its
// whole hit area:
//
//  1. the nearest descendant whose name case-insensitively matches a name in
//     names, trying names in order;
//  2. otherwise the first graphic descendant in depth-first order;
//  3. otherwise root itself.
//
// Returns nil only when root is nil.
func ResolveTarget(root *Node, names []string) *Node {
	if root == nil {
		return nil
	}
	for _, name := range names {
		if n := findNearestNamed(root, name); n != nil {
			return n
		}
	}
	if n := findFirstGraphic(root); n != nil {
		return n
	}
	return root
}

// findNearestNamed searches root's descendants breadth-first, so the
// shallowest match wins and siblings keep child order.
func findNearestNamed(root *Node, name string) *Node {
	queue := append([]*Node(nil), root.children...)
	for i := 0; i < len(queue); i++ {
		n := queue[i]
		if strings.EqualFold(n.Name, name) {
			return n
		}
		queue = append(queue, n.children...)
	}
	return nil
}

// findFirstGraphic returns the first descendant of root, depth-first, that
// draws something.
func findFirstGraphic(root *Node) *Node {
	for _, child := range root.children {
		if child.IsGraphic() {
			return child
		}
		if n := findFirstGraphic(child); n != nil {
			return n
		}
	}
	return nil
}
