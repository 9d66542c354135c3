// SPDX-License-Identifier: MIT
// Package label defines the Label value type: a partial path's state during
// a directional labeling search, together with its extension, feasibility,
// dominance, and merge operations.
//
// A Label is conceptually immutable after creation: Extend and Merge always
// return a new Label rather than mutating the receiver.
package label

import "github.com/katalvlaran/rcspy/core"

// Direction selects which half of the bidirectional search a Label belongs
// to, which in turn selects the REF method used to extend it and the
// comparison sense used by Dominates.
type Direction int

const (
	// Forward labels grow from Source toward the current node.
	Forward Direction = iota
	// Backward labels grow from Sink toward the current node.
	Backward
)

// REF is the subset of ref.REF that Label itself depends on; declared here
// to avoid an import of package ref from package label's core types (Extend
// and Merge both accept a ref.REF value that satisfies this interface).
type REF interface {
	Forward(res []float64, arc *core.Arc) []float64
	Backward(res []float64, arc *core.Arc) []float64
	Join(fwdRes, bwdRes []float64, arc *core.Arc, maxRes []float64) []float64
}

// Label is a partial path's state: accumulated cost, current endpoint
// vertex, accumulated resource vector, and the ordered path of vertices
// visited so far. In elementary mode, visited additionally tracks path
// membership for O(1) subset tests.
type Label struct {
	Weight float64
	Node   string
	Res    []float64
	Path   []string

	visited map[string]struct{} // nil unless built in elementary mode
}

// NewForward returns the initial forward label: Label(0, source, [0,...,0], [source]).
func NewForward(source string, resources int, elementary bool) *Label {
	l := &Label{
		Weight: 0,
		Node:   source,
		Res:    make([]float64, resources),
		Path:   []string{source},
	}
	if elementary {
		l.visited = map[string]struct{}{source: {}}
	}

	return l
}

// NewBackward returns the initial backward label:
// Label(0, sink, [max_res[0], 0,...,0], [sink]).
func NewBackward(sink string, maxRes []float64, elementary bool) *Label {
	res := make([]float64, len(maxRes))
	res[0] = maxRes[0]
	l := &Label{
		Weight: 0,
		Node:   sink,
		Res:    res,
		Path:   []string{sink},
	}
	if elementary {
		l.visited = map[string]struct{}{sink: {}}
	}

	return l
}

// Visited reports whether node appears on l's path. Outside elementary mode
// this always reports false, since non-elementary labels don't track it.
func (l *Label) Visited(node string) bool {
	if l.visited == nil {
		return false
	}
	_, ok := l.visited[node]

	return ok
}

// subsetOf reports whether every vertex visited by l is also visited by
// other; used by Dominates to honor the elementary-mode comparability rule.
func (l *Label) subsetOf(other *Label) bool {
	if l.visited == nil || other.visited == nil {
		return true
	}
	for v := range l.visited {
		if _, ok := other.visited[v]; !ok {
			return false
		}
	}

	return true
}

// Extend produces the child label reached by traversing arc in direction
// dir, or (nil, false) when the extension is rejected: the new vertex
// already appears in an elementary-mode path, or the extension makes zero
// progress (same vertex, unchanged resource vector).
func (l *Label) Extend(arc *core.Arc, dir Direction, r REF, elementary bool) (*Label, bool) {
	var newNode string
	var newRes []float64
	if dir == Forward {
		newNode = arc.Head
		newRes = r.Forward(l.Res, arc)
	} else {
		newNode = arc.Tail
		newRes = r.Backward(l.Res, arc)
	}

	if elementary && l.Visited(newNode) {
		return nil, false
	}
	if newNode == l.Node && resEqual(newRes, l.Res) {
		return nil, false
	}

	path := make([]string, len(l.Path)+1)
	copy(path, l.Path)
	path[len(l.Path)] = newNode

	child := &Label{
		Weight: l.Weight + arc.Cost,
		Node:   newNode,
		Res:    newRes,
		Path:   path,
	}
	if elementary {
		child.visited = make(map[string]struct{}, len(l.visited)+1)
		for v := range l.visited {
			child.visited[v] = struct{}{}
		}
		child.visited[newNode] = struct{}{}
	}

	return child, true
}

// Feasible reports whether l's resource vector lies within [minRes,maxRes]
// componentwise.
func (l *Label) Feasible(minRes, maxRes []float64) bool {
	for i, v := range l.Res {
		if v < minRes[i] || v > maxRes[i] {
			return false
		}
	}

	return true
}

// Dominates reports whether l dominates other under dir's comparison sense.
// Both labels must share the same Node; in elementary mode, comparison is
// only valid when l's visited set is a subset of other's. A false result
// with ok=false means the labels are not comparable (different vertex);
// callers must not treat that as "does not dominate".
func (l *Label) Dominates(other *Label, dir Direction) (dominates bool, ok bool) {
	if l.Node != other.Node {
		return false, false
	}
	if !l.subsetOf(other) {
		return false, true
	}

	if l.Weight > other.Weight {
		return false, true
	}
	strict := l.Weight < other.Weight

	for i := range l.Res {
		switch dir {
		case Forward:
			if l.Res[i] > other.Res[i] {
				return false, true
			}
			if l.Res[i] < other.Res[i] {
				strict = true
			}
		case Backward:
			if l.Res[i] < other.Res[i] {
				return false, true
			}
			if l.Res[i] > other.Res[i] {
				strict = true
			}
		}
	}

	return strict, true
}

// Merge fuses a forward label l and a backward label other across bridging
// arc (with l.Node == arc.Tail and other.Node == arc.Head) into a single
// Source->Sink label, delegating resource combination to r.Join. A backward
// label's Path runs Sink-first (in visiting order), so it is appended in
// reverse.
func (l *Label) Merge(other *Label, bridge *core.Arc, r REF, maxRes []float64) *Label {
	path := make([]string, 0, len(l.Path)+len(other.Path))
	path = append(path, l.Path...)
	for i := len(other.Path) - 1; i >= 0; i-- {
		path = append(path, other.Path[i])
	}

	return &Label{
		Weight: l.Weight + bridge.Cost + other.Weight,
		Node:   other.Node,
		Res:    r.Join(l.Res, other.Res, bridge, maxRes),
		Path:   path,
	}
}

func resEqual(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
