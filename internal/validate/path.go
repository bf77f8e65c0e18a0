package validate

import "strings"

// Path is the breadcrumb trail from the document root down to the node
// being checked. Push copies, so sibling branches of the parallel object
// fan-out never share backing storage.
type Path []string

// Root returns the path every validation starts from.
func Root() Path {
	return Path{"ROOT"}
}

// Push returns a new Path extended with the given segment.
func (p Path) Push(segment string) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, segment)
}

func (p Path) String() string {
	return strings.Join(p, " -> ")
}
