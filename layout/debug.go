package layout

import "fmt"

// DebugGraph is a small adjacency snapshot of a Layout's still-available
// steps, for inspection/tooling only — never consulted by the Tracer.
// Vertex IDs use the "x,y" format.
type DebugGraph struct {
	// Adjacency maps a vertex ID to the vertex IDs reachable by one
	// still-available step.
	Adjacency map[string][]string
}

func vertexID(p Point) string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// DebugGraph walks every currently-available step and records it as a
// directed adjacency edge, letting a caller dump an unfinished or
// completed trace for visual inspection.
func (l *Layout) DebugGraph() *DebugGraph {
	dg := &DebugGraph{Adjacency: make(map[string][]string)}
	total := l.numHPos + l.numVPos
	for pos := 0; pos < total; pos++ {
		if l.avail[pos/64]&(1<<uint(pos%64)) == 0 {
			continue
		}
		fwd := 2 * pos
		s, e, _ := l.endpoints(fwd)
		sid, eid := vertexID(s), vertexID(e)
		dg.Adjacency[sid] = append(dg.Adjacency[sid], eid)
		dg.Adjacency[eid] = append(dg.Adjacency[eid], sid)
	}
	return dg
}
