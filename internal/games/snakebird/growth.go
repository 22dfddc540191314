package snakebird

import "github.com/vovakirdan/snakebird/internal/core"

// Follow moves a segment chain after its head.
//
// Each segment chases its predecessor's new position: if it is farther than
// dist away it is pulled along the connecting line until exactly dist remains,
// otherwise it stays put. Segments beyond len(prev) are seeded dist away from
// their predecessor in the direction behind (a unit vector).
// The result has exactly count segments.
func Follow(prev []core.Vec2, head core.Vec2, count int, dist float64, behind core.Vec2) []core.Vec2 {
	if count <= 0 {
		return nil
	}
	if behind.IsZero() {
		behind = core.V(-1, 0)
	}

	out := make([]core.Vec2, count)
	pred := head
	for i := range out {
		var p core.Vec2
		if i < len(prev) {
			p = prev[i]
			if d := p.Dist(pred); d > dist {
				p = pred.Add(p.Sub(pred).Scale(dist / d))
			}
		} else {
			p = pred.Add(behind.Scale(dist))
		}
		out[i] = p
		pred = p
	}
	return out
}
