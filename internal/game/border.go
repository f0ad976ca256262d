package game

import "github.com/iburimskiy/shatter-grid/internal/config"

const borderPathLen = 6

// borderPath returns the closed chase path around quad q: top-left, top
// middle, top-right, bottom-right, bottom middle, bottom-left.
func borderPath(q [4]Point) [borderPathLen]Point {
	return [borderPathLen]Point{
		q[0], midpoint(q[0], q[1]), q[1],
		q[2], midpoint(q[2], q[3]), q[3],
	}
}

// interp returns the point a fraction frac in [0, 1] of the way around path.
func interp(path []Point, frac float64) Point {
	n := len(path)
	index := frac * float64(n)
	i0 := int(index)
	t := index - float64(i0)
	i0 = wrapIndex(i0, n)
	i1 := wrapIndex(i0+1, n)
	return path[i0].Lerp(path[i1], t)
}

// chaseArc returns the polyline covering config.BorderCoverage of path,
// starting at phase: the interpolated start, each whole vertex up to the end
// vertex, and the interpolated end.
func chaseArc(path []Point, phase float64) []Point {
	n := len(path)
	end := wrapUnit(phase + config.BorderCoverage)

	out := make([]Point, 0, n+2)
	out = append(out, interp(path, phase))

	first := wrapIndex(int(phase*float64(n))+1, n)
	last := wrapIndex(int(end*float64(n)), n)
	for i, k := first, 0; k < n; i, k = wrapIndex(i+1, n), k+1 {
		out = append(out, path[i])
		if i == last {
			break
		}
	}
	return append(out, interp(path, end))
}
