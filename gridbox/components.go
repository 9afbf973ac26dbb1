package gridbox

import "github.com/mlindqvist/voxelmatch/geom"

// ConnectedComponents groups every occupied (non-empty, non-Forbidden)
// voxel into 6-connected components, keyed by label id. A correctly built
// solution has exactly one component per label id, which makes this a
// check of Testable Property 2 (each block is 6-connected within its
// object). It is an introspection helper: no solver code calls it.
//
// Generalized from gridgraph.GridGraph.ConnectedComponents' 2D
// 4/8-connectivity walk over precomputed neighbor offsets to 3D
// 6-connectivity via geom.AllDirections.
//
// Complexity: O(D^3) time, O(D^3) memory.
func (gb *GridBox) ConnectedComponents() map[uint16][][]geom.Point {
	d := gb.Dims.D
	visited := make([]bool, gb.Dims.Volume())
	result := make(map[uint16][][]geom.Point)

	for x := 0; x < d; x++ {
		for y := 0; y < d; y++ {
			for z := 0; z < d; z++ {
				start := geom.Point{X: x, Y: y, Z: z}
				startIdx := gb.Dims.VolumeIndex(start)
				if visited[startIdx] {
					continue
				}
				id := gb.grid[startIdx]
				if id == 0 || id == Forbidden {
					visited[startIdx] = true
					continue
				}

				stack := []geom.Point{start}
				visited[startIdx] = true
				var comp []geom.Point
				for len(stack) > 0 {
					q := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					comp = append(comp, q)

					for _, dir := range geom.AllDirections {
						n, ok := gb.Dims.Next(q, dir)
						if !ok {
							continue
						}
						nIdx := gb.Dims.VolumeIndex(n)
						if visited[nIdx] || gb.grid[nIdx] != id {
							continue
						}
						visited[nIdx] = true
						stack = append(stack, n)
					}
				}
				result[id] = append(result[id], comp)
			}
		}
	}

	return result
}
