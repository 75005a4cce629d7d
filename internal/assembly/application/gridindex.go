package application

import (
	"math"
	"sort"

	assembly "arx-bim/internal/assembly/domain"
)

// cellKey addresses one bucket of a uniform grid.
type cellKey struct {
	x, y int
}

// centroidGrid buckets elements by centroid into square cells sized to the
// query radius, so a radius query only inspects the 3x3 cell block around
// the probe instead of every element. Elements without a centroid are not
// indexed; they are infinitely far from everything.
type centroidGrid struct {
	cellSize float64
	cells    map[cellKey][]int
	elements []*assembly.Element
}

func newCentroidGrid(elements []*assembly.Element, cellSize float64) *centroidGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	g := &centroidGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
		elements: elements,
	}
	for i, element := range elements {
		if element == nil || !element.Geometry.HasCentroid() {
			continue
		}
		key := g.keyFor(element.Geometry.Centroid[0], element.Geometry.Centroid[1])
		g.cells[key] = append(g.cells[key], i)
	}
	return g
}

func (g *centroidGrid) keyFor(x, y float64) cellKey {
	return cellKey{
		x: int(math.Floor(x / g.cellSize)),
		y: int(math.Floor(y / g.cellSize)),
	}
}

// Nearby returns the indexes of elements whose centroid lies within radius
// of the probe element's centroid, excluding the probe itself. Results are
// sorted by index so callers iterate deterministically.
func (g *centroidGrid) Nearby(probe int, radius float64) []int {
	element := g.elements[probe]
	if element == nil || !element.Geometry.HasCentroid() {
		return nil
	}
	cx, cy := element.Geometry.Centroid[0], element.Geometry.Centroid[1]
	reach := int(math.Ceil(radius / g.cellSize))
	center := g.keyFor(cx, cy)

	var out []int
	for dx := -reach; dx <= reach; dx++ {
		for dy := -reach; dy <= reach; dy++ {
			for _, idx := range g.cells[cellKey{x: center.x + dx, y: center.y + dy}] {
				if idx == probe {
					continue
				}
				dist, ok := assembly.CentroidDistance(element.Geometry, g.elements[idx].Geometry)
				if ok && dist <= radius {
					out = append(out, idx)
				}
			}
		}
	}
	sort.Ints(out)
	return out
}

// boundsGrid buckets elements by the cells their coordinate extents cover,
// turning the all-pairs overlap scan into a scan of co-located candidates.
type boundsGrid struct {
	cellSize float64
	cells    map[cellKey][]int
	bounds   []assembly.BoundingBox
	present  []bool
}

func newBoundsGrid(elements []*assembly.Element, cellSize float64) *boundsGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	g := &boundsGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]int),
		bounds:   make([]assembly.BoundingBox, len(elements)),
		present:  make([]bool, len(elements)),
	}
	for i, element := range elements {
		if element == nil {
			continue
		}
		box, ok := element.Geometry.Bounds()
		if !ok {
			continue
		}
		g.bounds[i] = box
		g.present[i] = true
		g.eachCell(box, func(key cellKey) {
			g.cells[key] = append(g.cells[key], i)
		})
	}
	return g
}

func (g *boundsGrid) eachCell(box assembly.BoundingBox, visit func(cellKey)) {
	minX := int(math.Floor(box.MinX / g.cellSize))
	maxX := int(math.Floor(box.MaxX / g.cellSize))
	minY := int(math.Floor(box.MinY / g.cellSize))
	maxY := int(math.Floor(box.MaxY / g.cellSize))
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			visit(cellKey{x: x, y: y})
		}
	}
}

// OverlapPairs returns every unordered index pair whose coordinate extents
// overlap, sorted lexicographically. A pair sharing several cells is
// reported once.
func (g *boundsGrid) OverlapPairs() [][2]int {
	seen := make(map[[2]int]struct{})
	for _, bucket := range g.cells {
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				a, b := bucket[i], bucket[j]
				if a > b {
					a, b = b, a
				}
				pair := [2]int{a, b}
				if _, dup := seen[pair]; dup {
					continue
				}
				if g.bounds[a].Intersects(g.bounds[b]) {
					seen[pair] = struct{}{}
				}
			}
		}
	}
	pairs := make([][2]int, 0, len(seen))
	for pair := range seen {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	return pairs
}
