package generation

import (
	"math/rand"
	"time"

	"ebiten-tanks/components"
	"ebiten-tanks/geom"
)

// WallSpec describes one wall segment to spawn
type WallSpec struct {
	Center geom.Vec2
	Size   geom.Vec2
	Type   components.WallType
	// Direction is set on border walls only; interior walls resolve it from
	// the side a tank touches.
	Direction *components.WallDirection
}

// ArenaLayout is a generated set of walls over a grid of cells
type ArenaLayout struct {
	Cols, Rows int
	CellSize   float64
	Seed       int64
	Walls      []WallSpec

	// blocked edges, used for connectivity checks
	hEdges [][]bool // [row][col]: wall on top edge of cell (col,row), rows 0..Rows-2
	vEdges [][]bool // [row][col]: wall on right edge of cell (col,row), cols 0..Cols-2
}

// Width returns the arena width in world units
func (l *ArenaLayout) Width() float64 { return float64(l.Cols) * l.CellSize }

// Height returns the arena height in world units
func (l *ArenaLayout) Height() float64 { return float64(l.Rows) * l.CellSize }

// CellCenter returns the world position of a cell's centre
func (l *ArenaLayout) CellCenter(col, row int) geom.Vec2 {
	return geom.Vec2{(float64(col) + 0.5) * l.CellSize, (float64(row) + 0.5) * l.CellSize}
}

// ArenaGenerator handles procedural generation of arena layouts
type ArenaGenerator struct {
	rng  *rand.Rand
	seed int64
}

// NewArenaGenerator creates a new arena generator seeded from the clock
func NewArenaGenerator() *ArenaGenerator {
	g := &ArenaGenerator{}
	g.SetSeed(time.Now().UnixNano())
	return g
}

// SetSeed allows setting a specific seed for reproducible arenas
func (g *ArenaGenerator) SetSeed(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}

// Seed returns the seed the generator was last reset with
func (g *ArenaGenerator) Seed() int64 {
	return g.seed
}

// Generate builds a walled arena of cols x rows cells. Each interior cell edge
// gets a wall with probability density, as long as every cell stays reachable.
func (g *ArenaGenerator) Generate(cols, rows int, cellSize, thickness, density float64) *ArenaLayout {
	layout := &ArenaLayout{
		Cols:     cols,
		Rows:     rows,
		CellSize: cellSize,
		Seed:     g.seed,
		hEdges:   make([][]bool, rows),
		vEdges:   make([][]bool, rows),
	}
	for r := 0; r < rows; r++ {
		layout.hEdges[r] = make([]bool, cols)
		layout.vEdges[r] = make([]bool, cols)
	}

	g.addBorder(layout, thickness)

	// Candidate interior edges, visited in random order
	type edge struct {
		horizontal bool
		col, row   int
	}
	var edges []edge
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols; c++ {
			edges = append(edges, edge{true, c, r})
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols-1; c++ {
			edges = append(edges, edge{false, c, r})
		}
	}
	g.rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	for _, e := range edges {
		if g.rng.Float64() >= density {
			continue
		}

		if e.horizontal {
			layout.hEdges[e.row][e.col] = true
		} else {
			layout.vEdges[e.row][e.col] = true
		}

		if !layout.connected() {
			// Undo: this wall would seal off part of the arena
			if e.horizontal {
				layout.hEdges[e.row][e.col] = false
			} else {
				layout.vEdges[e.row][e.col] = false
			}
			continue
		}

		if e.horizontal {
			layout.Walls = append(layout.Walls, WallSpec{
				Center: geom.Vec2{(float64(e.col) + 0.5) * cellSize, float64(e.row+1) * cellSize},
				Size:   geom.Vec2{cellSize + thickness, thickness},
				Type:   components.WallHorizontal,
			})
		} else {
			layout.Walls = append(layout.Walls, WallSpec{
				Center: geom.Vec2{float64(e.col+1) * cellSize, (float64(e.row) + 0.5) * cellSize},
				Size:   geom.Vec2{thickness, cellSize + thickness},
				Type:   components.WallVertical,
			})
		}
	}

	return layout
}

// addBorder closes the four sides of the arena
func (g *ArenaGenerator) addBorder(layout *ArenaLayout, thickness float64) {
	w, h := layout.Width(), layout.Height()
	border := []struct {
		center geom.Vec2
		size   geom.Vec2
		kind   components.WallType
		dir    components.WallDirection
	}{
		{geom.Vec2{w / 2, h}, geom.Vec2{w + thickness, thickness}, components.WallHorizontal, components.DirUp},
		{geom.Vec2{w / 2, 0}, geom.Vec2{w + thickness, thickness}, components.WallHorizontal, components.DirDown},
		{geom.Vec2{0, h / 2}, geom.Vec2{thickness, h + thickness}, components.WallVertical, components.DirLeft},
		{geom.Vec2{w, h / 2}, geom.Vec2{thickness, h + thickness}, components.WallVertical, components.DirRight},
	}

	for _, b := range border {
		dir := b.dir
		layout.Walls = append(layout.Walls, WallSpec{
			Center:    b.center,
			Size:      b.size,
			Type:      b.kind,
			Direction: &dir,
		})
	}
}

// connected reports whether every cell can reach cell (0,0)
func (l *ArenaLayout) connected() bool {
	visited := make([][]bool, l.Rows)
	for r := range visited {
		visited[r] = make([]bool, l.Cols)
	}

	stack := [][2]int{{0, 0}}
	visited[0][0] = true
	count := 1

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c, r := cur[0], cur[1]

		for _, next := range l.neighbours(c, r) {
			if !visited[next[1]][next[0]] {
				visited[next[1]][next[0]] = true
				count++
				stack = append(stack, next)
			}
		}
	}

	return count == l.Cols*l.Rows
}

// neighbours returns the open cells adjacent to (c, r)
func (l *ArenaLayout) neighbours(c, r int) [][2]int {
	var out [][2]int
	if r+1 < l.Rows && !l.hEdges[r][c] {
		out = append(out, [2]int{c, r + 1})
	}
	if r > 0 && !l.hEdges[r-1][c] {
		out = append(out, [2]int{c, r - 1})
	}
	if c+1 < l.Cols && !l.vEdges[r][c] {
		out = append(out, [2]int{c + 1, r})
	}
	if c > 0 && !l.vEdges[r][c-1] {
		out = append(out, [2]int{c - 1, r})
	}
	return out
}

// FindSpawnPoints picks n cell centres spread far apart. The first cell is
// random; each following one is the cell farthest from those already chosen.
func (g *ArenaGenerator) FindSpawnPoints(layout *ArenaLayout, n int) []geom.Vec2 {
	if n <= 0 {
		return nil
	}

	points := []geom.Vec2{layout.CellCenter(g.rng.Intn(layout.Cols), g.rng.Intn(layout.Rows))}
	for len(points) < n {
		var best geom.Vec2
		bestDist := -1.0
		for r := 0; r < layout.Rows; r++ {
			for c := 0; c < layout.Cols; c++ {
				candidate := layout.CellCenter(c, r)
				nearest := -1.0
				for _, p := range points {
					d := candidate.Sub(p).Len()
					if nearest < 0 || d < nearest {
						nearest = d
					}
				}
				if nearest > bestDist {
					bestDist = nearest
					best = candidate
				}
			}
		}
		points = append(points, best)
	}

	return points
}
