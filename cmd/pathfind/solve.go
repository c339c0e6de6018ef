package main

import (
	"github.com/aoc2021/framework/astar"
	"github.com/aoc2021/framework/parse"
	"github.com/aoc2021/framework/vec"
)

// riskMap is a grid of digits where entering a cell costs its digit.
// When tiled, the map repeats `tile` times in both directions and
// every repetition to the right or below adds one to the risk,
// wrapping from 9 back to 1.
type riskMap struct {
	grid *parse.DynGrid[uint8]
	tile int
}

var riskGrid = parse.Grid(parse.Token('\n'), parse.Digit, parse.Identity[uint8], parse.Dynamic[uint8]())

func parseRiskMap(input []byte, tile int) (*riskMap, error) {
	grid, err := parse.Run(riskGrid, input)
	if err != nil {
		return nil, err
	}
	return &riskMap{grid: grid, tile: tile}, nil
}

func (m *riskMap) width() int  { return m.grid.Width * m.tile }
func (m *riskMap) height() int { return m.grid.Height() * m.tile }

func (m *riskMap) risk(p vec.Vec2i) int {
	w, h := m.grid.Width, m.grid.Height()
	base := int(m.grid.At(p.X%w, p.Y%h))
	return (base-1+p.X/w+p.Y/h)%9 + 1
}

func (m *riskMap) neighbors(p vec.Vec2i, buf []astar.Edge[vec.Vec2i, int]) []astar.Edge[vec.Vec2i, int] {
	for _, n := range p.Neighbors4(m.width(), m.height()) {
		buf = append(buf, astar.Edge[vec.Vec2i, int]{To: n, Cost: m.risk(n)})
	}
	return buf
}

func (m *riskMap) goal() vec.Vec2i {
	return vec.Vec2i{X: m.width() - 1, Y: m.height() - 1}
}

// lowestRisk finds the cheapest path from the top left corner to the
// bottom right one.  The path is only reconstructed when `withPath`
// is set.
func (m *riskMap) lowestRisk(withPath bool) (astar.Result[vec.Vec2i, int], bool) {
	goal := m.goal()
	heuristic := func(p vec.Vec2i) int { return p.Manhattan(goal) }
	isGoal := func(p vec.Vec2i) bool { return p == goal }

	if withPath {
		return astar.Search(vec.Vec2i{}, m.neighbors, heuristic, isGoal)
	}
	cost, ok := astar.SearchCost(vec.Vec2i{}, m.neighbors, heuristic, isGoal)
	return astar.Result[vec.Vec2i, int]{TotalCost: cost}, ok
}
