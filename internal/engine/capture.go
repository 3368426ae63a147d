package engine

import (
	"fmt"
	"strings"
)

// SealPolicy decides what happens when every enclosed region holds a ball.
type SealPolicy string

const (
	// SealKeep leaves ball regions empty; the committed trail is the progress.
	SealKeep SealPolicy = "keep"
	// SealFillSmallest fills the smallest ball region and relocates its balls
	// to the nearest remaining empty cell.
	SealFillSmallest SealPolicy = "fill_smallest"
)

// ParseSealPolicy converts a config string to a SealPolicy.
func ParseSealPolicy(s string) (SealPolicy, error) {
	switch SealPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", SealKeep:
		return SealKeep, nil
	case SealFillSmallest:
		return SealFillSmallest, nil
	default:
		return "", fmt.Errorf("engine: unknown seal policy %q", s)
	}
}

// CaptureResult describes one territory capture.
type CaptureResult struct {
	TrailCells int // Trail cells committed to Filled
	Regions    int // Empty regions discovered after the commit
	Filled     int // Cells filled from enclosed regions
	Blocked    int // Enclosed regions kept empty because they hold balls
	Relocated  int // Balls moved out of a force-filled region
}

// region is a 4-connected set of Empty cells.
type region struct {
	cells []Position
	balls []int // indices into Game.balls
}

// neighbourOrder fixes BFS expansion order for reproducibility.
var neighbourOrder = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// capture commits the trail and fills every enclosed ball-free region.
// The largest region is the outside and is never filled.
func (g *Game) capture() CaptureResult {
	res := CaptureResult{TrailCells: len(g.player.Trail)}

	for _, p := range g.player.Trail {
		g.grid.SetCell(p, CellFilled)
	}

	regions := g.findRegions()
	res.Regions = len(regions)

	if len(regions) > 1 {
		outside := g.outsideRegion(regions)

		smallest := -1
		anyFree := false
		for i, r := range regions {
			if i == outside {
				continue
			}
			if len(r.balls) > 0 {
				res.Blocked++
				if smallest < 0 || len(r.cells) < len(regions[smallest].cells) {
					smallest = i
				}
				continue
			}
			anyFree = true
			res.Filled += g.fillRegion(r)
		}

		if !anyFree && smallest >= 0 && g.opts.SealPolicy == SealFillSmallest {
			r := regions[smallest]
			res.Filled += g.fillRegion(r)
			res.Blocked--
			for _, bi := range r.balls {
				if g.relocateBall(bi) {
					res.Relocated++
				}
			}
		}
	}

	g.player.clearTrail()
	return res
}

// findRegions partitions the Empty interior into 4-connected regions with a
// BFS. Seeds are scanned row-major so region order is deterministic.
func (g *Game) findRegions() []region {
	w, h := g.grid.W, g.grid.H
	label := make([]int, w*h)
	for i := range label {
		label[i] = -1
	}

	var regions []region
	queue := make([]Position, 0, g.grid.Interior())

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			start := P(x, y)
			if label[y*w+x] >= 0 || g.grid.CellAt(start) != CellEmpty {
				continue
			}

			id := len(regions)
			r := region{}
			label[y*w+x] = id
			queue = append(queue[:0], start)

			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				r.cells = append(r.cells, cur)

				for _, d := range neighbourOrder {
					n := cur.Step(d)
					if !g.grid.InBounds(n) || label[n.Y*w+n.X] >= 0 {
						continue
					}
					if g.grid.CellAt(n) != CellEmpty {
						continue
					}
					label[n.Y*w+n.X] = id
					queue = append(queue, n)
				}
			}
			regions = append(regions, r)
		}
	}

	for bi, b := range g.balls {
		if id := label[b.Pos.Y*w+b.Pos.X]; id >= 0 {
			regions[id].balls = append(regions[id].balls, bi)
		}
	}
	return regions
}

// outsideRegion picks the largest region. Ties go to the region closest to
// the player's return cell, then to the earliest discovered.
func (g *Game) outsideRegion(regions []region) int {
	best := 0
	bestDist := g.distanceToPlayer(regions[0])
	for i := 1; i < len(regions); i++ {
		size, bestSize := len(regions[i].cells), len(regions[best].cells)
		if size < bestSize {
			continue
		}
		dist := g.distanceToPlayer(regions[i])
		if size > bestSize || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

func (g *Game) distanceToPlayer(r region) int {
	nearest := -1
	for _, c := range r.cells {
		if d := c.Manhattan(g.player.Pos); nearest < 0 || d < nearest {
			nearest = d
		}
	}
	return nearest
}

func (g *Game) fillRegion(r region) int {
	for _, c := range r.cells {
		g.grid.SetCell(c, CellFilled)
	}
	return len(r.cells)
}

// relocateBall moves a ball to the nearest Empty cell by BFS over the whole
// grid. Returns false when no Empty cell is left, in which case the ball is
// parked where it is.
func (g *Game) relocateBall(bi int) bool {
	start := g.balls[bi].Pos
	seen := make([]bool, g.grid.W*g.grid.H)
	seen[start.Y*g.grid.W+start.X] = true
	queue := []Position{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur != start && g.grid.CellAt(cur) == CellEmpty {
			g.balls[bi].Pos = cur
			return true
		}
		for _, d := range neighbourOrder {
			n := cur.Step(d)
			if !g.grid.InBounds(n) || seen[n.Y*g.grid.W+n.X] {
				continue
			}
			seen[n.Y*g.grid.W+n.X] = true
			queue = append(queue, n)
		}
	}
	return false
}
