package engine

const maxSpawnAttempts = 1000

// spawnBalls places up to count balls on random Empty cells away from the
// player. Balls that find no spot after maxSpawnAttempts are skipped.
func (g *Game) spawnBalls(count int) {
	w, h := g.grid.W, g.grid.H
	if w < 5 || h < 5 {
		return
	}

	bp := g.opts.Balls
	player := g.player.Pos
	heading := g.player.Dir
	if heading == DirNone {
		// The player enters from the left border.
		heading = DirRight
	}

	for range count {
		for attempt := 0; attempt < maxSpawnAttempts; attempt++ {
			pos := P(2+g.rng.Intn(w-4), 2+g.rng.Intn(h-4))

			if g.grid.CellAt(pos) != CellEmpty {
				continue
			}
			if pos.Manhattan(player) < bp.MinSpawnDistance {
				continue
			}

			dx, dy := g.randomSign(), g.randomSign()
			if inDangerZone(pos, player, heading, bp.DangerZone) {
				// Point the ball away from the player's entry heading.
				switch heading {
				case DirRight:
					dx = 1
				case DirLeft:
					dx = -1
				case DirDown:
					dy = 1
				case DirUp:
					dy = -1
				}
			}

			g.balls = append(g.balls, NewBall(pos, dx, dy))
			break
		}
	}
}

// inDangerZone reports whether pos lies in the band ahead of the player.
func inDangerZone(pos, player Position, heading Direction, zone int) bool {
	dx := abs(pos.X - player.X)
	dy := abs(pos.Y - player.Y)
	switch heading {
	case DirRight:
		return pos.X <= player.X+zone && dy <= zone
	case DirLeft:
		return pos.X >= player.X-zone && dy <= zone
	case DirDown:
		return pos.Y <= player.Y+zone && dx <= zone
	case DirUp:
		return pos.Y >= player.Y-zone && dx <= zone
	default:
		return false
	}
}

func (g *Game) randomSign() int {
	if g.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
