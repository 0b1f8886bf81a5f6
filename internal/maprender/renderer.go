// Package maprender draws an ASCII map of the chambers the player has
// explored.
package maprender

import (
	"sort"
	"strings"

	"github.com/emberhall/labyrinth/internal/labyrinth"
)

// Chamber state symbols.
const (
	symbolCurrent   = '●'
	symbolVisited   = '○'
	symbolCompleted = '◉'
)

// ChamberView is the read-only slice of one chamber the renderer
// consumes. Callers pass views for visited chambers only; the full
// graph is never assumed to be available.
type ChamberView struct {
	ID          int
	Connections map[labyrinth.Direction]int
	Completed   bool
}

type position struct {
	x, y int
}

// Render lays the given chambers out on a grid by walking connections
// from the start chamber and returns the drawn map. Chambers whose
// grid cell is already taken by an earlier chamber are left off the
// map rather than misplaced.
func Render(views map[int]ChamberView, currentID, startID int) string {
	if len(views) == 0 {
		return "You have not explored anything yet.\n"
	}

	positions := layout(views, startID)
	if len(positions) == 0 {
		return "You have not explored anything yet.\n"
	}

	minX, minY, maxX, maxY := bounds(positions)

	// Each chamber occupies one cell with three columns and one row
	// of spacing for connection lines.
	width := (maxX-minX)*4 + 1
	height := (maxY-minY)*2 + 1
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for id, pos := range positions {
		gx := (pos.x - minX) * 4
		gy := (pos.y - minY) * 2

		view := views[id]
		symbol := symbolVisited
		if view.Completed {
			symbol = symbolCompleted
		}
		if id == currentID {
			symbol = symbolCurrent
		}
		grid[gy][gx] = symbol

		// Draw east and south connection lines toward placed
		// neighbors; the mirror directions are covered from the other
		// side.
		if target, ok := view.Connections[labyrinth.East]; ok {
			if tpos, placed := positions[target]; placed && tpos.x == pos.x+1 && tpos.y == pos.y {
				grid[gy][gx+1] = '─'
				grid[gy][gx+2] = '─'
				grid[gy][gx+3] = '─'
			}
		}
		if target, ok := view.Connections[labyrinth.South]; ok {
			if tpos, placed := positions[target]; placed && tpos.x == pos.x && tpos.y == pos.y+1 {
				grid[gy+1][gx] = '│'
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("Map of the explored labyrinth:\n\n")
	for _, row := range grid {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	sb.WriteString("\n● you   ○ visited   ◉ completed\n")
	return sb.String()
}

// layout assigns grid positions by breadth-first walk from the start
// chamber over the provided views.
func layout(views map[int]ChamberView, startID int) map[int]position {
	positions := make(map[int]position)
	occupied := make(map[position]int)

	start := startID
	if _, ok := views[start]; !ok {
		// Fall back to the lowest visible chamber.
		ids := make([]int, 0, len(views))
		for id := range views {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		start = ids[0]
	}

	positions[start] = position{0, 0}
	occupied[position{0, 0}] = start
	queue := []int{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		pos := positions[current]

		for _, dir := range labyrinth.AllDirections() {
			target, ok := views[current].Connections[dir]
			if !ok {
				continue
			}
			if _, visible := views[target]; !visible {
				continue
			}
			if _, placed := positions[target]; placed {
				continue
			}

			next := step(pos, dir)
			if _, taken := occupied[next]; taken {
				continue
			}

			positions[target] = next
			occupied[next] = target
			queue = append(queue, target)
		}
	}

	return positions
}

func step(pos position, dir labyrinth.Direction) position {
	switch dir {
	case labyrinth.North:
		return position{pos.x, pos.y - 1}
	case labyrinth.South:
		return position{pos.x, pos.y + 1}
	case labyrinth.East:
		return position{pos.x + 1, pos.y}
	case labyrinth.West:
		return position{pos.x - 1, pos.y}
	}
	return pos
}

func bounds(positions map[int]position) (minX, minY, maxX, maxY int) {
	first := true
	for _, pos := range positions {
		if first {
			minX, maxX = pos.x, pos.x
			minY, maxY = pos.y, pos.y
			first = false
			continue
		}
		if pos.x < minX {
			minX = pos.x
		}
		if pos.x > maxX {
			maxX = pos.x
		}
		if pos.y < minY {
			minY = pos.y
		}
		if pos.y > maxY {
			maxY = pos.y
		}
	}
	return minX, minY, maxX, maxY
}
