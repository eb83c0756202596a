package dungeon

import (
	"github.com/dungeonforge/dungeonforge-api/internal/entities"
)

// buildConnections derives the navigation graph from final room positions:
// every ordered pair of rooms within 1.5 grid units gets a directed,
// compass-labeled connection. Proximity is symmetric, so each adjacent pair
// yields two records. Duplicate (from, to, direction) triples, which only
// arise from placement-fallback coordinate collisions, are suppressed.
// Each room's Exits list receives its outgoing connections.
func (o *orchestrator) buildConnections(rooms []entities.Room) []entities.Connection {
	connections := make([]entities.Connection, 0)
	seen := make(map[entities.Connection]struct{})

	for i := range rooms {
		for j := range rooms {
			if i == j {
				continue
			}

			dx := rooms[j].X - rooms[i].X
			dy := rooms[j].Y - rooms[i].Y

			// Distance <= 1.5 on an integer grid means squared distance
			// <= 2: the four axis neighbors and the four diagonals.
			if dx*dx+dy*dy > 2 {
				continue
			}

			conn := entities.Connection{
				FromRoom:  rooms[i].ID,
				ToRoom:    rooms[j].ID,
				Direction: directionOf(dx, dy),
			}
			if _, dup := seen[conn]; dup {
				continue
			}
			seen[conn] = struct{}{}

			connections = append(connections, conn)
			rooms[i].Exits = append(rooms[i].Exits, conn)
		}
	}

	return connections
}

// directionOf maps a coordinate delta to one of eight compass labels. A
// zero delta, possible only for fallback-placed duplicate coordinates,
// lands in the final branch.
func directionOf(dx, dy int) entities.Direction {
	switch {
	case dx > 0 && dy == 0:
		return entities.DirectionEast
	case dx < 0 && dy == 0:
		return entities.DirectionWest
	case dx == 0 && dy > 0:
		return entities.DirectionNorth
	case dx == 0 && dy < 0:
		return entities.DirectionSouth
	case dx > 0 && dy > 0:
		return entities.DirectionNortheast
	case dx > 0 && dy < 0:
		return entities.DirectionSoutheast
	case dx < 0 && dy > 0:
		return entities.DirectionNorthwest
	default:
		return entities.DirectionSouthwest
	}
}
