// Package save persists and restores game progress.
package save

import (
	"fmt"
	"sort"

	"github.com/emberhall/labyrinth/internal/labyrinth"
	"github.com/emberhall/labyrinth/internal/world"
)

// Snapshot is the serialized form of a run: player position plus
// every chamber's content, flags, and connections.
type Snapshot struct {
	CurrentChamber  int                   `yaml:"current_chamber"`
	StartingChamber int                   `yaml:"starting_chamber"`
	Seed            int64                 `yaml:"seed,omitempty"`
	Inventory       []ItemRecord          `yaml:"inventory,omitempty"`
	Chambers        map[int]ChamberRecord `yaml:"chambers"`
}

// ItemRecord is one item's serialized state.
type ItemRecord struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// ChamberRecord is one chamber's serialized state.
type ChamberRecord struct {
	Name         string         `yaml:"name"`
	Description  string         `yaml:"description"`
	ChallengeTag string         `yaml:"challenge_tag,omitempty"`
	Completed    bool           `yaml:"completed,omitempty"`
	Visited      bool           `yaml:"visited,omitempty"`
	Items        []ItemRecord   `yaml:"items,omitempty"`
	Connections  map[string]int `yaml:"connections"`
}

// BuildSnapshot captures the navigator's full state plus the player's
// carried items.
func BuildSnapshot(nav *world.Navigator, seed int64, inventory []world.Item) Snapshot {
	chambers := make(map[int]ChamberRecord, nav.ChamberCount())

	for _, id := range nav.ChamberIDs() {
		chamber := nav.Chamber(id)
		conns := make(map[string]int)
		for dir, target := range nav.Connections(id) {
			conns[dir.String()] = target
		}

		chambers[id] = ChamberRecord{
			Name:         chamber.Name,
			Description:  chamber.Description,
			ChallengeTag: chamber.ChallengeTag,
			Completed:    chamber.IsCompleted(),
			Visited:      chamber.IsVisited(),
			Items:        itemRecords(chamber.GetItems()),
			Connections:  conns,
		}
	}

	return Snapshot{
		CurrentChamber:  nav.CurrentChamberID(),
		StartingChamber: nav.StartingChamberID(),
		Seed:            seed,
		Inventory:       itemRecords(inventory),
		Chambers:        chambers,
	}
}

func itemRecords(items []world.Item) []ItemRecord {
	if len(items) == 0 {
		return nil
	}
	records := make([]ItemRecord, len(items))
	for i, item := range items {
		records[i] = ItemRecord{Name: item.Name, Description: item.Description}
	}
	return records
}

func restoreItems(records []ItemRecord) []world.Item {
	if len(records) == 0 {
		return nil
	}
	items := make([]world.Item, len(records))
	for i, record := range records {
		items[i] = world.Item{Name: record.Name, Description: record.Description}
	}
	return items
}

// RestoreInventory rebuilds the player's carried items.
func (s Snapshot) RestoreInventory() []world.Item {
	return restoreItems(s.Inventory)
}

// RestoreGraph rebuilds the chamber graph exactly as recorded and
// revalidates it. A snapshot that was corrupted into asymmetric or
// dangling connections is rejected here, not silently repaired.
func (s Snapshot) RestoreGraph() (*labyrinth.Graph, error) {
	if len(s.Chambers) == 0 {
		return nil, fmt.Errorf("snapshot contains no chambers")
	}

	g := labyrinth.NewGraph(0)
	ids := make([]int, 0, len(s.Chambers))
	for id := range s.Chambers {
		g.AddChamber(id)
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		for name, target := range s.Chambers[id].Connections {
			dir, ok := labyrinth.ParseDirection(name)
			if !ok {
				return nil, fmt.Errorf("chamber %d has unknown direction %q", id, name)
			}
			g.SetTarget(id, dir, target)
		}
	}

	cfg := labyrinth.GenerationConfig{ChamberCount: len(s.Chambers)}
	if err := labyrinth.ValidateGraph(g, cfg); err != nil {
		return nil, fmt.Errorf("saved labyrinth failed validation: %w", err)
	}

	return g, nil
}

// RestoreChambers rebuilds chamber content and flags from the
// snapshot.
func (s Snapshot) RestoreChambers() map[int]*world.Chamber {
	chambers := make(map[int]*world.Chamber, len(s.Chambers))
	for id, record := range s.Chambers {
		chamber := world.NewChamber(id, record.Name, record.Description, record.ChallengeTag)
		chamber.SetCompleted(record.Completed)
		if record.Visited {
			chamber.MarkVisited()
		}
		for _, item := range restoreItems(record.Items) {
			chamber.AddItem(item)
		}
		chambers[id] = chamber
	}
	return chambers
}

// Restore rebuilds a navigator from the snapshot, revalidating the
// graph and the saved position.
func (s Snapshot) Restore() (*world.Navigator, error) {
	g, err := s.RestoreGraph()
	if err != nil {
		return nil, err
	}

	nav, err := world.NewNavigator(g, s.RestoreChambers())
	if err != nil {
		return nil, err
	}

	if err := nav.SetPosition(s.CurrentChamber); err != nil {
		return nil, fmt.Errorf("saved position invalid: %w", err)
	}

	return nav, nil
}
