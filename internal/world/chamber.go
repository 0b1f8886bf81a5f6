package world

import (
	"fmt"
	"strings"
	"sync"
)

// Item is something a player can find in a chamber.
type Item struct {
	Name        string
	Description string
}

// Challenge is the resolution surface a chamber's challenge exposes.
// Concrete challenges live in their own package; this interface keeps
// the world free of that dependency.
type Challenge interface {
	Present() string
	Respond(answer string) (solved bool, reply string)
}

// Chamber represents a single chamber: its display content, challenge
// state, and items. Connections live in the frozen graph, not here.
type Chamber struct {
	ID           int
	Name         string
	Description  string
	ChallengeTag string

	challenge Challenge
	completed bool
	visited   bool
	items     []Item
	mu        sync.RWMutex
}

// NewChamber creates a chamber with the given content.
func NewChamber(id int, name, description, challengeTag string) *Chamber {
	return &Chamber{
		ID:           id,
		Name:         name,
		Description:  description,
		ChallengeTag: challengeTag,
	}
}

// SetChallenge attaches the chamber's challenge.
func (c *Chamber) SetChallenge(ch Challenge) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.challenge = ch
}

// GetChallenge returns the chamber's challenge, or nil.
func (c *Chamber) GetChallenge() Challenge {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.challenge
}

// HasChallenge reports whether a challenge is attached.
func (c *Chamber) HasChallenge() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.challenge != nil
}

// MarkCompleted marks the chamber's challenge as completed. Returns
// false when there is no challenge to complete.
func (c *Chamber) MarkCompleted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.challenge == nil {
		return false
	}
	c.completed = true
	return true
}

// SetCompleted overrides the completed flag, used when restoring a
// saved game.
func (c *Chamber) SetCompleted(completed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.completed = completed
}

// IsCompleted reports whether the chamber's challenge is done.
func (c *Chamber) IsCompleted() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.completed
}

// MarkVisited records that the player has entered this chamber.
func (c *Chamber) MarkVisited() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visited = true
}

// IsVisited reports whether the player has entered this chamber.
func (c *Chamber) IsVisited() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.visited
}

// AddItem places an item in the chamber.
func (c *Chamber) AddItem(item Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// RemoveItem removes and returns the named item.
func (c *Chamber) RemoveItem(name string) (Item, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if strings.EqualFold(item.Name, name) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return item, true
		}
	}
	return Item{}, false
}

// GetItems returns a copy of the chamber's items.
func (c *Chamber) GetItems() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// GetDescription builds the full chamber description including status
// and items.
func (c *Chamber) GetDescription() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	desc := fmt.Sprintf("=== %s ===\n%s\n", c.Name, c.Description)

	if c.completed {
		desc += "\n[This chamber has been completed.]\n"
	}

	if len(c.items) > 0 {
		names := make([]string, len(c.items))
		for i, item := range c.items {
			names[i] = item.Name
		}
		desc += "\nItems here: " + strings.Join(names, ", ") + "\n"
	}

	return desc
}

func (c *Chamber) String() string {
	return fmt.Sprintf("Chamber %d: %s", c.ID, c.Name)
}
