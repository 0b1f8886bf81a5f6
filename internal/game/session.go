package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/emberhall/labyrinth/internal/logger"
	"github.com/emberhall/labyrinth/internal/maprender"
	"github.com/emberhall/labyrinth/internal/save"
	"github.com/emberhall/labyrinth/internal/world"
)

// Client is the line-oriented connection a session runs over. The
// terminal game and the network server both satisfy it, so the same
// engine drives both.
type Client interface {
	ReadLine() (string, error)
	WriteLine(message string) error
}

// Session is one player's run through a labyrinth.
type Session struct {
	nav        *world.Navigator
	client     Client
	store      *save.Store
	seed       int64
	difficulty int
	inventory  []world.Item
	quit       bool
	won        bool
}

// challengeRewards maps a challenge tag to the trophy it leaves in
// the chamber when beaten.
var challengeRewards = map[string]world.Item{
	"riddle": {Name: "Silver Tongue Charm", Description: "A small charm that hums with clever words."},
	"puzzle": {Name: "Rune Shard", Description: "A fragment of the sequence, still faintly glowing."},
	"combat": {Name: "Guardian's Crest", Description: "Proof of a guardian bested in battle."},
	"skill":  {Name: "Steady Gloves", Description: "Worn leather gloves that never slip."},
	"memory": {Name: "Sigil Stone", Description: "A smooth stone etched with remembered sigils."},
}

// NewSession wires a navigator to a client. store may be nil, in which
// case the save and load commands are disabled.
func NewSession(nav *world.Navigator, client Client, store *save.Store, seed int64, difficulty int) *Session {
	return &Session{
		nav:        nav,
		client:     client,
		store:      store,
		seed:       seed,
		difficulty: difficulty,
	}
}

// Run drives the session until the player quits, wins, or the client
// disconnects. The error is nil on quit or win.
func (s *Session) Run() error {
	s.client.WriteLine("Welcome to the labyrinth. You awaken in the entrance chamber.")
	s.client.WriteLine("Type 'help' for a list of commands.")
	s.client.WriteLine("")
	s.client.WriteLine(s.describeCurrent())

	for !s.quit && !s.won {
		line, err := s.client.ReadLine()
		if err != nil {
			logger.Info("Session ended by disconnect", "chamber", s.nav.CurrentChamberID())
			return err
		}

		output := s.Execute(ParseCommand(line))
		if output != "" {
			s.client.WriteLine(output)
		}

		if s.checkVictory() {
			s.won = true
			s.client.WriteLine("")
			s.client.WriteLine("Every chamber lies behind you and every trial is beaten.")
			s.client.WriteLine("You have conquered the labyrinth!")
		}
	}
	return nil
}

// Execute runs one parsed command and returns the text to show the
// player. It never writes to the client itself, which keeps command
// handling testable without a connection.
func (s *Session) Execute(cmd *Command) string {
	switch cmd.Name {
	case "":
		return ""
	case "help":
		return s.executeHelp()
	case "look", "l":
		return s.describeCurrent()
	case "go", "move", "walk":
		if err := cmd.RequireArgs(1, "Usage: go <direction>"); err != nil {
			return err.Error()
		}
		return s.executeMove(cmd.Args[0])
	case "north", "n":
		return s.executeMove("north")
	case "south", "s":
		return s.executeMove("south")
	case "east", "e":
		return s.executeMove("east")
	case "west", "w":
		return s.executeMove("west")
	case "map", "m":
		return s.executeMap()
	case "challenge", "c":
		return s.executeChallenge()
	case "answer", "a":
		if err := cmd.RequireArgs(1, "Usage: answer <response>"); err != nil {
			return err.Error()
		}
		return s.executeAnswer(cmd.GetArgString())
	case "take", "get":
		if err := cmd.RequireArgs(1, "Usage: take <item>"); err != nil {
			return err.Error()
		}
		return s.executeTake(cmd.GetArgString())
	case "inventory", "i":
		return s.executeInventory()
	case "status":
		return s.executeStatus()
	case "save":
		if err := cmd.RequireArgs(1, "Usage: save <name>"); err != nil {
			return err.Error()
		}
		return s.executeSave(cmd.Args[0])
	case "load":
		if err := cmd.RequireArgs(1, "Usage: load <name>"); err != nil {
			return err.Error()
		}
		return s.executeLoad(cmd.Args[0])
	case "saves":
		return s.executeSaves()
	case "quit", "exit":
		s.quit = true
		return "You abandon the labyrinth. Farewell."
	}
	return fmt.Sprintf("Unknown command: %s. Type 'help' for a list of commands.", cmd.Name)
}

func (s *Session) executeHelp() string {
	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	sb.WriteString("  go <direction>     - move north, south, east, or west\n")
	sb.WriteString("  north/south/east/west (or n/s/e/w) - move directly\n")
	sb.WriteString("  look (l)           - describe the current chamber\n")
	sb.WriteString("  map (m)            - draw a map of explored chambers\n")
	sb.WriteString("  challenge (c)      - face the chamber's challenge\n")
	sb.WriteString("  answer <response>  - respond to the active challenge\n")
	sb.WriteString("  take <item>        - pick up an item from the chamber\n")
	sb.WriteString("  inventory (i)      - list what you are carrying\n")
	sb.WriteString("  status             - show exploration progress\n")
	sb.WriteString("  save <name>        - save the game\n")
	sb.WriteString("  load <name>        - load a saved game\n")
	sb.WriteString("  saves              - list saved games\n")
	sb.WriteString("  quit               - leave the labyrinth")
	return sb.String()
}

func (s *Session) describeCurrent() string {
	chamber := s.nav.CurrentChamber()

	var sb strings.Builder
	sb.WriteString(chamber.GetDescription())
	sb.WriteString("\n")

	if chamber.HasChallenge() && !chamber.IsCompleted() {
		sb.WriteString("\nSomething here blocks your way forward. Type 'challenge' to face it.\n")
	}

	exits := s.nav.AvailableDirections(s.nav.CurrentChamberID())
	sb.WriteString("\nExits: ")
	sb.WriteString(strings.Join(exits, ", "))
	return sb.String()
}

func (s *Session) executeMove(direction string) string {
	chamber := s.nav.CurrentChamber()
	if chamber.HasChallenge() && !chamber.IsCompleted() {
		return "The chamber's challenge bars your way. Type 'challenge' to face it."
	}

	if !s.nav.Move(direction) {
		return fmt.Sprintf("You cannot go %s from here.", direction)
	}

	logger.Debug("Player moved", "direction", direction, "chamber", s.nav.CurrentChamberID())
	return s.describeCurrent()
}

func (s *Session) executeMap() string {
	views := make(map[int]maprender.ChamberView)
	for _, id := range s.nav.VisitedChambers() {
		views[id] = maprender.ChamberView{
			ID:          id,
			Connections: s.nav.Connections(id),
			Completed:   s.nav.Chamber(id).IsCompleted(),
		}
	}
	return maprender.Render(views, s.nav.CurrentChamberID(), s.nav.StartingChamberID())
}

func (s *Session) executeChallenge() string {
	chamber := s.nav.CurrentChamber()
	if !chamber.HasChallenge() {
		return "There is no challenge in this chamber."
	}
	if chamber.IsCompleted() {
		return "You have already beaten this chamber's challenge."
	}
	return chamber.GetChallenge().Present() + "\n\nType 'answer <response>' to respond."
}

func (s *Session) executeAnswer(answer string) string {
	chamber := s.nav.CurrentChamber()
	if !chamber.HasChallenge() || chamber.IsCompleted() {
		return "There is nothing here to answer."
	}

	solved, reply := chamber.GetChallenge().Respond(answer)
	if solved {
		chamber.MarkCompleted()
		logger.Info("Challenge completed", "chamber", chamber.ID, "type", chamber.ChallengeTag)
		reply += "\n\nThe way forward is open."
		if reward, ok := challengeRewards[chamber.ChallengeTag]; ok {
			chamber.AddItem(reward)
			reply += fmt.Sprintf("\nSomething clatters to the floor: %s.", reward.Name)
		}
		return reply
	}
	return reply
}

func (s *Session) executeTake(name string) string {
	item, ok := s.nav.CurrentChamber().RemoveItem(name)
	if !ok {
		return fmt.Sprintf("There is no %s here.", name)
	}
	s.inventory = append(s.inventory, item)
	return fmt.Sprintf("You take the %s.", item.Name)
}

func (s *Session) executeInventory() string {
	if len(s.inventory) == 0 {
		return "You are carrying nothing."
	}

	var sb strings.Builder
	sb.WriteString("You are carrying:\n")
	for _, item := range s.inventory {
		fmt.Fprintf(&sb, "  %s - %s\n", item.Name, item.Description)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (s *Session) executeStatus() string {
	visited := len(s.nav.VisitedChambers())
	completed := len(s.nav.CompletedChambers())
	total := s.nav.ChamberCount()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Chambers explored:  %d / %d\n", visited, total)
	fmt.Fprintf(&sb, "Challenges beaten:  %d\n", completed)
	fmt.Fprintf(&sb, "Current chamber:    %s", s.nav.CurrentChamber().Name)
	return sb.String()
}

func (s *Session) executeSave(name string) string {
	if s.store == nil {
		return "Saving is not enabled."
	}

	snapshot := save.BuildSnapshot(s.nav, s.seed, s.inventory)
	if _, err := s.store.Save(name, snapshot); err != nil {
		logger.Error("Failed to save game", "name", name, "error", err)
		return fmt.Sprintf("Failed to save: %v", err)
	}
	return fmt.Sprintf("Game saved as %q.", name)
}

func (s *Session) executeLoad(name string) string {
	if s.store == nil {
		return "Saving is not enabled."
	}

	snapshot, err := s.store.Load(name)
	if err != nil {
		return fmt.Sprintf("Failed to load: %v", err)
	}

	nav, err := snapshot.Restore()
	if err != nil {
		logger.Error("Saved game failed validation", "name", name, "error", err)
		return fmt.Sprintf("Saved game is corrupt: %v", err)
	}

	rng := rand.New(rand.NewSource(snapshot.Seed))
	if err := AttachChallenges(nav, s.difficulty, rng); err != nil {
		return fmt.Sprintf("Saved game is corrupt: %v", err)
	}

	s.nav = nav
	s.seed = snapshot.Seed
	s.inventory = snapshot.RestoreInventory()
	return fmt.Sprintf("Game %q loaded.\n\n%s", name, s.describeCurrent())
}

func (s *Session) executeSaves() string {
	if s.store == nil {
		return "Saving is not enabled."
	}

	infos, err := s.store.List()
	if err != nil {
		return fmt.Sprintf("Failed to list saves: %v", err)
	}
	if len(infos) == 0 {
		return "No saved games."
	}

	var sb strings.Builder
	sb.WriteString("Saved games:\n")
	for _, info := range infos {
		fmt.Fprintf(&sb, "  %-20s %d chambers, %d completed, saved %s\n",
			info.Name, info.Chambers, info.Completed,
			info.SavedAt.Format("2006-01-02 15:04"))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (s *Session) checkVictory() bool {
	return s.nav.AllCompleted() && len(s.nav.VisitedChambers()) == s.nav.ChamberCount()
}
