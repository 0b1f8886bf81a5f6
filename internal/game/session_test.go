package game

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emberhall/labyrinth/internal/labyrinth"
	"github.com/emberhall/labyrinth/internal/save"
	"github.com/emberhall/labyrinth/internal/world"
)

// fakeClient feeds scripted lines and records everything written.
type fakeClient struct {
	lines  []string
	output []string
}

func (c *fakeClient) ReadLine() (string, error) {
	if len(c.lines) == 0 {
		return "", io.EOF
	}
	line := c.lines[0]
	c.lines = c.lines[1:]
	return line, nil
}

func (c *fakeClient) WriteLine(message string) error {
	c.output = append(c.output, message)
	return nil
}

func (c *fakeClient) all() string {
	return strings.Join(c.output, "\n")
}

type fixedChallenge struct {
	answer string
}

func (f *fixedChallenge) Present() string {
	return "Say the word."
}

func (f *fixedChallenge) Respond(answer string) (bool, string) {
	if answer == f.answer {
		return true, "The word is true."
	}
	return false, "Nothing happens."
}

func testSession(t *testing.T, store *save.Store) (*Session, map[int]*world.Chamber) {
	t.Helper()

	g := labyrinth.NewGraph(3)
	g.Link(1, labyrinth.East, 2)
	g.Link(2, labyrinth.East, 3)

	chambers := map[int]*world.Chamber{
		1: world.NewChamber(1, "Entrance Hall", "The way in.", ""),
		2: world.NewChamber(2, "Echo Hall", "Voices everywhere.", "riddle"),
		3: world.NewChamber(3, "Exit Portal", "A shimmering arch.", ""),
	}
	chambers[2].SetChallenge(&fixedChallenge{answer: "friend"})

	nav, err := world.NewNavigator(g, chambers)
	if err != nil {
		t.Fatalf("NewNavigator() failed: %v", err)
	}
	return NewSession(nav, &fakeClient{}, store, 42, 5), chambers
}

func TestExecuteLook(t *testing.T) {
	s, _ := testSession(t, nil)

	out := s.Execute(ParseCommand("look"))
	if !strings.Contains(out, "Entrance Hall") {
		t.Errorf("look output %q missing the chamber name", out)
	}
	if !strings.Contains(out, "east") {
		t.Errorf("look output %q missing the exits", out)
	}
}

func TestExecuteMoveAndShortcuts(t *testing.T) {
	s, _ := testSession(t, nil)

	out := s.Execute(ParseCommand("east"))
	if !strings.Contains(out, "Echo Hall") {
		t.Errorf("east output %q, want the next chamber", out)
	}

	out = s.Execute(ParseCommand("go north"))
	if !strings.Contains(out, "cannot go") {
		t.Errorf("blocked move output %q, want a refusal", out)
	}
}

func TestChallengeBlocksMovement(t *testing.T) {
	s, _ := testSession(t, nil)
	s.Execute(ParseCommand("east"))

	out := s.Execute(ParseCommand("east"))
	if !strings.Contains(out, "challenge") {
		t.Errorf("move past an open challenge %q, want a challenge gate", out)
	}
	if s.nav.CurrentChamberID() != 2 {
		t.Errorf("position = %d after gated move, want 2", s.nav.CurrentChamberID())
	}

	out = s.Execute(ParseCommand("challenge"))
	if !strings.Contains(out, "Say the word.") {
		t.Errorf("challenge output %q, want the challenge text", out)
	}

	out = s.Execute(ParseCommand("answer wrong"))
	if !strings.Contains(out, "Nothing happens.") {
		t.Errorf("wrong answer output %q", out)
	}

	out = s.Execute(ParseCommand("answer friend"))
	if !strings.Contains(out, "way forward is open") {
		t.Errorf("correct answer output %q", out)
	}

	out = s.Execute(ParseCommand("east"))
	if !strings.Contains(out, "Exit Portal") {
		t.Errorf("move after solving %q, want the next chamber", out)
	}
}

func TestAnswerWithoutChallenge(t *testing.T) {
	s, _ := testSession(t, nil)

	out := s.Execute(ParseCommand("answer anything"))
	if !strings.Contains(out, "nothing here") {
		t.Errorf("answer in a safe chamber %q", out)
	}
	out = s.Execute(ParseCommand("challenge"))
	if !strings.Contains(out, "no challenge") {
		t.Errorf("challenge in a safe chamber %q", out)
	}
}

func TestExecuteMapAndStatus(t *testing.T) {
	s, _ := testSession(t, nil)

	out := s.Execute(ParseCommand("map"))
	if !strings.Contains(out, "●") {
		t.Errorf("map output %q missing the player marker", out)
	}

	out = s.Execute(ParseCommand("status"))
	if !strings.Contains(out, "1 / 3") {
		t.Errorf("status output %q, want 1 / 3 explored", out)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	s, _ := testSession(t, nil)

	out := s.Execute(ParseCommand("dance"))
	if !strings.Contains(out, "Unknown command") {
		t.Errorf("unknown command output %q", out)
	}
	if out := s.Execute(ParseCommand("")); out != "" {
		t.Errorf("empty input output %q, want nothing", out)
	}
}

func TestExecuteUsageErrors(t *testing.T) {
	s, _ := testSession(t, nil)

	for _, input := range []string{"go", "answer", "save", "load"} {
		out := s.Execute(ParseCommand(input))
		if !strings.Contains(out, "Usage:") {
			t.Errorf("%q output %q, want a usage message", input, out)
		}
	}
}

func TestSaveDisabledWithoutStore(t *testing.T) {
	s, _ := testSession(t, nil)

	out := s.Execute(ParseCommand("save run"))
	if !strings.Contains(out, "not enabled") {
		t.Errorf("save without a store %q", out)
	}
}

func TestSaveAndLoadThroughStore(t *testing.T) {
	store, err := save.OpenSQLite(filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	s, _ := testSession(t, store)
	s.Execute(ParseCommand("east"))
	s.Execute(ParseCommand("answer friend"))

	out := s.Execute(ParseCommand("save myrun"))
	if !strings.Contains(out, "saved") {
		t.Fatalf("save output %q", out)
	}

	// Walk on, then load back
	s.Execute(ParseCommand("east"))
	out = s.Execute(ParseCommand("load myrun"))
	if !strings.Contains(out, "loaded") {
		t.Fatalf("load output %q", out)
	}
	if s.nav.CurrentChamberID() != 2 {
		t.Errorf("position after load = %d, want 2", s.nav.CurrentChamberID())
	}
	if !s.nav.Chamber(2).IsCompleted() {
		t.Error("completion lost across save and load")
	}

	out = s.Execute(ParseCommand("saves"))
	if !strings.Contains(out, "myrun") {
		t.Errorf("saves output %q missing the save name", out)
	}
}

func TestRunQuitAndVictory(t *testing.T) {
	s, _ := testSession(t, nil)
	client := &fakeClient{lines: []string{"quit"}}
	s.client = client

	if err := s.Run(); err != nil {
		t.Fatalf("Run() = %v, want nil on quit", err)
	}
	if !strings.Contains(client.all(), "Farewell") {
		t.Error("quit farewell missing from output")
	}

	s2, _ := testSession(t, nil)
	winner := &fakeClient{lines: []string{"east", "answer friend", "east"}}
	s2.client = winner

	if err := s2.Run(); err != nil {
		t.Fatalf("Run() = %v, want nil on victory", err)
	}
	if !strings.Contains(winner.all(), "conquered the labyrinth") {
		t.Errorf("victory message missing:\n%s", winner.all())
	}
}

func TestRunDisconnect(t *testing.T) {
	s, _ := testSession(t, nil)
	s.client = &fakeClient{lines: []string{"look"}}

	if err := s.Run(); err != io.EOF {
		t.Errorf("Run() = %v after client EOF, want io.EOF", err)
	}
}

func TestChallengeRewardAndTake(t *testing.T) {
	s, chambers := testSession(t, nil)
	s.Execute(ParseCommand("east"))
	s.Execute(ParseCommand("answer friend"))

	out := s.Execute(ParseCommand("answer friend"))
	if !strings.Contains(out, "nothing here") {
		t.Errorf("answer after solving %q", out)
	}

	items := chambers[2].GetItems()
	if len(items) != 1 || items[0].Name != "Silver Tongue Charm" {
		t.Fatalf("chamber items after solving = %v, want the riddle reward", items)
	}

	out = s.Execute(ParseCommand("look"))
	if !strings.Contains(out, "Silver Tongue Charm") {
		t.Errorf("look output %q missing the dropped reward", out)
	}

	out = s.Execute(ParseCommand("take silver tongue charm"))
	if !strings.Contains(out, "You take the Silver Tongue Charm") {
		t.Errorf("take output %q", out)
	}
	if len(chambers[2].GetItems()) != 0 {
		t.Errorf("chamber still holds %v after take", chambers[2].GetItems())
	}

	out = s.Execute(ParseCommand("take silver tongue charm"))
	if !strings.Contains(out, "There is no") {
		t.Errorf("second take output %q", out)
	}

	out = s.Execute(ParseCommand("inventory"))
	if !strings.Contains(out, "Silver Tongue Charm") {
		t.Errorf("inventory output %q missing the taken item", out)
	}
}

func TestInventoryStartsEmpty(t *testing.T) {
	s, _ := testSession(t, nil)

	out := s.Execute(ParseCommand("i"))
	if !strings.Contains(out, "carrying nothing") {
		t.Errorf("empty inventory output %q", out)
	}
	out = s.Execute(ParseCommand("take"))
	if !strings.Contains(out, "Usage:") {
		t.Errorf("take without an item %q, want a usage message", out)
	}
}

func TestItemsSurviveSaveAndLoad(t *testing.T) {
	store, err := save.OpenSQLite(filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	s, _ := testSession(t, store)
	s.Execute(ParseCommand("east"))
	s.Execute(ParseCommand("answer friend"))
	s.Execute(ParseCommand("take silver tongue charm"))

	if out := s.Execute(ParseCommand("save run")); !strings.Contains(out, "saved") {
		t.Fatalf("save output %q", out)
	}

	s.inventory = nil
	if out := s.Execute(ParseCommand("load run")); !strings.Contains(out, "loaded") {
		t.Fatalf("load output %q", out)
	}

	out := s.Execute(ParseCommand("inventory"))
	if !strings.Contains(out, "Silver Tongue Charm") {
		t.Errorf("inventory after load %q missing the carried item", out)
	}
	if len(s.nav.Chamber(2).GetItems()) != 0 {
		t.Errorf("chamber 2 items after load = %v, want none", s.nav.Chamber(2).GetItems())
	}
}
