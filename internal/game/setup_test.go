package game

import (
	"math/rand"
	"testing"

	"github.com/emberhall/labyrinth/internal/content"
	"github.com/emberhall/labyrinth/internal/labyrinth"
)

func TestBuildWorldAttachesEverything(t *testing.T) {
	cfg := labyrinth.DefaultConfig()
	cfg.Seed = 42

	nav, seed, err := BuildWorld(cfg, content.DefaultCatalog(), 5)
	if err != nil {
		t.Fatalf("BuildWorld() failed: %v", err)
	}
	if seed != 42 {
		t.Errorf("seed = %d, want the configured 42", seed)
	}

	if nav.ChamberCount() != cfg.ChamberCount {
		t.Fatalf("ChamberCount() = %d, want %d", nav.ChamberCount(), cfg.ChamberCount)
	}

	start := nav.Chamber(labyrinth.StartChamber)
	if start.HasChallenge() {
		t.Error("start chamber has a challenge, want a safe entrance")
	}
	if start.Name == "" {
		t.Error("start chamber has no name")
	}

	for _, id := range nav.ChamberIDs() {
		chamber := nav.Chamber(id)
		if id == labyrinth.StartChamber {
			continue
		}
		if chamber.ChallengeTag == "" {
			t.Errorf("chamber %d has no challenge tag", id)
		}
		if !chamber.HasChallenge() {
			t.Errorf("chamber %d tag %q has no live challenge", id, chamber.ChallengeTag)
		}
	}
}

func TestBuildWorldDeterministic(t *testing.T) {
	cfg := labyrinth.DefaultConfig()
	cfg.Seed = 7

	first, _, err := BuildWorld(cfg, content.DefaultCatalog(), 5)
	if err != nil {
		t.Fatalf("first BuildWorld() failed: %v", err)
	}
	second, _, err := BuildWorld(cfg, content.DefaultCatalog(), 5)
	if err != nil {
		t.Fatalf("second BuildWorld() failed: %v", err)
	}

	if !first.Graph().Equal(second.Graph()) {
		t.Error("seeded runs produced different graphs")
	}
	for _, id := range first.ChamberIDs() {
		a, b := first.Chamber(id), second.Chamber(id)
		if a.Name != b.Name || a.Description != b.Description || a.ChallengeTag != b.ChallengeTag {
			t.Errorf("chamber %d content differs between seeded runs", id)
		}
	}
}

func TestBuildWorldZeroSeedPicksOne(t *testing.T) {
	cfg := labyrinth.DefaultConfig()
	cfg.Seed = 0

	_, seed, err := BuildWorld(cfg, content.DefaultCatalog(), 5)
	if err != nil {
		t.Fatalf("BuildWorld() failed: %v", err)
	}
	if seed == 0 {
		t.Error("seed = 0, want a clock-derived seed")
	}
}

func TestBuildWorldRejectsBadConfig(t *testing.T) {
	cfg := labyrinth.DefaultConfig()
	cfg.ChamberCount = 1

	if _, _, err := BuildWorld(cfg, content.DefaultCatalog(), 5); err == nil {
		t.Fatal("BuildWorld() accepted an invalid config")
	}
}

func TestAttachChallengesSkipsCompleted(t *testing.T) {
	cfg := labyrinth.DefaultConfig()
	cfg.Seed = 11

	nav, seed, err := BuildWorld(cfg, content.DefaultCatalog(), 5)
	if err != nil {
		t.Fatalf("BuildWorld() failed: %v", err)
	}

	var completedID int
	for _, id := range nav.ChamberIDs() {
		if nav.Chamber(id).HasChallenge() {
			nav.Chamber(id).MarkCompleted()
			completedID = id
			break
		}
	}

	// Simulate a restore: drop live challenges, then reattach
	for _, id := range nav.ChamberIDs() {
		nav.Chamber(id).SetChallenge(nil)
	}

	if err := AttachChallenges(nav, 5, rand.New(rand.NewSource(seed))); err != nil {
		t.Fatalf("AttachChallenges() failed: %v", err)
	}

	if nav.Chamber(completedID).HasChallenge() {
		t.Errorf("chamber %d was reattached despite being completed", completedID)
	}
	for _, id := range nav.ChamberIDs() {
		chamber := nav.Chamber(id)
		if id == labyrinth.StartChamber || id == completedID {
			continue
		}
		if !chamber.HasChallenge() {
			t.Errorf("chamber %d has no challenge after reattach", id)
		}
	}
}
