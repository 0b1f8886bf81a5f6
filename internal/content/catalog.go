// Package content assigns display names, descriptions, and challenge
// tags to generated chambers.
package content

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/emberhall/labyrinth/internal/challenge"
	"github.com/emberhall/labyrinth/internal/labyrinth"
)

// ChamberContent is the narrative content attached to one chamber.
type ChamberContent struct {
	Name         string
	Description  string
	ChallengeTag string
}

// Catalog holds the pools content is drawn from. A Catalog is owned
// by the collaborator assigning content, not by the generator.
type Catalog struct {
	ChamberNames         []string `yaml:"chamber_names"`
	DescriptionTemplates []string `yaml:"description_templates"`
	Adjectives           []string `yaml:"adjectives"`
	Features             []string `yaml:"features"`
	Atmospheres          []string `yaml:"atmospheres"`
	ChallengeTags        []string `yaml:"challenge_tags"`
}

// DefaultCatalog returns the built-in content pools.
func DefaultCatalog() *Catalog {
	return &Catalog{
		ChamberNames: []string{
			"Entrance Hall", "Crystal Cavern", "Shadow Corridor", "Ancient Library",
			"Guardian's Chamber", "Mystic Sanctum", "Hall of Echoes", "Prism Chamber",
			"Trial Arena", "Meditation Room", "Treasure Vault", "Throne Room",
			"Exit Portal",
		},
		DescriptionTemplates: []string{
			"A {adjective} chamber with {feature}. {atmosphere}",
			"This {adjective} room contains {feature}. {atmosphere}",
			"A {adjective} space where {feature} dominates the area. {atmosphere}",
		},
		Adjectives: []string{
			"dimly lit", "sparkling", "mysterious", "ancient", "grand",
			"serene", "imposing", "ethereal", "shadowy", "luminous",
		},
		Features: []string{
			"towering stone pillars", "glowing crystals", "ancient murals",
			"mystical symbols", "ornate carvings", "magical artifacts",
			"flowing water", "floating orbs", "intricate mosaics", "golden statues",
		},
		Atmospheres: []string{
			"The air hums with magical energy.",
			"Shadows dance in the flickering light.",
			"An aura of ancient power fills the space.",
			"The atmosphere is thick with mystery.",
			"Whispers of the past echo through the chamber.",
		},
		ChallengeTags: challenge.Tags(),
	}
}

// LoadCatalog loads content pools from a YAML file. Empty pools fall
// back to the built-in defaults, so a file may override only some
// sections.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	catalog := &Catalog{}
	if err := yaml.Unmarshal(data, catalog); err != nil {
		return nil, fmt.Errorf("failed to parse content file: %w", err)
	}

	defaults := DefaultCatalog()
	if len(catalog.ChamberNames) == 0 {
		catalog.ChamberNames = defaults.ChamberNames
	}
	if len(catalog.DescriptionTemplates) == 0 {
		catalog.DescriptionTemplates = defaults.DescriptionTemplates
	}
	if len(catalog.Adjectives) == 0 {
		catalog.Adjectives = defaults.Adjectives
	}
	if len(catalog.Features) == 0 {
		catalog.Features = defaults.Features
	}
	if len(catalog.Atmospheres) == 0 {
		catalog.Atmospheres = defaults.Atmospheres
	}
	if len(catalog.ChallengeTags) == 0 {
		catalog.ChallengeTags = defaults.ChallengeTags
	}

	return catalog, nil
}

// Assign produces content for every chamber of a finished graph. The
// graph is read-only here. Draws come from the provided random source
// in ascending chamber order, so a fixed seed yields fixed content.
func (c *Catalog) Assign(g *labyrinth.Graph, rng *rand.Rand) map[int]ChamberContent {
	assigned := make(map[int]ChamberContent, g.ChamberCount())

	for _, id := range g.ChamberIDs() {
		name := c.ChamberNames[(id-1)%len(c.ChamberNames)]
		if id > len(c.ChamberNames) {
			name = fmt.Sprintf("%s %d", name, id)
		}

		template := c.DescriptionTemplates[rng.Intn(len(c.DescriptionTemplates))]
		description := strings.NewReplacer(
			"{adjective}", c.Adjectives[rng.Intn(len(c.Adjectives))],
			"{feature}", c.Features[rng.Intn(len(c.Features))],
			"{atmosphere}", c.Atmospheres[rng.Intn(len(c.Atmospheres))],
		).Replace(template)

		assigned[id] = ChamberContent{
			Name:         name,
			Description:  description,
			ChallengeTag: c.ChallengeTags[rng.Intn(len(c.ChallengeTags))],
		}
	}

	return assigned
}
