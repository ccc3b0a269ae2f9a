package game

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the declarative game description: carousels with their
// slides, the puzzle-slot overlaps between them, and the puzzles. It is
// authored externally; referential integrity is not guaranteed and every
// consumer tolerates dangling ids by skipping.
type Document struct {
	Title     string        `yaml:"title"`
	Carousels []CarouselDef `yaml:"carousels"`
	Slots     []SlotDef     `yaml:"slots"`
	Puzzles   []PuzzleDef   `yaml:"puzzles"`
}

type CarouselDef struct {
	ID         string   `yaml:"id"`
	Axis       string   `yaml:"axis"` // "horizontal" (default) or "vertical"
	ItemExtent float64  `yaml:"itemExtent"`
	CloneCount int      `yaml:"cloneCount"`
	Filmstrip  bool     `yaml:"filmstrip"`
	Slides     []string `yaml:"slides"`
}

type SlotDef struct {
	Host       string `yaml:"host"`
	HostIndex  int    `yaml:"hostIndex"`
	Guest      string `yaml:"guest"`
	GuestIndex int    `yaml:"guestIndex"`
}

type PuzzleDef struct {
	ID         string      `yaml:"id"`
	Topology   string      `yaml:"topology"`
	Evaluation string      `yaml:"evaluation"`
	Pairs      [][2]string `yaml:"pairs"`
}

// Load decodes a YAML game document.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("game: decode document: %w", err)
	}
	return &doc, nil
}

func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("game: open document: %w", err)
	}
	defer f.Close()
	return Load(f)
}
