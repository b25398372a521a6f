// Package devseed loads fixture data for the in-memory mock API from YAML or
// JSON files.
package devseed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/postboard/placeholder_sdk_go/pkg/model"
)

//go:embed fixtures/default.yaml
var defaultSeed []byte

// Seed is the full content of a seed file.
type Seed struct {
	Users    []model.User    `yaml:"users"`
	Posts    []model.Post    `yaml:"posts"`
	Comments []model.Comment `yaml:"comments"`
}

// Load reads a seed file. JSON files are accepted since JSON is valid YAML.
func Load(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("devseed: read %s: %w", path, err)
	}
	seed, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("devseed: %s: %w", path, err)
	}
	return seed, nil
}

// Parse decodes seed content.
func Parse(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.UnmarshalStrict(data, &seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := seed.validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// Default returns the built-in fixture set used when no seed file is given.
func Default() *Seed {
	seed, err := Parse(defaultSeed)
	if err != nil {
		panic(fmt.Sprintf("devseed: built-in fixtures are invalid: %v", err))
	}
	return seed
}

func (s *Seed) validate() error {
	if err := uniqueIDs("users", len(s.Users), func(i int) int { return s.Users[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("posts", len(s.Posts), func(i int) int { return s.Posts[i].ID }); err != nil {
		return err
	}
	return uniqueIDs("comments", len(s.Comments), func(i int) int { return s.Comments[i].ID })
}

func uniqueIDs(kind string, n int, id func(int) int) error {
	seen := make(map[int]struct{}, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if v <= 0 {
			return fmt.Errorf("devseed: %s[%d] has non-positive id %d", kind, i, v)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("devseed: %s id %d appears twice", kind, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}
