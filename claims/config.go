package claims

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a batch of claims to evaluate.
type Config struct {
	// Jobs is the maximum number of claims evaluated concurrently.
	// 0 means one job per available CPU.
	Jobs   int         `yaml:"jobs"`
	Claims []Selection `yaml:"claims"`
}

// A Selection designates a claim of the catalog, and optionally the size of
// its domain.
type Selection struct {
	Name  string `yaml:"name"`
	Width int    `yaml:"width,omitempty"`
}

// A Task is a claim to evaluate at a given width.
type Task struct {
	Claim Claim
	Width int
}

// ParseConfig reads a YAML configuration from r.
// Unknown fields are errors.
func ParseConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Jobs < 0 {
		return nil, fmt.Errorf("invalid number of jobs %d", cfg.Jobs)
	}
	for _, sel := range cfg.Claims {
		if sel.Width < 0 {
			return nil, fmt.Errorf("invalid width %d for claim %q", sel.Width, sel.Name)
		}
	}
	return &cfg, nil
}

// LoadConfig reads the YAML configuration file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(bytes.NewReader(data))
}

// Tasks resolves the selected claims against the catalog.
// If no claim is selected, the whole catalog is selected, at default widths.
func (c *Config) Tasks() ([]Task, error) {
	if len(c.Claims) == 0 {
		all := Catalog()
		tasks := make([]Task, len(all))
		for i, claim := range all {
			tasks[i] = Task{Claim: claim, Width: claim.Width}
		}
		return tasks, nil
	}
	tasks := make([]Task, 0, len(c.Claims))
	for _, sel := range c.Claims {
		claim, ok := Lookup(sel.Name)
		if !ok {
			return nil, fmt.Errorf("unknown claim %q", sel.Name)
		}
		w := sel.Width
		if w == 0 {
			w = claim.Width
		}
		tasks = append(tasks, Task{Claim: claim, Width: w})
	}
	return tasks, nil
}
