package skills

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// Entry is a skill directory found by Discovery together with its validation result
type Entry struct {
	Name      string   `json:"name" yaml:"name"`
	Directory string   `json:"directory" yaml:"directory"`
	Metadata  Metadata `json:"metadata" yaml:"metadata"`
	Result    Result   `json:"result" yaml:"result"`
}

// Discovery lists skills found directly under a set of root directories.
// Only the immediate children of each root are inspected.
type Discovery struct {
	skillDirs []string
}

// Option is a function that configures a Discovery
type Option func(*Discovery) error

// WithSkillDirs sets custom skill directories
func WithSkillDirs(dirs ...string) Option {
	return func(d *Discovery) error {
		d.skillDirs = dirs
		return nil
	}
}

// WithDefaultDirs initializes with default skill directories
func WithDefaultDirs() Option {
	return func(d *Discovery) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get user home directory")
		}
		d.skillDirs = []string{
			"./.skills",                       // Repo-local (highest precedence)
			filepath.Join(homeDir, ".skills"), // User-global
		}
		return nil
	}
}

// NewDiscovery creates a new skill discovery instance
func NewDiscovery(opts ...Option) (*Discovery, error) {
	d := &Discovery{}

	if len(opts) == 0 {
		if err := WithDefaultDirs()(d); err != nil {
			return nil, err
		}
	} else {
		for _, opt := range opts {
			if err := opt(d); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Dirs returns the configured root directories in precedence order
func (d *Discovery) Dirs() []string {
	return append([]string(nil), d.skillDirs...)
}

// DiscoverSkills returns the skills found under the configured directories,
// sorted by name. When two roots hold a skill with the same name the earlier
// root wins. Missing roots are skipped.
func (d *Discovery) DiscoverSkills() ([]Entry, error) {
	seen := make(map[string]struct{})
	var entries []Entry

	for _, dir := range d.skillDirs {
		found, err := discoverSkillsFromDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range found {
			if _, exists := seen[e.Name]; exists {
				continue
			}
			seen[e.Name] = struct{}{}
			entries = append(entries, e)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

func discoverSkillsFromDir(dir string) ([]Entry, error) {
	children, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read skills directory %s", dir)
	}

	var entries []Entry
	for _, child := range children {
		entryPath := filepath.Join(dir, child.Name())

		info, err := os.Stat(entryPath)
		if err != nil || !info.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(entryPath, skillFileName)); err != nil {
			continue
		}

		entries = append(entries, loadEntry(child.Name(), entryPath))
	}

	return entries, nil
}

// loadEntry validates a skill directory and decodes whatever header it has.
// The entry is named after its header when the name is set, otherwise after
// the directory.
func loadEntry(dirName, path string) Entry {
	e := Entry{
		Name:      dirName,
		Directory: path,
		Result:    Validate(path),
	}

	header, _, err := ReadHeader(path)
	if err != nil {
		return e
	}
	md, err := header.Metadata()
	if err != nil {
		return e
	}

	e.Metadata = md
	if md.Name != "" {
		e.Name = md.Name
	}
	return e
}

// FilterByPatterns keeps the entries whose name matches any of the doublestar
// patterns. If patterns is empty, all entries are returned.
func FilterByPatterns(entries []Entry, patterns []string) ([]Entry, error) {
	if len(patterns) == 0 {
		return entries, nil
	}

	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Errorf("invalid pattern %q", p)
		}
	}

	var filtered []Entry
	for _, e := range entries {
		for _, p := range patterns {
			if ok, _ := doublestar.Match(p, e.Name); ok {
				filtered = append(filtered, e)
				break
			}
		}
	}
	return filtered, nil
}
