package profile

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultName is the profile used when none is selected
const DefaultName = "default"

//go:embed configs/*.yaml
var configFS embed.FS

// builtinProfiles maps profile names to their configurations
var builtinProfiles = map[string]*Profile{}

func init() {
	entries, err := configFS.ReadDir("configs")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := configFS.ReadFile(path.Join("configs", entry.Name()))
		if err != nil {
			continue
		}

		p, err := parse(data)
		if err != nil {
			continue
		}

		builtinProfiles[p.Name] = p
	}
}

// Load returns a builtin profile by name
func Load(name string) (*Profile, error) {
	if p, ok := builtinProfiles[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("unknown profile: %s", name)
}

// Default returns the default builtin profile
func Default() *Profile {
	p, err := Load(DefaultName)
	if err != nil {
		panic("profile: default profile missing from embedded configs")
	}
	return p
}

// Available returns the names of all builtin profiles
func Available() []string {
	names := make([]string, 0, len(builtinProfiles))
	for name := range builtinProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source returns the raw YAML of a builtin profile
func Source(name string) ([]byte, error) {
	if _, ok := builtinProfiles[name]; !ok {
		return nil, fmt.Errorf("unknown profile: %s", name)
	}
	return configFS.ReadFile(path.Join("configs", name+".yaml"))
}

// LoadFromFile loads a user-defined profile from a YAML file
func LoadFromFile(filename string) (*Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	p, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", filename, err)
	}
	return p, nil
}

func parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
