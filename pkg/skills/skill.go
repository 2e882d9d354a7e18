// Package skills implements the skill authoring workflow: scaffolding new
// skill directories from embedded templates and validating the header block
// of an existing SKILL.md against a small set of structural rules.
//
// The header block is deliberately not YAML. It is a fenced region of flat
// "key: value" lines, and is read by a hand-written scanner rather than a
// markup parser.
package skills

import "sort"

const (
	skillFileName = "SKILL.md"
	headerFence   = "---"

	// MaxNameLength is the longest accepted skill name.
	MaxNameLength = 64
	// MaxDescriptionLength is the longest accepted description, in characters.
	MaxDescriptionLength = 1024
)

// Header keys recognised in SKILL.md.
const (
	KeyName         = "name"
	KeyDescription  = "description"
	KeyLicense      = "license"
	KeyAllowedTools = "allowed-tools"
	KeyMetadata     = "metadata"
	KeyModel        = "model"
)

var allowedKeys = map[string]struct{}{
	KeyName:         {},
	KeyDescription:  {},
	KeyLicense:      {},
	KeyAllowedTools: {},
	KeyMetadata:     {},
	KeyModel:        {},
}

// Metadata is the typed view of a SKILL.md header block
type Metadata struct {
	Name         string `mapstructure:"name" json:"name" yaml:"name" jsonschema:"required,maxLength=64,pattern=^[a-z0-9]+(-[a-z0-9]+)*$,description=Hyphen-case skill identifier"`
	Description  string `mapstructure:"description" json:"description" yaml:"description" jsonschema:"required,maxLength=1024,description=What the skill does and when to use it"`
	License      string `mapstructure:"license" json:"license,omitempty" yaml:"license,omitempty" jsonschema:"description=License name or reference to a bundled license file"`
	AllowedTools string `mapstructure:"allowed-tools" json:"allowed-tools,omitempty" yaml:"allowed-tools,omitempty" jsonschema:"description=Tools the skill may use without asking"`
	Metadata     string `mapstructure:"metadata" json:"metadata,omitempty" yaml:"metadata,omitempty" jsonschema:"description=Free-form metadata"`
	Model        string `mapstructure:"model" json:"model,omitempty" yaml:"model,omitempty" jsonschema:"description=Preferred model for the skill"`
}

// AllowedKeys returns the recognised header keys in sorted order
func AllowedKeys() []string {
	keys := make([]string, 0, len(allowedKeys))
	for k := range allowedKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsAllowedKey reports whether key may appear in a header block
func IsAllowedKey(key string) bool {
	_, ok := allowedKeys[key]
	return ok
}
