package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rogpeppe/go-internal/lockedfile"
)

const validMessage = "Valid!"

var hyphenCasePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Result is the outcome of validating a skill directory. Validation stops at
// the first failing rule, so Message describes exactly one problem.
type Result struct {
	Path    string `json:"path" yaml:"path"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Message string `json:"message" yaml:"message"`
}

func pass(path string) Result {
	return Result{Path: path, Valid: true, Message: validMessage}
}

func fail(path, format string, args ...any) Result {
	return Result{Path: path, Valid: false, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the SKILL.md in dir
func Validate(dir string) Result {
	skillPath := filepath.Join(dir, skillFileName)

	if _, err := os.Stat(skillPath); err != nil {
		return fail(dir, "SKILL.md not found")
	}

	content, err := lockedfile.Read(skillPath)
	if err != nil {
		return fail(dir, "Error reading SKILL.md: %s", err)
	}

	r := ValidateContent(string(content))
	r.Path = dir
	return r
}

// ValidateContent checks the text of a SKILL.md
func ValidateContent(content string) Result {
	block, _, err := ExtractHeader(content)
	switch {
	case errors.Is(err, ErrNoHeader):
		return fail("", "No YAML frontmatter found")
	case err != nil:
		return fail("", "Invalid frontmatter format")
	}

	header := ParseHeader(block)

	if unknown := header.UnknownKeys(); len(unknown) > 0 {
		return fail("", "Unexpected keys in SKILL.md frontmatter: %s. Allowed properties are: %s",
			strings.Join(unknown, ", "), strings.Join(AllowedKeys(), ", "))
	}

	if !header.Has(KeyName) {
		return fail("", "Missing 'name' in frontmatter")
	}
	if !header.Has(KeyDescription) {
		return fail("", "Missing 'description' in frontmatter")
	}

	name, _ := header.Get(KeyName)
	if msg := checkName(strings.TrimSpace(name)); msg != "" {
		return fail("", "%s", msg)
	}

	description, _ := header.Get(KeyDescription)
	if msg := checkDescription(strings.TrimSpace(description)); msg != "" {
		return fail("", "%s", msg)
	}

	return pass("")
}

// checkName returns a failure message, or "" when name passes. An empty name
// is left to the presence check.
func checkName(name string) string {
	if name == "" {
		return ""
	}
	if !hyphenCasePattern.MatchString(name) {
		return fmt.Sprintf("Name '%s' must be hyphen-case (lowercase letters, digits, and hyphens only)", name)
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") || strings.Contains(name, "--") {
		return fmt.Sprintf("Name '%s' has invalid hyphens (cannot start/end with hyphen or contain consecutive hyphens)", name)
	}
	if len(name) > MaxNameLength {
		return fmt.Sprintf("Name too long (%d chars, max %d)", len(name), MaxNameLength)
	}
	return ""
}

func checkDescription(description string) string {
	if description == "" {
		return ""
	}
	if strings.ContainsAny(description, "<>") {
		return "Description cannot contain < or >"
	}
	if n := utf8.RuneCountInString(description); n > MaxDescriptionLength {
		return fmt.Sprintf("Description too long (%d chars, max %d)", n, MaxDescriptionLength)
	}
	return ""
}
