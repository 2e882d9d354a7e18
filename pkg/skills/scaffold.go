package skills

import (
	"bytes"
	"context"
	"embed"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/jingkaihe/skillkit/pkg/logger"
	"github.com/pkg/errors"
	"github.com/rogpeppe/go-internal/lockedfile"
)

// Template files
//
//go:embed templates/*
var TemplateFS embed.FS

const (
	skillTemplate     = "templates/SKILL.md.tmpl"
	scriptTemplate    = "templates/example.py.tmpl"
	referenceTemplate = "templates/reference.md.tmpl"

	scriptsDir    = "scripts"
	referencesDir = "references"
	assetsDir     = "assets"

	exampleScript    = "example.py"
	exampleReference = "reference.md"
)

// ErrAlreadyExists is returned by Create when the target directory exists
var ErrAlreadyExists = errors.New("skill directory already exists")

// TemplateData holds the values substituted into the skill templates
type TemplateData struct {
	Name  string
	Title string
}

// ScaffoldOption configures Create
type ScaffoldOption func(*scaffolder)

// WithProgress registers a callback invoked once per created artifact with
// its path relative to the parent directory.
func WithProgress(fn func(artifact string)) ScaffoldOption {
	return func(s *scaffolder) {
		s.progress = fn
	}
}

type scaffolder struct {
	progress func(string)
}

func (s *scaffolder) report(artifact string) {
	if s.progress != nil {
		s.progress(artifact)
	}
}

// Create scaffolds a new skill named name under parentPath and returns the
// absolute path of the skill directory. An existing target is never touched.
// Artifacts written before a failure are left in place.
func Create(ctx context.Context, name, parentPath string, opts ...ScaffoldOption) (string, error) {
	s := &scaffolder{}
	for _, opt := range opts {
		opt(s)
	}

	parent, err := filepath.Abs(parentPath)
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve path")
	}
	skillDir := filepath.Join(parent, name)

	log := logger.G(ctx).WithField("skill_dir", skillDir)

	if _, err := os.Stat(skillDir); err == nil {
		return "", errors.Wrapf(ErrAlreadyExists, "%s", skillDir)
	}

	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create skill directory")
	}
	log.Debug("created skill directory")
	s.report(name + "/")

	data := TemplateData{Name: name, Title: TitleCase(name)}

	files := []struct {
		template string
		dir      string
		file     string
		mode     os.FileMode
	}{
		{skillTemplate, "", skillFileName, 0o644},
		{scriptTemplate, scriptsDir, exampleScript, 0o755},
		{referenceTemplate, referencesDir, exampleReference, 0o644},
	}

	for _, f := range files {
		rel := f.file
		if f.dir != "" {
			rel = filepath.Join(f.dir, f.file)
			if err := os.MkdirAll(filepath.Join(skillDir, f.dir), 0o755); err != nil {
				return "", errors.Wrapf(err, "failed to create %s directory", f.dir)
			}
		}

		content, err := RenderTemplate(f.template, data)
		if err != nil {
			return "", err
		}

		target := filepath.Join(skillDir, rel)
		if err := lockedfile.Write(target, strings.NewReader(content), f.mode); err != nil {
			return "", errors.Wrapf(err, "failed to write %s", rel)
		}
		if f.mode&0o111 != 0 {
			if err := os.Chmod(target, f.mode); err != nil {
				return "", errors.Wrapf(err, "failed to set permissions on %s", rel)
			}
		}
		log.WithField("file", rel).Debug("wrote skill file")
		s.report(filepath.ToSlash(rel))
	}

	if err := os.MkdirAll(filepath.Join(skillDir, assetsDir), 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create %s directory", assetsDir)
	}
	s.report(assetsDir + "/")

	return skillDir, nil
}

// RenderTemplate renders one of the embedded skill templates
func RenderTemplate(name string, data TemplateData) (string, error) {
	tmplContent, err := TemplateFS.ReadFile(name)
	if err != nil {
		return "", errors.Wrap(err, "failed to read template file")
	}

	tmpl, err := template.New(filepath.Base(name)).Parse(string(tmplContent))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "failed to execute template")
	}

	return buf.String(), nil
}

// TitleCase turns a hyphen-case name into a display title, e.g.
// "stripe-payments" becomes "Stripe Payments".
func TitleCase(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// NextSteps lists what an author should do after scaffolding a skill
func NextSteps() []string {
	return []string{
		"Edit SKILL.md to complete the TODO items and update the description",
		"Customize or delete the example files in scripts/, references/, and assets/",
		"Run the validator when ready to check the skill structure",
	}
}
