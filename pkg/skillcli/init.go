// Package skillcli holds the command flows shared by the skillkit binaries.
package skillcli

import (
	"context"
	"fmt"

	"github.com/jingkaihe/skillkit/pkg/logger"
	"github.com/jingkaihe/skillkit/pkg/presenter"
	"github.com/jingkaihe/skillkit/pkg/skills"
)

// InitUsageNotes documents the advisory naming rules for new skills. They
// are not enforced when scaffolding.
const InitUsageNotes = `Skill name requirements:
  - Hyphen-case identifier (e.g. 'data-analyzer')
  - Lowercase letters, digits, and hyphens only
  - Max 40 characters
  - Must match the directory name exactly`

// Init scaffolds a skill and reports every step through p. The returned
// error has already been shown to the user.
func Init(ctx context.Context, p presenter.Presenter, name, parentPath string) (string, error) {
	p.Info(fmt.Sprintf("Initializing skill: %s", name))
	p.Info(fmt.Sprintf("   Location: %s", parentPath))
	p.Info("")

	skillDir, err := skills.Create(ctx, name, parentPath, skills.WithProgress(func(artifact string) {
		p.Success("Created " + artifact)
	}))
	if err != nil {
		logger.G(ctx).WithError(err).WithField("name", name).Debug("skill initialization failed")
		p.Failure("Error: " + err.Error())
		return "", err
	}

	p.Info("")
	p.Success(fmt.Sprintf("Skill '%s' initialized successfully at %s", name, skillDir))
	p.Info("")
	p.Section("Next steps")
	p.List(skills.NextSteps())

	return skillDir, nil
}
