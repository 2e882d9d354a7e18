package skills

import (
	"context"

	"github.com/jingkaihe/skillkit/pkg/logger"
	"github.com/spf13/viper"
)

// Initialize builds a Discovery from configuration. skills.dirs replaces the
// default roots when it is set.
func Initialize(ctx context.Context) (*Discovery, error) {
	dirs := viper.GetStringSlice("skills.dirs")
	if len(dirs) == 0 {
		return NewDiscovery()
	}

	logger.G(ctx).WithField("dirs", dirs).Debug("using configured skill directories")
	return NewDiscovery(WithSkillDirs(dirs...))
}
