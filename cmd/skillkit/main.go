package main

import (
	"context"
	"os"

	"github.com/jingkaihe/skillkit/pkg/logger"
	"github.com/jingkaihe/skillkit/pkg/presenter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLKIT")
	viper.AutomaticEnv()

	viper.SetDefault("log_level", "warn")
	viper.SetDefault("log_format", "fmt")
	viper.SetDefault("path", ".")

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillkit")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()

	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}

var rootCmd = &cobra.Command{
	Use:   "skillkit",
	Short: "Scaffold and validate skills",
	Long: `skillkit helps author skills: directories holding a SKILL.md descriptor
plus optional scripts/, references/ and assets/ subdirectories.

Use 'skillkit init' to scaffold a new skill from the built-in template and
'skillkit validate' to check a SKILL.md header block before publishing it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return logger.Configure(viper.GetString("log_level"), viper.GetString("log_format"))
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

func main() {
	ctx := context.Background()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if _, ok := err.(reportedError); !ok {
			presenter.Error(err, "")
		}
		os.Exit(1)
	}
}

// reportedError marks a failure whose details the command has already shown
type reportedError struct {
	error
}
