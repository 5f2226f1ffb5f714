package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/davidschrooten/open-academic-records/config"
	"github.com/davidschrooten/open-academic-records/internal/logger"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "records <command>",
	Short: "Search, validate and summarize academic records",
	Long: heredoc.Doc(`
		Work with student records kept as JSON, YAML or TOML files.

		Records can be searched with filters and fuzzy matching, checked
		against the form rules used for data entry, cleaned up with the
		form sanitizers and summarized into semester GPAs.
	`),
	Example: heredoc.Doc(`
		$ records search subjects.json --kind subjects --query compilers
		$ records validate profile.yaml --form profile --sanitize
		$ records gpa transcript.toml
	`),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./records.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded

	if err := logger.InitGlobal(cfg.Log); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.L().Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config", viper.ConfigFileUsed()),
		zap.String("locale", cfg.Search.Locale),
	)
	return nil
}
