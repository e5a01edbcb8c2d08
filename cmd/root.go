package cmd

import (
	"github.com/akrishn/studyhub/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studyhub",
	Short: "Terminal study-material viewer",
	Long:  "StudyHub — a terminal viewer for interview study sessions, with completion tracking, break reminders, and an optional AI interview coach.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides STUDYHUB_CONFIG)")
	rootCmd.PersistentFlags().String("content", "", "Path to learning content JSON (overrides config)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadConfig resolves the config file path from the --config flag or the
// default location and layers the --content flag on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if p, _ := cmd.Flags().GetString("content"); p != "" {
		cfg.ContentPath = p
	}
	return cfg, nil
}
