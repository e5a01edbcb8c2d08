package cmd

import (
	"fmt"
	"os"

	"github.com/akrishn/studyhub/internal/content"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a learning content document against the schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			path = cfg.ContentPath
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		if err := content.Validate(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		sessions, err := content.Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		topics := 0
		for _, s := range sessions {
			topics += len(s.Topics)
		}
		fmt.Printf("%s is valid: %d sessions, %d topics\n", path, len(sessions), topics)
		return nil
	},
}
