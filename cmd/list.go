package cmd

import (
	"fmt"

	"github.com/akrishn/studyhub/internal/content"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions and topics in the content document",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		sessions, err := content.Load(cfg.ContentPath)
		if err != nil {
			return fmt.Errorf("load content: %w", err)
		}

		for _, sess := range sessions {
			fmt.Printf("%s (%s) — %d topics\n", sess.Title, sess.ID, len(sess.Topics))
			for _, topic := range sess.Topics {
				fmt.Printf("  %-28s %-8s %s\n", topic.Title, topic.Difficulty, topic.ID)
			}
		}
		return nil
	},
}
