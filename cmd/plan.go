package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the generation stages without touching the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		s, err := seederFor(cfg)
		if err != nil {
			return err
		}

		plan, err := s.Plan()
		if err != nil {
			return err
		}

		color.Cyan("📋 Generation plan (seed %d, anchor %s)", cfg.Seed, cfg.Anchor)
		for i, names := range plan.Names() {
			fmt.Printf("  Stage %d: %s\n", i, strings.Join(names, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
