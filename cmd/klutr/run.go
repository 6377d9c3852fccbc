package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the nightly organization pass for all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			deps, err := newDependencies(cfg)
			if err != nil {
				return err
			}
			defer deps.Close()

			if err := deps.runner.Run(cmd.Context()); err != nil {
				return fmt.Errorf("runner.Run() > %w", err)
			}
			return nil
		},
	}
}

func newInsightsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Run the weekly pass including insight generation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			deps, err := newDependencies(cfg)
			if err != nil {
				return err
			}
			defer deps.Close()

			if err := deps.runner.RunWeekly(cmd.Context()); err != nil {
				return fmt.Errorf("runner.RunWeekly() > %w", err)
			}
			return nil
		},
	}
}

func newClusterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cluster <user id>",
		Short: "Re-run the organization pass for a single user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			deps, err := newDependencies(cfg)
			if err != nil {
				return err
			}
			defer deps.Close()

			if err := deps.runner.ProcessUser(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("runner.ProcessUser(%s) > %w", args[0], err)
			}
			return nil
		},
	}
}
