package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import notes from a YAML file",
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

			created, err := deps.importer.Import(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("importer.Import(%s) > %w", args[0], err)
			}
			cmd.Printf("imported %d notes\n", created)
			return nil
		},
	}
}

func newStacksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stacks <user id>",
		Short: "Print a user's smart stacks",
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

			stacks, err := deps.stacks.FindByUser(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("stacks.FindByUser(%s) > %w", args[0], err)
			}
			if len(stacks) == 0 {
				cmd.Println("no stacks yet")
				return nil
			}

			title := color.New(color.FgCyan, color.Bold)
			pinned := color.New(color.FgYellow)
			for _, s := range stacks {
				marker := ""
				if s.Pinned {
					marker = pinned.Sprint(" (pinned)")
				}
				if _, err := title.Fprintf(cmd.OutOrStdout(), "%s [%d notes]%s\n", s.Name, s.NoteCount, marker); err != nil {
					return fmt.Errorf("title.Fprintf() > %w", err)
				}
				cmd.Printf("  %s\n", s.Summary)
			}
			return nil
		},
	}
}
