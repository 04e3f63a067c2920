/*
Copyright © 2026 taskmirror authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/taskmirror/taskmirror/internal/host"
	"github.com/taskmirror/taskmirror/internal/parser"
	"github.com/taskmirror/taskmirror/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list FILE",
	Short: "Print the task views for a markdown file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := host.NewFileHost(afero.NewOsFs(), args[0])
		if err != nil {
			return err
		}

		incomplete, complete := parser.Parse(h.SourceLines())

		fmt.Println(ui.StyleTitle.Render(fmt.Sprintf("Tasks (%d)", len(incomplete))))
		for _, t := range incomplete {
			fmt.Printf("  %s %s\n", ui.StyleSubtle.Render(fmt.Sprintf("%4d", t.LineNumber)), t.Content)
		}
		fmt.Println(ui.StyleTitle.Render(fmt.Sprintf("Done (%d)", len(complete))))
		for _, t := range complete {
			fmt.Printf("  %s %s\n", ui.StyleSubtle.Render(fmt.Sprintf("%4d", t.LineNumber)), ui.StyleSuccess.Render(t.Content))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
