/*
Copyright © 2026 taskmirror authors
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/taskmirror/taskmirror/internal/git"
	"github.com/taskmirror/taskmirror/internal/host"
	tasksync "github.com/taskmirror/taskmirror/internal/sync"
)

var noteCmd = &cobra.Command{
	Use:   "note FILE",
	Short: "Insert a timestamped note section into a markdown file",
	Long: `Note inserts a "## YYYY-MM-DD HH:MM:SS" section after the first
level-1 heading, or prepends an "# Untitled" heading when the document has
none. With git_integration enabled, the file is committed first, using the
timestamp as the commit message.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := LoadOptions()
		if err != nil {
			return err
		}

		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolve %s: %w", args[0], err)
		}

		h, err := host.NewFileHost(afero.NewOsFs(), path)
		if err != nil {
			return err
		}

		var integration *git.Integration
		if opts.GitIntegration {
			integration = git.NewIntegration(filepath.Dir(path), h.Notify)
		}

		ctrl := tasksync.NewController(h, opts, integration)
		if err := ctrl.Activate(); err != nil {
			return err
		}
		defer ctrl.Deactivate()

		ctrl.CreateNote()
		if err := h.Persist(); err != nil {
			return err
		}
		fmt.Printf("note added at line %d\n", h.Cursor())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
}
