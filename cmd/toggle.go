/*
Copyright © 2026 taskmirror authors
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/taskmirror/taskmirror/internal/host"
	tasksync "github.com/taskmirror/taskmirror/internal/sync"
	"github.com/taskmirror/taskmirror/models"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle FILE LINE",
	Short: "Toggle the checkbox on a source line",
	Long: `Toggle flips the checkbox marker on the given 1-based line: [X]
becomes [ ], anything else becomes [X]. A line without a checkbox is left
alone.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := LoadOptions()
		if err != nil {
			return err
		}

		lineNumber, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid line number %q: %w", args[1], err)
		}

		h, err := host.NewFileHost(afero.NewOsFs(), args[0])
		if err != nil {
			return err
		}

		ctrl := tasksync.NewController(h, opts, nil)
		if err := ctrl.Activate(); err != nil {
			return err
		}
		defer ctrl.Deactivate()

		ctrl.HandleToggle(models.ViewSource, lineNumber)
		if !h.Dirty() {
			fmt.Printf("line %d is not a task, nothing toggled\n", lineNumber)
			return nil
		}
		return h.Persist()
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
