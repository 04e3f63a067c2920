/*
Copyright © 2026 taskmirror authors
*/
package cmd

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/taskmirror/taskmirror/internal/git"
	"github.com/taskmirror/taskmirror/internal/host"
	tasksync "github.com/taskmirror/taskmirror/internal/sync"
	"github.com/taskmirror/taskmirror/internal/ui"
)

var openCmd = &cobra.Command{
	Use:   "open FILE",
	Short: "Open an interactive mirroring session for a markdown file",
	Long: `Open starts an interactive session: the document on the left, the
incomplete and completed task views on the right. The views re-sync on a
periodic schedule and whenever the file changes on disk.`,
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

		status := &ui.StatusBuffer{}
		h.OnNotify(status.Set)

		var integration *git.Integration
		if opts.GitIntegration {
			integration = git.NewIntegration(filepath.Dir(path), h.Notify)
		}

		ctrl := tasksync.NewController(h, opts, integration)
		if err := ctrl.Activate(); err != nil {
			return err
		}
		defer ctrl.Deactivate()

		watcher, err := host.NewWatcher(h, ctrl.HandleSourceEdit)
		if err != nil {
			h.Notify("taskmirror: " + err.Error())
		} else {
			watcher.Start()
			defer watcher.Stop()
		}

		model := ui.NewSessionModel(ctrl, h, opts, status)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run session: %w", err)
		}
		return h.Persist()
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
