/*
Copyright © 2026 taskmirror authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/taskmirror/taskmirror/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .taskmirror.yaml in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ConfigName + ".yaml"
		if err := config.WriteDefault(afero.NewOsFs(), path); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
