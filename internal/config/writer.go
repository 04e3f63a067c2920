package config

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v3"

	"github.com/taskmirror/taskmirror/models"
)

const fileHeader = `# taskmirror configuration
# width:           columns used by the task-views panel
# top_height:      rows used by the incomplete-tasks view
# update_interval: milliseconds between periodic re-sync ticks
# git_integration: commit the document when a note is created
`

// WriteDefault writes a commented default config file at path. It refuses to
// overwrite an existing file.
func WriteDefault(fs afero.Fs, path string) error {
	if _, err := fs.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	body, err := yaml.Marshal(models.DefaultOptions())
	if err != nil {
		return fmt.Errorf("marshal defaults: %w", err)
	}
	content := append([]byte(fileHeader), body...)
	if err := afero.WriteFile(fs, path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
