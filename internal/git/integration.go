package git

import "fmt"

// Committer is the narrow surface the note flow needs from a git client.
// *Client satisfies it; tests substitute a fake.
type Committer interface {
	IsRepository() bool
	IsTracked(path string) bool
	Stage(paths ...string) error
	Commit(message string) error
}

// Integration runs the commit-on-note flow. Every failure is reported through
// notify and swallowed: note insertion must proceed whether or not the commit
// happened, so none of these paths return an error to the caller.
type Integration struct {
	client Committer
	notify func(string)
}

// NewIntegration creates an integration for the repository containing workDir.
// notify receives user-visible status messages and may not be nil.
func NewIntegration(workDir string, notify func(string)) *Integration {
	return &Integration{client: NewClient(workDir), notify: notify}
}

// NewIntegrationWithCommitter creates an integration with a custom committer
// (for testing).
func NewIntegrationWithCommitter(client Committer, notify func(string)) *Integration {
	return &Integration{client: client, notify: notify}
}

// CommitNote stages path and commits it with the note timestamp as the commit
// message. The flow is skipped silently when the file is not inside a
// repository or not tracked. The caller must have persisted pending edits
// before calling.
func (g *Integration) CommitNote(path, timestamp string) {
	if !g.client.IsRepository() || !g.client.IsTracked(path) {
		return
	}
	if err := g.client.Stage(path); err != nil {
		g.notify(fmt.Sprintf("git: staging failed: %v", err))
		return
	}
	if err := g.client.Commit(timestamp); err != nil {
		g.notify(fmt.Sprintf("git: commit failed: %v", err))
		return
	}
	g.notify(fmt.Sprintf("git: committed note %s", timestamp))
}
