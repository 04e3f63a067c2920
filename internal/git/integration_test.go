package git

import (
	"errors"
	"strings"
	"testing"
)

// fakeCommitter scripts the Committer surface for integration-flow tests.
type fakeCommitter struct {
	repo      bool
	tracked   bool
	stageErr  error
	commitErr error

	staged    []string
	committed []string
}

func (f *fakeCommitter) IsRepository() bool         { return f.repo }
func (f *fakeCommitter) IsTracked(path string) bool { return f.tracked }

func (f *fakeCommitter) Stage(paths ...string) error {
	if f.stageErr != nil {
		return f.stageErr
	}
	f.staged = append(f.staged, paths...)
	return nil
}

func (f *fakeCommitter) Commit(message string) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = append(f.committed, message)
	return nil
}

func TestCommitNoteSuccess(t *testing.T) {
	fake := &fakeCommitter{repo: true, tracked: true}
	var messages []string
	integration := NewIntegrationWithCommitter(fake, func(msg string) { messages = append(messages, msg) })

	integration.CommitNote("notes.md", "2024-01-01 12:00:00")

	if len(fake.staged) != 1 || fake.staged[0] != "notes.md" {
		t.Errorf("staged = %v, want [notes.md]", fake.staged)
	}
	if len(fake.committed) != 1 || fake.committed[0] != "2024-01-01 12:00:00" {
		t.Errorf("committed = %v, want the timestamp message", fake.committed)
	}
	if len(messages) != 1 || !strings.Contains(messages[0], "2024-01-01 12:00:00") {
		t.Errorf("success notify should carry the timestamp, got %v", messages)
	}
}

func TestCommitNoteSkipsOutsideRepository(t *testing.T) {
	fake := &fakeCommitter{repo: false, tracked: true}
	integration := NewIntegrationWithCommitter(fake, func(string) { t.Error("no notify expected") })

	integration.CommitNote("notes.md", "ts")

	if len(fake.staged) != 0 {
		t.Error("nothing should be staged outside a repository")
	}
}

func TestCommitNoteSkipsUntrackedFile(t *testing.T) {
	fake := &fakeCommitter{repo: true, tracked: false}
	integration := NewIntegrationWithCommitter(fake, func(string) { t.Error("no notify expected") })

	integration.CommitNote("notes.md", "ts")

	if len(fake.staged) != 0 {
		t.Error("untracked file should not be staged")
	}
}

func TestCommitNoteStageFailure(t *testing.T) {
	fake := &fakeCommitter{repo: true, tracked: true, stageErr: errors.New("index locked")}
	var messages []string
	integration := NewIntegrationWithCommitter(fake, func(msg string) { messages = append(messages, msg) })

	integration.CommitNote("notes.md", "ts")

	if len(fake.committed) != 0 {
		t.Error("commit must be aborted when staging fails")
	}
	if len(messages) != 1 || !strings.Contains(messages[0], "staging failed") {
		t.Errorf("expected a staging-failure notify, got %v", messages)
	}
}

func TestCommitNoteCommitFailure(t *testing.T) {
	fake := &fakeCommitter{repo: true, tracked: true, commitErr: errors.New("nothing to commit")}
	var messages []string
	integration := NewIntegrationWithCommitter(fake, func(msg string) { messages = append(messages, msg) })

	integration.CommitNote("notes.md", "ts")

	if len(messages) != 1 || !strings.Contains(messages[0], "commit failed") {
		t.Errorf("expected a commit-failure notify, got %v", messages)
	}
}
