package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/podassess/internal/models"
	"github.com/harrison/podassess/internal/session"
)

// seedSessions writes a config plus a session database holding one
// draft and one completed run.
func seedSessions(t *testing.T) (cfgPath string, draft, done *session.Session) {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sessions.db")
	cfgPath = filepath.Join(dir, "config.yaml")
	content := "log_level: error\nsession_db: " + dbPath + "\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	store, err := session.NewStore(dbPath)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	defer store.Close()

	draft = session.New("Apollo", "2026-Q3")
	draft.Answers[1] = models.Answer{Raw: "4", Score: models.ScoreValue(4), Type: models.TypeScale}
	draft.CurrentIndex = 1

	done = session.New("Borealis", "2026-Q2")
	done.Completed = true
	done.OverallScore = 4.25

	for _, s := range []*session.Session{draft, done} {
		if err := store.Save(s); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}
	return cfgPath, draft, done
}

// TestSessionsList verifies drafts and completed runs render their state
func TestSessionsList(t *testing.T) {
	cfg, draft, done := seedSessions(t)

	out, err := execute(t, "sessions", "--config", cfg)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out, draft.ID) || !strings.Contains(out, "draft (1 answered)") {
		t.Errorf("output = %q, want draft entry", out)
	}
	if !strings.Contains(out, done.ID) || !strings.Contains(out, "completed, overall 4.25") {
		t.Errorf("output = %q, want completed entry", out)
	}
}

// TestSessionsListEmpty verifies the empty database message
func TestSessionsListEmpty(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, "sessions", "--config", cfg)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "no sessions recorded") {
		t.Errorf("output = %q, want empty message", out)
	}
}

// TestSessionsShow verifies the detail view includes answers
func TestSessionsShow(t *testing.T) {
	cfg, draft, _ := seedSessions(t)

	out, err := execute(t, "sessions", "show", draft.ID, "--config", cfg)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out, "Session "+draft.ID) {
		t.Error("output missing session header")
	}
	if !strings.Contains(out, "Pod:      Apollo") {
		t.Error("output missing pod name")
	}
	if !strings.Contains(out, "Progress: 1 answered") {
		t.Error("output missing draft progress")
	}
	if !strings.Contains(out, "  1  4  (4)") {
		t.Errorf("output = %q, want answer row", out)
	}
}

// TestSessionsShowUnknown verifies unknown ids fail
func TestSessionsShowUnknown(t *testing.T) {
	cfg := writeConfig(t)
	if _, err := execute(t, "sessions", "show", "no-such-id", "--config", cfg); err == nil {
		t.Error("Execute() error = nil, want not found")
	}
}

// TestSessionsDelete verifies single-session removal
func TestSessionsDelete(t *testing.T) {
	cfg, draft, done := seedSessions(t)

	out, err := execute(t, "sessions", "delete", draft.ID, "--config", cfg)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "deleted session "+draft.ID) {
		t.Errorf("output = %q, want delete confirmation", out)
	}

	out, err = execute(t, "sessions", "--config", cfg)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.Contains(out, draft.ID) {
		t.Error("deleted session still listed")
	}
	if !strings.Contains(out, done.ID) {
		t.Error("unrelated session removed")
	}
}

// TestSessionsClear verifies only drafts are cleared
func TestSessionsClear(t *testing.T) {
	cfg, draft, done := seedSessions(t)

	out, err := execute(t, "sessions", "clear", "--config", cfg)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "cleared 1 draft sessions") {
		t.Errorf("output = %q, want clear count", out)
	}

	out, err = execute(t, "sessions", "--config", cfg)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.Contains(out, draft.ID) {
		t.Error("draft survived clear")
	}
	if !strings.Contains(out, done.ID) {
		t.Error("completed session removed by clear")
	}
}
