package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ParsesSessions(t *testing.T) {
	t.Cleanup(ResetCache)

	sessions, err := Load(filepath.Join("testdata", "learning.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(sessions) != 2 {
		t.Fatalf("len(sessions) = %d, want 2", len(sessions))
	}
	if sessions[0].ID != "core-backend" {
		t.Errorf("sessions[0].ID = %q, want core-backend", sessions[0].ID)
	}
	if len(sessions[0].Topics) != 2 {
		t.Errorf("len(topics) = %d, want 2", len(sessions[0].Topics))
	}
	if sessions[0].Topics[0].Difficulty != DifficultyEasy {
		t.Errorf("difficulty = %q, want Easy", sessions[0].Topics[0].Difficulty)
	}
	if len(sessions[1].Topics) != 0 {
		t.Errorf("empty session should have no topics, got %d", len(sessions[1].Topics))
	}
}

func TestLoad_CachesByPath(t *testing.T) {
	t.Cleanup(ResetCache)

	dir := t.TempDir()
	path := filepath.Join(dir, "learning.json")
	doc := `[{"session_id":"s1","session_title":"One","topics":[]}]`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	first, err := Load(path)
	if err != nil {
		t.Fatalf("first Load failed: %v", err)
	}

	// Remove the file: a cache hit must not touch the filesystem.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	second, err := Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if len(second) != len(first) || second[0].ID != first[0].ID {
		t.Errorf("cached result differs: %v vs %v", second, first)
	}
}

func TestLoad_NotFound(t *testing.T) {
	t.Cleanup(ResetCache)

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	t.Cleanup(ResetCache)

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)

	var mf *MalformedError
	if !errors.As(err, &mf) {
		t.Fatalf("expected MalformedError, got %v", err)
	}
}

func TestLoad_TopLevelObjectIsMalformed(t *testing.T) {
	t.Cleanup(ResetCache)

	dir := t.TempDir()
	path := filepath.Join(dir, "object.json")
	if err := os.WriteFile(path, []byte(`{"session_id":"s1"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)

	var mf *MalformedError
	if !errors.As(err, &mf) {
		t.Fatalf("expected MalformedError for top-level object, got %v", err)
	}
}

func TestParse_LenientOnMissingFields(t *testing.T) {
	doc := `[{"session_id":"s1","session_title":"One","topics":[{"topic_id":"t1","topic_title":"T"}]}]`

	sessions, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	topic := sessions[0].Topics[0]
	if topic.ContentMarkdown != "" {
		t.Errorf("missing content should default to empty, got %q", topic.ContentMarkdown)
	}
	if topic.Difficulty.Known() {
		t.Errorf("missing difficulty should be unknown, got %q", topic.Difficulty)
	}
}
