package content

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// NotFoundError indicates the content file does not exist or is unreadable.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("content file %s not found", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// MalformedError indicates the content file is not valid JSON or its
// top-level shape is not an array of sessions.
type MalformedError struct {
	Path string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("content file %s is malformed: %v", e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// loadCache caches parsed session lists by path for the process lifetime,
// so re-renders never re-read the file.
var loadCache sync.Map // map[string][]Session

// Load reads and parses the session list at path. Results are cached per
// path; a second Load of the same path returns the cached sessions without
// touching the filesystem.
//
// Parsing is lenient: absent optional fields keep their zero values and
// default downstream to empty or placeholder renderings. Only a missing
// file or a document whose top level is not a JSON array is an error.
func Load(path string) ([]Session, error) {
	if cached, ok := loadCache.Load(path); ok {
		return cached.([]Session), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}

	sessions, err := Parse(data)
	if err != nil {
		return nil, &MalformedError{Path: path, Err: err}
	}

	loadCache.Store(path, sessions)
	return sessions, nil
}

// Parse decodes a raw UTF-8 document into a session list, enforcing only
// the top-level shape.
func Parse(data []byte) ([]Session, error) {
	// Decode into a raw slice first so a top-level object or scalar is
	// reported as a shape error, not a field error.
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("expected a JSON array of sessions: %w", err)
	}

	sessions := make([]Session, 0, len(raw))
	for i, r := range raw {
		var s Session
		if err := json.Unmarshal(r, &s); err != nil {
			return nil, fmt.Errorf("session %d: %w", i, err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// ResetCache drops all cached session lists. Tests only.
func ResetCache() {
	loadCache.Range(func(k, _ any) bool {
		loadCache.Delete(k)
		return true
	})
}
