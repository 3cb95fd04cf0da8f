package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"eventboard/internal/domain"
)

// sessionFile is the on-disk layout: session id -> key -> value.
type sessionFile struct {
	Sessions map[string]map[string]string `yaml:"sessions"`
}

type sessionRepository struct {
	mu   sync.Mutex
	path string
}

// NewSessionRepository returns a SessionStore backed by a YAML file at path.
// The file is created on first write with 0600 permissions.
func NewSessionRepository(path string) domain.SessionStore {
	return &sessionRepository{path: path}
}

func (r *sessionRepository) Get(_ context.Context, sessionID, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, err := r.load()
	if err != nil {
		return "", err
	}
	v, ok := data.Sessions[sessionID][key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (r *sessionRepository) Put(_ context.Context, sessionID, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, err := r.load()
	if err != nil {
		return err
	}
	if data.Sessions[sessionID] == nil {
		data.Sessions[sessionID] = make(map[string]string)
	}
	data.Sessions[sessionID][key] = value
	return r.save(data)
}

func (r *sessionRepository) load() (*sessionFile, error) {
	data := &sessionFile{}
	raw, err := os.ReadFile(r.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read session file: %w", err)
	default:
		if err := yaml.Unmarshal(raw, data); err != nil {
			return nil, fmt.Errorf("decode session file: %w", err)
		}
	}
	if data.Sessions == nil {
		data.Sessions = make(map[string]map[string]string)
	}
	return data, nil
}

// save writes through a temp file in the same directory and renames it over the target.
func (r *sessionRepository) save(data *sessionFile) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".eventboard-session-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("chmod session file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("rename session file: %w", err)
	}
	return nil
}
