package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-slug"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

const (
	DesignerDir  = ".designer"
	SessionsDir  = "sessions"
	ExportsDir   = "exports"
	SettingsFile = "settings.yaml"
)

var (
	ErrSessionNotFound = errors.New("files: session not found")
	ErrSessionExists   = errors.New("files: session already exists")
	ErrInvalidName     = errors.New("files: invalid session name")
)

func InitProjectStructure() error {
	dirs := []string{
		DesignerDir,
		filepath.Join(DesignerDir, SessionsDir),
		filepath.Join(DesignerDir, ExportsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ProjectExists reports whether the working directory holds a .designer tree
func ProjectExists() bool {
	info, err := os.Stat(DesignerDir)
	return err == nil && info.IsDir()
}

// ReadSettings loads .designer/settings.yaml, falling back to defaults when
// the file is missing
func ReadSettings() (*models.Settings, error) {
	path := filepath.Join(DesignerDir, SettingsFile)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var settings models.Settings
	if err := yaml.Unmarshal(content, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	settings.ApplyDefaults()

	return &settings, nil
}

func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(DesignerDir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := writeAtomic(filepath.Join(DesignerDir, SettingsFile), content); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// SessionFileName normalizes a display name into the file a session is
// stored under, e.g. "Login Form" becomes login-form.yaml
func SessionFileName(name string) (string, error) {
	name = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(name), ".yaml"))
	if name == "" {
		return "", ErrInvalidName
	}

	normalized, err := slug.Normalize(name)
	if err != nil || normalized == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return normalized + ".yaml", nil
}

// SessionPath returns the path of a stored session relative to the project root
func SessionPath(name string) (string, error) {
	file, err := SessionFileName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(DesignerDir, SessionsDir, file), nil
}

// LoadSession reads a session script from any path
func LoadSession(path string) (*models.Session, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, path)
		}
		return nil, fmt.Errorf("failed to read session %s: %w", path, err)
	}

	var session models.Session
	if err := yaml.Unmarshal(content, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session YAML %s: %w", path, err)
	}

	session.Path = path
	if session.Name == "" {
		session.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &session, nil
}

// ReadSession resolves name as a file path first, then as a stored session
func ReadSession(name string) (*models.Session, error) {
	if strings.ContainsRune(name, os.PathSeparator) || filepath.Ext(name) == ".yaml" || filepath.Ext(name) == ".yml" {
		if _, err := os.Stat(name); err == nil {
			return LoadSession(name)
		}
	}

	path, err := SessionPath(name)
	if err != nil {
		return nil, err
	}
	return LoadSession(path)
}

// WriteSession stores a session, keeping the path it was loaded from
func WriteSession(session *models.Session) error {
	if session.Path == "" {
		path, err := SessionPath(session.Name)
		if err != nil {
			return err
		}
		session.Path = path
	}

	if err := os.MkdirAll(filepath.Dir(session.Path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for session: %w", err)
	}

	content, err := yaml.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session to YAML: %w", err)
	}

	if err := writeAtomic(session.Path, content); err != nil {
		return fmt.Errorf("failed to write session %s: %w", session.Name, err)
	}

	return nil
}

// CreateSession writes an empty session and refuses to overwrite one
func CreateSession(name string, gridSize int) (*models.Session, error) {
	path, err := SessionPath(name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionExists, name)
	}

	session := &models.Session{
		Name:     strings.TrimSpace(name),
		Path:     path,
		GridSize: gridSize,
		Events:   []models.SessionEvent{},
	}
	if err := WriteSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// AppendEvents adds events to a stored session and writes it back
func AppendEvents(name string, events ...models.SessionEvent) (*models.Session, error) {
	session, err := ReadSession(name)
	if err != nil {
		return nil, err
	}
	session.Events = append(session.Events, events...)
	if err := WriteSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// DeleteSession removes a stored session
func DeleteSession(name string) error {
	path, err := SessionPath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSessionNotFound, name)
		}
		return fmt.Errorf("failed to delete session %s: %w", name, err)
	}
	return nil
}

// ListSessions returns the stored session file names, sorted
func ListSessions() ([]string, error) {
	sessionsPath := filepath.Join(DesignerDir, SessionsDir)

	entries, err := os.ReadDir(sessionsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			sessions = append(sessions, entry.Name())
		}
	}
	sort.Strings(sessions)

	return sessions, nil
}
