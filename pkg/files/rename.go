package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExtractDisplayName turns a session file name back into a display name
// Examples:
//
//	"login-form.yaml" → "Login Form"
//	"settings.yaml" → "Settings"
func ExtractDisplayName(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))

	parts := strings.Split(name, "-")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}

	return strings.Join(parts, " ")
}

// ValidateRename checks that a session can be renamed without clobbering
// another one
func ValidateRename(oldName, newName string) error {
	if strings.TrimSpace(newName) == "" {
		return fmt.Errorf("%w: new name cannot be empty", ErrInvalidName)
	}

	oldPath, err := SessionPath(oldName)
	if err != nil {
		return err
	}
	newPath, err := SessionPath(newName)
	if err != nil {
		return err
	}

	if _, err := os.Stat(oldPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, oldName)
	}

	if newPath != oldPath {
		if _, err := os.Stat(newPath); err == nil {
			return fmt.Errorf("%w: %s", ErrSessionExists, newName)
		}
	}

	return nil
}

// RenameSession moves a session to the file derived from newName and updates
// its display name. Exports are not touched.
func RenameSession(oldName, newName string) error {
	if err := ValidateRename(oldName, newName); err != nil {
		return err
	}

	session, err := ReadSession(oldName)
	if err != nil {
		return err
	}
	oldPath := session.Path

	newPath, err := SessionPath(newName)
	if err != nil {
		return err
	}

	session.Name = strings.TrimSpace(newName)
	session.Path = newPath
	if err := WriteSession(session); err != nil {
		return err
	}

	if newPath != oldPath {
		if err := os.Remove(oldPath); err != nil {
			// Roll back so the session is not duplicated
			os.Remove(newPath)
			return fmt.Errorf("failed to remove old session file: %w", err)
		}
	}

	return nil
}
