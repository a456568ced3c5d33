package files

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits for a burst of writes to settle
const DefaultDebounce = 150 * time.Millisecond

// Watch calls onChange after path is written, created, or replaced, once per
// burst of events. The parent directory is watched so editors that save by
// rename are seen too. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	debounceTimer := time.NewTimer(debounce)
	debounceTimer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			debounceTimer.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = true
			debounceTimer.Reset(debounce)

		case <-debounceTimer.C:
			if pending {
				pending = false
				onChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("file watcher failed: %w", err)
		}
	}
}
