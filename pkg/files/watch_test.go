package files

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCoalescesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "login.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(path, []byte("events: []\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, 50*time.Millisecond, func() { calls.Add(1) })
	}()

	// Give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(other, []byte("x"), 0644))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("events: []\n"), 0644))
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 20*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing", "s.yaml"), 0, func() {})
	assert.Error(t, err)
}
