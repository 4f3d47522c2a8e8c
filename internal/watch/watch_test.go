package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNext_ReportsWatchedFileOnly(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "page.toml")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(watched, []byte("a"), 0o644))

	w, err := New([]string{watched})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan string, 1)
	go func() {
		path, err := w.Next(ctx)
		if err != nil {
			path = ""
		}
		done <- path
	}()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(watched, []byte("b"), 0o644))

	select {
	case path := <-done:
		abs, _ := filepath.Abs(watched)
		got, _ := filepath.Abs(path)
		assert.Equal(t, abs, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestNext_ContextCancel(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "x.json")
	require.NoError(t, os.WriteFile(f, []byte("[]"), 0o644))

	w, err := New([]string{f})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = w.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNext_AfterClose(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "x.json")
	require.NoError(t, os.WriteFile(f, []byte("[]"), 0o644))

	w, err := New([]string{f})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = w.Next(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestLoop_StopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "x.json")
	require.NoError(t, os.WriteFile(f, []byte("[]"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan string, 4)
	errc := make(chan error, 1)
	go func() {
		errc <- Loop(ctx, []string{f}, func(path string) { changes <- path })
	}()

	// give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(f, []byte("[{}]"), 0o644))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
	cancel()
	assert.NoError(t, <-errc)
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "nope", "page.toml")})
	assert.Error(t, err)
}
