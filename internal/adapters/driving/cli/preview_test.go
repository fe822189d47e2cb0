package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubConfigSource satisfies ConfigSource without touching the filesystem.
type stubConfigSource struct {
	path string
}

func (s *stubConfigSource) Path() string { return s.path }

func (s *stubConfigSource) Reload() error { return nil }

func (s *stubConfigSource) Watch(ctx context.Context, _ func()) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestPreviewCmd_Use(t *testing.T) {
	assert.Equal(t, "preview [doc-id]", previewCmd.Use)
}

func TestPreviewCmd_ServiceNotConfigured(t *testing.T) {
	oldService := presenterService
	presenterService = nil
	defer func() {
		presenterService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"preview", "doc-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "presenter service not configured")
}

func TestPreviewCmd_ConfigNotConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	fieldConfig = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"preview", "doc-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "field configuration not configured")
}

func TestPreviewCmd_RendersThenStopsOnCancel(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	fieldConfig = &stubConfigSource{path: "/tmp/fields.toml"}

	buf := new(bytes.Buffer)
	cmd := previewCmd
	cmd.SetOut(buf)

	// Exercise the initial render directly; the watch loop blocks on
	// signals and is covered by the config adapter's own tests.
	err := previewOnce(context.Background(), cmd, "doc-1")

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Pride and Prejudice")
}
