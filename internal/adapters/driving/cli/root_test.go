package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "vetrina", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "render")
	assert.Contains(t, commandNames, "heading")
	assert.Contains(t, commandNames, "title")
	assert.Contains(t, commandNames, "links")
	assert.Contains(t, commandNames, "document")
	assert.Contains(t, commandNames, "preview")
	assert.Contains(t, commandNames, "view")
	assert.Contains(t, commandNames, "version")
}

func TestRootCmd_WiresServicesBeforeRun(t *testing.T) {
	oldWire := wire
	oldPresenter := presenterService
	presenterService = nil
	defer func() {
		wire = oldWire
		presenterService = oldPresenter
	}()

	wired := false
	SetWire(func() error {
		wired = true
		return nil
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.True(t, wired)
}

func TestRootCmd_SkipsWiringWhenServicesInjected(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	oldWire := wire
	defer func() { wire = oldWire }()

	SetWire(func() error {
		t.Fatal("wire called despite injected services")
		return nil
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
}
