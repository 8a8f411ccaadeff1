package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPCmd_HasServe(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range mcpCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "serve")
}

func TestMCPServeCmd_HasPortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "port flag should exist")
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestNewMCPServer(t *testing.T) {
	t.Run("builds from services", func(t *testing.T) {
		_, cleanup := setupTestServices()
		defer cleanup()

		server, err := newMCPServer()
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("fails without services", func(t *testing.T) {
		SetFactory(nil)

		server, err := newMCPServer()
		require.Error(t, err)
		assert.Nil(t, server)
	})
}
