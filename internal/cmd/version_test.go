package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/create-vue/internal/version"
)

func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestVersionCmd_Execute(t *testing.T) {
	inTempDir(t)

	out, err := executeCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "create-vue "+version.Version)
	assert.Contains(t, out, "Platform:")
}
