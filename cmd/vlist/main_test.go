package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vlist/internal/cli"
	"github.com/rshade/vlist/pkg/version"
)

func TestRun(t *testing.T) {
	// run() executes against os.Args, so only check that it is wired.
	t.Run("run function exists", func(_ *testing.T) {
		_ = run
	})
}

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		v := version.GetVersion()
		assert.NotEmpty(t, v)

		_, err := version.Parse(v)
		require.NoError(t, err, "built-in version must be valid semver")
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		require.NotNil(t, root)
		assert.NotEmpty(t, root.Use)
		assert.Equal(t, version.GetVersion(), root.Version)
	})
}
