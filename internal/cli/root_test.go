package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "motiondump", cmd.Name())
	assert.Contains(t, cmd.Long, "placeholder")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	subCmd, _, err := cmd.Find([]string{"demo"})
	require.NoError(t, err)
	require.NotNil(t, subCmd)
	assert.Equal(t, "demo", subCmd.Name())
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestDumpFlags(t *testing.T) {
	cmd := NewRootCommand()

	configFlag := cmd.Flags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)

	// Defaults live in config.Default so that an unset flag never hides the
	// config file's value.
	for _, name := range []string{"report", "out-dir", "placeholder", "db"} {
		t.Run(name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(name)
			require.NotNil(t, flag)
			assert.Equal(t, "", flag.DefValue)
		})
	}
	for _, name := range []string{"plot-width", "plot-height"} {
		t.Run(name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(name)
			require.NotNil(t, flag)
			assert.Equal(t, "0", flag.DefValue)
		})
	}
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))
	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
}

func TestResolveConfigPrecedence(t *testing.T) {
	opts := &RootOptions{}
	opts.Overrides.Placeholder = "slot"

	cfg, err := opts.resolveConfig()
	require.NoError(t, err)
	assert.Equal(t, "slot", cfg.Placeholder)
	assert.Equal(t, "motion.html", cfg.Report)
	assert.Equal(t, ".", cfg.OutDir)
}
