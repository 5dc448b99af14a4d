package contract

import (
	"io"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_LoadEnv(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		initial  bool
		expected bool
	}{
		{
			name:     "Unset",
			expected: false,
		},
		{
			name:     "Yes",
			value:    "YES",
			expected: true,
		},
		{
			name:     "Trimmed",
			value:    "\t on \n",
			expected: true,
		},
		{
			name:     "Off",
			value:    "off",
			initial:  true,
			expected: false,
		},
		{
			name:     "Not a bool",
			value:    "maybe",
			initial:  true,
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(BypassTimeBudgetEnv, tc.value)
			c := NewChecker().BypassTimeBudget(tc.initial).LoadEnv()
			assert.Equal(t, tc.expected, c.TimeBudgetBypassed())
		})
	}
}

func TestChecker_BindFlags(t *testing.T) {
	t.Run("No value", func(t *testing.T) {
		c := NewChecker()
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		c.BindFlags(fs)
		require.NoError(t, fs.Parse([]string{"--" + BypassTimeBudgetFlag, "arg"}))
		assert.True(t, c.TimeBudgetBypassed())
		assert.Equal(t, []string{"arg"}, fs.Args())
	})
	t.Run("Explicit false", func(t *testing.T) {
		c := NewChecker().BypassTimeBudget(true)
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		c.BindFlags(fs)
		require.NoError(t, fs.Parse([]string{"--" + BypassTimeBudgetFlag + "=false"}))
		assert.False(t, c.TimeBudgetBypassed())
	})
	t.Run("Invalid value", func(t *testing.T) {
		c := NewChecker()
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		c.BindFlags(fs)
		assert.Error(t, fs.Parse([]string{"--" + BypassTimeBudgetFlag + "=nope"}))
		assert.False(t, c.TimeBudgetBypassed())
	})
	t.Run("Default shown in usage", func(t *testing.T) {
		c := NewChecker()
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		c.BindFlags(fs)
		f := fs.Lookup(BypassTimeBudgetFlag)
		require.NotNil(t, f)
		assert.Equal(t, "false", f.DefValue)
	})
	t.Run("Nil flag set", func(t *testing.T) {
		assert.Panics(t, func() {
			NewChecker().BindFlags(nil)
		})
	})
}
