package contract

import (
	"os"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"
)

const (
	BypassTimeBudgetEnv  = "CONTRACT_BYPASS_TIME_BUDGET"  // BypassTimeBudgetEnv is the environment variable read by [Checker.LoadEnv].
	BypassTimeBudgetFlag = "contract-bypass-time-budget" // BypassTimeBudgetFlag is the flag registered by [Checker.BindFlags].
)

var (
	EnvTrue  = []string{"1", "yes", "true", "on"}  // EnvTrue are the values considered "true" by [Checker.LoadEnv], and can be changed.
	EnvFalse = []string{"0", "no", "false", "off"} // EnvFalse are the values considered "false" by [Checker.LoadEnv], and can be changed.
)

// LoadEnv sets the time budget bypass flag from the [BypassTimeBudgetEnv] environment variable.
// Values are trimmed and compared case-insensitive with [EnvTrue] and [EnvFalse].
// The flag is left alone if the variable isn't set, is empty, or isn't recognized.
//
// The [Default] Checker calls this when the package is initialized.
func (c *Checker) LoadEnv() *Checker {
	val := strings.ToLower(strings.TrimSpace(os.Getenv(BypassTimeBudgetEnv)))
	if len(val) == 0 {
		return c
	}
	for _, t := range EnvTrue {
		if val == strings.ToLower(t) {
			return c.BypassTimeBudget(true)
		}
	}
	for _, f := range EnvFalse {
		if val == strings.ToLower(f) {
			return c.BypassTimeBudget(false)
		}
	}
	return c
}

// BindFlags registers [BypassTimeBudgetFlag] in the given [flag.FlagSet].
// The flag writes through to this Checker when it's parsed, and may be given without a value to enable bypassing.
func (c *Checker) BindFlags(flags *flag.FlagSet) *Checker {
	if flags == nil {
		panic("nil flag set")
	}
	f := flags.VarPF(&bypassValue{c}, BypassTimeBudgetFlag, "", "Disables time budget contract checks")
	f.NoOptDefVal = "true"
	return c
}

var _ flag.Value = (*bypassValue)(nil)

type bypassValue struct {
	checker *Checker
}

func (v *bypassValue) String() string {
	if v.checker == nil {
		return "false"
	}
	return strconv.FormatBool(v.checker.TimeBudgetBypassed())
}

func (v *bypassValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	v.checker.BypassTimeBudget(b)
	return nil
}

func (v *bypassValue) Type() string {
	return "bool"
}
