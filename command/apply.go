package command

import (
	"fmt"
	"strings"
)

const (
	errInvalidCommand = "Invalid command"
	errUnknownCommand = "Unknown command"
)

// Result is the outcome of Apply. Err is set on failure and nothing else is.
// HelpText is set for help, together with an unchanged copy of the
// overrides. Otherwise Overrides holds the next state.
type Result struct {
	Overrides *Overrides `json:"overrides,omitempty"`
	Err       string     `json:"error,omitempty"`
	HelpText  string     `json:"helpText,omitempty"`
}

// Failed reports whether the command was rejected.
func (r Result) Failed() bool {
	return r.Err != ""
}

// IsHelp reports whether the result carries the help listing.
func (r Result) IsHelp() bool {
	return r.HelpText != ""
}

func failed(msg string) Result {
	return Result{Err: msg}
}

func applied(next Overrides) Result {
	return Result{Overrides: &next}
}

// Apply runs cmd against current and returns the next overrides, an error or
// the help listing. current is never modified. Values are re-checked here so
// a hand-built command that bypassed Parse cannot store an invalid value.
func Apply(current Overrides, cmd Command) Result {
	if cmd == nil || cmd.Type() == "" {
		return failed(errInvalidCommand)
	}

	switch typed := cmd.(type) {
	case Unknown:
		return applyUnknown(typed)
	case Help:
		next := current.Clone()

		return Result{Overrides: &next, HelpText: HelpText()}
	case Reset:
		return applied(Overrides{})
	case Theme:
		return applied(merge(current, Overrides{ThemeID: typed.Value}))
	case Template:
		return applied(merge(current, Overrides{TemplateID: typed.Value}))
	case Measure:
		return applied(merge(current, Overrides{PrimaryMeasure: typed.Value}))
	case Time:
		return applied(merge(current, Overrides{TimeField: typed.Value}))
	case SetGrain:
		grain, ok := ParseGrain(string(typed.Value))
		if !ok {
			return failed("Invalid grain")
		}

		return applied(merge(current, Overrides{TimeGrain: grain}))
	case Focus:
		return applied(merge(current, Overrides{FocusDimensions: nonBlank(typed.Dimensions)}))
	case AddBlock:
		return applyBlock(current, TypeAdd, typed.Block, true)
	case RemoveBlock:
		return applyBlock(current, TypeRemove, typed.Block, false)
	case Breakdown:
		return applied(merge(current, Overrides{BreakdownDimension: typed.Dimension}))
	case Compare:
		mode, ok := ParseCompareMode(string(typed.Mode))
		if !ok {
			return failed("Invalid compare mode")
		}

		return applied(merge(current, Overrides{CompareMode: mode}))
	case TopN:
		if !ValidTopN(typed.Limit) {
			return failed(fmt.Sprintf("topn must be %d–%d", MinTopN, MaxTopN))
		}

		return applied(merge(current, Overrides{TopNLimit: typed.Limit}))
	}

	return failed(fmt.Sprintf("Unhandled: %s", cmd.Type()))
}

func applyUnknown(cmd Unknown) Result {
	switch {
	case cmd.Err != "":
		return failed(cmd.Err)
	case cmd.Raw != "":
		return failed(cmd.Raw)
	default:
		return failed(errUnknownCommand)
	}
}

func applyBlock(current Overrides, verb Type, block BlockType, enabled bool) Result {
	if block == "" {
		return failed(fmt.Sprintf("%s: missing block type", verb))
	}

	flags := make(map[BlockType]bool, len(current.EnabledBlocks)+1)
	for name, flag := range current.EnabledBlocks {
		flags[name] = flag
	}

	flags[block] = enabled

	return applied(merge(current, Overrides{EnabledBlocks: flags}))
}

// nonBlank keeps the entries that are not blank. It returns nil when none
// remain so the focus delta is skipped.
func nonBlank(values []string) []string {
	var kept []string

	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			kept = append(kept, value)
		}
	}

	return kept
}
