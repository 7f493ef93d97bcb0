package command

import "strings"

//nolint:gochecknoglobals // static help listing.
var helpLines = []string{
	"help — Show this list",
	"reset — Clear all overrides",
	"theme <id> — Set UI theme",
	"template <id> — Set template (general, govcon, ecommerce, saas)",
	"measure <column> — Primary measure",
	"time <column> — Time column",
	"grain day|week|month — Time aggregation",
	"focus <col1,col2,...> — Prioritize dimensions",
	"add <block> — Enable block (" + aliasNames() + ")",
	"remove <block> — Disable block",
	"breakdown by <column> — Breakdown dimension",
	"compare half|last30|last90 — Compare periods",
	"topn <1-100> — Top N limit",
}

// HelpLines returns the help listing, one line per verb.
func HelpLines() []string {
	return append([]string(nil), helpLines...)
}

// HelpText returns the help listing joined by newlines.
func HelpText() string {
	return strings.Join(helpLines, "\n")
}
