// Package command implements the deterministic dashboard command language.
//
// A line of user input such as "grain month", "add map" or "topn 20" is split
// into tokens, parsed into a typed Command and applied to the current
// Overrides to produce the next Overrides. No step performs I/O and no step
// panics on bad input: every failure is reported as data, either as an
// Unknown command from Parse or as Result.Err from Apply.
//
// # Grammar
//
//	help
//	reset
//	theme <id>
//	template <id>
//	measure <column>
//	time <column>
//	grain day|week|month
//	focus <col1,col2,...>
//	add <block>
//	remove <block>
//	breakdown [by] <column>
//	compare half|last30|last90
//	topn <1-100>
//
// The verb is matched case-insensitively. Arguments keep their case unless a
// rule lowercases them (grain, compare and block aliases).
//
// # State
//
// Overrides is owned by the caller. Apply never mutates its input; it returns
// a fresh copy with the command's delta merged in.
package command
