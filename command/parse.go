package command

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const errEmptyCommand = "Empty command"

// Parse tokenizes input and turns it into a Command. It never fails: input
// that does not match the grammar yields an Unknown carrying the raw text and
// a message.
func Parse(input string) Command {
	tokens := Tokenize(input)
	if len(tokens) == 0 {
		return Unknown{Raw: input, Err: errEmptyCommand}
	}

	verb := strings.ToLower(tokens[0])
	args := tokens[1:]

	switch Type(verb) {
	case TypeHelp:
		return Help{}
	case TypeReset:
		return Reset{}
	case TypeTheme:
		return Theme{Value: freeText(args)}
	case TypeTemplate:
		return Template{Value: freeText(args)}
	case TypeMeasure:
		return Measure{Value: freeText(args)}
	case TypeTime:
		return Time{Value: freeText(args)}
	case TypeGrain:
		return parseGrain(input, args)
	case TypeFocus:
		return Focus{Dimensions: splitDimensions(args)}
	case TypeAdd, TypeRemove:
		return parseBlock(input, Type(verb), args)
	case TypeBreakdown:
		return parseBreakdown(input, args)
	case TypeCompare:
		return parseCompare(input, args)
	case TypeTopN:
		return parseTopN(input, args)
	case TypeUnknown:
	}

	return Unknown{Raw: input, Err: fmt.Sprintf("Unknown command: %s. Type \"help\" for commands.", verb)}
}

// freeText joins the arguments with single spaces. When the joined text is
// blank the first argument is kept verbatim so a quoted "  " survives.
func freeText(args []string) string {
	joined := strings.TrimSpace(strings.Join(args, " "))
	if joined == "" && len(args) > 0 {
		return args[0]
	}

	return joined
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}

func parseGrain(raw string, args []string) Command {
	grain, ok := ParseGrain(firstArg(args))
	if !ok {
		return Unknown{Raw: raw, Err: "grain must be one of: " + grainNames()}
	}

	return SetGrain{Value: grain}
}

func parseCompare(raw string, args []string) Command {
	mode, ok := ParseCompareMode(firstArg(args))
	if !ok {
		return Unknown{Raw: raw, Err: "compare must be one of: " + compareModeNames()}
	}

	return Compare{Mode: mode}
}

// splitDimensions treats every comma, quoted or not, as a separator and drops
// blank entries.
func splitDimensions(args []string) []string {
	parts := strings.Split(strings.Join(args, ","), ",")
	dims := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			dims = append(dims, part)
		}
	}

	return dims
}

func parseBlock(raw string, verb Type, args []string) Command {
	name := strings.TrimSpace(strings.ToLower(firstArg(args)))
	if name == "" {
		return Unknown{Raw: raw, Err: fmt.Sprintf("%s requires a block name", verb)}
	}

	block, ok := ResolveBlock(name)
	if !ok {
		return Unknown{Raw: raw, Err: fmt.Sprintf("%s: unknown block. Use one of: %s", verb, aliasNames())}
	}

	if verb == TypeRemove {
		return RemoveBlock{Block: block}
	}

	return AddBlock{Block: block}
}

func parseBreakdown(raw string, args []string) Command {
	if len(args) > 0 && strings.ToLower(args[0]) == "by" {
		args = args[1:]
	}

	dimension := freeText(args)
	if dimension == "" {
		return Unknown{Raw: raw, Err: "breakdown by <columnName>"}
	}

	return Breakdown{Dimension: dimension}
}

func parseTopN(raw string, args []string) Command {
	limit, ok := leadingInt(firstArg(args))
	if !ok || !ValidTopN(limit) {
		return Unknown{Raw: raw, Err: fmt.Sprintf("topn requires a number between %d and %d", MinTopN, MaxTopN)}
	}

	return TopN{Limit: limit}
}

// leadingInt reads an optionally signed run of decimal digits at the start of
// value, after leading whitespace, and ignores whatever follows it. "12px"
// reads as 12 and "3.9" as 3. It fails when no digit is present or the number
// overflows int.
func leadingInt(value string) (int, bool) {
	value = strings.TrimLeftFunc(value, unicode.IsSpace)

	end := 0
	if end < len(value) && (value[end] == '+' || value[end] == '-') {
		end++
	}

	digitsStart := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return 0, false
	}

	number, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0, false
	}

	return number, true
}
