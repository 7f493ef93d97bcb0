package command

// Type names a command variant.
type Type string

// Closed set of command types.
const (
	TypeHelp      Type = "help"
	TypeReset     Type = "reset"
	TypeTheme     Type = "theme"
	TypeTemplate  Type = "template"
	TypeMeasure   Type = "measure"
	TypeTime      Type = "time"
	TypeGrain     Type = "grain"
	TypeFocus     Type = "focus"
	TypeAdd       Type = "add"
	TypeRemove    Type = "remove"
	TypeBreakdown Type = "breakdown"
	TypeCompare   Type = "compare"
	TypeTopN      Type = "topn"
	TypeUnknown   Type = "unknown"
)

// Types returns every command type, unknown last.
func Types() []Type {
	return []Type{
		TypeHelp, TypeReset, TypeTheme, TypeTemplate, TypeMeasure, TypeTime, TypeGrain,
		TypeFocus, TypeAdd, TypeRemove, TypeBreakdown, TypeCompare, TypeTopN, TypeUnknown,
	}
}

// Command is one parsed command line.
type Command interface {
	Type() Type
}

// Help asks for the command listing.
type Help struct{}

// Reset discards every override.
type Reset struct{}

// Theme sets the UI theme id.
type Theme struct{ Value string }

// Template sets the dashboard template id.
type Template struct{ Value string }

// Measure sets the primary measure column.
type Measure struct{ Value string }

// Time sets the time column.
type Time struct{ Value string }

// SetGrain sets the time aggregation grain.
type SetGrain struct{ Value Grain }

// Focus sets the prioritized dimensions.
type Focus struct{ Dimensions []string }

// AddBlock enables a block.
type AddBlock struct{ Block BlockType }

// RemoveBlock disables a block.
type RemoveBlock struct{ Block BlockType }

// Breakdown sets the breakdown dimension.
type Breakdown struct{ Dimension string }

// Compare sets the compare periods mode.
type Compare struct{ Mode CompareMode }

// TopN sets the default Top N limit.
type TopN struct{ Limit int }

// Unknown is a line that could not be parsed. Err says why.
type Unknown struct {
	Raw string
	Err string
}

func (Help) Type() Type        { return TypeHelp }
func (Reset) Type() Type       { return TypeReset }
func (Theme) Type() Type       { return TypeTheme }
func (Template) Type() Type    { return TypeTemplate }
func (Measure) Type() Type     { return TypeMeasure }
func (Time) Type() Type        { return TypeTime }
func (SetGrain) Type() Type    { return TypeGrain }
func (Focus) Type() Type       { return TypeFocus }
func (AddBlock) Type() Type    { return TypeAdd }
func (RemoveBlock) Type() Type { return TypeRemove }
func (Breakdown) Type() Type   { return TypeBreakdown }
func (Compare) Type() Type     { return TypeCompare }
func (TopN) Type() Type        { return TypeTopN }
func (Unknown) Type() Type     { return TypeUnknown }

// Wire is the flat JSON form of a command: a type tag plus an optional value,
// and raw/error for unknown commands.
type Wire struct {
	Type  Type   `json:"type"`
	Value any    `json:"value,omitempty"`
	Raw   string `json:"raw,omitempty"`
	Error string `json:"error,omitempty"`
}

// Describe converts a command to its wire form. A nil command yields an
// unknown wire value.
func Describe(cmd Command) Wire {
	switch typed := cmd.(type) {
	case nil:
		return Wire{Type: TypeUnknown, Error: errInvalidCommand}
	case Theme:
		return Wire{Type: TypeTheme, Value: typed.Value}
	case Template:
		return Wire{Type: TypeTemplate, Value: typed.Value}
	case Measure:
		return Wire{Type: TypeMeasure, Value: typed.Value}
	case Time:
		return Wire{Type: TypeTime, Value: typed.Value}
	case SetGrain:
		return Wire{Type: TypeGrain, Value: typed.Value}
	case Focus:
		dims := typed.Dimensions
		if dims == nil {
			dims = []string{}
		}

		return Wire{Type: TypeFocus, Value: dims}
	case AddBlock:
		return Wire{Type: TypeAdd, Value: typed.Block}
	case RemoveBlock:
		return Wire{Type: TypeRemove, Value: typed.Block}
	case Breakdown:
		return Wire{Type: TypeBreakdown, Value: typed.Dimension}
	case Compare:
		return Wire{Type: TypeCompare, Value: typed.Mode}
	case TopN:
		return Wire{Type: TypeTopN, Value: typed.Limit}
	case Unknown:
		return Wire{Type: TypeUnknown, Raw: typed.Raw, Error: typed.Err}
	default:
		return Wire{Type: cmd.Type()}
	}
}
