package command

import (
	"github.com/brunoga/deep"
)

// Overrides is a partial dashboard build configuration. A zero field means
// the key is absent and the build pipeline falls back to its own default.
type Overrides struct {
	TemplateID         string             `json:"templateId,omitempty"         msgpack:"templateId,omitempty"         yaml:"templateId,omitempty"`
	ThemeID            string             `json:"themeId,omitempty"            msgpack:"themeId,omitempty"            yaml:"themeId,omitempty"`
	PrimaryMeasure     string             `json:"primaryMeasure,omitempty"     msgpack:"primaryMeasure,omitempty"     yaml:"primaryMeasure,omitempty"`
	TimeField          string             `json:"timeField,omitempty"          msgpack:"timeField,omitempty"          yaml:"timeField,omitempty"`
	TimeGrain          Grain              `json:"timeGrain,omitempty"          msgpack:"timeGrain,omitempty"          yaml:"timeGrain,omitempty"`
	FocusDimensions    []string           `json:"focusDimensions,omitempty"    msgpack:"focusDimensions,omitempty"    yaml:"focusDimensions,omitempty"`
	EnabledBlocks      map[BlockType]bool `json:"enabledBlocks,omitempty"      msgpack:"enabledBlocks,omitempty"      yaml:"enabledBlocks,omitempty"`
	BlockOrder         []string           `json:"blockOrder,omitempty"         msgpack:"blockOrder,omitempty"         yaml:"blockOrder,omitempty"`
	TopNLimit          int                `json:"topNLimit,omitempty"          msgpack:"topNLimit,omitempty"          yaml:"topNLimit,omitempty"`
	BreakdownDimension string             `json:"breakdownDimension,omitempty" msgpack:"breakdownDimension,omitempty" yaml:"breakdownDimension,omitempty"`
	CompareMode        CompareMode        `json:"compareMode,omitempty"        msgpack:"compareMode,omitempty"        yaml:"compareMode,omitempty"`
}

// Clone returns a deep copy. The copy shares no map or slice with o.
func (o Overrides) Clone() Overrides {
	return deep.MustCopy(o)
}

// IsZero reports whether no override is set.
func (o Overrides) IsZero() bool {
	return o.TemplateID == "" &&
		o.ThemeID == "" &&
		o.PrimaryMeasure == "" &&
		o.TimeField == "" &&
		o.TimeGrain == "" &&
		len(o.FocusDimensions) == 0 &&
		len(o.EnabledBlocks) == 0 &&
		len(o.BlockOrder) == 0 &&
		o.TopNLimit == 0 &&
		o.BreakdownDimension == "" &&
		o.CompareMode == ""
}

// BlockEnabled reports the recorded flag for block and whether one exists.
func (o Overrides) BlockEnabled(block BlockType) (enabled, set bool) {
	enabled, set = o.EnabledBlocks[block]

	return enabled, set
}

// merge returns a copy of prev with delta laid over it. Zero fields of delta
// are skipped. EnabledBlocks merges key by key; FocusDimensions and
// BlockOrder replace wholesale.
func merge(prev, delta Overrides) Overrides {
	out := prev.Clone()

	if delta.EnabledBlocks != nil {
		if out.EnabledBlocks == nil {
			out.EnabledBlocks = make(map[BlockType]bool, len(delta.EnabledBlocks))
		}

		for block, enabled := range delta.EnabledBlocks {
			out.EnabledBlocks[block] = enabled
		}
	}

	if delta.FocusDimensions != nil {
		out.FocusDimensions = append([]string(nil), delta.FocusDimensions...)
	}

	if delta.BlockOrder != nil {
		out.BlockOrder = append([]string(nil), delta.BlockOrder...)
	}

	setString(&out.TemplateID, delta.TemplateID)
	setString(&out.ThemeID, delta.ThemeID)
	setString(&out.PrimaryMeasure, delta.PrimaryMeasure)
	setString(&out.TimeField, delta.TimeField)
	setString(&out.BreakdownDimension, delta.BreakdownDimension)

	if delta.TimeGrain != "" {
		out.TimeGrain = delta.TimeGrain
	}

	if delta.CompareMode != "" {
		out.CompareMode = delta.CompareMode
	}

	if delta.TopNLimit != 0 {
		out.TopNLimit = delta.TopNLimit
	}

	return out
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
