package command

import (
	"strings"
)

// Grain is the time bucketing granularity.
type Grain string

// Valid grains.
const (
	GrainDay   Grain = "day"
	GrainWeek  Grain = "week"
	GrainMonth Grain = "month"
)

// CompareMode selects how two periods are compared.
type CompareMode string

// Valid compare modes.
const (
	CompareHalf   CompareMode = "half"
	CompareLast30 CompareMode = "last30"
	CompareLast90 CompareMode = "last90"
)

// BlockType is the engine name of a dashboard block.
type BlockType string

// Block types reachable through aliases.
const (
	TrendBlock          BlockType = "TrendBlock"
	DriverBlock         BlockType = "DriverBlock"
	GeoBlock            BlockType = "GeoBlock"
	TopNBlock           BlockType = "TopNBlock"
	ComparePeriodsBlock BlockType = "ComparePeriodsBlock"
	DataQualityBlock    BlockType = "DataQualityBlock"
	DetailsTableBlock   BlockType = "DetailsTableBlock"
	AnomalyBlock        BlockType = "AnomalyBlock"
	GeoLikeBlock        BlockType = "GeoLikeBlock"
)

// Minimum and maximum accepted Top N limit.
const (
	MinTopN = 1
	MaxTopN = 100
)

// BlockAlias maps a user-facing block name to its engine type.
type BlockAlias struct {
	Alias string
	Block BlockType
}

//nolint:gochecknoglobals // read-only lookup tables.
var (
	validGrains       = []Grain{GrainDay, GrainWeek, GrainMonth}
	validCompareModes = []CompareMode{CompareHalf, CompareLast30, CompareLast90}

	blockAliases = []BlockAlias{
		{Alias: "trend", Block: TrendBlock},
		{Alias: "drivers", Block: DriverBlock},
		{Alias: "map", Block: GeoBlock},
		{Alias: "geomap", Block: GeoBlock},
		{Alias: "distribution", Block: TopNBlock},
		{Alias: "compare", Block: ComparePeriodsBlock},
		{Alias: "quality", Block: DataQualityBlock},
		{Alias: "details", Block: DetailsTableBlock},
		{Alias: "anomaly", Block: AnomalyBlock},
		{Alias: "geolike", Block: GeoLikeBlock},
	}

	blockByAlias = func() map[string]BlockType {
		index := make(map[string]BlockType, len(blockAliases))
		for _, entry := range blockAliases {
			index[entry.Alias] = entry.Block
		}

		return index
	}()
)

// Grains returns the valid grains in display order.
func Grains() []Grain {
	return append([]Grain(nil), validGrains...)
}

// CompareModes returns the valid compare modes in display order.
func CompareModes() []CompareMode {
	return append([]CompareMode(nil), validCompareModes...)
}

// Blocks returns the block alias table in its fixed order.
func Blocks() []BlockAlias {
	return append([]BlockAlias(nil), blockAliases...)
}

// ParseGrain lowercases value and reports whether it names a valid grain.
func ParseGrain(value string) (Grain, bool) {
	grain := Grain(strings.ToLower(value))
	for _, valid := range validGrains {
		if grain == valid {
			return grain, true
		}
	}

	return "", false
}

// ParseCompareMode lowercases value and reports whether it names a valid mode.
func ParseCompareMode(value string) (CompareMode, bool) {
	mode := CompareMode(strings.ToLower(value))
	for _, valid := range validCompareModes {
		if mode == valid {
			return mode, true
		}
	}

	return "", false
}

// ResolveBlock looks up a block alias, ignoring case and surrounding space.
func ResolveBlock(alias string) (BlockType, bool) {
	block, ok := blockByAlias[strings.ToLower(strings.TrimSpace(alias))]

	return block, ok
}

// ValidTopN reports whether n is an accepted Top N limit.
func ValidTopN(n int) bool {
	return n >= MinTopN && n <= MaxTopN
}

func grainNames() string {
	names := make([]string, len(validGrains))
	for i, grain := range validGrains {
		names[i] = string(grain)
	}

	return strings.Join(names, ", ")
}

func compareModeNames() string {
	names := make([]string, len(validCompareModes))
	for i, mode := range validCompareModes {
		names[i] = string(mode)
	}

	return strings.Join(names, ", ")
}

func aliasNames() string {
	names := make([]string, len(blockAliases))
	for i, entry := range blockAliases {
		names[i] = entry.Alias
	}

	return strings.Join(names, ", ")
}
