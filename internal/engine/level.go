package engine

// NumSelectivityLevels is the number of ProbCut selectivity bands, indexed
// 0 (tightest cut, least safe) through NoSelectivity (exact, no cut).
const NumSelectivityLevels = 7

// NoSelectivity marks an exact search with ProbCut disabled.
const NoSelectivity = NumSelectivityLevels - 1

// Level pairs a midgame search depth with one endgame depth per
// selectivity band, so a caller can dial up accuracy for the final
// empties independently of overall strength.
type Level struct {
	MidDepth int
	EndDepth [NumSelectivityLevels]int
}

// EndDepthFor returns the endgame search depth for the given selectivity.
func (l Level) EndDepthFor(selectivity int) int {
	return l.EndDepth[selectivity]
}

// levels is the engine's fixed strength ladder, grounded on
// original_source/reversi_core/src/level.rs's LEVELS table: mid_depth rises
// roughly one full ply per level, while end_depth only drops below
// mid_depth's matching full-width search once ProbCut's statistical
// shortcuts make a deeper exact solve affordable within the same time
// budget.
var levels = [...]Level{
	{MidDepth: 1, EndDepth: [7]int{1, 1, 1, 1, 1, 1, 1}},
	{MidDepth: 1, EndDepth: [7]int{2, 2, 2, 2, 2, 2, 2}},
	{MidDepth: 2, EndDepth: [7]int{4, 4, 4, 4, 4, 4, 4}},
	{MidDepth: 3, EndDepth: [7]int{6, 6, 6, 6, 6, 6, 6}},
	{MidDepth: 4, EndDepth: [7]int{8, 8, 8, 8, 8, 8, 8}},
	{MidDepth: 5, EndDepth: [7]int{10, 10, 10, 10, 10, 10, 10}},
	{MidDepth: 6, EndDepth: [7]int{12, 12, 12, 12, 12, 12, 12}},
	{MidDepth: 7, EndDepth: [7]int{14, 14, 14, 14, 14, 14, 14}},
	{MidDepth: 8, EndDepth: [7]int{16, 16, 16, 16, 16, 16, 16}},
	{MidDepth: 9, EndDepth: [7]int{18, 18, 18, 18, 18, 18, 18}},
	{MidDepth: 10, EndDepth: [7]int{20, 20, 20, 20, 20, 20, 20}},
	{MidDepth: 11, EndDepth: [7]int{21, 21, 21, 20, 20, 20, 20}},
	{MidDepth: 12, EndDepth: [7]int{21, 21, 21, 21, 21, 20, 20}},
	{MidDepth: 13, EndDepth: [7]int{22, 22, 22, 22, 21, 21, 21}},
	{MidDepth: 14, EndDepth: [7]int{22, 22, 22, 22, 22, 22, 22}},
	{MidDepth: 15, EndDepth: [7]int{23, 23, 23, 22, 22, 22, 22}},
	{MidDepth: 16, EndDepth: [7]int{23, 23, 23, 23, 23, 22, 22}},
	{MidDepth: 17, EndDepth: [7]int{23, 23, 23, 23, 23, 23, 23}},
	{MidDepth: 18, EndDepth: [7]int{24, 24, 24, 24, 23, 23, 23}},
	{MidDepth: 19, EndDepth: [7]int{24, 24, 24, 24, 24, 23, 23}},
	{MidDepth: 20, EndDepth: [7]int{25, 25, 25, 25, 24, 24, 24}},
	{MidDepth: 21, EndDepth: [7]int{26, 26, 26, 26, 25, 25, 25}},
}

// MaxLevel is the strongest defined level index.
const MaxLevel = len(levels) - 1

// GetLevel returns the fixed strength ladder entry at lv, clamped to the
// table's bounds.
func GetLevel(lv int) Level {
	if lv < 0 {
		lv = 0
	}
	if lv > MaxLevel {
		lv = MaxLevel
	}
	return levels[lv]
}
