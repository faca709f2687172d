package search

// Scoring constants per §4.7's "Scoring conventions": centipawns from the
// side-to-move's perspective; MateConst is "a large sentinel near but
// distinct from INT_MAX", matching the teacher's engine/search.go
// Checkmate=20000 constant.
const (
	MateConst = 20000
	MaxScore  = 32500
	DrawScore = 0
	MaxPly    = 128
)

// wdlToScore implements §4.7's TB WDL mapping, reproduced from
// _examples/original_source/src/types.h's eval_wdl[5] table:
// {loss, blessed-loss, draw, cursed-win, win} -> {-MateConst, 0, 0, 0, +MateConst}.
func wdlToScore(wdl int) int {
	switch wdl {
	case 0:
		return -MateConst
	case 4:
		return MateConst
	default:
		return DrawScore
	}
}

func isMateScore(score int) bool {
	return score >= MateConst-MaxPly || score <= -MateConst+MaxPly
}

// scoreToTT/scoreFromTT re-base mate scores between "distance from this
// node" (as stored, so entries are reusable at any ply) and "distance from
// root" (as used everywhere else), mirroring the ply adjustment in
// _examples/Oliverans-GooseEngine/engine/transposition.go's useEntry().
func scoreToTT(score, ply int) int {
	switch {
	case score >= MateConst-MaxPly:
		return score + ply
	case score <= -MateConst+MaxPly:
		return score - ply
	default:
		return score
	}
}

func scoreFromTT(score, ply int) int {
	switch {
	case score >= MateConst-MaxPly:
		return score - ply
	case score <= -MateConst+MaxPly:
		return score + ply
	default:
		return score
	}
}
