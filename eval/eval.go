// Package eval implements the pluggable "Evaluation interface" component of
// §2: a position -> centipawns function, from the side-to-move's
// perspective, usable as material-only or as an MLP backend.
package eval

import "goosecore/board"

// Evaluator scores a position in centipawns from the side-to-move's
// perspective; positive means the side to move is better.
type Evaluator interface {
	Evaluate(b *board.Board) int
}
