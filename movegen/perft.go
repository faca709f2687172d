package movegen

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"goosecore/bitboard"
	"goosecore/board"
	"goosecore/tt"
)

// Perft counts leaf positions at a fixed depth, §4.5's "perft(d) = 1 if
// d == 0; otherwise sum over pseudo-legal moves that pass legality of
// perft(d-1) at the child."
func (g *Generator) Perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := g.PseudoLegalMoves(b)
	mover := b.SideToMove()
	var nodes uint64
	for _, m := range moves {
		child := b.Clone()
		child.MakeMove(m)
		if g.IsSquareAttacked(child, child.KingSquare(mover), mover.Other()) {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += g.Perft(child, depth-1)
	}
	return nodes
}

// PerftCached is Perft with results cached in the shared transposition
// table keyed by (key, depth), per §4.5. Entries are tagged tt.FlagPerft so
// they can never satisfy a search cutoff against the same table — the §9
// perft/TT-poisoning note's "tag entries" resolution.
func (g *Generator) PerftCached(b *board.Board, depth int, table *tt.Table) uint64 {
	if depth == 0 {
		return 1
	}
	if e, ok := table.Probe(b.Hash()); ok && e.Flag == tt.FlagPerft && e.Key == b.Hash() && e.Depth == depth {
		return uint64(e.Eval)
	}
	moves := g.PseudoLegalMoves(b)
	mover := b.SideToMove()
	var nodes uint64
	for _, m := range moves {
		child := b.Clone()
		child.MakeMove(m)
		if g.IsSquareAttacked(child, child.KingSquare(mover), mover.Other()) {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += g.PerftCached(child, depth-1, table)
	}
	table.Store(b.Hash(), depth, 0, int(nodes), tt.FlagPerft, bitboard.NullMove)
	return nodes
}

// DivideEntry is one root move's perft(depth-1) subtotal.
type DivideEntry struct {
	Move  bitboard.Move
	Nodes uint64
}

// PerftDivide reports the per-root-move breakdown, sorted by UCI notation,
// used for debugging move-generator discrepancies against reference counts.
func (g *Generator) PerftDivide(b *board.Board, depth int) []DivideEntry {
	moves := g.LegalMoves(b)
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		child := b.Clone()
		child.MakeMove(m)
		var n uint64
		if depth <= 1 {
			n = 1
		} else {
			n = g.Perft(child, depth-1)
		}
		entries = append(entries, DivideEntry{Move: m, Nodes: n})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Move.String() < entries[j].Move.String() })
	return entries
}

// PerftParallel partitions the root move list across goroutines, each given
// its own board copy, translating the OpenMP
// "#pragma omp parallel for reduction(+:nodes)" pattern in
// _examples/original_source/src/move_generator.cpp's perft_parallel into
// Go's errgroup (§5's "parallel-for loop with per-thread board copies").
func (g *Generator) PerftParallel(ctx context.Context, b *board.Board, depth int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	moves := g.PseudoLegalMoves(b)
	mover := b.SideToMove()

	var mu sync.Mutex
	var nodes uint64
	eg, ctx := errgroup.WithContext(ctx)
	for _, mv := range moves {
		m := mv
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			child := b.Clone()
			child.MakeMove(m)
			if g.IsSquareAttacked(child, child.KingSquare(mover), mover.Other()) {
				return nil
			}
			var n uint64
			if depth == 1 {
				n = 1
			} else {
				n = g.Perft(child, depth-1)
			}
			mu.Lock()
			nodes += n
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	return nodes, nil
}
