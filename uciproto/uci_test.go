package uciproto

import (
	"bytes"
	"strings"
	"testing"
)

func TestHandleUCIPrintsUCIOk(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(&buf, 16)
	e.handleUCI()
	out := buf.String()
	if !strings.Contains(out, "id name goosecore") {
		t.Fatalf("missing id name line: %q", out)
	}
	if !strings.HasSuffix(strings.TrimRight(out, "\n"), "uciok") {
		t.Fatalf("expected output to end with uciok, got %q", out)
	}
}

func TestRunRespondsToIsReady(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(&buf, 16)
	e.Run(strings.NewReader("isready\nquit\n"))
	if !strings.Contains(buf.String(), "readyok") {
		t.Fatalf("expected readyok, got %q", buf.String())
	}
}

func TestHandlePositionStartpos(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(&buf, 16)
	e.handlePosition([]string{"startpos"})
	if got := e.pos.ToFEN(); got != "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1" {
		t.Fatalf("startpos FEN mismatch: %q", got)
	}
}

func TestHandlePositionWithMoves(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(&buf, 16)
	e.handlePosition([]string{"startpos", "moves", "e2e4", "e7e5"})
	fen := e.pos.ToFEN()
	if !strings.Contains(fen, "4p3/4P3") {
		t.Fatalf("expected pawns on e4/e5 after moves, got %q", fen)
	}
}

func TestHandlePositionFEN(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(&buf, 16)
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	e.handlePosition(append([]string{"fen"}, strings.Fields(fen)...))
	if got := e.pos.ToFEN(); got != fen {
		t.Fatalf("FEN position mismatch: got %q, want %q", got, fen)
	}
}

func TestHandleGoPerftReportsNodes(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(&buf, 16)
	e.handlePosition([]string{"startpos"})
	e.handleGo([]string{"perft", "3"})
	if !strings.Contains(buf.String(), "nodes 8902") {
		t.Fatalf("expected perft(3) from startpos to report 8902 nodes, got %q", buf.String())
	}
}

func TestHandleSetOptionHash(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(&buf, 16)
	e.handleSetOption([]string{"name", "Hash", "value", "32"})
	wantN := uint64(32) * 1024 * 1024 / 48
	if got := e.tt.Size(); got != wantN {
		t.Fatalf("tt.Size() = %d, want %d after Hash resize", got, wantN)
	}
}

func TestHandleSetOptionClearHash(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(&buf, 16)
	e.tt.Store(42, 1, 1, 0, 1, e.gen.LegalMoves(e.pos)[0])
	e.handleSetOption([]string{"name", "Clear", "Hash"})
	if _, ok := e.tt.Probe(42); ok {
		t.Fatalf("expected Clear Hash to wipe the table")
	}
}

func TestHandleSetOptionPruningToggles(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(&buf, 16)
	e.handleSetOption([]string{"name", "NullMove", "value", "false"})
	if e.search.NullMove {
		t.Fatalf("expected NullMove toggle to turn off null-move pruning")
	}
	e.handleSetOption([]string{"name", "AllPruning", "value", "false"})
	if e.search.NullMove || e.search.LateMove || e.search.Futility || e.search.Razoring {
		t.Fatalf("expected AllPruning=false to clear every pruning toggle")
	}
}

func TestHandleSetOptionEvalFileFallsBackOnLoadFailure(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(&buf, 16)
	e.handleSetOption([]string{"name", "EvalFile", "value", "/nonexistent/model.onnx"})
	// A bad model path must not crash the engine or swap out the evaluator;
	// isready/go should still behave normally afterward.
	e.handlePosition([]string{"startpos"})
	e.handleGo([]string{"depth", "1"})
	if !strings.Contains(buf.String(), "bestmove") {
		t.Fatalf("expected a bestmove after a failed EvalFile load, got %q", buf.String())
	}
}

func TestHandleSetOptionEvalFileEmptyIsNoop(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(&buf, 16)
	e.handleSetOption([]string{"name", "EvalFile", "value", "<empty>"})
	if e.nn != nil {
		t.Fatalf("expected EvalFile=<empty> to leave the NN evaluator unset")
	}
}

func TestParseUCIMoveRejectsIllegalToken(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(&buf, 16)
	e.handlePosition([]string{"startpos"})
	if _, ok := e.parseUCIMove("e2e5"); ok {
		t.Fatalf("expected e2e5 to be rejected as illegal from the startpos")
	}
	if _, ok := e.parseUCIMove("e2e4"); !ok {
		t.Fatalf("expected e2e4 to be accepted as legal from the startpos")
	}
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(&buf, 16)
	e.Run(strings.NewReader("frobnicate\nisready\nquit\n"))
	if !strings.Contains(buf.String(), "readyok") {
		t.Fatalf("an unknown command should not abort the read loop")
	}
}
