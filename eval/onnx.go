package eval

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"

	"goosecore/bitboard"
	"goosecore/board"
)

// NNEvaluator is a second Evaluator implementation satisfying §2's "material
// or MLP" pluggability, grounded on the onnxruntime_go session-setup pattern
// in _examples/H1W0XXX-xionghan/internal/engine/nneval.go. That file batches
// requests across a channel because its caller issues many concurrent
// evaluations; alpha-beta here calls Evaluate once per node synchronously,
// so the batching/goroutine machinery is trimmed — only the session setup,
// provider fallback, and tensor lifecycle are carried over (see DESIGN.md).
// The model weights themselves are an external collaborator exactly like
// the Syzygy probe per §1's exclusion list: load failure never panics, it
// returns an error so the caller can fall back to Material.
type NNEvaluator struct {
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
}

const planeCount = 12*64 + 1 // 12 piece planes + side-to-move scalar

// NewNNEvaluator loads an ONNX model from modelPath, trying the CUDA
// execution provider before falling back to CPU; the TensorRT step of
// nneval.go's TensorRT -> CUDA -> CPU provider chain is not tried.
func NewNNEvaluator(modelPath, sharedLibPath string) (*NNEvaluator, error) {
	if sharedLibPath != "" {
		ort.SetSharedLibraryPath(sharedLibPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("eval: onnxruntime init: %w", err)
	}

	inputShape := ort.NewShape(1, int64(planeCount))
	inputData := make([]float32, planeCount)
	inputTensor, err := ort.NewTensor(inputShape, inputData)
	if err != nil {
		return nil, fmt.Errorf("eval: alloc input tensor: %w", err)
	}

	outputShape := ort.NewShape(1, 1)
	outputTensor, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("eval: alloc output tensor: %w", err)
	}

	so, err := ort.NewSessionOptions()
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("eval: session options: %w", err)
	}
	defer so.Destroy()
	if err := so.AppendExecutionProviderCUDA(); err != nil {
		// No GPU provider available; fall through to CPU execution.
		_ = err
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"position"}, []string{"value"},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor}, so)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("eval: load model %s: %w", modelPath, err)
	}

	return &NNEvaluator{session: session, input: inputTensor, output: outputTensor}, nil
}

// Close releases the ONNX Runtime session and tensors.
func (n *NNEvaluator) Close() {
	if n == nil {
		return
	}
	n.session.Destroy()
	n.input.Destroy()
	n.output.Destroy()
}

func encodePosition(b *board.Board, dst []float32) {
	for i := range dst {
		dst[i] = 0
	}
	for p := bitboard.BlackPawn; p <= bitboard.WhiteKing; p++ {
		bb := b.PieceBitboard(p)
		for bb != 0 {
			sq := bb.PopLSB()
			dst[int(p)*64+int(sq)] = 1
		}
	}
	if b.SideToMove() == bitboard.White {
		dst[planeCount-1] = 1
	}
}

// Evaluate runs the network forward pass and scales its value-head output
// (tanh range roughly [-1, 1]) to centipawns.
func (n *NNEvaluator) Evaluate(b *board.Board) int {
	encodePosition(b, n.input.GetData())
	if err := n.session.Run(); err != nil {
		return 0
	}
	v := n.output.GetData()[0]
	return int(v * 1000)
}
