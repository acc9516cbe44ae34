package nnue

import (
	"fmt"
	"io"

	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/pattern"
)

// layerStack is one ply's independent triple of quantized affine layers.
type layerStack struct {
	l1PA *LinearLayer
	l2   *LinearLayer
	lo   *LinearLayer
}

func newLayerStack() layerStack {
	return layerStack{
		l1PA: NewLinearLayer(L1PAInputDims, L1PAOutputDims),
		l2:   NewLinearLayer(L2InputDims, L2OutputDims),
		lo:   NewLinearLayer(LOInputDims, 1),
	}
}

func (ls layerStack) load(r io.Reader) error {
	if err := ls.l1PA.Load(r); err != nil {
		return err
	}
	if err := ls.l2.Load(r); err != nil {
		return err
	}
	return ls.lo.Load(r)
}

// NetworkSmall is the phase-adaptive evaluator: NumPhaseAdaptiveInput input
// transformers selected by ply/10, feeding NumLayerStacks independent
// L1/L2/output layer triples selected by ply. Both indices are driven by the
// same ply counter but at different granularities, and must not be confused
// with each other.
type NetworkSmall struct {
	paInputs    [NumPhaseAdaptiveInput]*PhaseAdaptiveInput
	layerStacks [NumLayerStacks]layerStack
}

// NewNetworkSmall allocates an unloaded network of the fixed architecture
// shape; call Load to populate its weights from a weight stream.
func NewNetworkSmall() *NetworkSmall {
	n := &NetworkSmall{}
	for i := range n.paInputs {
		n.paInputs[i] = NewPhaseAdaptiveInput()
	}
	for i := range n.layerStacks {
		n.layerStacks[i] = newLayerStack()
	}
	return n
}

// Load reads the network's weights in the order they were written: all
// phase-adaptive input transformers first, then all layer stacks.
func (n *NetworkSmall) Load(r io.Reader) error {
	for i, pa := range n.paInputs {
		if err := pa.Load(r); err != nil {
			return fmt.Errorf("load phase-adaptive input %d: %w", i, err)
		}
	}
	for i := range n.layerStacks {
		if err := n.layerStacks[i].load(r); err != nil {
			return fmt.Errorf("load layer stack %d: %w", i, err)
		}
	}
	return nil
}

// Evaluate scores a position from the side to move's perspective given its
// active pattern-feature indices, legal move count and ply, clamped into the
// open interval (MidScoreMin, MidScoreMax).
func (n *NetworkSmall) Evaluate(idx pattern.Indices, mobility int, ply int) int32 {
	var flat [pattern.NumPatternFeatures]uint32
	idx.FlatIndices(flat[:])

	score := n.forward(flat[:], uint8(mobility), ply)
	return clamp(score, MidScoreMin+1, MidScoreMax-1)
}

func (n *NetworkSmall) forward(featureIndices []uint32, mobility uint8, ply int) int32 {
	var paOut [L1PAInputDims]uint8
	n.forwardInputPA(featureIndices, mobility, ply, paOut[:])

	ls := &n.layerStacks[ply]

	var l1Raw [L1PAOutputDims]int32
	ls.l1PA.Forward(paOut[:], l1Raw[:])
	var l1Out [L1PAOutputDims]uint8
	clippedReLU(l1Raw[:], l1Out[:])

	var l2Raw [L2OutputDims]int32
	ls.l2.Forward(l1Out[:], l2Raw[:])
	var l2Out [L2OutputDims]uint8
	clippedReLU(l2Raw[:], l2Out[:])

	var out [1]int32
	ls.lo.Forward(l2Out[:], out[:])
	return out[0] >> OutputWeightScaleBits
}

func (n *NetworkSmall) forwardInputPA(featureIndices []uint32, mobility uint8, ply int, out []uint8) {
	pa := n.paInputs[ply/plysPerPhaseInput]
	pa.Forward(featureIndices, out[:PAOutputSize])
	out[L1PAInputDims-1] = mobility * MobilityScale
}

// univLayerStack is one ply's layer triple for the main network. It shares
// NetworkSmall's layerStack's L2/output dimensions (per original_source's
// eval/layer_stack.rs, whose LayerStack struct carries both an l1_univ and
// an l1_pa front end feeding a common l2/lo backbone) but has its own l1
// front end sized for UniversalInput's wider output.
type univLayerStack struct {
	l1Univ *LinearLayer
	l2     *LinearLayer
	lo     *LinearLayer
}

func newUnivLayerStack() univLayerStack {
	return univLayerStack{
		l1Univ: NewLinearLayer(L1UnivInputDims, L1UnivOutputDims),
		l2:     NewLinearLayer(L2InputDims, L2OutputDims),
		lo:     NewLinearLayer(LOInputDims, 1),
	}
}

func (ls univLayerStack) load(r io.Reader) error {
	if err := ls.l1Univ.Load(r); err != nil {
		return err
	}
	if err := ls.l2.Load(r); err != nil {
		return err
	}
	return ls.lo.Load(r)
}

// Network is the main evaluator, used for the midgame and every ply before
// MainNetworkPlyThreshold: a single UniversalInput transformer (not banked
// by phase, unlike NetworkSmall's PhaseAdaptiveInput) feeding per-ply layer
// stacks. Grounded on original_source/reversi_core/src/eval.rs's Eval
// struct, which holds this alongside NetworkSmall and dispatches between
// them by ply, and on .../eval/layer_stack.rs's LayerStack, which carries
// both an l1_univ and an l1_pa front end feeding a shared l2/lo backbone.
type Network struct {
	input       *UniversalInput
	layerStacks [NumLayerStacks]univLayerStack
}

// NewNetwork allocates an unloaded main network; call Load to populate its
// weights from a weight stream.
func NewNetwork() *Network {
	n := &Network{input: NewUniversalInput()}
	for i := range n.layerStacks {
		n.layerStacks[i] = newUnivLayerStack()
	}
	return n
}

// Load reads the network's weights in the order they were written: the
// universal input transformer first, then all layer stacks.
func (n *Network) Load(r io.Reader) error {
	if err := n.input.Load(r); err != nil {
		return fmt.Errorf("load universal input: %w", err)
	}
	for i := range n.layerStacks {
		if err := n.layerStacks[i].load(r); err != nil {
			return fmt.Errorf("load layer stack %d: %w", i, err)
		}
	}
	return nil
}

// Evaluate scores a position from the side to move's perspective given its
// active pattern-feature indices, legal move count and ply, clamped into
// the open interval (MidScoreMin, MidScoreMax).
func (n *Network) Evaluate(idx pattern.Indices, mobility int, ply int) int32 {
	var flat [pattern.NumPatternFeatures]uint32
	idx.FlatIndices(flat[:])

	score := n.forward(flat[:], uint8(mobility), ply)
	return clamp(score, MidScoreMin+1, MidScoreMax-1)
}

func (n *Network) forward(featureIndices []uint32, mobility uint8, ply int) int32 {
	var univOut [L1UnivInputDims]uint8
	n.input.Forward(featureIndices, univOut[:UnivOutputSize])
	univOut[L1UnivInputDims-1] = mobility * MobilityScale

	ls := &n.layerStacks[ply]

	var l1Raw [L1UnivOutputDims]int32
	ls.l1Univ.Forward(univOut[:], l1Raw[:])
	var l1Out [L1UnivOutputDims]uint8
	clippedReLU(l1Raw[:], l1Out[:])

	var l2Raw [L2OutputDims]int32
	ls.l2.Forward(l1Out[:], l2Raw[:])
	var l2Out [L2OutputDims]uint8
	clippedReLU(l2Raw[:], l2Out[:])

	var out [1]int32
	ls.lo.Forward(l2Out[:], out[:])
	return out[0] >> OutputWeightScaleBits
}
