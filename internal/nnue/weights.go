package nnue

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/natsutteatsuiyone/neural-reversi-sub002/internal/pattern"
)

// Weight file format constants. The payload following the header is a
// zstd-compressed stream of the raw little-endian layer weights, in the
// order NetworkSmall.Load expects them.
const (
	MagicNumber     = 0x4E4E5253 // "NNRS" - neural-reversi weights, small network
	MagicNumberMain = 0x4E4E524D // "NNRM" - neural-reversi weights, main network
	Version         = 1
)

// FileHeader identifies and validates a weight file before its (compressed)
// body is streamed into the network.
type FileHeader struct {
	Magic            uint32
	Version          uint32
	InputFeatureDims uint32
	NumLayerStacks   uint32
}

// LoadNetworkSmall opens filename, validates its header against the
// architecture this binary was built for, and streams the zstd-compressed
// weight body directly into a new NetworkSmall without buffering the
// decompressed payload in memory.
func LoadNetworkSmall(filename string) (*NetworkSmall, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open weights file: %w", err)
	}
	defer f.Close()

	var header FileHeader
	if err := binary.Read(f, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("read weights header: %w", err)
	}
	if header.Magic != MagicNumber {
		return nil, fmt.Errorf("invalid magic number: expected %x, got %x", MagicNumber, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("unsupported weights version: expected %d, got %d", Version, header.Version)
	}
	if header.InputFeatureDims != pattern.InputFeatureDims {
		return nil, fmt.Errorf("input feature dims mismatch: expected %d, got %d", pattern.InputFeatureDims, header.InputFeatureDims)
	}
	if header.NumLayerStacks != NumLayerStacks {
		return nil, fmt.Errorf("layer stack count mismatch: expected %d, got %d", NumLayerStacks, header.NumLayerStacks)
	}

	decoder, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open zstd weights stream: %w", err)
	}
	defer decoder.Close()

	n := NewNetworkSmall()
	if err := n.Load(decoder); err != nil {
		return nil, fmt.Errorf("load network weights: %w", err)
	}
	return n, nil
}

// SaveNetworkSmall writes header then zstd-compresses the network's weights
// to filename, in the layout LoadNetworkSmall expects back.
func SaveNetworkSmall(n *NetworkSmall, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create weights file: %w", err)
	}
	defer f.Close()

	header := FileHeader{
		Magic:            MagicNumber,
		Version:          Version,
		InputFeatureDims: pattern.InputFeatureDims,
		NumLayerStacks:   NumLayerStacks,
	}
	if err := binary.Write(f, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("write weights header: %w", err)
	}

	encoder, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("open zstd weights stream: %w", err)
	}

	if err := n.write(encoder); err != nil {
		encoder.Close()
		return fmt.Errorf("write network weights: %w", err)
	}
	return encoder.Close()
}

// LoadNetwork opens filename, validates its header against the main
// network's architecture, and streams the zstd-compressed weight body
// directly into a new Network without buffering the decompressed payload
// in memory. Mirrors LoadNetworkSmall, keyed by MagicNumberMain instead of
// MagicNumber so the two weight file kinds can't be swapped by accident.
func LoadNetwork(filename string) (*Network, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open weights file: %w", err)
	}
	defer f.Close()

	var header FileHeader
	if err := binary.Read(f, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("read weights header: %w", err)
	}
	if header.Magic != MagicNumberMain {
		return nil, fmt.Errorf("invalid magic number: expected %x, got %x", MagicNumberMain, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("unsupported weights version: expected %d, got %d", Version, header.Version)
	}
	if header.InputFeatureDims != pattern.InputFeatureDims {
		return nil, fmt.Errorf("input feature dims mismatch: expected %d, got %d", pattern.InputFeatureDims, header.InputFeatureDims)
	}
	if header.NumLayerStacks != NumLayerStacks {
		return nil, fmt.Errorf("layer stack count mismatch: expected %d, got %d", NumLayerStacks, header.NumLayerStacks)
	}

	decoder, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open zstd weights stream: %w", err)
	}
	defer decoder.Close()

	n := NewNetwork()
	if err := n.Load(decoder); err != nil {
		return nil, fmt.Errorf("load network weights: %w", err)
	}
	return n, nil
}

// SaveNetwork writes header then zstd-compresses the main network's
// weights to filename, in the layout LoadNetwork expects back.
func SaveNetwork(n *Network, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create weights file: %w", err)
	}
	defer f.Close()

	header := FileHeader{
		Magic:            MagicNumberMain,
		Version:          Version,
		InputFeatureDims: pattern.InputFeatureDims,
		NumLayerStacks:   NumLayerStacks,
	}
	if err := binary.Write(f, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("write weights header: %w", err)
	}

	encoder, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("open zstd weights stream: %w", err)
	}

	if err := n.write(encoder); err != nil {
		encoder.Close()
		return fmt.Errorf("write network weights: %w", err)
	}
	return encoder.Close()
}

// write is the mirror of Load, used only by SaveNetwork.
func (n *Network) write(w io.Writer) error {
	if err := n.input.write(w); err != nil {
		return fmt.Errorf("write universal input: %w", err)
	}
	for i := range n.layerStacks {
		if err := n.layerStacks[i].write(w); err != nil {
			return fmt.Errorf("write layer stack %d: %w", i, err)
		}
	}
	return nil
}

func (ls univLayerStack) write(w io.Writer) error {
	if err := ls.l1Univ.write(w); err != nil {
		return err
	}
	if err := ls.l2.write(w); err != nil {
		return err
	}
	return ls.lo.write(w)
}

// write is the mirror of Load, used only by SaveNetworkSmall; production
// weight files are produced by the training pipeline, not this binary, but
// keeping the writer alongside the reader makes round-trip tests possible.
func (n *NetworkSmall) write(w io.Writer) error {
	for i, pa := range n.paInputs {
		if err := pa.write(w); err != nil {
			return fmt.Errorf("write phase-adaptive input %d: %w", i, err)
		}
	}
	for i := range n.layerStacks {
		if err := n.layerStacks[i].write(w); err != nil {
			return fmt.Errorf("write layer stack %d: %w", i, err)
		}
	}
	return nil
}

func (ls layerStack) write(w io.Writer) error {
	if err := ls.l1PA.write(w); err != nil {
		return err
	}
	if err := ls.l2.write(w); err != nil {
		return err
	}
	return ls.lo.write(w)
}
