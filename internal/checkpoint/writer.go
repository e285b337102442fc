// Package checkpoint saves and restores parameter values in SafeTensors format.
//
// Only the values of persistent parameter leaves are stored, as a single
// F64 tensor named "parameters" of shape [n] in Parameters() order. The
// computation graph itself is never persisted; it is rebuilt by the next
// forward pass.
//
//	Format Structure:
//	  [8 bytes: header size (uint64 LE)]
//	  [header: JSON, tensor entries plus "__metadata__"]
//	  [tensor data: float64 LE]
//
// The metadata always carries "sha256", the hex checksum of the data section.
package checkpoint

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/born-ml/scalargrad/internal/autodiff"
)

const (
	// TensorName is the key of the parameter tensor in the header.
	TensorName = "parameters"

	// DType is the only dtype written and accepted.
	DType = "F64"

	// MaxHeaderSize bounds the JSON header read from untrusted files.
	MaxHeaderSize = 16 << 20

	metadataKey = "__metadata__"
	checksumKey = "sha256"
)

// TensorHeader describes a tensor in the SafeTensors header.
type TensorHeader struct {
	DType       string   `json:"dtype"`
	Shape       []int64  `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"`
}

// Save writes the current values of params to path.
func Save(path string, params []*autodiff.Value, metadata map[string]string) error {
	//nolint:gosec // G304: path comes from the caller, which is expected for checkpoints
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Write(file, params, metadata); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Write encodes the values of params to w.
func Write(w io.Writer, params []*autodiff.Value, metadata map[string]string) error {
	data := make([]byte, 8*len(params))
	for i, p := range params {
		binary.LittleEndian.PutUint64(data[8*i:], math.Float64bits(p.Data()))
	}
	sum := sha256.Sum256(data)

	meta := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}
	meta[checksumKey] = hex.EncodeToString(sum[:])

	header := map[string]any{
		metadataKey: meta,
		TensorName: TensorHeader{
			DType:       DType,
			Shape:       []int64{int64(len(params))},
			DataOffsets: [2]int64{0, int64(len(data))},
		},
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(8 + len(headerJSON) + len(data))
	if err := binary.Write(&buf, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	buf.Write(headerJSON)
	buf.Write(data)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}
	return nil
}
