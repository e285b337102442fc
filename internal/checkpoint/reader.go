package checkpoint

import (
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

// Checkpoint is a decoded checkpoint.
type Checkpoint struct {
	Values   []float64
	Metadata map[string]string
}

// Load reads path and copies the stored values into params.
//
// Returns ErrShapeMismatch when the file holds a different number of values
// than len(params); params are left untouched in that case.
func Load(path string, params []*autodiff.Value) (map[string]string, error) {
	//nolint:gosec // G304: path comes from the caller, which is expected for checkpoints
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	ckpt, err := Read(file)
	if err != nil {
		return nil, err
	}
	if err := ckpt.Apply(params); err != nil {
		return nil, err
	}
	return ckpt.Metadata, nil
}

// Apply sets each param's data to the stored value at the same index.
func (c *Checkpoint) Apply(params []*autodiff.Value) error {
	if len(c.Values) != len(params) {
		return fmt.Errorf("%w: checkpoint has %d values, model has %d parameters",
			ErrShapeMismatch, len(c.Values), len(params))
	}
	for i, p := range params {
		p.SetData(c.Values[i])
	}
	return nil
}

// Read decodes a checkpoint from r and verifies its checksum.
func Read(r io.Reader) (*Checkpoint, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(headerJSON, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}

	var metadata map[string]string
	if m, ok := raw[metadataKey]; ok {
		if err := json.Unmarshal(m, &metadata); err != nil {
			return nil, &ValidationError{Field: metadataKey, Details: err.Error(), Err: ErrInvalidHeader}
		}
	}

	entry, ok := raw[TensorName]
	if !ok {
		return nil, ErrMissingTensor
	}
	var th TensorHeader
	if err := json.Unmarshal(entry, &th); err != nil {
		return nil, &ValidationError{Field: TensorName, Details: err.Error(), Err: ErrInvalidHeader}
	}
	n, err := validateTensor(th)
	if err != nil {
		return nil, err
	}

	data := make([]byte, th.DataOffsets[1])
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("failed to read tensor data: %w", err)
	}

	if want, ok := metadata[checksumKey]; ok {
		sum := sha256.Sum256(data)
		if hex.EncodeToString(sum[:]) != want {
			return nil, ErrChecksumMismatch
		}
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[8*i:]))
	}
	return &Checkpoint{Values: values, Metadata: metadata}, nil
}

// validateTensor checks dtype, rank and offsets and returns the element count.
func validateTensor(th TensorHeader) (int, error) {
	if th.DType != DType {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedDType, th.DType)
	}
	if len(th.Shape) != 1 || th.Shape[0] < 0 {
		return 0, &ValidationError{Field: "shape", Details: fmt.Sprintf("want [n], got %v", th.Shape), Err: ErrShapeMismatch}
	}
	start, end := th.DataOffsets[0], th.DataOffsets[1]
	if start != 0 || end < start || end > math.MaxInt32 {
		return 0, &ValidationError{Field: "data_offsets", Details: fmt.Sprintf("%v", th.DataOffsets), Err: ErrInvalidHeader}
	}
	// Divide rather than multiply: Shape[0] is untrusted and 8*Shape[0] can wrap.
	if end%8 != 0 || end/8 != th.Shape[0] {
		return 0, &ValidationError{
			Field:   "data_offsets",
			Details: fmt.Sprintf("%d bytes for %d values", end-start, th.Shape[0]),
			Err:     ErrShapeMismatch,
		}
	}
	return int(th.Shape[0]), nil
}
