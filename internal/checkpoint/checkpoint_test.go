package checkpoint_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"path/filepath"
	"testing"

	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/checkpoint"
	"github.com/born-ml/scalargrad/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	src, err := nn.NewMLP(3, []int{4, 1}, nn.WithSeed(1))
	require.NoError(t, err)
	dst, err := nn.NewMLP(3, []int{4, 1}, nn.WithSeed(2))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "model.safetensors")
	require.NoError(t, checkpoint.Save(path, src.Parameters(), map[string]string{"layers": "4,1"}))

	meta, err := checkpoint.Load(path, dst.Parameters())
	require.NoError(t, err)
	assert.Equal(t, "4,1", meta["layers"])
	assert.Len(t, meta["sha256"], 64)

	assert.Equal(t, nn.Data(src.Parameters()), nn.Data(dst.Parameters()))

	x := nn.Inputs([]float64{1, 2, 3})
	assert.Equal(t, src.Forward(x)[0].Data(), dst.Forward(x)[0].Data())
}

func TestWriteRead_SpecialValues(t *testing.T) {
	params := autodiff.Values(0, -1.5, math.Inf(1), math.MaxFloat64)

	var buf bytes.Buffer
	require.NoError(t, checkpoint.Write(&buf, params, nil))

	ckpt, err := checkpoint.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, nn.Data(params), ckpt.Values)
}

func TestLoad_ShapeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.safetensors")
	require.NoError(t, checkpoint.Save(path, autodiff.Values(1, 2), nil))

	params := autodiff.Values(7, 8, 9)
	_, err := checkpoint.Load(path, params)
	require.ErrorIs(t, err, checkpoint.ErrShapeMismatch)
	assert.Equal(t, []float64{7, 8, 9}, nn.Data(params))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := checkpoint.Load(filepath.Join(t.TempDir(), "nope"), nil)
	require.Error(t, err)
}

func TestRead_Corruption(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, checkpoint.Write(&buf, autodiff.Values(1, 2, 3), nil))
	data := buf.Bytes()
	data[len(data)-1] ^= 0xff

	_, err := checkpoint.Read(bytes.NewReader(data))
	require.ErrorIs(t, err, checkpoint.ErrChecksumMismatch)
}

// encode builds a raw checkpoint with an arbitrary header.
func encode(header string, data []byte) *bytes.Reader {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint64(len(header)))
	buf.WriteString(header)
	buf.Write(data)
	return bytes.NewReader(buf.Bytes())
}

func TestRead_InvalidHeaders(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		data    []byte
		wantErr error
	}{
		{"not json", "{", nil, checkpoint.ErrInvalidHeader},
		{"missing tensor", `{"other":{"dtype":"F64","shape":[0],"data_offsets":[0,0]}}`, nil, checkpoint.ErrMissingTensor},
		{"wrong dtype", `{"parameters":{"dtype":"F32","shape":[1],"data_offsets":[0,4]}}`, make([]byte, 4), checkpoint.ErrUnsupportedDType},
		{"wrong rank", `{"parameters":{"dtype":"F64","shape":[1,1],"data_offsets":[0,8]}}`, make([]byte, 8), checkpoint.ErrShapeMismatch},
		{"short data", `{"parameters":{"dtype":"F64","shape":[2],"data_offsets":[0,8]}}`, make([]byte, 8), checkpoint.ErrShapeMismatch},
		{"element count wraps", `{"parameters":{"dtype":"F64","shape":[2305843009213693952],"data_offsets":[0,0]}}`, nil, checkpoint.ErrShapeMismatch},
		{"element count wraps past data", `{"parameters":{"dtype":"F64","shape":[2305843009213693953],"data_offsets":[0,8]}}`, make([]byte, 8), checkpoint.ErrShapeMismatch},
		{"ragged data", `{"parameters":{"dtype":"F64","shape":[1],"data_offsets":[0,9]}}`, make([]byte, 9), checkpoint.ErrShapeMismatch},
		{"bad offsets", `{"parameters":{"dtype":"F64","shape":[1],"data_offsets":[8,16]}}`, make([]byte, 16), checkpoint.ErrInvalidHeader},
		{"bad metadata", `{"__metadata__":3,"parameters":{"dtype":"F64","shape":[0],"data_offsets":[0,0]}}`, nil, checkpoint.ErrInvalidHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := checkpoint.Read(encode(tt.header, tt.data))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRead_HeaderTooLarge(t *testing.T) {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint64(checkpoint.MaxHeaderSize+1))

	_, err := checkpoint.Read(&buf)
	require.ErrorIs(t, err, checkpoint.ErrHeaderTooLarge)
}
