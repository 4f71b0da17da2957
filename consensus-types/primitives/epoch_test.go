package primitives_test

import (
	"encoding/hex"
	"math"
	"strings"
	"testing"

	"github.com/prysmaticlabs/prysm-rewards/consensus-types/primitives"
	mathutil "github.com/prysmaticlabs/prysm-rewards/math"
	"github.com/prysmaticlabs/prysm-rewards/testing/assert"
	"github.com/prysmaticlabs/prysm-rewards/testing/require"
)

func TestEpoch_SafeSub(t *testing.T) {
	e, err := primitives.Epoch(10).SafeSub(4)
	require.NoError(t, err)
	assert.Equal(t, primitives.Epoch(6), e)

	_, err = primitives.Epoch(3).SafeSub(4)
	assert.ErrorIs(t, err, mathutil.ErrSubUnderflow)
}

func TestEpoch_SafeAdd(t *testing.T) {
	e, err := primitives.Epoch(10).SafeAdd(4)
	require.NoError(t, err)
	assert.Equal(t, primitives.Epoch(14), e)

	_, err = primitives.Epoch(math.MaxUint64).SafeAdd(1)
	assert.ErrorIs(t, err, mathutil.ErrAddOverflow)
}

func TestEpoch_UnmarshalSSZ_Limit(t *testing.T) {
	e := primitives.Epoch(0)
	serializedObj := [7]byte{}
	err := e.UnmarshalSSZ(serializedObj[:])
	if err == nil || !strings.Contains(err.Error(), "expected buffer of length") {
		t.Errorf("Expected Error = %s, got: %v", "expected buffer of length", err)
	}
}

func TestSSZUint64Types(t *testing.T) {
	tests := []struct {
		name            string
		serializedBytes []byte
		actualValue     uint64
		root            []byte
	}{
		{
			name:            "max",
			serializedBytes: hexDecodeOrDie(t, "ffffffffffffffff"),
			actualValue:     18446744073709551615,
			root:            hexDecodeOrDie(t, "ffffffffffffffff000000000000000000000000000000000000000000000000"),
		},
		{
			name:            "random",
			serializedBytes: hexDecodeOrDie(t, "357c8de9d7204577"),
			actualValue:     8594311575614880821,
			root:            hexDecodeOrDie(t, "357c8de9d7204577000000000000000000000000000000000000000000000000"),
		},
		{
			name:            "zero",
			serializedBytes: hexDecodeOrDie(t, "0000000000000000"),
			actualValue:     0,
			root:            hexDecodeOrDie(t, "0000000000000000000000000000000000000000000000000000000000000000"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/epoch", func(t *testing.T) {
			var e primitives.Epoch
			require.NoError(t, e.UnmarshalSSZ(tt.serializedBytes))
			assert.Equal(t, tt.actualValue, uint64(e))
			enc, err := e.MarshalSSZ()
			require.NoError(t, err)
			assert.DeepEqual(t, tt.serializedBytes, enc)
			root, err := e.HashTreeRoot()
			require.NoError(t, err)
			assert.DeepEqual(t, tt.root, root[:])
		})
		t.Run(tt.name+"/slot", func(t *testing.T) {
			var s primitives.Slot
			require.NoError(t, s.UnmarshalSSZ(tt.serializedBytes))
			assert.Equal(t, tt.actualValue, uint64(s))
			enc, err := s.MarshalSSZTo([]byte{})
			require.NoError(t, err)
			assert.DeepEqual(t, tt.serializedBytes, enc)
		})
		t.Run(tt.name+"/validator_index", func(t *testing.T) {
			var v primitives.ValidatorIndex
			require.NoError(t, v.UnmarshalSSZ(tt.serializedBytes))
			assert.Equal(t, tt.actualValue, uint64(v))
			root, err := v.HashTreeRoot()
			require.NoError(t, err)
			assert.DeepEqual(t, tt.root, root[:])
		})
		t.Run(tt.name+"/gwei", func(t *testing.T) {
			var g primitives.Gwei
			require.NoError(t, g.UnmarshalSSZ(tt.serializedBytes))
			assert.Equal(t, tt.actualValue, uint64(g))
			root, err := g.HashTreeRoot()
			require.NoError(t, err)
			assert.DeepEqual(t, tt.root, root[:])
		})
	}
}

func hexDecodeOrDie(t *testing.T, s string) []byte {
	res, err := hex.DecodeString(s)
	require.NoError(t, err)
	return res
}
