package primitives

import (
	"fmt"

	fssz "github.com/ferranbt/fastssz"
)

var _ fssz.HashRoot = (Gwei)(0)
var _ fssz.Marshaler = (*Gwei)(nil)
var _ fssz.Unmarshaler = (*Gwei)(nil)

// Gwei is the denomination used for balances and every reward or penalty amount.
type Gwei uint64

// HashTreeRoot --
func (g Gwei) HashTreeRoot() ([32]byte, error) {
	return fssz.HashWithDefaultHasher(g)
}

// HashTreeRootWith --
func (g Gwei) HashTreeRootWith(hh *fssz.Hasher) error {
	hh.PutUint64(uint64(g))
	return nil
}

// UnmarshalSSZ --
func (g *Gwei) UnmarshalSSZ(buf []byte) error {
	if len(buf) != g.SizeSSZ() {
		return fmt.Errorf("expected buffer of length %d received %d", g.SizeSSZ(), len(buf))
	}
	*g = Gwei(fssz.UnmarshallUint64(buf))
	return nil
}

// MarshalSSZTo --
func (g *Gwei) MarshalSSZTo(dst []byte) ([]byte, error) {
	marshalled, err := g.MarshalSSZ()
	if err != nil {
		return nil, err
	}
	return append(dst, marshalled...), nil
}

// MarshalSSZ --
func (g *Gwei) MarshalSSZ() ([]byte, error) {
	marshalled := fssz.MarshalUint64([]byte{}, uint64(*g))
	return marshalled, nil
}

// SizeSSZ --
func (g *Gwei) SizeSSZ() int {
	return 8
}
