package bitwise

import (
	"fmt"
	"github.com/fukicycle/bitwise-visualizer/internal/encode"
	"github.com/fukicycle/bitwise-visualizer/internal/wire"
	"io"
	"math/big"
)

// Ensure View implements [io.WriterTo]
var _ io.WriterTo = &View{}

// WriteTo serializes the view as a binary snapshot: a fixed header carrying the byte
// order, word width, and sign, followed by the sequence exactly as it appears in memory
// order. [ReadSnapshot] reverses it losslessly.
func (v *View) WriteTo(w io.Writer) (int64, error) {
	snap := &wire.Snapshot{
		Magic:   wire.Magic,
		Version: wire.Version,
		Order:   wire.OrderLittle,
		Width:   uint8(v.Width),
		Payload: v.RawBytes(),
	}

	if v.Order == BigEndian {
		snap.Order = wire.OrderBig
	}

	if v.Negative() {
		snap.Flags |= wire.FlagNegative
	}

	count, err := snap.WriteTo(w)
	if err != nil {
		return count, fmt.Errorf("could not write snapshot: %w", err)
	}

	return count, nil
}

// ReadSnapshot decodes a snapshot written by [View.WriteTo] and rebuilds the view from
// it. The value, byte order, word width, and byte sequence come back exactly as written.
func ReadSnapshot(r io.Reader) (*View, error) {
	snap, err := wire.ReadSnapshot(r)
	if err != nil {
		return nil, fmt.Errorf("could not read snapshot: %w", err)
	}

	order := LittleEndian
	if snap.Order == wire.OrderBig {
		order = BigEndian
	}

	value := encode.FromBytes(snap.Payload, snap.Order == wire.OrderBig)
	if snap.Flags&wire.FlagNegative != 0 {
		// The payload holds a two's-complement image, so the original value is the raw
		// pattern minus 2^(8*len)
		modulus := new(big.Int).Lsh(big.NewInt(1), uint(len(snap.Payload))*8)
		value.Sub(value, modulus)
	}

	return NewView(value, WordWidth(snap.Width), order), nil
}
