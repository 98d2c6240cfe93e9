package bitwise

import (
	"fmt"
	"github.com/francoispqt/gojay"
	"io"
	"strconv"
)

// WriteJSON streams the view as a single JSON object to w, in the shape a frontend
// renders directly: the value in decimal and hex, the active order and width, the byte
// cells, the word grouping, and the reinterpretation table. Numeric values are encoded as
// strings, because arbitrary precision integers, 64-bit words, NaN, and the infinities
// all fall outside what a JSON number can carry.
func (v *View) WriteJSON(w io.Writer) error {
	if err := gojay.NewEncoder(w).EncodeObject(v); err != nil {
		return fmt.Errorf("could not encode view: %w", err)
	}

	return nil
}

var _ gojay.MarshalerJSONObject = &View{}

func (v *View) IsNil() bool { return v == nil }

func (v *View) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("value", v.ValueText())
	enc.StringKey("hex", v.ValueHex())
	enc.BoolKey("negative", v.Negative())
	enc.StringKey("order", v.Order.String())
	enc.IntKey("width", int(v.Width))
	enc.IntKey("minBytes", v.MinBytes)
	enc.ArrayKey("bytes", byteCells(v.Bytes))
	enc.ArrayKey("words", words(v.Words))
	enc.ArrayKey("interpretations", interpretations(v.Interpretations))
}

type byteCells []ByteCell

var _ gojay.MarshalerJSONArray = byteCells{}

func (b byteCells) IsNil() bool { return b == nil }

func (b byteCells) MarshalJSONArray(enc *gojay.Encoder) {
	for _, cell := range b {
		enc.Object(cell)
	}
}

var _ gojay.MarshalerJSONObject = ByteCell{}

func (c ByteCell) IsNil() bool { return false }

func (c ByteCell) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("position", c.Position)
	enc.IntKey("value", int(c.Value))
	enc.StringKey("hex", c.Hex())
	enc.IntKey("significance", c.Significance)
	enc.ArrayKey("bits", bitArray(c.Bits))
}

type bitArray [8]uint8

var _ gojay.MarshalerJSONArray = bitArray{}

func (b bitArray) IsNil() bool { return false }

func (b bitArray) MarshalJSONArray(enc *gojay.Encoder) {
	for _, bit := range b {
		enc.Int(int(bit))
	}
}

type words []Word

var _ gojay.MarshalerJSONArray = words{}

func (w words) IsNil() bool { return w == nil }

func (w words) MarshalJSONArray(enc *gojay.Encoder) {
	for _, word := range w {
		enc.Object(word)
	}
}

var _ gojay.MarshalerJSONObject = Word{}

func (w Word) IsNil() bool { return false }

func (w Word) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("index", w.Index)
	enc.StringKey("value", strconv.FormatUint(w.Value, 10))
	enc.StringKey("hex", w.Hex())
}

type interpretations []Interpretation

var _ gojay.MarshalerJSONArray = interpretations{}

func (i interpretations) IsNil() bool { return i == nil }

func (i interpretations) MarshalJSONArray(enc *gojay.Encoder) {
	for _, entry := range i {
		enc.Object(entry)
	}
}

var _ gojay.MarshalerJSONObject = Interpretation{}

func (i Interpretation) IsNil() bool { return false }

func (i Interpretation) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("type", i.Type.String())
	enc.BoolKey("available", i.Available)

	// Unavailable entries carry no value key at all, so a consumer cannot mistake
	// a missing value for zero
	if i.Available {
		enc.StringKey("value", i.String())
	}
}
