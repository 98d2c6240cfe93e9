package wire

import (
	"errors"
	"fmt"
	"github.com/itchio/headway/counter"
	"github.com/lunixbochs/struc"
	"io"
)

// Magic identifies a snapshot stream. Always 'BVIS'.
var Magic = [4]uint8{0x42, 0x56, 0x49, 0x53}

// Version is the snapshot layout version written by this package.
const Version uint8 = 1

// Values of the Order header field.
const (
	OrderLittle uint8 = 0
	OrderBig    uint8 = 1
)

// FlagNegative marks a payload that is the two's-complement image of a negative value.
const FlagNegative uint8 = 0x01

var (
	// ErrBadMagic indicates that the stream does not begin with [Magic] and so is not a
	// snapshot at all.
	ErrBadMagic = errors.New("stream does not begin with the snapshot magic")

	// ErrUnsupportedVersion indicates a snapshot with a layout version this decoder does
	// not understand.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrInvalidOrder indicates that the byte order field is neither [OrderLittle] nor
	// [OrderBig].
	ErrInvalidOrder = errors.New("byte order field is neither little nor big")

	// ErrInvalidWidth indicates that the word width field is not one of 16, 32, or 64.
	ErrInvalidWidth = errors.New("word width field is not 16, 32, or 64")

	// ErrMisalignedPayload indicates that the payload is empty or not a whole number of
	// words.
	ErrMisalignedPayload = errors.New("payload length is not a whole positive number of words")
)

// Snapshot is the serialized form of a visualized memory image: a fixed header followed by
// the byte sequence exactly as it appears in memory order.
//
// Multi-byte header fields are big endian regardless of the byte order the payload itself
// was built with.
type Snapshot struct {
	Magic         [4]uint8
	Version       uint8
	Order         uint8
	Width         uint8
	Flags         uint8
	PayloadLength uint32 `struc:"uint32,big,sizeof=Payload"`
	Payload       []uint8
}

// Ensure Snapshot implements [io.WriterTo]
var _ io.WriterTo = &Snapshot{}

func (s *Snapshot) WriteTo(w io.Writer) (int64, error) {
	cw := counter.NewWriter(w)
	if err := struc.Pack(cw, s); err != nil {
		return cw.Count(), fmt.Errorf("could not pack snapshot: %w", err)
	}

	return cw.Count(), nil
}

// ReadSnapshot decodes a snapshot stream and validates its header. On success every header
// invariant holds: the version is supported, order and width carry known values, and the
// payload is a whole positive number of words.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := struc.Unpack(r, &s); err != nil {
		return nil, fmt.Errorf("could not unpack snapshot: %w", err)
	}

	if s.Magic != Magic {
		return nil, fmt.Errorf("%w: got % x", ErrBadMagic, s.Magic)
	}

	if s.Version != Version {
		return nil, fmt.Errorf("%w: got %d, can only decode %d", ErrUnsupportedVersion, s.Version, Version)
	}

	if s.Order != OrderLittle && s.Order != OrderBig {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, s.Order)
	}

	switch s.Width {
	case 16, 32, 64:
	default:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, s.Width)
	}

	wordBytes := int(s.Width) / 8
	if len(s.Payload) == 0 || len(s.Payload)%wordBytes != 0 {
		return nil, fmt.Errorf("%w: %d bytes at a width of %d bits", ErrMisalignedPayload, len(s.Payload), s.Width)
	}

	return &s, nil
}
