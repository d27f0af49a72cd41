package maze

import (
	"errors"
	"fmt"
	"io"
)

// MarshalBinary encodes the full backing store as Area bytes, one WallMask
// per storage slot. There is no header and no size field; inactive slots are
// written as they are.
func (g *Grid) MarshalBinary() ([]byte, error) {
	return g.encode(), nil
}

func (g *Grid) encode() []byte {
	out := make([]byte, Area)
	for i, m := range g.walls {
		out[i] = byte(m)
	}
	return out
}

// UnmarshalBinary replaces the backing store with data, which must be exactly
// Area bytes. The active size is kept; start and finish move to the
// bottom-left and top-right cells. High nibbles are dropped; every other bit
// is stored as read, so a blob saved at another size survives a load and a
// save unchanged. Call Resize to repair one-sided walls after a load.
//
// Returns ErrTruncatedFile if data is short, ErrMalformedFile if it is long.
// On error g is left unchanged.
func (g *Grid) UnmarshalBinary(data []byte) error {
	if len(data) < Area {
		return fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedFile, len(data), Area)
	}
	if len(data) > Area {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedFile, len(data), Area)
	}
	for i, b := range data {
		g.walls[i] = WallMask(b) & maskBits
	}
	g.defaultEndpoints()

	return nil
}

// WriteTo writes the Area-byte encoding of g to w.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(g.encode())
	return int64(n), err
}

// ReadFrom reads r to EOF and decodes it with UnmarshalBinary.
// A stream that ends early yields ErrTruncatedFile; one with trailing bytes
// yields ErrMalformedFile. Other read errors are returned as they are.
func (g *Grid) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, Area+1)
	n, err := io.ReadFull(r, buf)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		// short or exact read; UnmarshalBinary decides
	case err != nil:
		return int64(n), err
	default:
		// Area+1 bytes were available: drain the rest for an honest count.
		rest, _ := io.Copy(io.Discard, r)
		return int64(n) + rest, fmt.Errorf("%w: more than %d bytes", ErrMalformedFile, Area)
	}

	return int64(n), g.UnmarshalBinary(buf[:n])
}
