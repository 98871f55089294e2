package wavetable

import (
	"errors"
	"fmt"
	"io"
)

// ErrSize is returned when encoded data does not hold exactly Size samples.
var ErrSize = errors.New("wavetable: table must be exactly 256 bytes")

// WriteTo writes the raw samples to w in index order. No header or framing
// is added, so the output is always Size bytes long.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t[:])
	if err == nil && n < Size {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// Read reads exactly Size raw samples from r. Bytes after the first Size are
// left unread.
func Read(r io.Reader) (Table, error) {
	var t Table
	n, err := io.ReadFull(r, t[:])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return Table{}, fmt.Errorf("%w: got %d", ErrSize, n)
	}
	if err != nil {
		return Table{}, fmt.Errorf("failed to read table: %w", err)
	}
	return t, nil
}

// Decode builds a table from b, which must be exactly Size bytes.
func Decode(b []byte) (Table, error) {
	var t Table
	if len(b) != Size {
		return t, fmt.Errorf("%w: got %d", ErrSize, len(b))
	}
	copy(t[:], b)
	return t, nil
}
