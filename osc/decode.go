package osc

import "io"

// Decodable is implemented by the types that can decode themselves from a
// Reader.
type Decodable interface {
	DecodeOSC(r *Reader) error
}

// Decode reads one value of v's type from r. It returns io.EOF if r was
// already empty, ErrMisaligned if r ended partway through a unit,
// io.ErrUnexpectedEOF if it ended on a unit boundary inside the value, and
// a component error for malformed contents.
func Decode(r io.Reader, v Decodable) error {
	return v.DecodeOSC(NewReader(r))
}

// DecodeBytes is Decode over a byte slice.
func DecodeBytes(b []byte, v Decodable) error {
	return v.DecodeOSC(NewBytesReader(b))
}
