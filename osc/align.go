package osc

import (
	"io"
	"iter"
)

// unitSize is the width every OSC field is measured and padded in.
const unitSize = 4

// Unit is four bytes read at the same time. The length of a well-formed OSC
// packet is always a multiple of it.
type Unit [unitSize]byte

// Padded lazily extends seq with zero bytes until the number of bytes yielded
// is a multiple of four. Input that is already aligned passes through
// unchanged. The result can be ranged over again whenever seq can.
func Padded(seq iter.Seq[byte]) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		n := 0
		for b := range seq {
			if !yield(b) {
				return
			}
			n = (n + 1) % unitSize
		}
		for i := padBytesNeeded(n); i > 0; i-- {
			if !yield(0) {
				return
			}
		}
	}
}

// padBytesNeeded determines how many bytes are needed to fill up to the next 4
// byte length.
func padBytesNeeded(elementLen int) int {
	return (unitSize - elementLen%unitSize) % unitSize
}

// concat yields every sequence in order.
func concat(seqs ...iter.Seq[byte]) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, seq := range seqs {
			for b := range seq {
				if !yield(b) {
					return
				}
			}
		}
	}
}

func once(b byte) iter.Seq[byte] {
	return func(yield func(byte) bool) { yield(b) }
}

func stringBytes(s string) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := 0; i < len(s); i++ {
			if !yield(s[i]) {
				return
			}
		}
	}
}

func sliceBytes(b []byte) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, c := range b {
			if !yield(c) {
				return
			}
		}
	}
}

// collect appends every byte of seq to dst.
func collect(dst []byte, seq iter.Seq[byte]) []byte {
	for b := range seq {
		dst = append(dst, b)
	}
	return dst
}

// Reader pulls 4-byte units from an io.Reader or a byte slice and keeps
// track of how many bytes it consumed. It is the source every decoder in
// this package reads from.
type Reader struct {
	r   io.Reader
	buf []byte // set for NewBytesReader; views into it are handed out by ParseString and ParseBlob
	off int
}

// NewReader returns a Reader pulling bytes from r. The caller should buffer r
// if single small reads are expensive.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// NewBytesReader returns a Reader over b.
func NewBytesReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Next reads one unit. It returns io.EOF if the input ended before the first
// byte of the unit and ErrMisaligned if it ended partway through.
func (r *Reader) Next() (Unit, error) {
	var u Unit
	if r.r == nil {
		rest := len(r.buf) - r.off
		switch {
		case rest == 0:
			return u, io.EOF
		case rest < unitSize:
			r.off = len(r.buf)
			return u, ErrMisaligned
		}
		copy(u[:], r.buf[r.off:])
		r.off += unitSize
		return u, nil
	}

	n, err := io.ReadFull(r.r, u[:])
	r.off += n
	switch err {
	case nil:
		return u, nil
	case io.ErrUnexpectedEOF:
		return u, ErrMisaligned
	}
	return u, err
}

// nextIn reads a unit that continues a field which has already started, where
// a clean end of input is unexpected.
func (r *Reader) nextIn() (Unit, error) {
	u, err := r.Next()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return u, err
}

// view returns buf[from:to] for a bytes reader.
func (r *Reader) view(from, to int) []byte {
	return r.buf[from:to:to]
}

// at returns the input offset of byte i of the unit that was just read.
func (r *Reader) at(i int) int {
	return r.off - unitSize + i
}
