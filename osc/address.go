package osc

import (
	"iter"
	"slices"
	"strings"
)

// Address is a validated OSC address: zero or more path segments followed by
// a method, written "/path/to/method" on the wire.
type Address struct {
	path   []string
	method string
}

// NewAddress validates path and method and returns the Address they form.
// Every segment and the method must be non-empty and consist of printable
// ASCII outside the set " #*,/?[]{}". The returned AddressError names the
// first offending segment; the method counts as segment len(path).
func NewAddress(path []string, method string) (Address, error) {
	for i, seg := range path {
		if err := checkSegment(seg, i); err != nil {
			return Address{}, err
		}
	}
	if err := checkSegment(method, len(path)); err != nil {
		return Address{}, err
	}
	a := Address{method: method}
	if len(path) > 0 {
		a.path = slices.Clone(path)
	}
	return a, nil
}

// ParseAddress parses the textual form of an address such as "/a/b/c" with
// the same rules used to decode one from the wire.
func ParseAddress(s string) (Address, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return Address{}, &AddressError{Kind: AddressNotPrintableASCII, Offset: i}
	}
	b := collect(make([]byte, 0, len(s)+unitSize), Padded(concat(stringBytes(s), once(0))))
	return NewBytesReader(b).ReadAddress()
}

func checkSegment(seg string, idx int) error {
	if seg == "" {
		return &AddressError{Kind: AddressEmpty, Segment: idx}
	}
	for i := 0; i < len(seg); i++ {
		if c := seg[i]; !printable(c) || isReserved(c) {
			return &AddressError{Kind: AddressInvalidCharacter, Char: c, Segment: idx}
		}
	}
	return nil
}

func printable(c byte) bool {
	return c >= 0x20 && c <= 0x7E
}

// isReserved reports whether c is the separator or one of the characters OSC
// reserves for address patterns.
func isReserved(c byte) bool {
	switch c {
	case ' ', '#', '*', ',', '/', '?', '[', ']', '{', '}':
		return true
	}
	return false
}

// Path returns the segments before the method. The caller must not modify
// the returned slice.
func (a Address) Path() []string { return a.path }

// Method returns the last segment.
func (a Address) Method() string { return a.method }

// IsZero reports whether a is the zero Address, which is not valid.
func (a Address) IsZero() bool { return a.method == "" }

// Segments yields the path segments followed by the method.
func (a Address) Segments() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, seg := range a.path {
			if !yield(seg) {
				return
			}
		}
		yield(a.method)
	}
}

func (a Address) String() string {
	var sb strings.Builder
	for seg := range a.Segments() {
		sb.WriteByte('/')
		sb.WriteString(seg)
	}
	return sb.String()
}

// Equal reports whether a and o name the same address.
func (a Address) Equal(o Address) bool {
	return a.method == o.method && slices.Equal(a.path, o.path)
}

// Bytes returns the wire form: '/' before every segment, a null terminator
// and padding.
func (a Address) Bytes() iter.Seq[byte] {
	return Padded(func(yield func(byte) bool) {
		for seg := range a.Segments() {
			if !yield('/') {
				return
			}
			for i := 0; i < len(seg); i++ {
				if !yield(seg[i]) {
					return
				}
			}
		}
		yield(0)
	})
}

// DecodeOSC implements Decodable.
func (a *Address) DecodeOSC(r *Reader) error {
	v, err := r.ReadAddress()
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ReadAddress decodes an address. Segments are collected as they are read and
// the last one becomes the method once the terminator is found.
func (r *Reader) ReadAddress() (Address, error) {
	u, err := r.Next()
	if err != nil {
		return Address{}, err
	}
	if u[0] != '/' {
		return Address{}, &AddressError{Kind: AddressLeadingSlash, Char: u[0], Offset: r.at(0)}
	}

	var (
		segs    []string
		seg     []byte
		slashed = true // the previous byte was '/'
		start   = 1
	)
	for {
		for i := start; i < unitSize; i++ {
			c := u[i]
			switch {
			case c == 0:
				if slashed {
					return Address{}, &AddressError{Kind: AddressNoMethod, Offset: r.at(i)}
				}
				if j := nonNull(u[i+1:]); j >= 0 {
					return Address{}, &AddressError{Kind: AddressNullThenNonNull, Char: u[i+1+j], Offset: r.at(i + 1 + j)}
				}
				a := Address{method: string(seg)}
				if len(segs) > 0 {
					a.path = segs
				}
				return a, nil
			case c == '/':
				if slashed {
					return Address{}, &AddressError{Kind: AddressEmptySegment, Char: c, Offset: r.at(i)}
				}
				segs = append(segs, string(seg))
				seg = seg[:0]
				slashed = true
			case !printable(c):
				return Address{}, &AddressError{Kind: AddressNotPrintableASCII, Char: c, Offset: r.at(i)}
			case isReserved(c):
				return Address{}, &AddressError{Kind: AddressPatternsNotYetImplemented, Char: c, Offset: r.at(i)}
			default:
				seg = append(seg, c)
				slashed = false
			}
		}
		if u, err = r.nextIn(); err != nil {
			return Address{}, err
		}
		start = 0
	}
}
