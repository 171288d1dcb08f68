package osc

import (
	"io"
	"iter"
	"math"
	"strings"
)

// Dynamic is an atomic value whose type is only known at run time. The zero
// value is the integer 0.
type Dynamic struct {
	tag Tag
	i   Int32
	f   Float32
	s   DynamicString
	b   DynamicBlob
}

func (Dynamic) atomic() {}

// NewDynamic widens a to a Dynamic. Borrowed strings and blobs are copied so
// the result owns all of its memory. a must not be nil; NewDynamic panics if
// it is.
func NewDynamic(a Atomic) Dynamic {
	switch v := a.(type) {
	case nil:
		panic("osc: NewDynamic of nil Atomic")
	case Int32:
		return Dynamic{tag: TypeInt32, i: v}
	case Float32:
		return Dynamic{tag: TypeFloat32, f: v}
	case String:
		return Dynamic{tag: TypeString, s: DynamicString{s: strings.Clone(v.s)}}
	case DynamicString:
		return Dynamic{tag: TypeString, s: v}
	case Blob:
		return Dynamic{tag: TypeBlob, b: DynamicBlob{b: append([]byte{}, v.b...)}}
	case DynamicBlob:
		return Dynamic{tag: TypeBlob, b: v}
	case Dynamic:
		return v
	}
	panic("osc: unknown atomic type")
}

// Tag returns the type tag of the held value.
func (d Dynamic) Tag() Tag {
	if d.tag == 0 {
		return TypeInt32
	}
	return d.tag
}

// Atomic returns the held value.
func (d Dynamic) Atomic() Atomic {
	switch d.Tag() {
	case TypeFloat32:
		return d.f
	case TypeString:
		return d.s
	case TypeBlob:
		return d.b
	}
	return d.i
}

// Bytes returns the encoding of the held value.
func (d Dynamic) Bytes() iter.Seq[byte] {
	return d.Atomic().Bytes()
}

func (d Dynamic) String() string {
	switch v := d.Atomic().(type) {
	case Int32:
		return v.String()
	case Float32:
		return v.String()
	case DynamicString:
		return v.String()
	}
	return "blob"
}

// AsInt32 returns the held integer, or false if d holds another type.
func (d Dynamic) AsInt32() (Int32, bool) {
	return d.i, d.Tag() == TypeInt32
}

// AsFloat32 returns the held float, or false if d holds another type.
func (d Dynamic) AsFloat32() (Float32, bool) {
	return d.f, d.tag == TypeFloat32
}

// AsString returns the held string, or false if d holds another type.
func (d Dynamic) AsString() (DynamicString, bool) {
	return d.s, d.tag == TypeString
}

// AsBlob returns the held blob, or false if d holds another type.
func (d Dynamic) AsBlob() (DynamicBlob, bool) {
	return d.b, d.tag == TypeBlob
}

// Equal reports whether d and o hold the same type and value. Floats compare
// by bit pattern so NaN equals itself.
func (d Dynamic) Equal(o Dynamic) bool {
	if d.Tag() != o.Tag() {
		return false
	}
	switch d.Tag() {
	case TypeFloat32:
		return math.Float32bits(float32(d.f)) == math.Float32bits(float32(o.f))
	case TypeString:
		return d.s.s == o.s.s
	case TypeBlob:
		return string(d.b.b) == string(o.b.b)
	}
	return d.i == o.i
}

// ReadDynamic decodes one value of the type named by tag.
func (r *Reader) ReadDynamic(tag Tag) (Dynamic, error) {
	switch tag {
	case TypeInt32:
		v, err := r.ReadInt32()
		return Dynamic{tag: tag, i: v}, err
	case TypeFloat32:
		v, err := r.ReadFloat32()
		return Dynamic{tag: tag, f: v}, err
	case TypeString:
		v, err := r.ReadString()
		return Dynamic{tag: tag, s: v}, err
	case TypeBlob:
		v, err := r.ReadBlob()
		return Dynamic{tag: tag, b: v}, err
	}
	return Dynamic{}, &TagError{Kind: TagUnrecognized, Char: byte(tag), Offset: r.off}
}

// Values is a run-time sized list of atomic values. It is the Tuple used when
// the shape of a message is not known until it is decoded.
type Values []Dynamic

// TypeTags yields the tag of every value in order.
func (vs Values) TypeTags() iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		for _, v := range vs {
			if !yield(v.Tag()) {
				return
			}
		}
	}
}

// Chain yields the encoding of every value in order.
func (vs Values) Chain() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, v := range vs {
			for b := range v.Bytes() {
				if !yield(b) {
					return
				}
			}
		}
	}
}

// Atoms yields every value in order.
func (vs Values) Atoms() iter.Seq[Atomic] {
	return func(yield func(Atomic) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}

// Equal reports whether vs and o hold equal values in the same order.
func (vs Values) Equal(o Values) bool {
	if len(vs) != len(o) {
		return false
	}
	for i := range vs {
		if !vs[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// DecodeOSC implements Decodable.
func (vs *Values) DecodeOSC(r *Reader) error {
	v, err := r.ReadValues()
	if err != nil {
		return err
	}
	*vs = v
	return nil
}

// ReadValues decodes a type tag string followed by one value per tag. The
// first error stops decoding. Running out of input after the type tags is
// io.ErrUnexpectedEOF.
func (r *Reader) ReadValues() (Values, error) {
	tags, err := r.ReadTags()
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, nil
	}
	vs := make(Values, 0, len(tags))
	for _, tag := range tags {
		v, err := r.ReadDynamic(tag)
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}
