package osc

import (
	"encoding/binary"
	"iter"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unsafe"
)

// Atomic is one of the four indivisible OSC values: an integer, a float, a
// string or a blob. The set of implementations is closed.
//
// String and Blob borrow the memory they were built from and never copy it;
// DynamicString and DynamicBlob always own theirs. Int32 and Float32 are
// plain values.
type Atomic interface {
	// Tag returns the type tag of the value.
	Tag() Tag
	// Bytes returns the encoded, padded value.
	Bytes() iter.Seq[byte]

	atomic()
}

// Int32 is a 32-bit big-endian two's-complement integer.
type Int32 int32

// Float32 is a 32-bit big-endian IEEE 754 floating-point number.
type Float32 float32

// String is an OSC string viewing memory owned by the caller.
type String struct {
	s string
}

// Blob is an OSC blob viewing memory owned by the caller.
type Blob struct {
	b []byte
}

// DynamicString is an OSC string that owns its contents.
type DynamicString struct {
	s string
}

// DynamicBlob is an OSC blob that owns its contents.
type DynamicBlob struct {
	b []byte
}

func (Int32) atomic()         {}
func (Float32) atomic()       {}
func (String) atomic()        {}
func (Blob) atomic()          {}
func (DynamicString) atomic() {}
func (DynamicBlob) atomic()   {}

func (Int32) Tag() Tag         { return TypeInt32 }
func (Float32) Tag() Tag       { return TypeFloat32 }
func (String) Tag() Tag        { return TypeString }
func (Blob) Tag() Tag          { return TypeBlob }
func (DynamicString) Tag() Tag { return TypeString }
func (DynamicBlob) Tag() Tag   { return TypeBlob }

// NewString validates s as an OSC string without copying it.
func NewString(s string) (String, error) {
	if err := checkString(s); err != nil {
		return String{}, err
	}
	return String{s: s}, nil
}

// NewDynamicString validates s and stores an independent copy of it.
func NewDynamicString(s string) (DynamicString, error) {
	if err := checkString(s); err != nil {
		return DynamicString{}, err
	}
	return DynamicString{s: strings.Clone(s)}, nil
}

// NewBlob wraps b without copying it. The caller must not modify b while the
// Blob is in use.
func NewBlob(b []byte) (Blob, error) {
	if err := checkBlob(b); err != nil {
		return Blob{}, err
	}
	return Blob{b: b}, nil
}

// NewDynamicBlob stores an independent copy of b.
func NewDynamicBlob(b []byte) (DynamicBlob, error) {
	if err := checkBlob(b); err != nil {
		return DynamicBlob{}, err
	}
	return DynamicBlob{b: append([]byte{}, b...)}, nil
}

func checkString(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return &ContentError{Kind: ContentNonASCII}
		}
	}
	if strings.IndexByte(s, 0) >= 0 {
		return &ContentError{Kind: ContentNullInString}
	}
	return nil
}

func checkBlob(b []byte) error {
	if int64(len(b)) > math.MaxInt32 {
		return &ContentError{Kind: ContentTooLarge}
	}
	return nil
}

func (s String) String() string        { return s.s }
func (s DynamicString) String() string { return s.s }

// Data returns the viewed bytes.
func (b Blob) Data() []byte { return b.b }

// Data returns the owned bytes. The caller must not modify them.
func (b DynamicBlob) Data() []byte { return b.b }

func (b Blob) String() string        { return "blob" }
func (b DynamicBlob) String() string { return "blob" }

func (i Int32) String() string { return strconv.FormatInt(int64(i), 10) }

func (f Float32) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 32) }

// Bytes returns the four big-endian bytes of i.
func (i Int32) Bytes() iter.Seq[byte] {
	return unitBytes(uint32(i))
}

// Bytes returns the four big-endian bytes of f.
func (f Float32) Bytes() iter.Seq[byte] {
	return unitBytes(math.Float32bits(float32(f)))
}

// Bytes returns the string, a null terminator and padding.
func (s String) Bytes() iter.Seq[byte] {
	return Padded(concat(stringBytes(s.s), once(0)))
}

// Bytes returns the string, a null terminator and padding.
func (s DynamicString) Bytes() iter.Seq[byte] {
	return String(s).Bytes()
}

// Bytes returns the size prefix, the contents and padding.
func (b Blob) Bytes() iter.Seq[byte] {
	return concat(unitBytes(uint32(len(b.b))), Padded(sliceBytes(b.b)))
}

// Bytes returns the size prefix, the contents and padding.
func (b DynamicBlob) Bytes() iter.Seq[byte] {
	return Blob(b).Bytes()
}

func unitBytes(v uint32) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		var u Unit
		binary.BigEndian.PutUint32(u[:], v)
		for _, b := range u {
			if !yield(b) {
				return
			}
		}
	}
}

// DecodeOSC implements Decodable.
func (i *Int32) DecodeOSC(r *Reader) error {
	v, err := r.ReadInt32()
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// DecodeOSC implements Decodable.
func (f *Float32) DecodeOSC(r *Reader) error {
	v, err := r.ReadFloat32()
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// DecodeOSC implements Decodable.
func (s *DynamicString) DecodeOSC(r *Reader) error {
	v, err := r.ReadString()
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// DecodeOSC implements Decodable.
func (b *DynamicBlob) DecodeOSC(r *Reader) error {
	v, err := r.ReadBlob()
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// ReadInt32 decodes an integer. Any four bytes are a valid integer.
func (r *Reader) ReadInt32() (Int32, error) {
	u, err := r.Next()
	if err != nil {
		return 0, err
	}
	return Int32(binary.BigEndian.Uint32(u[:])), nil
}

// ReadFloat32 decodes a float. Any four bytes are a valid float.
func (r *Reader) ReadFloat32() (Float32, error) {
	u, err := r.Next()
	if err != nil {
		return 0, err
	}
	return Float32(math.Float32frombits(binary.BigEndian.Uint32(u[:]))), nil
}

// ReadString decodes a string into owned memory.
func (r *Reader) ReadString() (DynamicString, error) {
	var sb strings.Builder
	if _, err := r.scanString(&sb); err != nil {
		return DynamicString{}, err
	}
	return DynamicString{s: sb.String()}, nil
}

// ReadBlob decodes a blob into owned memory.
func (r *Reader) ReadBlob() (DynamicBlob, error) {
	var b []byte
	if _, err := r.scanBlob(&b); err != nil {
		return DynamicBlob{}, err
	}
	return DynamicBlob{b: b}, nil
}

// scanString validates one string field, appending its contents to sb when
// sb is not nil, and returns the content length.
func (r *Reader) scanString(sb *strings.Builder) (int, error) {
	n := 0
	u, err := r.Next()
	for {
		if err != nil {
			return 0, err
		}
		for i, c := range u {
			if c == 0 {
				if j := nonNull(u[i+1:]); j >= 0 {
					return 0, &StringError{Kind: StringNullThenNonNull, Char: u[i+1+j], Offset: r.at(i + 1 + j)}
				}
				return n, nil
			}
			if c > unicode.MaxASCII {
				return 0, &StringError{Kind: StringNonASCII, Char: c, Offset: r.at(i)}
			}
			if sb != nil {
				sb.WriteByte(c)
			}
			n++
		}
		u, err = r.nextIn()
	}
}

// scanBlob validates one blob field, appending its contents to dst when dst
// is not nil, and returns the content length. It reads ceil(size/4) units
// after the size prefix.
func (r *Reader) scanBlob(dst *[]byte) (int, error) {
	start := r.off
	u, err := r.Next()
	if err != nil {
		return 0, err
	}
	size := int32(binary.BigEndian.Uint32(u[:]))
	if size < 0 {
		return 0, &BlobError{Kind: BlobNegativeSize, Size: size, Offset: start}
	}

	n := int(size)
	if dst != nil && r.r == nil {
		// Capacity is bounded by the remaining input, not by size.
		*dst = make([]byte, 0, min(n, len(r.buf)-r.off))
	}
	for left := n; left > 0; left -= unitSize {
		if u, err = r.nextIn(); err != nil {
			return 0, err
		}
		k := min(left, unitSize)
		if j := nonNull(u[k:]); j >= 0 {
			return 0, &BlobError{Kind: BlobTooLong, Size: size, Offset: r.at(k + j)}
		}
		if dst != nil {
			*dst = append(*dst, u[:k]...)
		}
	}
	if dst != nil && *dst == nil {
		*dst = []byte{}
	}
	return n, nil
}

// ParseString decodes the string at the start of b without copying: the
// returned String views b. It also returns the number of bytes consumed.
func ParseString(b []byte) (String, int, error) {
	r := NewBytesReader(b)
	n, err := r.scanString(nil)
	if err != nil {
		return String{}, 0, err
	}
	if n == 0 {
		return String{}, r.Offset(), nil
	}
	return String{s: unsafe.String(&b[0], n)}, r.Offset(), nil
}

// ParseBlob decodes the blob at the start of b without copying: the returned
// Blob views b. It also returns the number of bytes consumed.
func ParseBlob(b []byte) (Blob, int, error) {
	r := NewBytesReader(b)
	n, err := r.scanBlob(nil)
	if err != nil {
		return Blob{}, 0, err
	}
	return Blob{b: r.view(unitSize, unitSize+n)}, r.Offset(), nil
}

// ToAtomic converts a Go value to its atomic OSC counterpart. Only int32,
// float32, string, []byte and the atomic types themselves are accepted.
// Strings and byte slices are borrowed, not copied.
func ToAtomic(v any) (Atomic, error) {
	switch t := v.(type) {
	case int32:
		return Int32(t), nil
	case float32:
		return Float32(t), nil
	case string:
		return NewString(t)
	case []byte:
		return NewBlob(t)
	case Int32, Float32, String, Blob, DynamicString, DynamicBlob, Dynamic:
		return t.(Atomic), nil
	}
	return nil, &UnsupportedTypeError{Type: reflect.TypeOf(v)}
}
