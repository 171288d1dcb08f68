package osc

import (
	"bytes"
	"io"
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt32Float32Bytes(t *testing.T) {
	assert.Equal(t, []byte{0x00, 0x00, 0x03, 0xE8}, collect(nil, Int32(1000).Bytes()))
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, collect(nil, Int32(-1).Bytes()))
	assert.Equal(t, []byte{0x43, 0xDC, 0x00, 0x00}, collect(nil, Float32(440).Bytes()))

	r := NewBytesReader([]byte{0xFF, 0xFF, 0xFF, 0xFE, 0x3F, 0x9D, 0xF3, 0xB6})
	i, err := r.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, Int32(-2), i)
	f, err := r.ReadFloat32()
	require.NoError(t, err)
	assert.Equal(t, Float32(1.234), f)
}

func TestNewString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind ContentErrorKind
	}{
		{"ok", "hello", 0},
		{"empty", "", 0},
		{"non_ascii", "h\xe9llo", ContentNonASCII},
		{"null", "he\x00llo", ContentNullInString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewString(tt.in)
			_, derr := NewDynamicString(tt.in)
			if tt.kind == 0 {
				require.NoError(t, err)
				require.NoError(t, derr)
				assert.Equal(t, tt.in, s.String())
				return
			}
			var ce *ContentError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.kind, ce.Kind)
			require.ErrorAs(t, derr, &ce)
			assert.Equal(t, tt.kind, ce.Kind)
		})
	}
}

func TestStringBytes(t *testing.T) {
	s, err := NewString("hello")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello\x00\x00\x00"), collect(nil, s.Bytes()))

	s, err = NewString("abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc\x00"), collect(nil, s.Bytes()))

	s, err = NewString("")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, collect(nil, s.Bytes()))
}

func TestReadStringErrors(t *testing.T) {
	tests := []struct {
		name   string
		in     []byte
		kind   StringErrorKind
		offset int
	}{
		{"non_ascii", []byte("a\x80\x00\x00"), StringNonASCII, 1},
		{"null_then_non_null", []byte("ab\x00c"), StringNullThenNonNull, 3},
		{"second_unit", []byte("abcdef\x00\x01"), StringNullThenNonNull, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBytesReader(tt.in).ReadString()
			var se *StringError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.kind, se.Kind)
			assert.Equal(t, tt.offset, se.Offset)
		})
	}

	_, err := NewBytesReader([]byte("abcd")).ReadString()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	_, err = NewBytesReader([]byte("abcdef")).ReadString()
	assert.ErrorIs(t, err, ErrMisaligned)
	_, err = NewBytesReader(nil).ReadString()
	assert.ErrorIs(t, err, io.EOF)
}

func TestParseStringBorrows(t *testing.T) {
	b := []byte("hello\x00\x00\x00rest")
	s, n, err := ParseString(b)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, "hello", s.String())

	b[0] = 'j'
	assert.Equal(t, "jello", s.String())
}

func TestStringRoundTrip(t *testing.T) {
	f := func(s DynamicString) bool {
		got, err := NewBytesReader(collect(nil, s.Bytes())).ReadString()
		return err == nil && got.String() == s.String()
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestBlobBytes(t *testing.T) {
	b, err := NewBlob([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 3, 'a', 'b', 'c', 0}, collect(nil, b.Bytes()))

	b, err = NewBlob(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, collect(nil, b.Bytes()))

	b, err = NewBlob([]byte{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 5, 1, 2, 3, 4, 5, 0, 0, 0}, collect(nil, b.Bytes()))
}

func TestReadBlob(t *testing.T) {
	b, err := NewBytesReader([]byte{0, 0, 0, 5, 1, 2, 3, 4, 5, 0, 0, 0}).ReadBlob()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, b.Data())

	b, err = NewBytesReader([]byte{0, 0, 0, 0}).ReadBlob()
	require.NoError(t, err)
	assert.NotNil(t, b.Data())
	assert.Empty(t, b.Data())

	b, err = NewReader(bytes.NewReader([]byte{0, 0, 0, 2, 9, 8, 0, 0})).ReadBlob()
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 8}, b.Data())
}

func TestReadBlobErrors(t *testing.T) {
	var be *BlobError
	_, err := NewBytesReader([]byte{0xFF, 0xFF, 0xFF, 0xFF}).ReadBlob()
	require.ErrorAs(t, err, &be)
	assert.Equal(t, BlobNegativeSize, be.Kind)
	assert.Equal(t, int32(-1), be.Size)

	_, err = NewBytesReader([]byte{0, 0, 0, 3, 'a', 'b', 'c', 'd'}).ReadBlob()
	require.ErrorAs(t, err, &be)
	assert.Equal(t, BlobTooLong, be.Kind)
	assert.Equal(t, 7, be.Offset)

	_, err = NewBytesReader([]byte{0, 0, 0, 8, 1, 2, 3, 4}).ReadBlob()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = NewBytesReader([]byte{0, 0, 0, 8, 1, 2}).ReadBlob()
	assert.ErrorIs(t, err, ErrMisaligned)
}

func TestParseBlobBorrows(t *testing.T) {
	in := []byte{0, 0, 0, 2, 7, 7, 0, 0, 0xAA}
	b, n, err := ParseBlob(in)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, []byte{7, 7}, b.Data())

	in[4] = 1
	assert.Equal(t, []byte{1, 7}, b.Data())
}

func TestBlobOwnership(t *testing.T) {
	src := []byte("abc")
	borrowed, err := NewBlob(src)
	require.NoError(t, err)
	owned, err := NewDynamicBlob(src)
	require.NoError(t, err)
	widened := NewDynamic(borrowed)

	src[0] = 'z'
	assert.Equal(t, []byte("zbc"), borrowed.Data())
	assert.Equal(t, []byte("abc"), owned.Data())
	got, ok := widened.AsBlob()
	require.True(t, ok)
	assert.Equal(t, []byte("abc"), got.Data())
}

func TestBlobRoundTrip(t *testing.T) {
	f := func(b DynamicBlob) bool {
		got, err := NewBytesReader(collect(nil, b.Bytes())).ReadBlob()
		return err == nil && bytes.Equal(got.Data(), b.Data())
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestToAtomic(t *testing.T) {
	tests := []struct {
		name string
		in   any
		tag  Tag
	}{
		{"int32", int32(7), TypeInt32},
		{"float32", float32(1.5), TypeFloat32},
		{"string", "hi", TypeString},
		{"bytes", []byte{1}, TypeBlob},
		{"Int32", Int32(7), TypeInt32},
		{"DynamicString", DynamicString{s: "x"}, TypeString},
		{"Dynamic", NewDynamic(Float32(2)), TypeFloat32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ToAtomic(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.tag, a.Tag())
		})
	}

	for _, v := range []any{7, int64(7), 1.5, true, nil, []string{"a"}} {
		_, err := ToAtomic(v)
		var ue *UnsupportedTypeError
		assert.ErrorAs(t, err, &ue, "%T", v)
	}

	_, err := ToAtomic("caf\xc3\xa9")
	var ce *ContentError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ContentNonASCII, ce.Kind)
}

func TestDynamic(t *testing.T) {
	var zero Dynamic
	assert.Equal(t, TypeInt32, zero.Tag())
	i, ok := zero.AsInt32()
	assert.True(t, ok)
	assert.Equal(t, Int32(0), i)

	assert.PanicsWithValue(t, "osc: NewDynamic of nil Atomic", func() { NewDynamic(nil) })

	d := NewDynamic(Float32(2.5))
	assert.Equal(t, TypeFloat32, d.Tag())
	_, ok = d.AsInt32()
	assert.False(t, ok)
	f, ok := d.AsFloat32()
	assert.True(t, ok)
	assert.Equal(t, Float32(2.5), f)
	assert.Equal(t, "2.5", d.String())

	s, err := NewString("hi")
	require.NoError(t, err)
	d = NewDynamic(s)
	ds, ok := d.AsString()
	assert.True(t, ok)
	assert.Equal(t, "hi", ds.String())
	_, ok = d.AsBlob()
	assert.False(t, ok)
	assert.Equal(t, collect(nil, s.Bytes()), collect(nil, d.Bytes()))

	nan := NewDynamic(Float32(math.NaN()))
	assert.True(t, nan.Equal(nan))
	assert.False(t, NewDynamic(Int32(1)).Equal(NewDynamic(Float32(1))))
}
