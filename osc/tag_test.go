package osc

import (
	"io"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	f := func(tag Tag) bool {
		got, err := ParseTag(byte(tag))
		return err == nil && got == tag
	}
	require.NoError(t, quick.Check(f, nil))

	for c := 0; c < 256; c++ {
		_, err := ParseTag(byte(c))
		switch c {
		case 'i', 'f', 's', 'b':
			assert.NoError(t, err)
		default:
			var te *TagError
			if assert.ErrorAs(t, err, &te, "%q", c) {
				assert.Equal(t, TagUnrecognized, te.Kind)
			}
		}
	}
}

func TestTagsBytes(t *testing.T) {
	tests := []struct {
		tags Tags
		want string
	}{
		{nil, ",\x00\x00\x00"},
		{Tags{TypeFloat32}, ",f\x00\x00"},
		{Tags{TypeInt32, TypeInt32, TypeString}, ",iis\x00\x00\x00\x00"},
		{Tags{TypeInt32, TypeInt32, TypeString, TypeFloat32, TypeFloat32}, ",iisff\x00\x00"},
	}
	for _, tt := range tests {
		t.Run(tt.tags.String(), func(t *testing.T) {
			raw := collect(nil, tt.tags.Bytes())
			assert.Equal(t, []byte(tt.want), raw)

			got, err := NewBytesReader(raw).ReadTags()
			require.NoError(t, err)
			assert.Equal(t, tt.tags, got)
		})
	}
}

func TestReadTagsErrors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		kind   TagErrorKind
		char   byte
		offset int
	}{
		{"missing_comma", "iis\x00", TagMissingComma, 'i', 0},
		{"unrecognized", ",iq\x00", TagUnrecognized, 'q', 2},
		{"null_then_non_null", ",i\x00f", TagNullThenNonNull, 'f', 3},
		{"unrecognized_second_unit", ",iiiN\x00\x00\x00", TagUnrecognized, 'N', 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBytesReader([]byte(tt.in)).ReadTags()
			var te *TagError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tt.kind, te.Kind)
			assert.Equal(t, tt.char, te.Char)
			assert.Equal(t, tt.offset, te.Offset)
		})
	}

	_, err := NewBytesReader([]byte(",iii")).ReadTags()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	_, err = NewBytesReader([]byte(",i")).ReadTags()
	assert.ErrorIs(t, err, ErrMisaligned)
}

func TestTagsString(t *testing.T) {
	assert.Equal(t, ",", Tags(nil).String())
	assert.Equal(t, ",ifsb", Tags{TypeInt32, TypeFloat32, TypeString, TypeBlob}.String())
	assert.Equal(t, "b", TypeBlob.String())
}
