package osc

import (
	"iter"
	"strings"
)

// Tag is the single-character OSC type tag of an atomic value.
type Tag byte

const (
	TypeInt32   Tag = 'i'
	TypeFloat32 Tag = 'f'
	TypeString  Tag = 's'
	TypeBlob    Tag = 'b'
)

// ParseTag returns the Tag for the type tag character c.
func ParseTag(c byte) (Tag, error) {
	switch t := Tag(c); t {
	case TypeInt32, TypeFloat32, TypeString, TypeBlob:
		return t, nil
	}
	return 0, &TagError{Kind: TagUnrecognized, Char: c}
}

func (t Tag) String() string {
	return string(rune(t))
}

// Tags is an ordered list of type tags, as carried by the type tag string of
// a message.
type Tags []Tag

// Bytes returns the wire form: ',' then one character per tag, a null
// terminator and padding.
func (ts Tags) Bytes() iter.Seq[byte] {
	return tagString(ts.All())
}

// All yields the tags in order.
func (ts Tags) All() iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		for _, t := range ts {
			if !yield(t) {
				return
			}
		}
	}
}

// String returns the type tag string without its terminator, e.g. ",iisff".
func (ts Tags) String() string {
	var sb strings.Builder
	sb.Grow(len(ts) + 1)
	sb.WriteByte(',')
	for _, t := range ts {
		sb.WriteByte(byte(t))
	}
	return sb.String()
}

// DecodeOSC implements Decodable.
func (ts *Tags) DecodeOSC(r *Reader) error {
	v, err := r.ReadTags()
	if err != nil {
		return err
	}
	*ts = v
	return nil
}

// tagString encodes a type tag string from a tag sequence.
func tagString(tags iter.Seq[Tag]) iter.Seq[byte] {
	return Padded(func(yield func(byte) bool) {
		if !yield(',') {
			return
		}
		for t := range tags {
			if !yield(byte(t)) {
				return
			}
		}
		yield(0)
	})
}

// ReadTags decodes a type tag string.
func (r *Reader) ReadTags() (Tags, error) {
	u, err := r.Next()
	if err != nil {
		return nil, err
	}
	if u[0] != ',' {
		return nil, &TagError{Kind: TagMissingComma, Char: u[0], Offset: r.at(0)}
	}

	var ts Tags
	start := 1
	for {
		for i := start; i < unitSize; i++ {
			c := u[i]
			if c == 0 {
				if j := nonNull(u[i+1:]); j >= 0 {
					return nil, &TagError{Kind: TagNullThenNonNull, Char: u[i+1+j], Offset: r.at(i + 1 + j)}
				}
				return ts, nil
			}
			t, err := ParseTag(c)
			if err != nil {
				return nil, &TagError{Kind: TagUnrecognized, Char: c, Offset: r.at(i)}
			}
			ts = append(ts, t)
		}
		if u, err = r.nextIn(); err != nil {
			return nil, err
		}
		start = 0
	}
}

// nonNull returns the index of the first non-zero byte in b, or -1.
func nonNull(b []byte) int {
	for i, c := range b {
		if c != 0 {
			return i
		}
	}
	return -1
}
