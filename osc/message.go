package osc

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Packet is anything that can be sent as one OSC packet.
type Packet interface {
	MarshalBinary() ([]byte, error)
}

// Message is an OSC message: an address and its arguments. T is a fixed-size
// tuple when the argument types are known at compile time, or Values when
// they are not.
type Message[T Tuple] struct {
	addr Address
	args T
}

// NewMessage composes a message. addr must come from NewAddress,
// ParseAddress or a decoder; it is not validated again. A zero Address
// (addr.IsZero()) has no wire form: MarshalBinary and WriteTo reject it with
// ErrZeroAddress, while Bytes and Append encode it as "/".
func NewMessage[T Tuple](addr Address, args T) *Message[T] {
	return &Message[T]{addr: addr, args: args}
}

// Encode builds a message from Go values, converting each one with ToAtomic.
func Encode(path []string, method string, values ...any) (*Message[Values], error) {
	addr, err := NewAddress(path, method)
	if err != nil {
		return nil, err
	}
	args := make(Values, 0, len(values))
	for _, v := range values {
		a, err := ToAtomic(v)
		if err != nil {
			return nil, err
		}
		args = append(args, NewDynamic(a))
	}
	return NewMessage(addr, args), nil
}

// Address returns the address of the message.
func (msg *Message[T]) Address() Address { return msg.addr }

// Arguments returns the arguments of the message.
func (msg *Message[T]) Arguments() T { return msg.args }

// TypeTags returns the tags of the arguments.
func (msg *Message[T]) TypeTags() Tags {
	var ts Tags
	for t := range msg.args.TypeTags() {
		ts = append(ts, t)
	}
	return ts
}

// Bytes returns the encoded message: the address, the type tag string and
// then every argument.
func (msg *Message[T]) Bytes() iter.Seq[byte] {
	return concat(msg.addr.Bytes(), tagString(msg.args.TypeTags()), msg.args.Chain())
}

// Append appends the encoded message to dst.
func (msg *Message[T]) Append(dst []byte) []byte {
	return collect(dst, msg.Bytes())
}

// MarshalBinary implements encoding.BinaryMarshaler and Packet.
func (msg *Message[T]) MarshalBinary() ([]byte, error) {
	if msg.addr.IsZero() {
		return nil, ErrZeroAddress
	}
	return msg.Append(nil), nil
}

// WriteTo writes the encoded message to w.
func (msg *Message[T]) WriteTo(w io.Writer) (int64, error) {
	if msg.addr.IsZero() {
		return 0, ErrZeroAddress
	}
	n, err := w.Write(msg.Append(nil))
	return int64(n), err
}

// String renders the message as its address, its type tag string and every
// argument, separated by spaces. Blobs are shown as "blob".
func (msg *Message[T]) String() string {
	var sb strings.Builder
	sb.WriteString(msg.addr.String())
	sb.WriteByte(' ')
	sb.WriteString(msg.TypeTags().String())
	for a := range msg.args.Atoms() {
		sb.WriteByte(' ')
		if s, ok := a.(fmt.Stringer); ok {
			sb.WriteString(s.String())
		}
	}
	return sb.String()
}

// ReadMessage decodes an address, a type tag string and the arguments it
// describes. It returns io.EOF only if the input was empty.
func (r *Reader) ReadMessage() (*Message[Values], error) {
	addr, err := r.ReadAddress()
	if err != nil {
		return nil, err
	}
	args, err := r.ReadValues()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, err
	}
	return NewMessage(addr, args), nil
}

// ParseMessage decodes a whole packet holding exactly one message.
func ParseMessage(data []byte) (*Message[Values], error) {
	r := NewBytesReader(data)
	msg, err := r.ReadMessage()
	if err != nil {
		return nil, err
	}
	if r.Offset() != len(data) {
		return nil, ErrTrailingData
	}
	return msg, nil
}
