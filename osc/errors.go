package osc

import (
	"fmt"
	"reflect"

	"golang.org/x/xerrors"
)

var (
	// ErrMisaligned is returned when the input ends partway through a 4-byte
	// unit. A clean end on a unit boundary is reported as io.EOF instead, or as
	// io.ErrUnexpectedEOF once a field has started.
	ErrMisaligned = xerrors.New("osc: input is not a multiple of 4 bytes")

	// ErrTrailingData is returned by ParseMessage when bytes remain after the
	// last argument.
	ErrTrailingData = xerrors.New("osc: trailing data after message")

	// ErrZeroAddress is returned when encoding a message whose address is the
	// zero Address.
	ErrZeroAddress = xerrors.New("osc: message has no address")
)

// AddressErrorKind classifies an AddressError.
type AddressErrorKind uint8

const (
	// AddressEmpty: no segments, or a zero-length segment or method.
	AddressEmpty AddressErrorKind = iota + 1
	// AddressInvalidCharacter: a character outside the OSC address whitelist.
	AddressInvalidCharacter
	// AddressLeadingSlash: the first byte is not '/'.
	AddressLeadingSlash
	// AddressNoMethod: the address ends right after a '/'.
	AddressNoMethod
	// AddressEmptySegment: back-to-back slashes.
	AddressEmptySegment
	// AddressPatternsNotYetImplemented: a glob metacharacter such as '*'.
	AddressPatternsNotYetImplemented
	// AddressNotPrintableASCII: a control byte or a byte above 0x7E.
	AddressNotPrintableASCII
	// AddressNullThenNonNull: non-zero padding after the terminator.
	AddressNullThenNonNull
)

var addressErrorKinds = [...]string{
	AddressEmpty:                     "empty",
	AddressInvalidCharacter:          "invalid character",
	AddressLeadingSlash:              "missing leading slash",
	AddressNoMethod:                  "no method",
	AddressEmptySegment:              "empty segment",
	AddressPatternsNotYetImplemented: "patterns not yet implemented",
	AddressNotPrintableASCII:         "not printable ASCII",
	AddressNullThenNonNull:           "null then non-null",
}

func (k AddressErrorKind) String() string {
	if int(k) < len(addressErrorKinds) && addressErrorKinds[k] != "" {
		return addressErrorKinds[k]
	}
	return fmt.Sprintf("AddressErrorKind(%d)", uint8(k))
}

// AddressError reports an invalid OSC address. Segment is the index of the
// offending segment when building an address (the method is the last index);
// Offset is the byte offset in the input when decoding one.
type AddressError struct {
	Kind    AddressErrorKind
	Char    byte
	Segment int
	Offset  int
}

func (e *AddressError) Error() string {
	switch e.Kind {
	case AddressEmpty:
		return fmt.Sprintf("osc: address segment %d is empty", e.Segment)
	case AddressInvalidCharacter:
		return fmt.Sprintf("osc: invalid character %q in address segment %d", e.Char, e.Segment)
	case AddressLeadingSlash:
		return fmt.Sprintf("osc: address missing leading slash (got %q)", e.Char)
	case AddressNoMethod:
		return fmt.Sprintf("osc: address ends after a '/' at offset %d", e.Offset)
	case AddressEmptySegment:
		return fmt.Sprintf(`osc: empty address segment ("//") at offset %d`, e.Offset)
	case AddressPatternsNotYetImplemented:
		return fmt.Sprintf("osc: address pattern matching is not implemented (got %q at offset %d)", e.Char, e.Offset)
	case AddressNotPrintableASCII:
		return fmt.Sprintf("osc: address byte %#02x at offset %d is not printable ASCII", e.Char, e.Offset)
	case AddressNullThenNonNull:
		return fmt.Sprintf("osc: non-null padding byte after address terminator at offset %d", e.Offset)
	}
	return "osc: invalid address: " + e.Kind.String()
}

// ContentErrorKind classifies a ContentError.
type ContentErrorKind uint8

const (
	// ContentNonASCII: a string holds a character outside 7-bit ASCII.
	ContentNonASCII ContentErrorKind = iota + 1
	// ContentNullInString: a string holds a null byte.
	ContentNullInString
	// ContentTooLarge: a blob's length does not fit the int32 size prefix.
	ContentTooLarge
)

// ContentError reports a Go value that cannot become an atomic OSC value.
type ContentError struct {
	Kind ContentErrorKind
}

func (e *ContentError) Error() string {
	switch e.Kind {
	case ContentNonASCII:
		return "osc: string contains a non-ASCII character"
	case ContentNullInString:
		return "osc: string contains a null byte"
	case ContentTooLarge:
		return "osc: blob is too large for an int32 size"
	}
	return fmt.Sprintf("osc: invalid contents (%d)", uint8(e.Kind))
}

// StringErrorKind classifies a StringError.
type StringErrorKind uint8

const (
	StringNonASCII StringErrorKind = iota + 1
	StringNullThenNonNull
)

// StringError reports a malformed OSC string on the wire.
type StringError struct {
	Kind   StringErrorKind
	Char   byte
	Offset int
}

func (e *StringError) Error() string {
	if e.Kind == StringNonASCII {
		return fmt.Sprintf("osc: non-ASCII byte %#02x in string at offset %d", e.Char, e.Offset)
	}
	return fmt.Sprintf("osc: non-null padding byte after string terminator at offset %d", e.Offset)
}

// BlobErrorKind classifies a BlobError.
type BlobErrorKind uint8

const (
	// BlobNegativeSize: the size prefix has its top bit set, almost surely a
	// result of an earlier error that shifted the stream.
	BlobNegativeSize BlobErrorKind = iota + 1
	// BlobTooLong: a padding byte after the declared content is non-null.
	BlobTooLong
)

// BlobError reports a malformed OSC blob on the wire.
type BlobError struct {
	Kind   BlobErrorKind
	Size   int32
	Offset int
}

func (e *BlobError) Error() string {
	if e.Kind == BlobNegativeSize {
		return fmt.Sprintf("osc: negative blob size %d at offset %d", e.Size, e.Offset)
	}
	return fmt.Sprintf("osc: blob longer than its size %d: non-null padding at offset %d", e.Size, e.Offset)
}

// TagErrorKind classifies a TagError.
type TagErrorKind uint8

const (
	TagUnrecognized TagErrorKind = iota + 1
	TagMissingComma
	TagNullThenNonNull
)

// TagError reports a malformed type tag or type tag string.
type TagError struct {
	Kind   TagErrorKind
	Char   byte
	Offset int
}

func (e *TagError) Error() string {
	switch e.Kind {
	case TagUnrecognized:
		return fmt.Sprintf("osc: unrecognized type tag %q at offset %d", e.Char, e.Offset)
	case TagMissingComma:
		return fmt.Sprintf("osc: expected ',' to begin type tags but got %q", e.Char)
	}
	return fmt.Sprintf("osc: non-null padding byte after type tags at offset %d", e.Offset)
}

// UnsupportedTypeError is returned by ToAtomic for Go values that have no
// atomic OSC representation.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("osc: unsupported type: %v", e.Type)
}
