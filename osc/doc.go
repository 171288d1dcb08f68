// Copyright 2013 - 2015 Sebastian Ruml <sebastian.ruml@gmail.com>

/*
Package osc encodes and decodes OpenSoundControl 1.0 messages.

The package is implemented in pure Go and does no I/O of its own: encoders
produce lazy byte sequences (iter.Seq[byte]) and decoders pull from an
io.Reader or a byte slice. Transports live elsewhere.

The implementation is based on the Open Sound Control 1.0 Specification
(http://opensoundcontrol.org/spec-1_0).

Every OSC field is measured in 4-byte units. Strings, blobs, addresses and
type tag strings are padded with zero bytes to the next unit boundary, and
decoders insist that this padding is zero.

Supported argument types: 'i' (Int32), 'f' (Float32), 's' (string) and
'b' (blob / binary data). Strings and blobs come in two flavors: String and
Blob view caller-owned memory, DynamicString and DynamicBlob own a copy.
Dynamic holds any of them when the type is only known at run time.

Bundles, time tags and address pattern matching are not supported. Pattern
characters ("*?,[]{}# ") are rejected in addresses.

Usage

Encoding with static types:

    addr, err := osc.NewAddress([]string{"oscillator", "4"}, "frequency")
    if err != nil {
        return err
    }
    msg := osc.NewMessage(addr, osc.NewTuple1(osc.Float32(440)))
    data, _ := msg.MarshalBinary()

Encoding Go values:

    msg, err := osc.Encode(nil, "foo", int32(1000), "hello", float32(1.5))

Decoding:

    msg, err := osc.ParseMessage(data)
    if err != nil {
        return err
    }
    fmt.Println(msg)

Dispatching:

    d := osc.NewStandardDispatcher()
    d.AddMsgHandler("/message/address", func(msg *osc.Message[osc.Values]) {
        fmt.Println(msg)
    })
    d.Dispatch(msg)
*/
package osc
