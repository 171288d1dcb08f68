// Package script reads and writes OSC messages as YAML documents and parses
// the compact argument literals used on the command line.
package script

import (
	"encoding/hex"
	"io"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"github.com/showcontroller/oscwire/osc"
)

// File is a list of messages.
//
//	messages:
//	  - address: /oscillator/4/frequency
//	    args: [{float: 440}]
type File struct {
	Messages []Entry `yaml:"messages"`
}

// Entry is one message.
type Entry struct {
	Address string `yaml:"address"`
	Args    []Arg  `yaml:"args,omitempty,flow"`
}

// Arg is one argument. Exactly one field must be set. Blobs are written in
// hex.
type Arg struct {
	Int    *int32   `yaml:"int,omitempty"`
	Float  *float32 `yaml:"float,omitempty"`
	String *string  `yaml:"string,omitempty"`
	Blob   *string  `yaml:"blob,omitempty"`
}

// Load decodes a File from r. Unknown keys are an error.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, xerrors.Errorf("script: %w", err)
	}
	return &f, nil
}

// Write encodes f to w.
func Write(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return xerrors.Errorf("script: %w", err)
	}
	return enc.Close()
}

// Build converts every entry to a message, stopping at the first invalid one.
func (f *File) Build() ([]*osc.Message[osc.Values], error) {
	msgs := make([]*osc.Message[osc.Values], 0, len(f.Messages))
	for i, e := range f.Messages {
		msg, err := e.Message()
		if err != nil {
			return nil, xerrors.Errorf("script: message %d: %w", i, err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// Message validates e and builds its message.
func (e Entry) Message() (*osc.Message[osc.Values], error) {
	addr, err := osc.ParseAddress(e.Address)
	if err != nil {
		return nil, xerrors.Errorf("address %q: %w", e.Address, err)
	}
	var vs osc.Values
	for i, a := range e.Args {
		d, err := a.Value()
		if err != nil {
			return nil, xerrors.Errorf("argument %d: %w", i, err)
		}
		vs = append(vs, d)
	}
	return osc.NewMessage(addr, vs), nil
}

// Value converts a to an OSC value.
func (a Arg) Value() (osc.Dynamic, error) {
	set := 0
	for _, ok := range []bool{a.Int != nil, a.Float != nil, a.String != nil, a.Blob != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return osc.Dynamic{}, xerrors.Errorf("exactly one of int, float, string or blob must be set, got %d", set)
	}

	switch {
	case a.Int != nil:
		return osc.NewDynamic(osc.Int32(*a.Int)), nil
	case a.Float != nil:
		return osc.NewDynamic(osc.Float32(*a.Float)), nil
	case a.String != nil:
		s, err := osc.NewDynamicString(*a.String)
		if err != nil {
			return osc.Dynamic{}, err
		}
		return osc.NewDynamic(s), nil
	}
	raw, err := hex.DecodeString(*a.Blob)
	if err != nil {
		return osc.Dynamic{}, xerrors.Errorf("blob: %w", err)
	}
	b, err := osc.NewDynamicBlob(raw)
	if err != nil {
		return osc.Dynamic{}, err
	}
	return osc.NewDynamic(b), nil
}

// ParseArg parses a literal of the form kind:value where kind is i, f, s or
// b, for example "i:1000", "f:440", "s:hello" or "b:deadbeef".
func ParseArg(s string) (Arg, error) {
	kind, val, ok := strings.Cut(s, ":")
	if !ok {
		return Arg{}, xerrors.Errorf("script: argument %q: missing kind prefix", s)
	}
	var a Arg
	switch kind {
	case "i":
		n, err := strconv.ParseInt(val, 0, 32)
		if err != nil {
			return Arg{}, xerrors.Errorf("script: argument %q: %w", s, err)
		}
		i := int32(n)
		a.Int = &i
	case "f":
		n, err := strconv.ParseFloat(val, 32)
		if err != nil {
			return Arg{}, xerrors.Errorf("script: argument %q: %w", s, err)
		}
		f := float32(n)
		a.Float = &f
	case "s":
		a.String = &val
	case "b":
		a.Blob = &val
	default:
		return Arg{}, xerrors.Errorf("script: argument %q: unknown kind %q", s, kind)
	}
	if _, err := a.Value(); err != nil {
		return Arg{}, xerrors.Errorf("script: argument %q: %w", s, err)
	}
	return a, nil
}

// FromMessage converts msg back to an Entry.
func FromMessage(msg *osc.Message[osc.Values]) Entry {
	e := Entry{Address: msg.Address().String()}
	for _, d := range msg.Arguments() {
		var a Arg
		switch d.Tag() {
		case osc.TypeInt32:
			v, _ := d.AsInt32()
			i := int32(v)
			a.Int = &i
		case osc.TypeFloat32:
			v, _ := d.AsFloat32()
			f := float32(v)
			a.Float = &f
		case osc.TypeString:
			v, _ := d.AsString()
			s := v.String()
			a.String = &s
		case osc.TypeBlob:
			v, _ := d.AsBlob()
			s := hex.EncodeToString(v.Data())
			a.Blob = &s
		}
		e.Args = append(e.Args, a)
	}
	return e
}
