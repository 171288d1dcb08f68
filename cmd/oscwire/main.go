// Command oscwire encodes OSC messages from the command line or a YAML script
// and decodes them back.
//
//	oscwire encode /oscillator/4/frequency f:440 > msg.bin
//	oscwire encode -slip -f show.yaml > /dev/ttyUSB0
//	oscwire decode < msg.bin
//	oscwire decode -slip < capture.slip
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/xerrors"

	"github.com/showcontroller/oscwire/internal/script"
	"github.com/showcontroller/oscwire/osc"
	"github.com/showcontroller/oscwire/stream"
)

const usage = `usage:
  oscwire encode [-v] [-f script.yaml] [-slip | -hex] [/address [kind:value ...]]
  oscwire decode [-v] [-slip | -hex]

argument kinds: i (int32), f (float32), s (string), b (hex blob)
`

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	if err := run(os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	if len(args) == 0 {
		return xerrors.New(strings.TrimSpace(usage))
	}
	switch args[0] {
	case "encode":
		return encode(args[1:], stdout, logger)
	case "decode":
		return decode(args[1:], stdin, stdout, logger)
	}
	return xerrors.Errorf("unknown command %q\n%s", args[0], usage)
}

type format struct {
	slip bool
	hex  bool
}

func newFlagSet(name string, verbose *bool, f *format) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.BoolVar(verbose, "v", false, "debug logging")
	fs.BoolVar(&f.slip, "slip", false, "SLIP framed packets")
	fs.BoolVar(&f.hex, "hex", false, "one hex encoded packet per line")
	return fs
}

func encode(args []string, stdout io.Writer, logger *log.Logger) error {
	var (
		verbose bool
		f       format
		file    string
	)
	fs := newFlagSet("encode", &verbose, &f)
	fs.StringVar(&file, "f", "", "YAML message script")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	sf, err := loadEntries(file, fs.Args())
	if err != nil {
		return err
	}
	msgs, err := sf.Build()
	if err != nil {
		return err
	}

	client := stream.NewClient(stdout)
	for _, msg := range msgs {
		logger.Debug("encoding", "msg", msg)
		switch {
		case f.slip:
			err = client.Send(msg)
		case f.hex:
			_, err = fmt.Fprintln(stdout, hex.EncodeToString(msg.Append(nil)))
		default:
			_, err = msg.WriteTo(stdout)
		}
		if err != nil {
			return xerrors.Errorf("write %s: %w", msg.Address(), err)
		}
	}
	logger.Debug("done", "messages", len(msgs))
	return nil
}

// loadEntries reads the script file, if any, and appends the message given
// on the command line.
func loadEntries(file string, args []string) (*script.File, error) {
	sf := &script.File{}
	if file != "" {
		fd, err := os.Open(file)
		if err != nil {
			return nil, xerrors.Errorf("open script: %w", err)
		}
		defer fd.Close()
		if sf, err = script.Load(fd); err != nil {
			return nil, err
		}
	}
	if len(args) > 0 {
		e := script.Entry{Address: args[0]}
		for _, s := range args[1:] {
			a, err := script.ParseArg(s)
			if err != nil {
				return nil, err
			}
			e.Args = append(e.Args, a)
		}
		sf.Messages = append(sf.Messages, e)
	}
	if len(sf.Messages) == 0 {
		return nil, xerrors.New("nothing to encode: give an address or -f")
	}
	return sf, nil
}

func decode(args []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	var (
		verbose bool
		f       format
	)
	fs := newFlagSet("decode", &verbose, &f)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	out := &script.File{}
	add := func(packet []byte) {
		msg, err := osc.ParseMessage(packet)
		if err != nil {
			logger.Error("skipping packet", "len", len(packet), "err", err)
			return
		}
		logger.Debug("decoded", "msg", msg)
		out.Messages = append(out.Messages, script.FromMessage(msg))
	}

	switch {
	case f.slip:
		r := stream.NewReader(stdin)
		for {
			frame, err := r.ReadFrame()
			if err == io.EOF {
				break
			}
			if err != nil {
				return xerrors.Errorf("read frame: %w", err)
			}
			add(frame)
		}
	case f.hex:
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			packet, err := hex.DecodeString(line)
			if err != nil {
				logger.Error("skipping line", "err", err)
				continue
			}
			add(packet)
		}
		if err := sc.Err(); err != nil {
			return xerrors.Errorf("read: %w", err)
		}
	default:
		packet, err := io.ReadAll(stdin)
		if err != nil {
			return xerrors.Errorf("read: %w", err)
		}
		msg, err := osc.ParseMessage(packet)
		if err != nil {
			return xerrors.Errorf("decode: %w", err)
		}
		out.Messages = append(out.Messages, script.FromMessage(msg))
	}
	return script.Write(stdout, out)
}
