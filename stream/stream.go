// Package stream carries OSC packets over byte streams such as serial lines,
// pipes and files. Packets are framed with SLIP (RFC 1055) as OSC 1.1
// recommends for stream transports.
package stream

import (
	"io"

	"github.com/Lobaro/slip"
	"golang.org/x/xerrors"

	"github.com/showcontroller/oscwire/osc"
)

// Client writes one SLIP frame per packet.
type Client struct {
	w *slip.Writer
}

// NewClient returns a Client writing frames to w.
func NewClient(w io.Writer) *Client {
	return &Client{w: slip.NewWriter(w)}
}

// Send encodes p and writes it as a single frame.
func (c *Client) Send(p osc.Packet) error {
	b, err := p.MarshalBinary()
	if err != nil {
		return xerrors.Errorf("stream: encode packet: %w", err)
	}
	if err := c.w.WritePacket(b); err != nil {
		return xerrors.Errorf("stream: write frame: %w", err)
	}
	return nil
}

// Reader splits a byte stream into SLIP frames.
type Reader struct {
	r *slip.Reader
}

// NewReader returns a Reader pulling frames from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: slip.NewReader(r)}
}

// ReadFrame returns the next non-empty frame. The returned slice is owned by
// the caller. It returns io.EOF at the end of the stream and
// io.ErrUnexpectedEOF if the stream ends inside a frame.
func (r *Reader) ReadFrame() ([]byte, error) {
	var frame []byte
	for {
		p, isPrefix, err := r.r.ReadPacket()
		if err != nil {
			if err == io.EOF && len(frame)+len(p) > 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		frame = append(frame, p...)
		if isPrefix || len(frame) == 0 {
			continue
		}
		return frame, nil
	}
}

// ReadMessage reads the next frame and decodes the message it holds.
func (r *Reader) ReadMessage() (*osc.Message[osc.Values], error) {
	frame, err := r.ReadFrame()
	if err != nil {
		return nil, err
	}
	msg, err := osc.ParseMessage(frame)
	if err != nil {
		return nil, &FrameError{Frame: frame, Err: err}
	}
	return msg, nil
}

// FrameError is returned by ReadMessage when a frame was read whole but does
// not hold a valid message. The stream itself is still usable.
type FrameError struct {
	Frame []byte
	Err   error
}

func (e *FrameError) Error() string {
	return "stream: bad frame: " + e.Err.Error()
}

func (e *FrameError) Unwrap() error {
	return e.Err
}
