package stream

import (
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/xerrors"

	"github.com/showcontroller/oscwire/osc"
)

// Server reads framed messages from a stream and hands them to a Dispatcher.
type Server struct {
	Dispatcher osc.Dispatcher
	// Logger receives a line for every dropped frame. Defaults to
	// log.Default().
	Logger *log.Logger
}

// Serve dispatches messages read from r until the stream ends. Frames that do
// not decode are logged and skipped. It returns nil at a clean end of the
// stream and the read error otherwise.
func (s *Server) Serve(r io.Reader) error {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}

	sr := NewReader(r)
	for {
		msg, err := sr.ReadMessage()
		var fe *FrameError
		switch {
		case err == io.EOF:
			return nil
		case xerrors.As(err, &fe):
			logger.Error("dropping frame", "len", len(fe.Frame), "err", fe.Err)
			continue
		case err != nil:
			return xerrors.Errorf("stream: read: %w", err)
		}

		logger.Debug("received", "msg", msg)
		if s.Dispatcher != nil && !s.Dispatcher.Dispatch(msg) {
			logger.Debug("no handler", "address", msg.Address())
		}
	}
}
