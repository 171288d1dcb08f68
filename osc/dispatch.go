package osc

import (
	"golang.org/x/xerrors"
)

// ErrHandlerExists is returned when registering a second handler for the
// same address.
var ErrHandlerExists = xerrors.New("osc: address already has a handler")

// Dispatcher delivers received messages. Dispatch reports whether any handler
// accepted the message.
type Dispatcher interface {
	Dispatch(msg *Message[Values]) bool
}

// Handler handles messages sent to one address.
type Handler interface {
	HandleMessage(msg *Message[Values])
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(msg *Message[Values])

// HandleMessage calls f(msg).
func (f HandlerFunc) HandleMessage(msg *Message[Values]) {
	f(msg)
}

// StandardDispatcher maps exact addresses to handlers. Address patterns are
// not supported, so an address can only be registered once and a message
// reaches at most one handler.
type StandardDispatcher struct {
	handlers map[string]Handler
}

// NewStandardDispatcher returns an empty StandardDispatcher.
func NewStandardDispatcher() *StandardDispatcher {
	return &StandardDispatcher{handlers: make(map[string]Handler)}
}

// AddMsgHandler registers h for address, which must be a valid address
// without pattern characters.
func (d *StandardDispatcher) AddMsgHandler(address string, h HandlerFunc) error {
	addr, err := ParseAddress(address)
	if err != nil {
		return xerrors.Errorf("osc: register %q: %w", address, err)
	}
	key := addr.String()
	if _, ok := d.handlers[key]; ok {
		return xerrors.Errorf("%w: %s", ErrHandlerExists, key)
	}
	d.handlers[key] = h
	return nil
}

// Dispatch implements Dispatcher.
func (d *StandardDispatcher) Dispatch(msg *Message[Values]) bool {
	h, ok := d.handlers[msg.Address().String()]
	if !ok {
		return false
	}
	h.HandleMessage(msg)
	return true
}
