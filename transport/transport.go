package transport

import (
	"context"
	"io"
)

//go:generate go tool mockgen -source=transport.go -destination=mock_transport.go -package=transport

// Transport represents an established, bidirectional byte stream to a device.
//
// A Transport is assumed to be already connected and ready for use. It provides
// the low-level I/O primitives required to send commands and receive responses.
// Typical implementations include serial ports, TCP connections to emulators,
// or scripted protocol adapters used for testing.
type Transport interface {
	io.ReadWriteCloser
}

// Dialer opens a Transport to a device.
//
// Dialer abstracts how the connection is created (for example, via a serial
// port, a TCP-based emulator, or a test double) and is intended to be used
// during client construction only. Once a Transport is obtained, the Dialer is
// no longer needed.
type Dialer interface {
	// Dial is responsible for creating and returning a connected Transport. It may
	// perform blocking operations and should respect cancellation and deadlines
	// provided by the context. Dial returns an error if the transport cannot be
	// established.
	Dial(ctx context.Context) (Transport, error)
}
