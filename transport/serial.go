package transport

import (
	"context"
	"fmt"

	"go.bug.st/serial"
)

// SerialDialer opens a device over a serial port using go.bug.st/serial.
type SerialDialer struct {
	// PortName is the path of the serial device, e.g. "/dev/ttyUSB0".
	PortName string
	// Mode configures baud rate, parity, data and stop bits. When nil,
	// 115200 8N1 is used.
	Mode *serial.Mode
}

// Dial opens the configured serial port and returns it as a Transport.
func (d SerialDialer) Dial(ctx context.Context) (Transport, error) {
	if d.PortName == "" {
		return nil, ErrPortNameRequired
	}
	if ctx == nil {
		return nil, ErrNilContext
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mode := d.Mode
	if mode == nil {
		mode = &serial.Mode{
			BaudRate: 115200,
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		}
	}

	port, err := serial.Open(d.PortName, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", d.PortName, err)
	}
	return port, nil
}

var _ Dialer = SerialDialer{}
