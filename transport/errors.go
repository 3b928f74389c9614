package transport

import "errors"

var (
	// ErrPortNameRequired is returned when a SerialDialer is used without a
	// serial port name.
	//
	// This indicates a configuration error. A port name is required in order
	// to open the serial device.
	ErrPortNameRequired = errors.New("serial port name is required")

	// ErrNilContext is returned when Dial is called with a nil context.
	ErrNilContext = errors.New("context is nil")
)
