package scpi

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"i4.energy/across/commtest/transport"
)

// Client is a minimal synchronous command/response client for instruments
// speaking a line-terminated protocol such as SCPI.
//
// It writes commands with a configurable terminator and reads responses up to
// a configurable terminator. The Client is deliberately blocking and
// single-threaded so it can be driven against a scripted protocol adapter in
// tests as well as a real serial port.
type Client struct {
	transport transport.Transport
	scanner   *bufio.Scanner

	writeTerm string
	readTerm  string
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithWriteTerminator sets the terminator appended to every command.
// The default is "\n".
func WithWriteTerminator(term string) Option {
	return func(c *Client) {
		c.writeTerm = term
	}
}

// WithReadTerminator sets the terminator that ends a response line.
// The default is "\n".
func WithReadTerminator(term string) Option {
	return func(c *Client) {
		c.readTerm = term
	}
}

// WithLogger enables debug-level logging of sent commands and received
// responses.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client over an established transport.
func NewClient(t transport.Transport, opts ...Option) *Client {
	c := &Client{
		transport: t,
		writeTerm: "\n",
		readTerm:  "\n",
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.scanner = bufio.NewScanner(t)
	c.scanner.Split(splitOn([]byte(c.readTerm)))
	return c
}

// Command writes cmd followed by the write terminator.
func (c *Client) Command(cmd string) error {
	wire := cmd + c.writeTerm
	if _, err := c.transport.Write([]byte(wire)); err != nil {
		return fmt.Errorf("write command %q: %w", cmd, err)
	}
	c.logger.Debug("command sent", "cmd", cmd)
	return nil
}

// ReadLine reads one response up to the read terminator. The terminator is
// not included in the result.
func (c *Client) ReadLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("read response: %w", err)
		}
		return "", io.EOF
	}
	line := c.scanner.Text()
	c.logger.Debug("response received", "line", line)
	return line, nil
}

// Query sends cmd and returns the single response line it produces.
func (c *Client) Query(cmd string) (string, error) {
	if err := c.Command(cmd); err != nil {
		return "", err
	}
	return c.ReadLine()
}

// Close closes the underlying transport.
func (c *Client) Close() error {
	return c.transport.Close()
}

// splitOn returns a bufio.SplitFunc that tokenizes the stream on term.
// At EOF any remaining data is returned as the final token.
func splitOn(term []byte) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := bytes.Index(data, term); i >= 0 {
			return i + len(term), data[:i], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}
