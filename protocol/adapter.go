package protocol

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"unicode/utf8"

	"i4.energy/across/commtest/transport"
)

// Adapter is a deterministic mock transport for testing command exchange
// without device hardware.
//
// It holds an ordered sequence of exchanges fixed at construction and walks
// them with a cursor as the conversation progresses. Writes accumulate until
// they exactly equal the current expected command, at which point the matching
// canned response becomes readable; reads drain that response in
// caller-requested chunk sizes. Any deviation from the declared sequence fails
// immediately with one of the errors in this package.
//
// An Adapter is synchronous and not safe for concurrent use: it assumes
// exactly one logical client driving one conversation, matching its role as a
// unit-test double rather than a production channel.
type Adapter struct {
	// steps is immutable after construction; only the cursor moves.
	steps  []step
	cursor int

	// pendingWrite holds bytes written so far toward the current expected
	// command. pendingRead holds canned response bytes not yet delivered.
	pendingWrite []byte
	pendingRead  []byte

	name   string
	logger *slog.Logger
}

// step is an Exchange with both sides normalized to bytes.
type step struct {
	write    []byte
	read     []byte
	hasWrite bool
}

// Option configures an Adapter. Options never alter the exchange semantics.
type Option func(*Adapter)

// WithLogger enables debug-level logging of matched commands and served
// responses.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

// WithName labels the adapter in log output. Useful when a test drives more
// than one adapter.
func WithName(name string) Option {
	return func(a *Adapter) {
		a.name = name
	}
}

// NewAdapter creates an adapter for the given conversation. Payloads of all
// exchanges are normalized up front, so an unsupported payload shape fails
// here rather than mid-conversation.
func NewAdapter(exchanges []Exchange, opts ...Option) (*Adapter, error) {
	a := &Adapter{
		steps:  make([]step, len(exchanges)),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}

	for i, e := range exchanges {
		var st step
		if e.Write.present {
			w, err := ToBytes(e.Write.value)
			if err != nil {
				return nil, fmt.Errorf("exchange %d write: %w", i, err)
			}
			st.write = w
			st.hasWrite = true
		}
		if e.Read.present {
			r, err := ToBytes(e.Read.value)
			if err != nil {
				return nil, fmt.Errorf("exchange %d read: %w", i, err)
			}
			st.read = r
		}
		a.steps[i] = st
	}
	return a, nil
}

// WriteBytes appends content to the pending write. If the accumulated bytes
// exactly equal the current expected command, the write is consumed and the
// matching canned response becomes readable. Accumulating a strict prefix of
// the expected command is fine; more WriteBytes calls are expected to complete
// the match. Diverging from the expected command fails with a MismatchError.
func (a *Adapter) WriteBytes(content []byte) error {
	a.pendingWrite = append(a.pendingWrite, content...)
	if a.cursor >= len(a.steps) {
		return &ExhaustedError{Steps: len(a.steps)}
	}
	st := a.steps[a.cursor]
	if bytes.Equal(a.pendingWrite, st.write) {
		if len(a.pendingRead) > 0 {
			return &UnreadResponseError{Step: a.cursor, Unread: slices.Clone(a.pendingRead)}
		}
		a.logger.Debug("command matched", "adapter", a.name, "step", a.cursor, "tx", string(a.pendingWrite))
		a.pendingWrite = nil
		a.pendingRead = st.read
		a.cursor++
		return nil
	}
	if bytes.HasPrefix(st.write, a.pendingWrite) {
		return nil
	}
	return &MismatchError{
		Step:     a.cursor,
		Expected: st.write,
		Actual:   slices.Clone(a.pendingWrite),
	}
}

// WriteCommand normalizes command and writes it as one atomic full command.
// Unlike WriteBytes it fails with an IncompleteWriteError if the command did
// not complete a match on its own.
func (a *Adapter) WriteCommand(command any) error {
	data, err := ToBytes(command)
	if err != nil {
		return err
	}
	if err := a.WriteBytes(data); err != nil {
		return err
	}
	if len(a.pendingWrite) > 0 {
		return &IncompleteWriteError{
			Step:     a.cursor,
			Expected: a.steps[a.cursor].write,
			Written:  slices.Clone(a.pendingWrite),
		}
	}
	return nil
}

// ReadBytes returns up to count bytes of the current response. A negative
// count means "everything buffered". If nothing is buffered, the current
// exchange must expect no write; its canned response is then loaded on demand.
func (a *Adapter) ReadBytes(count int) ([]byte, error) {
	if len(a.pendingRead) > 0 {
		if count < 0 || count >= len(a.pendingRead) {
			out := a.pendingRead
			a.pendingRead = nil
			return out, nil
		}
		out := a.pendingRead[:count]
		a.pendingRead = a.pendingRead[count:]
		return out, nil
	}

	chunk, err := a.load()
	if err != nil {
		return nil, err
	}
	if count < 0 || count >= len(chunk) {
		return chunk, nil
	}
	a.pendingRead = chunk[count:]
	return chunk[:count], nil
}

// ReadString returns the buffered response as text, loading the current
// exchange's canned response on demand if nothing is buffered. It fails with
// a DecodeError if the bytes are not valid UTF-8.
func (a *Adapter) ReadString() (string, error) {
	data := a.pendingRead
	a.pendingRead = nil
	if len(data) == 0 {
		chunk, err := a.load()
		if err != nil {
			return "", err
		}
		data = chunk
	}
	if !utf8.Valid(data) {
		return "", &DecodeError{Data: data}
	}
	return string(data), nil
}

// load serves the current exchange's canned response on demand and advances
// the cursor. The exchange must not expect a write.
func (a *Adapter) load() ([]byte, error) {
	if a.cursor >= len(a.steps) {
		return nil, &ExhaustedError{Steps: len(a.steps)}
	}
	st := a.steps[a.cursor]
	if st.hasWrite {
		return nil, &UnexpectedReadError{Step: a.cursor, Expected: st.write}
	}
	a.logger.Debug("response loaded", "adapter", a.name, "step", a.cursor, "rx", string(st.read))
	a.cursor++
	return st.read, nil
}

// Reset rewinds the cursor and clears both accumulators so the same
// conversation can be replayed, for reuse across tests.
func (a *Adapter) Reset() {
	a.cursor = 0
	a.pendingWrite = nil
	a.pendingRead = nil
}

// Write implements io.Writer over WriteBytes so the adapter can stand in for
// a real transport.
func (a *Adapter) Write(p []byte) (int, error) {
	if err := a.WriteBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Read implements io.Reader over ReadBytes.
func (a *Adapter) Read(p []byte) (int, error) {
	data, err := a.ReadBytes(len(p))
	if err != nil {
		return 0, err
	}
	return copy(p, data), nil
}

// Close implements io.Closer. The adapter holds no external resources.
func (a *Adapter) Close() error {
	return nil
}

var _ transport.Transport = (*Adapter)(nil)
