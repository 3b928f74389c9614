package protocol

// Message is one side of an Exchange: either a payload or absent.
//
// Absent is distinct from an empty payload. An absent write means the exchange
// expects no write at all (its response is served on demand), while an empty
// write is matched like any other command.
type Message struct {
	value   any
	present bool
}

// None marks a missing side of an exchange.
var None = Message{}

// Payload wraps a command or response value. The value may be any shape
// accepted by ToBytes; it is normalized when the Adapter is constructed.
func Payload(v any) Message {
	return Message{value: v, present: true}
}

// Present reports whether the message carries a payload.
func (m Message) Present() bool {
	return m.present
}

// Exchange is one step of a scripted conversation: the write the client is
// expected to produce and the canned response served once it matches. Either
// side may be None.
type Exchange struct {
	Write Message
	Read  Message
}
