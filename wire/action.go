package wire

// ActionKind discriminates the things an Encoder can ask its caller
// to do.
type ActionKind int

const (
	// ActionSend instructs the caller to write Bytes to the
	// connection.
	ActionSend ActionKind = iota
	// ActionAwaitContinuation instructs the caller to stop consuming
	// actions and wait for a server continuation request ("+ ...")
	// before calling Next again. This only appears ahead of a
	// synchronizing literal.
	ActionAwaitContinuation
	// ActionUnknown means the message contains a construct whose flow
	// implications cannot be derived from syntax alone — currently
	// only AUTHENTICATE with an initial response for a mechanism other
	// than PLAIN or LOGIN. The caller must decide whether to await a
	// continuation.
	ActionUnknown
)

// Action is one step an Encoder's caller must perform before asking
// for the next one.
type Action struct {
	kind  ActionKind
	bytes []byte
}

// Kind reports which of ActionSend/ActionAwaitContinuation/ActionUnknown
// this is.
func (a Action) Kind() ActionKind { return a.kind }

// Bytes returns the bytes to send. Only meaningful when Kind is
// ActionSend.
func (a Action) Bytes() []byte { return a.bytes }

func sendAction(b []byte) Action { return Action{kind: ActionSend, bytes: b} }

var awaitContinuationAction = Action{kind: ActionAwaitContinuation}

var unknownAction = Action{kind: ActionUnknown}

// Encoder iterates the Actions needed to put one encoded message on
// the wire. It holds no connection state of its own: it only remembers
// which chunk comes next.
type Encoder struct {
	chunks []Action
	pos    int
}

// newEncoder builds an Encoder from a pre-computed action sequence.
func newEncoder(chunks []Action) *Encoder {
	return &Encoder{chunks: chunks}
}

// Next returns the next Action, or ok=false once the message is fully
// encoded. After an ActionAwaitContinuation, the caller must not call
// Next again until a continuation request has been read off the wire.
func (e *Encoder) Next() (Action, bool) {
	if e.pos >= len(e.chunks) {
		return Action{}, false
	}
	a := e.chunks[e.pos]
	e.pos++
	return a, true
}

// Dump concatenates all Send payloads, discarding flow actions. Only
// usable on the server side (which never awaits continuation requests)
// or when every literal in the message is non-synchronizing; on the
// client side it would skip mandatory synchronization points.
func (e *Encoder) Dump() []byte {
	var out []byte
	for _, a := range e.chunks[e.pos:] {
		if a.kind == ActionSend {
			out = append(out, a.bytes...)
		}
	}
	return out
}

// encBuilder accumulates Send actions, splitting a new one before and
// after each synchronizing literal header so callers see an AwaitContinuation
// action at exactly the right point. With server set, synchronization
// points are dropped entirely: a server sends response literals
// without awaiting anything, so header and payload collapse into one
// Send.
type encBuilder struct {
	actions []Action
	buf     []byte
	server  bool
}

func (b *encBuilder) writeString(s string) { b.buf = append(b.buf, s...) }
func (b *encBuilder) writeBytes(p []byte)  { b.buf = append(b.buf, p...) }
func (b *encBuilder) writeByte(c byte)     { b.buf = append(b.buf, c) }

// flush turns any pending buffered bytes into a Send action.
func (b *encBuilder) flush() {
	if len(b.buf) > 0 {
		b.actions = append(b.actions, sendAction(b.buf))
		b.buf = nil
	}
}

// awaitContinuation flushes pending bytes and inserts a synchronization
// point, used right after writing a LiteralSync header. In server mode
// it is a no-op.
func (b *encBuilder) awaitContinuation() {
	if b.server {
		return
	}
	b.flush()
	b.actions = append(b.actions, awaitContinuationAction)
}

// unknown flushes pending bytes and inserts an Unknown action.
func (b *encBuilder) unknown() {
	b.flush()
	b.actions = append(b.actions, unknownAction)
}

func (b *encBuilder) build() *Encoder {
	b.flush()
	return newEncoder(b.actions)
}
