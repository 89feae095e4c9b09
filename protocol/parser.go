package protocol

// parserState identifies where the parser is within the framing grammar.
type parserState int

const (
	// waitingForSOP means idle: every byte is discarded until a SOP arrives
	waitingForSOP parserState = iota

	// inFrame means a SOP has been seen and body bytes are accumulating
	inFrame
)

// Parser is an incremental state machine that turns a raw byte stream into
// packets. Feed it one byte at a time; it unescapes the body, strips the
// framing, and validates the checksum as frames complete.
//
// The parser is built for noisy lines and never gets stuck: bytes before SOP
// are ignored, an unexpected SOP resynchronizes onto the new frame, and any
// per-frame failure resets the state before the error is reported. The
// caller may always keep feeding after an error.
//
// Parser is not safe for concurrent use; each stream needs its own instance.
type Parser struct {
	state   parserState
	buf     []byte
	escaped bool // previous byte was ESC
}

// NewParser returns a parser waiting for the first SOP.
func NewParser() *Parser {
	return &Parser{state: waitingForSOP}
}

// Feed consumes exactly one byte and never blocks. It returns (nil, nil)
// while a frame is still accumulating, (pkt, nil) when the byte completed a
// valid frame, or (nil, err) when the byte ended or corrupted a frame.
//
// Every returned error leaves the parser in a valid state: waiting for the
// next SOP, or accumulating the fresh frame that triggered the
// resynchronization (ErrUnexpectedStart).
func (p *Parser) Feed(b byte) (*Packet, error) {
	if p.state == waitingForSOP {
		if b == SOP {
			p.start()
		}
		return nil, nil
	}

	if p.escaped {
		// An escaped byte must never literally be one of the three markers.
		if b == SOP || b == EOP || b == ESC {
			p.Reset()
			return nil, ErrInvalidEscape
		}
		p.buf = append(p.buf, b|ESCMask)
		p.escaped = false
		return nil, nil
	}

	switch b {
	case ESC:
		p.escaped = true
		return nil, nil

	case SOP:
		// The previous EOP was lost. Drop the partial frame and
		// resynchronize onto the one starting here.
		p.start()
		return nil, ErrUnexpectedStart

	case EOP:
		body := p.buf
		p.Reset()
		return FromBytes(body)

	default:
		p.buf = append(p.buf, b)
		return nil, nil
	}
}

// Reset forces the parser back to waiting for a SOP, discarding any partial
// frame. Feed does this on its own after every completed or failed frame;
// Reset exists for out-of-band recovery.
func (p *Parser) Reset() {
	p.state = waitingForSOP
	p.buf = nil
	p.escaped = false
}

// start begins accumulating a fresh frame.
func (p *Parser) start() {
	p.state = inFrame
	p.buf = make([]byte, 0, 32) // typical packet size
	p.escaped = false
}
