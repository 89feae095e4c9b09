// Package protocol implements the Sphero RVR serial API wire format.
//
// # Protocol Overview
//
// Every message travels inside a SLIP-style frame:
//
//	Frame:  [SOP][ESCAPED BODY...][EOP]
//	Body:   [FLAGS][TARGET_ID?][SOURCE_ID?][DEVICE_ID][COMMAND_ID][SEQ][PAYLOAD...][CHECKSUM]
//
// Where:
//   - SOP = Start of Packet (0x8D)
//   - EOP = End of Packet (0xD8)
//   - TARGET_ID/SOURCE_ID are present only when the matching flag bits are set
//   - CHECKSUM = 0xFF - (sum of all body bytes before it, mod 256)
//
// Body bytes equal to SOP, EOP, or ESC are escaped on the wire: the byte is
// replaced by ESC followed by the byte with the escape mask cleared. Escape
// and Unescape implement this transform; the property
// Unescape(Escape(x)) == x holds for every byte sequence x.
//
// # Packets
//
// Packet is the structured form of one message. Build outgoing commands with
// NewCommand, serialize with Bytes, and reconstruct incoming messages with
// FromBytes:
//
//	pkt := protocol.NewCommand(0x13, 0x0D, []byte{0x01})
//	body := pkt.Bytes() // unescaped body including trailing checksum
//
//	parsed, err := protocol.FromBytes(body)
//
// Bytes and FromBytes work on the unescaped body; framing and escaping are a
// separate step handled by the transport (or by Parser on the receive side).
//
// # Streaming Parser
//
// Parser consumes a live byte stream one byte at a time and emits complete
// packets. It tolerates line noise: junk before SOP is ignored, a repeated
// SOP resynchronizes onto the new frame, and a frame that fails validation
// only loses that frame. After any error the parser is ready for more input:
//
//	p := protocol.NewParser()
//	for _, b := range chunk {
//	    pkt, err := p.Feed(b)
//	    if err != nil {
//	        // log and keep feeding; the parser has already recovered
//	        continue
//	    }
//	    if pkt != nil {
//	        // complete, checksum-verified packet
//	    }
//	}
//
// # Error Handling
//
// Frame-level failures are typed so callers can branch without string
// matching: ErrUnexpectedStart, ErrInvalidEscape and ErrIncompleteEscape are
// sentinels, ChecksumError and TruncatedError carry details. All of them are
// scoped to a single frame; none of them invalidate the stream.
package protocol
