package protocol

// Flag bit positions within the FLAGS byte (bit 0 is the least significant).
// This is the authoritative layout; there is exactly one wire version.
const (
	flagIsResponse = 1 << iota
	flagRequestsResponse
	flagRequestsOnlyErrorResponse
	flagIsActivity
	flagHasTargetID
	flagHasSourceID
)

// reservedShift positions the two reserved bits (6-7) of the FLAGS byte.
const reservedShift = 6

// Flags classifies a packet and declares which optional fields it carries.
type Flags struct {
	// IsResponse marks a solicited response to an earlier command
	IsResponse bool

	// RequestsResponse asks the robot to answer this command
	RequestsResponse bool

	// RequestsOnlyErrorResponse asks for an answer only on failure
	RequestsOnlyErrorResponse bool

	// IsActivity marks an unsolicited notification (sensor data, events)
	IsActivity bool

	// HasTargetID declares that the TARGET_ID byte is present on the wire
	HasTargetID bool

	// HasSourceID declares that the SOURCE_ID byte is present on the wire
	HasSourceID bool

	// Reserved holds the two high bits (6-7), preserved verbatim
	Reserved byte
}

// Byte packs the flags into their wire representation.
func (f Flags) Byte() byte {
	var b byte
	if f.IsResponse {
		b |= flagIsResponse
	}
	if f.RequestsResponse {
		b |= flagRequestsResponse
	}
	if f.RequestsOnlyErrorResponse {
		b |= flagRequestsOnlyErrorResponse
	}
	if f.IsActivity {
		b |= flagIsActivity
	}
	if f.HasTargetID {
		b |= flagHasTargetID
	}
	if f.HasSourceID {
		b |= flagHasSourceID
	}
	b |= (f.Reserved & 0b11) << reservedShift
	return b
}

// FlagsFromByte unpacks a wire FLAGS byte.
func FlagsFromByte(b byte) Flags {
	return Flags{
		IsResponse:                b&flagIsResponse != 0,
		RequestsResponse:          b&flagRequestsResponse != 0,
		RequestsOnlyErrorResponse: b&flagRequestsOnlyErrorResponse != 0,
		IsActivity:                b&flagIsActivity != 0,
		HasTargetID:               b&flagHasTargetID != 0,
		HasSourceID:               b&flagHasSourceID != 0,
		Reserved:                  (b >> reservedShift) & 0b11,
	}
}

// Packet is one protocol message in structured form.
//
// TargetID and SourceID are meaningful only when the matching Has* flag is
// set; the flag bits are authoritative for what appears on the wire.
// Packets are treated as immutable after construction, with one exception:
// the transport overwrites Seq when it sends a command.
type Packet struct {
	Flags     Flags
	TargetID  byte
	SourceID  byte
	DeviceID  byte
	CommandID byte

	// Seq correlates a response with the command that solicited it.
	// For outgoing commands it is a placeholder until the transport
	// assigns the real value.
	Seq byte

	Payload []byte
}

// NewCommand builds a command packet that requests a response. Seq is left
// as a placeholder for the transport to assign.
func NewCommand(deviceID, commandID byte, payload []byte) *Packet {
	return &Packet{
		Flags:     Flags{RequestsResponse: true},
		DeviceID:  deviceID,
		CommandID: commandID,
		Payload:   payload,
	}
}

// WithRouting returns a copy of p addressed to target from source, with the
// presence flags set accordingly. Used on the external UART expansion port,
// where packets traverse the robot's internal routing mesh.
func (p *Packet) WithRouting(target, source byte) *Packet {
	q := *p
	q.Flags.HasTargetID = true
	q.Flags.HasSourceID = true
	q.TargetID = target
	q.SourceID = source
	return &q
}

// Bytes serializes the packet to its unescaped body: flags, the optional
// identifiers, device ID, command ID, sequence number, payload, and the
// trailing checksum computed over everything before it. Escaping and SOP/EOP
// framing are applied separately by the transport.
func (p *Packet) Bytes() []byte {
	body := make([]byte, 0, MinBodySize+2+len(p.Payload))
	body = append(body, p.Flags.Byte())
	if p.Flags.HasTargetID {
		body = append(body, p.TargetID)
	}
	if p.Flags.HasSourceID {
		body = append(body, p.SourceID)
	}
	body = append(body, p.DeviceID, p.CommandID, p.Seq)
	body = append(body, p.Payload...)
	body = append(body, Checksum(body))
	return body
}

// FromBytes parses an unescaped body back into a Packet. The flags byte
// decides whether the optional identifier bytes are consumed; everything
// between the fixed fields and the final byte is payload; the final byte is
// the checksum.
//
// Returns a TruncatedError if the body ends before a required field and a
// ChecksumError if the trailing byte does not match the body.
func FromBytes(body []byte) (*Packet, error) {
	if len(body) == 0 {
		return nil, &TruncatedError{Field: "flags", Len: 0}
	}

	p := &Packet{Flags: FlagsFromByte(body[0])}
	i := 1

	need := func(field string) error {
		if i >= len(body) {
			return &TruncatedError{Field: field, Len: len(body)}
		}
		return nil
	}

	if p.Flags.HasTargetID {
		if err := need("target ID"); err != nil {
			return nil, err
		}
		p.TargetID = body[i]
		i++
	}
	if p.Flags.HasSourceID {
		if err := need("source ID"); err != nil {
			return nil, err
		}
		p.SourceID = body[i]
		i++
	}
	if err := need("device ID"); err != nil {
		return nil, err
	}
	p.DeviceID = body[i]
	i++
	if err := need("command ID"); err != nil {
		return nil, err
	}
	p.CommandID = body[i]
	i++
	if err := need("sequence number"); err != nil {
		return nil, err
	}
	p.Seq = body[i]
	i++
	if err := need("checksum"); err != nil {
		return nil, err
	}

	// Remaining bytes up to the last are payload; the last is the checksum.
	p.Payload = append([]byte(nil), body[i:len(body)-1]...)

	expected := Checksum(body[:len(body)-1])
	actual := body[len(body)-1]
	if expected != actual {
		return nil, &ChecksumError{Expected: expected, Actual: actual}
	}

	return p, nil
}
