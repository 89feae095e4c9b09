package protocol

// Escape applies SLIP-style escaping to data so it can appear between SOP
// and EOP markers on the wire. Each occurrence of SOP, EOP, or ESC is
// replaced by ESC followed by the byte with ESCMask cleared; every other
// byte passes through unchanged.
//
// Returns a new slice; data is not modified.
func Escape(data []byte) []byte {
	escaped := make([]byte, 0, len(data))
	for _, b := range data {
		if b == ESC || b == SOP || b == EOP {
			escaped = append(escaped, ESC, b&^ESCMask)
		} else {
			escaped = append(escaped, b)
		}
	}
	return escaped
}

// Unescape reverses Escape. Each ESC byte consumes the following byte and
// restores it by setting ESCMask; all other bytes are copied through.
//
// Returns ErrIncompleteEscape if data ends with ESC and no follower byte.
// The property Unescape(Escape(x)) == x holds for every byte sequence x.
func Unescape(data []byte) ([]byte, error) {
	decoded := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b != ESC {
			decoded = append(decoded, b)
			continue
		}
		i++
		if i >= len(data) {
			return nil, ErrIncompleteEscape
		}
		decoded = append(decoded, data[i]|ESCMask)
	}
	return decoded, nil
}
