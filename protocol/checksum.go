package protocol

// Checksum computes the one-byte integrity check used by the RVR protocol:
// the byte sum of data modulo 256, subtracted from 0xFF.
//
// The checksum covers every unescaped body byte except the checksum itself;
// SOP and EOP framing markers are never included.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return 0xFF - sum
}

// VerifyChecksum reports whether the checksum of data equals expected.
func VerifyChecksum(data []byte, expected byte) bool {
	return Checksum(data) == expected
}
