package protocol

import "testing"

func TestChecksum(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected byte
	}{
		{
			name:     "empty data",
			data:     []byte{},
			expected: 0xFF,
		},
		{
			name:     "documentation example",
			data:     []byte{0x01, 0x02, 0x03},
			expected: 0xF9, // 0xFF - 6
		},
		{
			name:     "sum overflows a byte",
			data:     []byte{0xFF, 0xFF, 0x02},
			expected: 0xFF, // sum mod 256 = 0
		},
		{
			name:     "single byte",
			data:     []byte{0x8D},
			expected: 0x72,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Checksum(tt.data)
			if result != tt.expected {
				t.Errorf("Checksum() = 0x%02X, want 0x%02X", result, tt.expected)
			}
		})
	}
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte{0x10, 0x20, 0x30}
	sum := Checksum(data)

	if !VerifyChecksum(data, sum) {
		t.Errorf("VerifyChecksum() = false for matching checksum 0x%02X", sum)
	}
	if VerifyChecksum(data, sum+1) {
		t.Error("VerifyChecksum() = true for non-matching checksum")
	}
}

func BenchmarkChecksum(b *testing.B) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Checksum(data)
	}
}
