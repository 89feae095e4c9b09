package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected []byte
	}{
		{
			name:     "no special bytes",
			data:     []byte{0x01, 0x02, 0x03},
			expected: []byte{0x01, 0x02, 0x03},
		},
		{
			name:     "SOP is escaped",
			data:     []byte{SOP},
			expected: []byte{ESC, 0x05},
		},
		{
			name:     "EOP is escaped",
			data:     []byte{EOP},
			expected: []byte{ESC, 0x50},
		},
		{
			name:     "ESC is escaped",
			data:     []byte{ESC},
			expected: []byte{ESC, 0x23},
		},
		{
			name:     "markers surrounded by plain bytes",
			data:     []byte{0x01, SOP, 0x02, EOP, 0x03},
			expected: []byte{0x01, ESC, 0x05, 0x02, ESC, 0x50, 0x03},
		},
		{
			name:     "empty input",
			data:     []byte{},
			expected: []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Escape(tt.data)
			if !bytes.Equal(result, tt.expected) {
				t.Errorf("Escape() = % 02X, want % 02X", result, tt.expected)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected []byte
		wantErr  error
	}{
		{
			name:     "no escape sequences",
			data:     []byte{0x01, 0x02, 0x03},
			expected: []byte{0x01, 0x02, 0x03},
		},
		{
			name:     "escaped ESC",
			data:     []byte{ESC, 0x23},
			expected: []byte{ESC},
		},
		{
			name:    "trailing ESC without follower",
			data:    []byte{0x01, ESC},
			wantErr: ErrIncompleteEscape,
		},
		{
			name:    "lone ESC",
			data:    []byte{ESC},
			wantErr: ErrIncompleteEscape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Unescape(tt.data)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Unescape() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(result, tt.expected) {
				t.Errorf("Unescape() = % 02X, want % 02X", result, tt.expected)
			}
		})
	}
}

// Escaping must round-trip every byte value, including the three markers.
func TestEscapeUnescapeRoundTrip(t *testing.T) {
	all := make([]byte, 0, 512)
	for i := 0; i < 256; i++ {
		all = append(all, byte(i))
	}
	// Runs of markers back to back
	all = append(all, SOP, SOP, EOP, EOP, ESC, ESC, SOP, ESC, EOP)

	decoded, err := Unescape(Escape(all))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(decoded, all) {
		t.Error("Unescape(Escape(x)) != x")
	}
}

func BenchmarkEscape(b *testing.B) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Escape(data)
	}
}
