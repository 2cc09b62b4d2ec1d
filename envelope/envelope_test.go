package envelope

import (
	"bytes"
	"testing"
)

// TestPadExactBytes checks scenario S5 byte-for-byte.
func TestPadExactBytes(t *testing.T) {
	got, err := Pad(20)
	if err != nil {
		t.Fatalf("Pad(20): %v", err)
	}
	want := append([]byte{0x50, 0x2A, 0x4D, 0x18, 0x0C, 0x00, 0x00, 0x00}, make([]byte, 12)...)
	if !bytes.Equal(got, want) {
		t.Fatalf("Pad(20) = % x, want % x", got, want)
	}
}

// TestWriteHeaderExactBytes checks scenario S6 byte-for-byte.
func TestWriteHeaderExactBytes(t *testing.T) {
	got := WriteHeader("foobar.txt")
	want := append([]byte{0x50, 0x2A, 0x4D, 0x18, 0x0B, 0x00, 0x00, 0x00, 0x01}, []byte("foobar.txt")...)
	if !bytes.Equal(got, want) {
		t.Fatalf("WriteHeader = % x, want % x", got, want)
	}
}

// TestFilenameRoundTrip checks P8.
func TestFilenameRoundTrip(t *testing.T) {
	for _, name := range []string{"a.txt", "", "very-long-filename-with-dashes.tar.gz"} {
		frame := WriteHeader(name)
		got, err := GetFilename(frame)
		if err != nil {
			t.Fatalf("GetFilename(%q): %v", name, err)
		}
		if got != name {
			t.Fatalf("GetFilename(WriteHeader(%q)) = %q", name, got)
		}
	}
}

func TestGetFilenameOnPadFrame(t *testing.T) {
	frame, err := Pad(16)
	if err != nil {
		t.Fatalf("Pad: %v", err)
	}
	name, err := GetFilename(frame)
	if err != nil {
		t.Fatalf("GetFilename: %v", err)
	}
	if name != "" {
		t.Fatalf("GetFilename(pad frame) = %q, want empty", name)
	}
}

func TestCompressorRoundTrip(t *testing.T) {
	c, err := NewCompressor()
	if err != nil {
		t.Fatalf("NewCompressor: %v", err)
	}
	defer c.Close()

	data := []byte("the quick brown fox jumps over the lazy dog")
	compressed := c.Compress(data)
	out, err := c.Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if string(out) != string(data) {
		t.Fatalf("Decompress(Compress(x)) != x")
	}
}
