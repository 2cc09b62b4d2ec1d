package fountain

import (
	"bytes"
	"math/rand"
	"testing"
)

// TestStreamEquivalence checks P7: reading the same stream in different
// chunk sizes produces identical bytes, and the decoder stream recovers
// the original message from either chunking.
func TestStreamEquivalence(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	message := make([]byte, 10000)
	r.Read(message)

	const packetSize = 830
	for _, chunk := range []int{140, 37, 830 * 3} {
		es, err := NewEncoderStream(message, packetSize)
		if err != nil {
			t.Fatalf("chunk=%d: NewEncoderStream: %v", chunk, err)
		}
		ds, err := NewDecoderStream(uint32(len(message)), packetSize)
		if err != nil {
			t.Fatalf("chunk=%d: NewDecoderStream: %v", chunk, err)
		}

		buf := make([]byte, chunk)
		var recovered []byte
		for i := 0; i < 1000 && recovered == nil; i++ {
			n, err := es.ReadSome(buf)
			if err != nil {
				t.Fatalf("chunk=%d: ReadSome: %v", chunk, err)
			}
			recovered, err = ds.Write(buf[:n])
			if err != nil {
				t.Fatalf("chunk=%d: Write: %v", chunk, err)
			}
		}
		if recovered == nil {
			t.Fatalf("chunk=%d: decoder never finished", chunk)
		}
		if !bytes.Equal(recovered, message) {
			t.Fatalf("chunk=%d: recovered mismatch", chunk)
		}
	}
}

// TestStreamHeaderFields checks the literal header layout from spec
// scenario S4: encode_id=0, total_size big-endian, block_id big-endian
// starting at 0.
func TestStreamHeaderFields(t *testing.T) {
	message := bytes.Repeat([]byte("0123456789"), 1000)
	es, err := NewEncoderStream(message, 830)
	if err != nil {
		t.Fatalf("NewEncoderStream: %v", err)
	}
	out := make([]byte, 830)
	if _, err := es.ReadSome(out); err != nil {
		t.Fatalf("ReadSome: %v", err)
	}
	if out[0] != 0 {
		t.Fatalf("encode_id = %d, want 0", out[0])
	}
	totalSize := uint32(out[1])<<16 | uint32(out[2])<<8 | uint32(out[3])
	if totalSize != uint32(len(message)) {
		t.Fatalf("total_size = %d, want %d", totalSize, len(message))
	}
	blockID := uint32(out[4])<<8 | uint32(out[5])
	if blockID != 0 {
		t.Fatalf("block_id = %d, want 0", blockID)
	}
}

func TestEncoderStreamRejectsSmallPacket(t *testing.T) {
	if _, err := NewEncoderStream([]byte("x"), 6); err != ErrPacketTooSmall {
		t.Fatalf("got %v, want ErrPacketTooSmall", err)
	}
}
