// Package fountain frames the codec's block-oriented API into a
// continuous byte stream: a 6-byte header (rolling encode id, 24-bit
// total size, 16-bit block id) in front of every packet, so a caller can
// read an encoded message in arbitrary chunks (EncoderStream.ReadSome) and
// feed arbitrary chunks back in (DecoderStream.Write) instead of juggling
// individual blocks. Neither type implements io.Reader or io.Writer.
package fountain

import (
	"github.com/pkg/errors"

	"github.com/wirehair-go/wirehair/codec"
)

const headerSize = 6

// ErrPacketTooSmall is returned when packet_size leaves no room for both
// the header and at least one payload byte.
var ErrPacketTooSmall = errors.New("fountain: packet_size must be >= 7")

// ErrTooManyBlocks is returned when the message would split into more
// blocks than the codec supports.
var ErrTooManyBlocks = errors.New("fountain: message requires more than 64000 blocks at this packet size")

// EncoderStream turns one message into an unbounded byte stream of
// encoded packets. Not safe for concurrent use.
type EncoderStream struct {
	enc        *codec.Codec
	encodeID   byte
	totalSize  uint32
	blockSize  uint32
	packetSize uint32
	maxPacket  uint32
	n          uint32

	nextBlockID uint32
	emitted     uint32
	pending     []byte

	good    bool
	lastErr error
}

// NewEncoderStream builds an encoder stream over input, using packetSize
// bytes per packet (blockSize = packetSize - 6). The returned stream's
// encode id defaults to 0; use SetEncodeID before the first ReadSome to tag a
// multi-stream batch.
func NewEncoderStream(input []byte, packetSize uint32) (*EncoderStream, error) {
	if packetSize < headerSize+1 {
		return nil, ErrPacketTooSmall
	}
	blockSize := packetSize - headerSize
	n := (uint32(len(input)) + blockSize - 1) / blockSize
	if n > 64000 {
		return nil, ErrTooManyBlocks
	}

	enc, err := codec.NewEncoder(input, blockSize)
	if err != nil {
		return nil, errors.Wrap(err, "fountain: new encoder stream")
	}

	return &EncoderStream{
		enc:        enc,
		totalSize:  uint32(len(input)),
		blockSize:  blockSize,
		packetSize: packetSize,
		maxPacket:  packetSize,
		n:          n,
		good:       true,
	}, nil
}

// SetEncodeID sets the rolling tag every packet in this stream carries.
func (s *EncoderStream) SetEncodeID(id byte) { s.encodeID = id }

// BlockCount returns the number of packets produced so far.
func (s *EncoderStream) BlockCount() uint32 { return s.emitted }

// BlocksRequired returns ceil(total_size/block_size) + 1, the decoder-side
// budget that accounts for the one block id this stream always skips.
func (s *EncoderStream) BlocksRequired() uint32 {
	return (s.totalSize+s.blockSize-1)/s.blockSize + 1
}

// Good reports whether the stream is still producing valid output.
func (s *EncoderStream) Good() bool { return s.good }

// Err returns the wrapped codec failure that last set Good to false, if any.
func (s *EncoderStream) Err() error { return s.lastErr }

// advanceBlockID returns the next id to encode, skipping N-1 exactly once
// so the partial-length last original block never needs special-casing in
// stream mode.
func (s *EncoderStream) advanceBlockID() uint32 {
	id := s.nextBlockID
	if id == s.n-1 {
		id++
	}
	s.nextBlockID = id + 1
	return id
}

func (s *EncoderStream) producePacket() ([]byte, error) {
	id := s.advanceBlockID()
	payload, err := s.enc.Encode(id)
	if err != nil {
		return nil, err
	}
	pkt := make([]byte, 0, headerSize+len(payload))
	pkt = append(pkt, s.encodeID)
	pkt = append(pkt, byte(s.totalSize>>16), byte(s.totalSize>>8), byte(s.totalSize))
	pkt = append(pkt, byte(id>>8), byte(id))
	pkt = append(pkt, payload...)
	s.emitted++
	return pkt, nil
}

// ReadSome fills out with exactly len(out) bytes of stream, generating and
// splitting packets as needed. It returns an error only if the
// underlying codec fails to encode a block, which should not happen for a
// freshly built encoder.
func (s *EncoderStream) ReadSome(out []byte) (int, error) {
	total := 0
	for total < len(out) {
		if len(s.pending) == 0 {
			pkt, err := s.producePacket()
			if err != nil {
				s.good = false
				s.lastErr = errors.Wrap(err, "fountain: encode")
				return total, s.lastErr
			}
			s.pending = pkt
		}
		n := copy(out[total:], s.pending)
		s.pending = s.pending[n:]
		total += n
	}
	return total, nil
}

// RestartAndResizeBuffer records newPacketSize as the stream's packet size
// and discards the unread rest of the current packet. ReadSome does not
// use the recorded size: every packet it produces stays 6+blockSize bytes,
// the size fixed at construction. It returns false (and leaves packetSize
// unchanged) if newPacketSize exceeds the capacity reserved at
// construction, or is too small to hold a header.
func (s *EncoderStream) RestartAndResizeBuffer(newPacketSize uint32) bool {
	if newPacketSize < headerSize+1 || newPacketSize > s.maxPacket {
		return false
	}
	s.packetSize = newPacketSize
	s.pending = nil
	return true
}
