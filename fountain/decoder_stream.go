package fountain

import (
	stderrors "errors"

	"github.com/pkg/errors"

	"github.com/wirehair-go/wirehair/codec"
)

// DecoderStream reassembles blocks from an arbitrarily-chunked byte stream
// produced by an EncoderStream (or a compatible producer) and feeds them
// to a codec decoder. Not safe for concurrent use.
type DecoderStream struct {
	dec        *codec.Codec
	totalSize  uint32
	blockSize  uint32
	packetSize uint32
	n          uint32

	buf      []byte
	accepted uint32
	done     bool

	good    bool
	lastErr error
}

// NewDecoderStream prepares a decoder stream for a message of totalSize
// bytes, framed at packetSize bytes per packet.
func NewDecoderStream(totalSize, packetSize uint32) (*DecoderStream, error) {
	if packetSize < headerSize+1 {
		return nil, ErrPacketTooSmall
	}
	blockSize := packetSize - headerSize
	n := (totalSize + blockSize - 1) / blockSize
	if n > 64000 {
		return nil, ErrTooManyBlocks
	}
	dec, err := codec.NewDecoder(totalSize, blockSize)
	if err != nil {
		return nil, errors.Wrap(err, "fountain: new decoder stream")
	}
	return &DecoderStream{
		dec:        dec,
		totalSize:  totalSize,
		blockSize:  blockSize,
		packetSize: packetSize,
		n:          n,
		good:       true,
	}, nil
}

// Good reports whether the stream is still able to make progress.
func (d *DecoderStream) Good() bool { return d.good }

// Err returns the wrapped codec failure that last set Good to false, if any.
func (d *DecoderStream) Err() error { return d.lastErr }

// Progress returns the number of rows the decoder has accepted so far.
func (d *DecoderStream) Progress() uint32 { return d.accepted }

// BlocksRequired mirrors EncoderStream.BlocksRequired for the same
// (totalSize, packetSize) pair.
func (d *DecoderStream) BlocksRequired() uint32 {
	return (d.totalSize+d.blockSize-1)/d.blockSize + 1
}

// Write appends p to the internal packet buffer, decoding every full
// packet it completes. It returns the fully reconstructed message on the
// call that finishes decoding, and nil otherwise.
func (d *DecoderStream) Write(p []byte) ([]byte, error) {
	if d.done {
		return nil, nil
	}
	d.buf = append(d.buf, p...)

	for uint32(len(d.buf)) >= d.packetSize {
		pkt := d.buf[:d.packetSize]
		d.buf = d.buf[d.packetSize:]

		blockID := uint32(pkt[4])<<8 | uint32(pkt[5])
		payload := pkt[headerSize:]

		err := d.dec.Decode(blockID, payload)
		if err == nil || stderrors.Is(err, codec.ErrNeedMore) {
			d.accepted++
		}

		switch {
		case err == nil:
			d.done = true
			msg, rerr := d.dec.Recover()
			if rerr != nil {
				d.good = false
				d.lastErr = errors.Wrap(rerr, "fountain: recover")
				return nil, d.lastErr
			}
			return msg, nil
		case stderrors.Is(err, codec.ErrNeedMore), stderrors.Is(err, codec.ErrDuplicateID):
			continue
		default:
			d.good = false
			d.lastErr = errors.Wrap(err, "fountain: decode")
			return nil, d.lastErr
		}
	}
	return nil, nil
}
