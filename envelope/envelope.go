// Package envelope implements the skippable-frame preamble wrapped around
// a zstd-compressed payload: a magic-tagged frame any conforming zstd
// decompressor skips over unread, carrying either pure padding (so a
// payload can be aligned to a fixed boundary) or a UTF-8 filename. The
// compressor itself is github.com/klauspost/compress/zstd, wired in
// Compressor below; this package owns only the skippable-frame bytes
// around it.
package envelope

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Magic is the little-endian zstd skippable-frame magic number.
const Magic uint32 = 0x184D2A50

const filenameVersion = 0x01

// ErrFrameTooShort is returned by GetFilename when bytes is shorter than a
// minimal skippable-frame header.
var ErrFrameTooShort = errors.New("envelope: frame shorter than header")

// Pad emits a skippable frame of exactly length bytes: an 8-byte header
// (magic + user-data length) followed by length-8 zero bytes. length must
// be at least 9, since write_header's minimum payload (the version byte
// alone) establishes the smallest meaningful user-data length.
func Pad(length int) ([]byte, error) {
	if length < 9 {
		return nil, fmt.Errorf("envelope.Pad: length must be >= 9, got %d", length)
	}
	out := make([]byte, length)
	binary.LittleEndian.PutUint32(out[0:4], Magic)
	binary.LittleEndian.PutUint32(out[4:8], uint32(length-8))
	return out, nil
}

// WriteHeader emits a skippable frame whose user data is the version byte
// 0x01 followed by the UTF-8 bytes of name. Total length is len(name) + 9.
func WriteHeader(name string) []byte {
	nameBytes := []byte(name)
	userLen := uint32(len(nameBytes) + 1)
	out := make([]byte, 8+len(nameBytes)+1)
	binary.LittleEndian.PutUint32(out[0:4], Magic)
	binary.LittleEndian.PutUint32(out[4:8], userLen)
	out[8] = filenameVersion
	copy(out[9:], nameBytes)
	return out
}

// GetFilename parses the payload of a leading skippable frame in data. If
// the frame's user data begins with the filename version byte, it returns
// the remainder as the filename; otherwise it returns an empty string.
// Malformed input (no valid skippable-frame header) also returns empty,
// per the envelope's "return empty on malformed input" policy.
func GetFilename(data []byte) (string, error) {
	if len(data) < 8 {
		return "", ErrFrameTooShort
	}
	magic := binary.LittleEndian.Uint32(data[0:4])
	if magic != Magic {
		return "", nil
	}
	userLen := binary.LittleEndian.Uint32(data[4:8])
	if uint64(8+userLen) > uint64(len(data)) || userLen == 0 {
		return "", nil
	}
	user := data[8 : 8+userLen]
	if user[0] != filenameVersion {
		return "", nil
	}
	return string(user[1:]), nil
}

// Compressor wraps a zstd encoder/decoder pair, the "opaque compressor
// producing/consuming byte streams" this package's skippable frames sit
// alongside. It is exported so callers can emit a header/padding frame and
// compressed data from one handle without reaching past this package for
// zstd directly.
type Compressor struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewCompressor builds a Compressor using zstd's default encoder/decoder
// options, adequate for the block sizes the codec produces.
func NewCompressor() (*Compressor, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("envelope.NewCompressor: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		return nil, fmt.Errorf("envelope.NewCompressor: %w", err)
	}
	return &Compressor{enc: enc, dec: dec}, nil
}

// Compress returns the zstd-compressed form of data.
func (c *Compressor) Compress(data []byte) []byte {
	return c.enc.EncodeAll(data, nil)
}

// Decompress reverses Compress.
func (c *Compressor) Decompress(data []byte) ([]byte, error) {
	out, err := c.dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("envelope.Decompress: %w", err)
	}
	return out, nil
}

// Close releases the Compressor's resources.
func (c *Compressor) Close() {
	c.enc.Close()
	c.dec.Close()
}
