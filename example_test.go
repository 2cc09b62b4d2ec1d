package wirehair_test

import (
	"fmt"

	"github.com/wirehair-go/wirehair/codec"
	"github.com/wirehair-go/wirehair/envelope"
	"github.com/wirehair-go/wirehair/fountain"
)

func ExampleNewEncoder() {
	message := []byte("the quick brown fox jumps over the lazy dog, twelve times over")
	enc, err := codec.NewEncoder(message, 8)
	if err != nil {
		fmt.Println(err)
		return
	}
	block, err := enc.Encode(0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(block))
	// Output: the quic
}

func ExampleNewDecoder() {
	message := []byte("a short message padded to a clean block boundary")
	const blockSize = 8
	enc, _ := codec.NewEncoder(message, blockSize)
	n := (uint32(len(message)) + blockSize - 1) / blockSize

	dec, err := codec.NewDecoder(uint32(len(message)), blockSize)
	if err != nil {
		fmt.Println(err)
		return
	}
	var lastErr error
	for id := uint32(0); id < n; id++ {
		block, _ := enc.Encode(id)
		lastErr = dec.Decode(id, block)
	}
	if lastErr != nil {
		fmt.Println(lastErr)
		return
	}
	recovered, err := dec.Recover()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(recovered) == string(message))
	// Output: true
}

func ExampleNewEncoderStream() {
	message := []byte("0123456789")
	es, err := fountain.NewEncoderStream(message, 11)
	if err != nil {
		fmt.Println(err)
		return
	}
	out := make([]byte, 11)
	n, err := es.ReadSome(out)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(n)
	// Output: 11
}

func ExamplePad() {
	frame, err := envelope.Pad(20)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(frame), frame[0], frame[1], frame[2], frame[3])
	// Output: 20 80 42 77 24
}
