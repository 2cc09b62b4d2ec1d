// Command wirehair is a small CLI around the codec and fountain stream
// packages: encode a file into a directory of numbered blocks, decode a
// directory of blocks back into a file, or pipe an end-to-end stream
// through stdin/stdout. It mirrors the shape of the teacher's single
// purpose cmd/ binaries (one cobra command per mode) rather than
// exposing the library's full API.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wirehair-go/wirehair/codec"
	"github.com/wirehair-go/wirehair/fountain"
)

var (
	blockSize  uint32
	packetSize uint32
	batchTag   string
)

func main() {
	root := &cobra.Command{
		Use:   "wirehair",
		Short: "rateless erasure codec command line tool",
	}
	root.PersistentFlags().Uint32Var(&blockSize, "block-size", 1024, "source block size in bytes")
	root.PersistentFlags().Uint32Var(&packetSize, "packet-size", 1030, "stream packet size in bytes (block-size + 6)")

	root.AddCommand(encodeCmd(), decodeCmd(), streamCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func encodeCmd() *cobra.Command {
	var outDir string
	var count uint32
	cmd := &cobra.Command{
		Use:   "encode <input-file>",
		Short: "encode a file into a directory of numbered blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("wirehair encode: %w", err)
			}
			enc, err := codec.NewEncoder(data, blockSize)
			if err != nil {
				return fmt.Errorf("wirehair encode: %w", err)
			}
			n := (uint32(len(data)) + blockSize - 1) / blockSize
			if count == 0 {
				count = n
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("wirehair encode: %w", err)
			}
			for id := uint32(0); id < count; id++ {
				block, err := enc.Encode(id)
				if err != nil {
					return fmt.Errorf("wirehair encode: block %d: %w", id, err)
				}
				path := filepath.Join(outDir, fmt.Sprintf("block-%06d.bin", id))
				if err := os.WriteFile(path, block, 0o644); err != nil {
					return fmt.Errorf("wirehair encode: %w", err)
				}
			}
			log.Printf("wrote %d blocks (N=%d) to %s", count, n, outDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "blocks", "output directory for encoded blocks")
	cmd.Flags().Uint32Var(&count, "count", 0, "number of blocks to emit (default N, the source block count)")
	return cmd
}

func decodeCmd() *cobra.Command {
	var inDir string
	var messageBytes uint32
	var outFile string
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "decode a directory of numbered blocks back into a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := os.ReadDir(inDir)
			if err != nil {
				return fmt.Errorf("wirehair decode: %w", err)
			}
			dec, err := codec.NewDecoder(messageBytes, blockSize)
			if err != nil {
				return fmt.Errorf("wirehair decode: %w", err)
			}
			var lastErr error
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				var id uint32
				if _, err := fmt.Sscanf(entry.Name(), "block-%d.bin", &id); err != nil {
					continue
				}
				data, err := os.ReadFile(filepath.Join(inDir, entry.Name()))
				if err != nil {
					return fmt.Errorf("wirehair decode: %w", err)
				}
				lastErr = dec.Decode(id, data)
				if lastErr == nil {
					break
				}
			}
			if lastErr != nil && lastErr != codec.ErrNeedMore {
				return fmt.Errorf("wirehair decode: %w", lastErr)
			}
			msg, err := dec.Recover()
			if err != nil {
				return fmt.Errorf("wirehair decode: %w", err)
			}
			return os.WriteFile(outFile, msg, 0o644)
		},
	}
	cmd.Flags().StringVar(&inDir, "in", "blocks", "input directory of encoded blocks")
	cmd.Flags().Uint32Var(&messageBytes, "message-bytes", 0, "original message length in bytes")
	cmd.Flags().StringVar(&outFile, "out", "recovered.bin", "output file path")
	return cmd
}

func streamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stream <input-file>",
		Short: "encode a file and pipe the fountain byte stream to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batchTag = uuid.NewString()
			log.Printf("stream batch %s starting", batchTag)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("wirehair stream: %w", err)
			}
			es, err := fountain.NewEncoderStream(data, packetSize)
			if err != nil {
				return fmt.Errorf("wirehair stream: %w", err)
			}
			// The stream is rateless and has no natural end; a CLI pass
			// emits BlocksRequired()+4 packets: N+1 (the stream skips id
			// N-1) plus 4 spare packets of margin for the decoder.
			total := int64(es.BlocksRequired()+4) * int64(packetSize)
			chunk := make([]byte, packetSize*8)
			for written := int64(0); written < total; {
				want := chunk
				if remain := total - written; remain < int64(len(chunk)) {
					want = chunk[:remain]
				}
				n, err := es.ReadSome(want)
				if n > 0 {
					if _, werr := os.Stdout.Write(want[:n]); werr != nil {
						return werr
					}
					written += int64(n)
				}
				if err != nil {
					return fmt.Errorf("wirehair stream: %w", err)
				}
			}
			return nil
		},
	}
	return cmd
}
