package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the payload compression.
type Compression uint8

const (
	// CompressionNone stores points uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZstd uses zstd (better ratio).
	CompressionZstd Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

func (c Compression) valid() bool {
	return c <= CompressionZstd
}

// BlockSize is the uncompressed size of a payload block.
const BlockSize = 1 << 20

const blockHeaderSize = 8

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// compressBlocks splits data into BlockSize chunks and appends each as
// [uncompressed uint32][compressed uint32][bytes] to dst. A compressed size
// of 0 marks a block stored raw because compression did not pay off.
func compressBlocks(dst, data []byte, c Compression) ([]byte, error) {
	for len(data) > 0 {
		n := min(len(data), BlockSize)
		block := data[:n]
		data = data[n:]

		var packed []byte
		switch c {
		case CompressionLZ4:
			buf := make([]byte, lz4.CompressBlockBound(len(block)))
			m, err := lz4.CompressBlock(block, buf, nil)
			if err != nil {
				return nil, err
			}
			packed = buf[:m]
		case CompressionZstd:
			enc := getZstdEncoder()
			packed = enc.EncodeAll(block, nil)
			zstdEncoderPool.Put(enc)
		default:
			return nil, fmt.Errorf("snapshot: cannot compress with %s", c)
		}

		var hdr [blockHeaderSize]byte
		binary.LittleEndian.PutUint32(hdr[0:], uint32(len(block)))
		if len(packed) == 0 || float64(len(packed)) > float64(len(block))*0.9 {
			dst = append(dst, hdr[:]...)
			dst = append(dst, block...)
			continue
		}
		binary.LittleEndian.PutUint32(hdr[4:], uint32(len(packed)))
		dst = append(dst, hdr[:]...)
		dst = append(dst, packed...)
	}
	return dst, nil
}

// decompressBlocks reverses compressBlocks. want is the expected total
// uncompressed size; blocks that would exceed it are rejected.
func decompressBlocks(data []byte, c Compression, want int) ([]byte, error) {
	out := make([]byte, 0, want)

	for len(data) > 0 {
		if len(data) < blockHeaderSize {
			return nil, fmt.Errorf("%w: truncated block header", ErrCorrupt)
		}
		rawSize := int(binary.LittleEndian.Uint32(data[0:]))
		packedSize := int(binary.LittleEndian.Uint32(data[4:]))
		data = data[blockHeaderSize:]

		if rawSize == 0 || rawSize > BlockSize || len(out)+rawSize > want {
			return nil, fmt.Errorf("%w: block size %d out of range", ErrCorrupt, rawSize)
		}

		if packedSize == 0 {
			if len(data) < rawSize {
				return nil, fmt.Errorf("%w: truncated block", ErrCorrupt)
			}
			out = append(out, data[:rawSize]...)
			data = data[rawSize:]
			continue
		}

		if len(data) < packedSize {
			return nil, fmt.Errorf("%w: truncated block", ErrCorrupt)
		}
		packed := data[:packedSize]
		data = data[packedSize:]

		start := len(out)
		out = out[:start+rawSize]
		switch c {
		case CompressionLZ4:
			n, err := lz4.UncompressBlock(packed, out[start:])
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
			}
			if n != rawSize {
				return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
			}
		case CompressionZstd:
			dec := getZstdDecoder()
			decoded, err := dec.DecodeAll(packed, out[start:start])
			zstdDecoderPool.Put(dec)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
			}
			if len(decoded) != rawSize {
				return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
			}
		default:
			return nil, errors.New("snapshot: compressed block without compression")
		}
	}

	if len(out) != want {
		return nil, fmt.Errorf("%w: payload holds %d bytes, want %d", ErrCorrupt, len(out), want)
	}
	return out, nil
}
