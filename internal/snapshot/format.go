package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/photonkd/codec"
	"github.com/hupe1980/photonkd/internal/kdtree"
)

const (
	// Magic identifies a photon map snapshot.
	Magic = "PKD1"
	// Version is the current format version.
	Version uint16 = 1
	// HeaderSize is the fixed header length in bytes.
	HeaderSize = 48
	// PointSize is the encoded size of one point.
	PointSize = 5 * 8
)

var (
	// ErrCorrupt is the base error for malformed snapshots.
	ErrCorrupt = errors.New("snapshot: corrupt data")
	// ErrInvalidMagic is returned when the magic bytes do not match.
	ErrInvalidMagic = fmt.Errorf("%w: invalid magic", ErrCorrupt)
	// ErrChecksumMismatch is returned when the CRC32C does not match.
	ErrChecksumMismatch = fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	// ErrUnsupportedVersion is returned for snapshots from a newer writer.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")
)

// Header is the fixed-size snapshot header.
type Header struct {
	Version     uint16
	Compression Compression
	Codec       string
	MetaLen     uint32
	Count       uint64
	PayloadLen  uint64
	Checksum    uint32
}

// Meta describes how the tree was configured when it was saved.
type Meta struct {
	Alpha      float64            `json:"alpha"`
	Split      kdtree.SplitPolicy `json:"split"`
	Accounting kdtree.Accounting  `json:"accounting"`
	CreatedAt  time.Time          `json:"created_at"`
}

// Size returns the total snapshot size described by the header.
func (h Header) Size() int64 {
	return HeaderSize + int64(h.MetaLen) + int64(h.PayloadLen)
}

func (h Header) encode(dst []byte) {
	copy(dst[0:4], Magic)
	binary.LittleEndian.PutUint16(dst[4:], h.Version)
	dst[6] = byte(h.Compression)
	dst[7] = 0
	clear(dst[8:24])
	copy(dst[8:24], h.Codec)
	binary.LittleEndian.PutUint32(dst[24:], h.MetaLen)
	binary.LittleEndian.PutUint64(dst[28:], h.Count)
	binary.LittleEndian.PutUint64(dst[36:], h.PayloadLen)
	binary.LittleEndian.PutUint32(dst[44:], h.Checksum)
}

// ReadHeader parses and sanity-checks the fixed header.
func ReadHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorrupt, len(data))
	}
	if string(data[0:4]) != Magic {
		return Header{}, ErrInvalidMagic
	}

	h := Header{
		Version:     binary.LittleEndian.Uint16(data[4:]),
		Compression: Compression(data[6]),
		MetaLen:     binary.LittleEndian.Uint32(data[24:]),
		Count:       binary.LittleEndian.Uint64(data[28:]),
		PayloadLen:  binary.LittleEndian.Uint64(data[36:]),
		Checksum:    binary.LittleEndian.Uint32(data[44:]),
	}

	name := data[8 : 8+codec.MaxNameLen]
	for i, b := range name {
		if b == 0 {
			name = name[:i]
			break
		}
	}
	h.Codec = string(name)

	if h.Version == 0 || h.Version > Version {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if !h.Compression.valid() {
		return Header{}, fmt.Errorf("%w: unknown compression %d", ErrCorrupt, h.Compression)
	}
	if h.Compression == CompressionNone && h.PayloadLen != h.Count*PointSize {
		return Header{}, fmt.Errorf("%w: payload length %d does not hold %d points", ErrCorrupt, h.PayloadLen, h.Count)
	}
	return h, nil
}
