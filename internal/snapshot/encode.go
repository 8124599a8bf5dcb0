package snapshot

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/photonkd/codec"
	"github.com/hupe1980/photonkd/internal/hash"
	"github.com/hupe1980/photonkd/internal/kdtree"
)

// Options controls how a snapshot is written.
type Options struct {
	// Codec encodes Meta. Defaults to codec.Default.
	Codec codec.Codec
	// Compression selects payload compression.
	Compression Compression
}

// Encode serializes meta and points into a snapshot.
func Encode(meta Meta, points []kdtree.Point, opts Options) ([]byte, error) {
	c := opts.Codec
	if c == nil {
		c = codec.Default
	}
	if len(c.Name()) == 0 || len(c.Name()) > codec.MaxNameLen {
		return nil, fmt.Errorf("snapshot: codec name %q must be 1 to %d bytes", c.Name(), codec.MaxNameLen)
	}
	if !opts.Compression.valid() {
		return nil, fmt.Errorf("snapshot: unknown compression %d", opts.Compression)
	}

	metaBytes, err := c.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode meta: %w", err)
	}

	raw := make([]byte, len(points)*PointSize)
	for i, p := range points {
		putPoint(raw[i*PointSize:], p)
	}

	buf := make([]byte, HeaderSize, HeaderSize+len(metaBytes)+len(raw))
	buf = append(buf, metaBytes...)
	if opts.Compression == CompressionNone {
		buf = append(buf, raw...)
	} else {
		buf, err = compressBlocks(buf, raw, opts.Compression)
		if err != nil {
			return nil, err
		}
	}

	h := Header{
		Version:     Version,
		Compression: opts.Compression,
		Codec:       c.Name(),
		MetaLen:     uint32(len(metaBytes)),
		Count:       uint64(len(points)),
		PayloadLen:  uint64(len(buf) - HeaderSize - len(metaBytes)),
		Checksum:    hash.CRC32C(buf[HeaderSize:]),
	}
	h.encode(buf[:HeaderSize])
	return buf, nil
}

// Decode parses a snapshot. The codec recorded in the header is used for
// Meta regardless of the writer's configuration.
func Decode(data []byte) (Meta, []kdtree.Point, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return Meta{}, nil, err
	}
	if h.PayloadLen > uint64(len(data)) || int64(len(data)) < h.Size() {
		return Meta{}, nil, fmt.Errorf("%w: %d bytes, header describes %d", ErrCorrupt, len(data), h.Size())
	}
	body := data[HeaderSize:h.Size()]
	if hash.CRC32C(body) != h.Checksum {
		return Meta{}, nil, ErrChecksumMismatch
	}

	c, err := codec.Lookup(h.Codec)
	if err != nil {
		return Meta{}, nil, err
	}

	var meta Meta
	if err := c.Unmarshal(body[:h.MetaLen], &meta); err != nil {
		return Meta{}, nil, fmt.Errorf("%w: meta: %w", ErrCorrupt, err)
	}

	if h.Count > uint64(math.MaxInt/PointSize) {
		return Meta{}, nil, fmt.Errorf("%w: point count %d too large", ErrCorrupt, h.Count)
	}
	want := int(h.Count) * PointSize

	raw := body[h.MetaLen:]
	if h.Compression != CompressionNone {
		raw, err = decompressBlocks(raw, h.Compression, want)
		if err != nil {
			return Meta{}, nil, err
		}
	}

	points := make([]kdtree.Point, h.Count)
	for i := range points {
		points[i] = getPoint(raw[i*PointSize:])
	}
	return meta, points, nil
}

func putPoint(dst []byte, p kdtree.Point) {
	binary.LittleEndian.PutUint64(dst[0:], math.Float64bits(p.X))
	binary.LittleEndian.PutUint64(dst[8:], math.Float64bits(p.Y))
	binary.LittleEndian.PutUint64(dst[16:], math.Float64bits(p.Z))
	binary.LittleEndian.PutUint64(dst[24:], math.Float64bits(p.Phi))
	binary.LittleEndian.PutUint64(dst[32:], math.Float64bits(p.Theta))
}

func getPoint(src []byte) kdtree.Point {
	return kdtree.Point{
		X:     math.Float64frombits(binary.LittleEndian.Uint64(src[0:])),
		Y:     math.Float64frombits(binary.LittleEndian.Uint64(src[8:])),
		Z:     math.Float64frombits(binary.LittleEndian.Uint64(src[16:])),
		Phi:   math.Float64frombits(binary.LittleEndian.Uint64(src[24:])),
		Theta: math.Float64frombits(binary.LittleEndian.Uint64(src[32:])),
	}
}
