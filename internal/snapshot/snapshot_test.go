package snapshot

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/hupe1980/photonkd/codec"
	"github.com/hupe1980/photonkd/internal/kdtree"
	"github.com/hupe1980/photonkd/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMeta() Meta {
	return Meta{
		Alpha:      0.6,
		Split:      kdtree.SplitLowerMedian,
		Accounting: kdtree.AccountingExact,
		CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(7)
	points := rng.UniformPoints(50_000, -10, 10)

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZstd} {
		for _, cd := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
			t.Run(c.String()+"/"+cd.Name(), func(t *testing.T) {
				data, err := Encode(testMeta(), points, Options{Codec: cd, Compression: c})
				require.NoError(t, err)

				h, err := ReadHeader(data)
				require.NoError(t, err)
				assert.Equal(t, Version, h.Version)
				assert.Equal(t, c, h.Compression)
				assert.Equal(t, cd.Name(), h.Codec)
				assert.Equal(t, uint64(len(points)), h.Count)
				assert.Equal(t, int64(len(data)), h.Size())

				meta, got, err := Decode(data)
				require.NoError(t, err)
				assert.True(t, meta.CreatedAt.Equal(testMeta().CreatedAt))
				assert.Equal(t, 0.6, meta.Alpha)
				assert.Equal(t, kdtree.SplitLowerMedian, meta.Split)
				if diff := cmp.Diff(points, got); diff != "" {
					t.Errorf("points mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestCompressionShrinksRegularData(t *testing.T) {
	// A photon grid on a plane compresses well.
	var points []kdtree.Point
	for i := 0; i < 200; i++ {
		for j := 0; j < 200; j++ {
			points = append(points, kdtree.Point{X: float64(i), Y: 0, Z: float64(j)})
		}
	}

	raw, err := Encode(testMeta(), points, Options{})
	require.NoError(t, err)

	for _, c := range []Compression{CompressionLZ4, CompressionZstd} {
		data, err := Encode(testMeta(), points, Options{Compression: c})
		require.NoError(t, err)
		assert.Less(t, len(data), len(raw)/2, c.String())

		_, got, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, points, got)
	}
}

func TestEmpty(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionZstd} {
		data, err := Encode(testMeta(), nil, Options{Compression: c})
		require.NoError(t, err)
		assert.Len(t, data, int(HeaderSize)+int(binary.LittleEndian.Uint32(data[24:])))

		_, got, err := Decode(data)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestDecode_Corrupt(t *testing.T) {
	rng := testutil.NewRNG(1)
	points := rng.UniformPoints(100, 0, 1)
	good, err := Encode(testMeta(), points, Options{Compression: CompressionLZ4})
	require.NoError(t, err)

	clone := func() []byte { return append([]byte(nil), good...) }

	t.Run("short", func(t *testing.T) {
		_, _, err := Decode(good[:10])
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("magic", func(t *testing.T) {
		data := clone()
		copy(data, "XXXX")
		_, _, err := Decode(data)
		assert.ErrorIs(t, err, ErrInvalidMagic)
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("version", func(t *testing.T) {
		data := clone()
		binary.LittleEndian.PutUint16(data[4:], Version+1)
		_, _, err := Decode(data)
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("compression", func(t *testing.T) {
		data := clone()
		data[6] = 9
		_, _, err := Decode(data)
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("truncated", func(t *testing.T) {
		_, _, err := Decode(good[:len(good)-1])
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("flipped payload bit", func(t *testing.T) {
		data := clone()
		data[len(data)-1] ^= 0x01
		_, _, err := Decode(data)
		assert.ErrorIs(t, err, ErrChecksumMismatch)
	})

	t.Run("unknown codec", func(t *testing.T) {
		data := clone()
		copy(data[8:24], "msgpack\x00\x00\x00\x00\x00\x00\x00\x00\x00")
		_, _, err := Decode(data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "msgpack")
	})

	t.Run("count mismatch", func(t *testing.T) {
		data, err := Encode(testMeta(), points, Options{})
		require.NoError(t, err)
		binary.LittleEndian.PutUint64(data[28:], uint64(len(points)+1))
		_, _, err = Decode(data)
		assert.ErrorIs(t, err, ErrCorrupt)
	})
}

func TestEncode_InvalidOptions(t *testing.T) {
	_, err := Encode(testMeta(), nil, Options{Compression: Compression(7)})
	assert.Error(t, err)

	_, err = Encode(testMeta(), nil, Options{Codec: longName{}})
	assert.Error(t, err)
}

type longName struct{ codec.JSON }

func (longName) Name() string { return "a-codec-name-that-is-too-long" }

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "zstd", CompressionZstd.String())
	assert.Equal(t, "Compression(5)", Compression(5).String())
}
