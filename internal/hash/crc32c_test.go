package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC32C(t *testing.T) {
	// Check value from RFC 3720, B.4: 32 bytes of zeros.
	assert.Equal(t, uint32(0x8a9136aa), CRC32C(make([]byte, 32)))

	data := []byte("photon map snapshot")
	h := NewCRC32C()
	_, _ = h.Write(data[:6])
	_, _ = h.Write(data[6:])
	assert.Equal(t, CRC32C(data), h.Sum32())
	assert.Equal(t, CRC32C(data), UpdateCRC32C(CRC32C(data[:6]), data[6:]))
}
