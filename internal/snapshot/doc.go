// Package snapshot implements the on-disk format for photon maps.
//
// Layout (little-endian):
//
//	+--------------------------+
//	| Header (48 bytes)        |
//	+--------------------------+
//	| Meta (codec encoded)     |
//	+--------------------------+
//	| Payload                  |
//	+--------------------------+
//
// The payload holds the live points as five float64 values each
// (x, y, z, phi, theta). When compression is enabled it is split into blocks
// of at most BlockSize bytes, each prefixed by an 8-byte block header. The
// header checksum is a CRC32C over meta and payload.
//
// Only live points are stored. Tombstones and tree shape are not part of a
// snapshot; readers rebuild a balanced tree from the points.
package snapshot
