// Package hash provides the CRC32-Castagnoli checksum used to protect
// photon map snapshots.
//
// Go's hash/crc32 uses SSE4.2 or the ARM CRC extension when available, so
// checksumming a snapshot costs far less than compressing it.
//
//	sum := hash.CRC32C(header)
//	sum = hash.UpdateCRC32C(sum, payload)
package hash
