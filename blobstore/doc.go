// Package blobstore provides the storage abstraction for photon map
// snapshots.
//
// A snapshot is written once with Put and read back with Open. Implementations
// must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests and short-lived renders
//   - LocalStore: local directory, atomic rename on write, mmap on read
//   - s3.Store: Amazon S3 with multipart uploads and range reads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
