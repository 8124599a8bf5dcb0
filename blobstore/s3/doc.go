// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "render-cache",
//	    s3.WithPrefix("photon-maps/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	err = tree.Save(ctx, store, "caustics.pkd")
//
// # Features
//
//   - Range reads for partial fetches
//   - Multipart uploads for large snapshots
//   - CRC32C integrity on single-part uploads
//   - Automatic pagination for listing
package s3
