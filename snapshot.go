package photonkd

import (
	"context"
	"time"

	"github.com/hupe1980/photonkd/blobstore"
	"github.com/hupe1980/photonkd/internal/snapshot"
)

// Save writes the live photons and the tree configuration to store under
// name. Tombstones and tree shape are not persisted.
func (t *Tree) Save(ctx context.Context, store blobstore.BlobStore, name string) (err error) {
	start := time.Now()
	points := t.Points()
	size := 0
	defer func() {
		t.opts.metricsCollector.RecordSave(size, time.Since(start), err)
		t.opts.logger.LogSave(ctx, name, len(points), size, err)
	}()

	rc := t.opts.resourceController
	reserve := int64(snapshot.HeaderSize + len(points)*snapshot.PointSize)
	if err := rc.AcquireMemory(ctx, reserve); err != nil {
		return &ErrSnapshot{Op: "save", Name: name, cause: translateError(err)}
	}
	defer rc.ReleaseMemory(reserve)

	meta := snapshot.Meta{
		Alpha:      t.cfg.Alpha,
		Split:      t.cfg.Split,
		Accounting: t.cfg.Accounting,
		CreatedAt:  time.Now().UTC(),
	}
	data, err := snapshot.Encode(meta, points, snapshot.Options{
		Codec:       t.opts.codec,
		Compression: t.opts.compression,
	})
	if err != nil {
		return &ErrSnapshot{Op: "save", Name: name, cause: err}
	}
	size = len(data)

	if err := rc.AcquireIO(ctx, size); err != nil {
		return &ErrSnapshot{Op: "save", Name: name, cause: err}
	}
	if err := store.Put(ctx, name, data); err != nil {
		return &ErrSnapshot{Op: "save", Name: name, cause: translateError(err)}
	}
	return nil
}

// Load reads a snapshot written by Save and rebuilds a balanced Tree.
//
// Alpha, split policy and accounting default to the values recorded in the
// snapshot; options passed here override them.
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (t *Tree, err error) {
	o := applyOptions(defaultOptions(), optFns)

	start := time.Now()
	size, count := 0, 0
	defer func() {
		o.metricsCollector.RecordLoad(size, time.Since(start), err)
		o.logger.LogLoad(ctx, name, count, size, err)
	}()

	fail := func(err error) (*Tree, error) {
		return nil, &ErrSnapshot{Op: "load", Name: name, cause: translateError(err)}
	}

	blob, err := store.Open(ctx, name)
	if err != nil {
		return fail(err)
	}
	defer func() { _ = blob.Close() }()

	size = int(blob.Size())
	rc := o.resourceController
	if err := rc.AcquireMemory(ctx, blob.Size()); err != nil {
		return fail(err)
	}
	defer rc.ReleaseMemory(blob.Size())

	if err := rc.AcquireIO(ctx, size); err != nil {
		return fail(err)
	}

	var data []byte
	if m, ok := blob.(blobstore.Mappable); ok {
		data, err = m.Bytes()
	} else {
		data, err = blobstore.ReadAll(ctx, blob)
	}
	if err != nil {
		return fail(err)
	}

	meta, points, err := snapshot.Decode(data)
	if err != nil {
		return fail(err)
	}
	count = len(points)

	base := defaultOptions()
	base.alpha = meta.Alpha
	base.split = meta.Split
	base.accounting = meta.Accounting

	t, err = newTree(applyOptions(base, optFns))
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return t, nil
	}
	if err := t.build(ctx, points); err != nil {
		return nil, err
	}
	return t, nil
}
