// Package resource governs the resources photonkd spends outside the tree
// itself.
//
//	┌──────────────────────────────────────────────────────────┐
//	│                       Controller                          │
//	├──────────────────┬──────────────────┬────────────────────┤
//	│  Memory          │  Build workers   │  Snapshot I/O      │
//	│  (semaphore)     │  (semaphore)     │  (token bucket)    │
//	├──────────────────┼──────────────────┼────────────────────┤
//	│  AcquireMemory   │  TryAcquire-     │  AcquireIO         │
//	│  ReleaseMemory   │  Background      │                    │
//	│  MemoryUsage     │  ReleaseBack-    │                    │
//	│                  │  ground          │                    │
//	└──────────────────┴──────────────────┴────────────────────┘
//
// Memory reservations cover decoded snapshot buffers during Load. Worker
// slots bound how many goroutines a parallel bulk build forks. The I/O limiter
// throttles snapshot uploads and downloads so a checkpoint does not starve a
// renderer sharing the link.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:     1 << 30,
//	    MaxBackgroundWorkers: 4,
//	    IOLimitBytesPerSec:   64 << 20,
//	})
package resource
