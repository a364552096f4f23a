// Package storage defines the key-value contract used to persist form
// snapshots and ships the in-process implementation.
//
// A Store saves and loads opaque byte slices by key. MemoryStore keeps them in
// a mutex-guarded map and copies data on the way in and out, so callers can
// reuse their buffers. Default returns a single process-wide MemoryStore,
// which is what a form falls back to when persistence is enabled without an
// explicit backend.
//
// Networked backends live in their own packages (pkg/redis, pkg/pg,
// pkg/mongo, pkg/s3store) and satisfy the same interface. All of them report a
// missing key as ErrNotFound.
package storage
