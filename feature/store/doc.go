// Package store implements the object-store facade.
//
// Service turns high-level intents into calls against the storage clients:
// create a public bucket (optionally as a web site), upload files, strings
// and streams, download, list by prefix, delete objects, and empty or delete
// buckets. Around those calls it normalizes keys, infers content types and
// aligns local file timestamps with the service after an upload.
//
// # Keys
//
// Leading slashes are stripped from keys before writing, because S3 website
// hosting adds its own and browsers cannot fetch keys that already carry one.
// Keys reported back from a listing whose prefix had leading slashes are
// relativized (see utils.Relativize).
//
// # Errors
//
// Failures wrap the sentinel errors of this package (ErrTransferFailed,
// ErrObjectNotFound, ErrPartialDelete, ...) and are meant to be checked with
// errors.Is. Upload and download failures are logged where they happen and
// come back with a zero result.
//
// # Components
//
//   - Service: the facade itself.
//   - Handler: HTTP endpoints under /buckets.
//   - Feature: registers the handler with the loader.
package store
