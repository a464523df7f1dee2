// Package journal keeps an optional record of transfers in a SQL database.
//
// Repository implements store.Recorder: once passed to store.NewService via
// store.WithRecorder, every upload, download and delete (successful or not)
// is written to the transfer_records table through GORM. Journal failures
// are logged by the store and never fail the transfer.
//
// # HTTP Endpoints
//
//   - GET /journal?bucket=&limit= : recent transfers, newest first.
package journal
