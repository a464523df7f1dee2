// Package utils provides the pure helpers shared by the storage facade:
// object-key normalization, bucket-name sanitization and content-type
// inference from key suffixes.
//
// None of the functions here touch the network or the file system.
package utils
