// Package writers picks the serializer for a result set by format name.
//
// Formats register themselves in init(); callers go through Write so an
// unknown format is an error rather than a silent no-op.
package writers
