// Package param implements validated file-path parameters for workflow
// definitions.
//
// A path parameter is declared once with an existence requirement and then
// validated against a raw user-supplied string. Validation resolves the raw
// string to an absolute path, rejects symbolic links outright, and checks
// the declared existence requirement. On success the resolved absolute path
// is retained; on failure nothing is stored.
//
// Two parameter kinds exist:
//
// File is the plain path parameter. Its value must name an existing regular
// file (MustExist) or name a path with nothing at it (MustNotExist).
// Directories and symbolic links are never accepted.
//
// SequenceFile additionally requires that the file's decoded content satisfy
// a predicate over sequence statistics. It composes a File with an injected
// stats extractor: the path check always runs first, and content is never
// read for a path that fails it.
//
// # Error Handling
//
// All validation failures wrap one of the sentinel errors defined in
// errors.go (ErrSymlink, ErrNotRegularFile, etc.). Use errors.Is() for
// type-safe error checking:
//
//	if errors.Is(err, param.ErrSymlink) {
//	    // offending path is a symbolic link
//	}
//
// Failures are terminal for the call: no retries, no fallback paths, no
// partial-success state.
package param
