// errors.go defines sentinel errors for parameter validation failures.
//
// Separated to centralise error definitions. These errors are used with
// errors.Is() for type-safe error checking. Each error represents a
// distinct validation failure category; detailed messages naming the
// offending path are provided by wrapping these with fmt.Errorf at the
// point of detection.

package param

import "errors"

var (
	// ErrSymlink indicates the resolved path is a symbolic link.
	// Links are rejected unconditionally, regardless of the existence
	// requirement and regardless of what the link target is.
	ErrSymlink = errors.New("symbolic links are not supported")

	// ErrNotRegularFile indicates a MustExist requirement was violated:
	// the path is absent, or present but not a regular file.
	ErrNotRegularFile = errors.New("not an existing regular file")

	// ErrExists indicates a MustNotExist requirement was violated:
	// something (file, directory or otherwise) exists at the path.
	ErrExists = errors.New("path must not exist")

	// ErrUnreadable indicates sequence content could not be decoded for a
	// path that had already passed the existence check.
	ErrUnreadable = errors.New("unreadable sequence content")

	// ErrPredicate indicates decoded sequence content does not satisfy the
	// declared predicate.
	ErrPredicate = errors.New("sequence content does not satisfy predicate")
)
