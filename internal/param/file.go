// file.go implements the path existence policy and the plain file parameter.
//
// Separated from sequence.go to keep the path-level policy independent of
// content checking. Resolve is the single copy of the policy; both parameter
// kinds go through it.

package param

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Resolve validates a raw path string against an existence requirement and
// returns the normalised absolute path.
//
// Validation rules, in order:
//   - raw is resolved to an absolute path; this succeeds whether or not
//     anything exists at the path
//   - the resolved path itself must not be a symbolic link, regardless of
//     req (symlinks in parent components are not walked)
//   - MustExist: the path must name an existing regular file, so
//     directories, FIFOs, sockets and device nodes are all rejected
//   - MustNotExist: nothing may exist at the path
//
// Resolve holds no state; callers retain the returned path. It reads
// filesystem metadata only and never opens file content.
func Resolve(raw string, req Requirement) (string, error) {
	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", raw, err)
	}

	fi, err := os.Lstat(abs)
	switch {
	case err == nil:
		if fi.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("%w: %s", ErrSymlink, abs)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("stat %s: %w", abs, err)
	}

	switch req {
	case MustExist:
		if err != nil || !fi.Mode().IsRegular() {
			return "", fmt.Errorf("%w: %s", ErrNotRegularFile, abs)
		}
	case MustNotExist:
		if err == nil {
			return "", fmt.Errorf("%w: %s", ErrExists, abs)
		}
	}

	return abs, nil
}

// File is a plain path parameter. It is declared with an existence
// requirement and stores the resolved absolute path once validation has
// succeeded. A File is single-owner: callers must not validate the same
// instance concurrently.
type File struct {
	Requirement Requirement

	resolved string
}

// NewFile declares a file parameter with the given existence requirement.
func NewFile(req Requirement) *File {
	return &File{Requirement: req}
}

// Validate resolves and checks raw, storing the resolved absolute path on
// success. Re-validating the same input against the same filesystem state
// yields the same outcome and the same stored path. On failure the stored
// path is left untouched.
func (f *File) Validate(raw string) (string, error) {
	abs, err := Resolve(raw, f.Requirement)
	if err != nil {
		return "", err
	}
	f.resolved = abs
	return abs, nil
}

// Path returns the stored resolved path. ok is false until a Validate call
// has succeeded.
func (f *File) Path() (path string, ok bool) {
	return f.resolved, f.resolved != ""
}
