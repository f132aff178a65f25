package param

// Requirement declares the filesystem state a path parameter's value must
// be in at validation time. It is supplied once at declaration and is
// immutable afterwards.
type Requirement int

const (
	// MustExist requires the path to name an existing regular file.
	MustExist Requirement = iota
	// MustNotExist requires that nothing exists at the path.
	MustNotExist
)

// String returns the requirement name for error messages and logs.
func (r Requirement) String() string {
	switch r {
	case MustExist:
		return "must-exist"
	case MustNotExist:
		return "must-not-exist"
	default:
		return "unknown"
	}
}
