// sequence.go implements the content-gated sequence file parameter.
//
// Separated from file.go because the content gate is a layer, not a
// subtype: a SequenceFile holds a File and delegates the path check to it
// before any content is read. That keeps the two-stage contract (path check
// always precedes content check) explicit and independently testable.

package param

import (
	"fmt"

	"github.com/jpl-au/seqcheck/internal/seqstats"
)

// StatsFunc decodes the file at path into sequence statistics. The format
// tag selects the decoder ("fasta"). Implementations may fail on malformed
// content; such failures surface as ErrUnreadable.
type StatsFunc func(path, format string) (seqstats.Stats, error)

// Predicate is an acceptance test over decoded sequence statistics. It must
// be pure: no side effects, same answer for the same stats.
type Predicate func(seqstats.Stats) bool

// SequenceFile is a path parameter whose value must be a decodable sequence
// file satisfying a predicate. A sequence file that does not exist cannot
// satisfy any predicate, so the underlying requirement is fixed to
// MustExist.
type SequenceFile struct {
	file      File
	predicate Predicate
	extract   StatsFunc
	format    string
}

// NewSequenceFile declares a sequence file parameter gated by pred. The
// built-in FASTA extractor is used unless replaced with WithExtractor.
func NewSequenceFile(pred Predicate) *SequenceFile {
	return &SequenceFile{
		file:      File{Requirement: MustExist},
		predicate: pred,
		extract:   seqstats.FromFile,
		format:    seqstats.FormatFASTA,
	}
}

// WithExtractor replaces the stats extractor and returns the parameter.
// Used by callers that decode through something other than the built-in
// FASTA reader, and by tests.
func (s *SequenceFile) WithExtractor(fn StatsFunc) *SequenceFile {
	s.extract = fn
	return s
}

// WithFormat sets the format tag passed to the extractor.
func (s *SequenceFile) WithFormat(format string) *SequenceFile {
	s.format = format
	return s
}

// Validate runs the path check, then decodes content and applies the
// predicate. The extractor is never invoked for a path that fails the path
// check, and the predicate runs at most once per call. The returned path is
// exactly what the path check produced; content inspection never alters it.
//
// Content is re-read and re-decoded on every call: given the same file
// content and the same predicate the outcome is stable, but nothing is
// cached here.
func (s *SequenceFile) Validate(raw string) (string, error) {
	abs, err := Resolve(raw, MustExist)
	if err != nil {
		return "", err
	}

	stats, err := s.extract(abs, s.format)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnreadable, abs, err)
	}

	if !s.predicate(stats) {
		return "", fmt.Errorf("%w: %s", ErrPredicate, abs)
	}

	// Store only after every stage has passed: a predicate failure leaves
	// no resolved path behind.
	s.file.resolved = abs
	return abs, nil
}

// Path returns the stored resolved path. ok is false until a Validate call
// has succeeded.
func (s *SequenceFile) Path() (path string, ok bool) {
	return s.file.Path()
}

// Stats decodes and returns the statistics for the validated file. It
// fails if the parameter has not been validated yet. Each call re-reads
// the file.
func (s *SequenceFile) Stats() (seqstats.Stats, error) {
	abs, ok := s.file.Path()
	if !ok {
		return seqstats.Stats{}, fmt.Errorf("%w: parameter not validated", ErrUnreadable)
	}
	return s.extract(abs, s.format)
}
