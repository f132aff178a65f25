// predicates.go provides ready-made predicates over Stats.
//
// These cover the structural requirements workflow declarations typically
// express: "at least one sequence", "exactly one sequence", minimum record
// counts and minimum lengths. Parameterised predicates are builders
// returning a closure so they can be registered by name.

package seqstats

// HasSequences reports whether the file holds at least one sequence record.
func HasSequences(s Stats) bool { return s.Sequences > 0 }

// SingleSequence reports whether the file holds exactly one sequence record.
func SingleSequence(s Stats) bool { return s.Sequences == 1 }

// NonEmpty reports whether the file holds at least one residue.
func NonEmpty(s Stats) bool { return s.Residues > 0 }

// MinSequences returns a predicate requiring at least n sequence records.
func MinSequences(n int) func(Stats) bool {
	return func(s Stats) bool { return s.Sequences >= n }
}

// MinLength returns a predicate requiring every record to be at least n
// residues long. An empty file never satisfies it.
func MinLength(n int) func(Stats) bool {
	return func(s Stats) bool { return s.Sequences > 0 && s.MinLen >= n }
}
