// Package seqstats decodes sequence files into summary statistics.
//
// Stats is the structural summary consumed by parameter predicates: record
// and residue counts, length extremes, and GC fraction. Decoding goes
// through biogo's FASTA reader. Nothing is cached; every FromFile call
// re-reads and re-decodes the file.
package seqstats

import (
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// FormatFASTA is the format tag for FASTA-encoded sequence files, the only
// format the built-in extractor understands.
const FormatFASTA = "fasta"

// Stats summarises the sequences in a decoded file.
type Stats struct {
	Sequences int     `json:"sequences"` // number of records
	Residues  int     `json:"residues"`  // total residues across records
	MinLen    int     `json:"min_len"`   // shortest record length (0 when empty)
	MaxLen    int     `json:"max_len"`   // longest record length
	GC        float64 `json:"gc"`        // GC fraction over ACGT residues
}

// FromFile decodes the sequence file at path and returns its statistics.
//
// The format tag must be FormatFASTA; anything else is an error. Malformed
// content is an error. A well-formed file with no records yields zero Stats
// and no error.
func FromFile(path, format string) (Stats, error) {
	if format != FormatFASTA {
		return Stats{}, fmt.Errorf("unsupported sequence format %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return Stats{}, err
	}
	defer f.Close()

	r := fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNAgapped))
	sc := seqio.NewScanner(r)

	var st Stats
	var gc, acgt int
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		n := s.Len()

		st.Sequences++
		st.Residues += n
		if st.Sequences == 1 || n < st.MinLen {
			st.MinLen = n
		}
		if n > st.MaxLen {
			st.MaxLen = n
		}

		for _, l := range s.Seq {
			switch l {
			case 'G', 'g', 'C', 'c':
				gc++
				acgt++
			case 'A', 'a', 'T', 't':
				acgt++
			}
		}
	}
	if err := sc.Error(); err != nil {
		return Stats{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	if acgt > 0 {
		st.GC = float64(gc) / float64(acgt)
	}
	return st, nil
}
