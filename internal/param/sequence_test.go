package param_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/seqcheck/internal/param"
	"github.com/jpl-au/seqcheck/internal/seqstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingExtractor is a test double recording how often it was invoked.
type countingExtractor struct {
	calls int
	stats seqstats.Stats
	err   error
}

func (c *countingExtractor) extract(_, _ string) (seqstats.Stats, error) {
	c.calls++
	return c.stats, c.err
}

func TestSequenceFile_Validate(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "reads.fasta")

	t.Run("path and predicate accepted", func(t *testing.T) {
		ext := &countingExtractor{stats: seqstats.Stats{Sequences: 3}}
		p := param.NewSequenceFile(seqstats.HasSequences).WithExtractor(ext.extract)

		got, err := p.Validate(file)
		require.NoError(t, err)
		assert.Equal(t, file, got)
		assert.Equal(t, 1, ext.calls, "predicate path decodes exactly once")

		stored, ok := p.Path()
		assert.True(t, ok)
		assert.Equal(t, got, stored)
	})

	t.Run("extractor never called when path check fails", func(t *testing.T) {
		ext := &countingExtractor{stats: seqstats.Stats{Sequences: 3}}
		p := param.NewSequenceFile(seqstats.HasSequences).WithExtractor(ext.extract)

		_, err := p.Validate(filepath.Join(dir, "missing.fasta"))
		require.Error(t, err)
		assert.ErrorIs(t, err, param.ErrNotRegularFile)
		assert.Zero(t, ext.calls, "content must not be inspected for a rejected path")
	})

	t.Run("extractor never called for symlink", func(t *testing.T) {
		link := filepath.Join(dir, "link.fasta")
		require.NoError(t, os.Symlink(file, link))

		ext := &countingExtractor{stats: seqstats.Stats{Sequences: 3}}
		p := param.NewSequenceFile(seqstats.HasSequences).WithExtractor(ext.extract)

		_, err := p.Validate(link)
		assert.ErrorIs(t, err, param.ErrSymlink)
		assert.Zero(t, ext.calls)
	})

	t.Run("predicate failure discards resolved path", func(t *testing.T) {
		ext := &countingExtractor{stats: seqstats.Stats{}} // no sequences
		p := param.NewSequenceFile(seqstats.HasSequences).WithExtractor(ext.extract)

		_, err := p.Validate(file)
		require.Error(t, err)
		assert.ErrorIs(t, err, param.ErrPredicate)
		assert.Contains(t, err.Error(), file)

		_, ok := p.Path()
		assert.False(t, ok, "path-check result is not exposed after predicate failure")
	})

	t.Run("decode failure", func(t *testing.T) {
		ext := &countingExtractor{err: errors.New("truncated record")}
		p := param.NewSequenceFile(seqstats.HasSequences).WithExtractor(ext.extract)

		_, err := p.Validate(file)
		require.Error(t, err)
		assert.ErrorIs(t, err, param.ErrUnreadable)
		assert.Contains(t, err.Error(), "truncated record")
	})

	t.Run("predicate runs at most once per call", func(t *testing.T) {
		calls := 0
		pred := func(seqstats.Stats) bool {
			calls++
			return true
		}
		ext := &countingExtractor{stats: seqstats.Stats{Sequences: 1}}
		p := param.NewSequenceFile(pred).WithExtractor(ext.extract)

		_, err := p.Validate(file)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestSequenceFile_Stats(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "reads.fasta")

	ext := &countingExtractor{stats: seqstats.Stats{Sequences: 2, Residues: 10}}
	p := param.NewSequenceFile(seqstats.HasSequences).WithExtractor(ext.extract)

	t.Run("before validation", func(t *testing.T) {
		_, err := p.Stats()
		assert.ErrorIs(t, err, param.ErrUnreadable)
	})

	t.Run("after validation re-reads the file", func(t *testing.T) {
		_, err := p.Validate(file)
		require.NoError(t, err)
		calls := ext.calls

		st, err := p.Stats()
		require.NoError(t, err)
		assert.Equal(t, 2, st.Sequences)
		assert.Equal(t, calls+1, ext.calls, "no caching of decoded content")
	})
}
