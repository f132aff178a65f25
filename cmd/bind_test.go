package cmd

import (
	"path/filepath"
	"testing"
)

const testDefinition = `
name: assembly
params:
  - name: reads
    kind: sequence
    predicate: has-sequences
  - name: out
    kind: file
    existence: absent
`

func TestBind(t *testing.T) {
	t.Run("all parameters resolve", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("workflow.yaml", testDefinition)
		env.write("data/reads.fasta", ">r1\nACGTACGT\n")

		out := env.run("bind", "workflow.yaml",
			"--set", "reads=data/reads.fasta",
			"--set", "out=results/assembly.fasta")

		env.contains(out, "reads: "+filepath.Join(env.dir, "data", "reads.fasta"))
		env.contains(out, "out: "+filepath.Join(env.dir, "results", "assembly.fasta"))
	})

	t.Run("missing value aborts", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("workflow.yaml", testDefinition)
		env.write("data/reads.fasta", ">r1\nACGT\n")

		out, err := env.runErr("bind", "workflow.yaml", "--set", "reads=data/reads.fasta")
		if err == nil {
			t.Fatal("bind(missing value) = nil, want error")
		}
		env.contains(out, "missing parameter value")
		env.contains(out, "out")
	})

	t.Run("rejection names the parameter", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("workflow.yaml", testDefinition)
		env.write("data/reads.fasta", ">r1\nACGT\n")
		env.write("existing.txt", "x")

		out, err := env.runErr("bind", "workflow.yaml",
			"--set", "reads=data/reads.fasta",
			"--set", "out=existing.txt")
		if err == nil {
			t.Fatal("bind(existing out) = nil, want error")
		}
		env.contains(out, `parameter "out"`)
		env.contains(out, "path must not exist")
	})

	t.Run("unknown set key", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("workflow.yaml", testDefinition)

		out, err := env.runErr("bind", "workflow.yaml",
			"--set", "reads=x", "--set", "out=y", "--set", "extra=z")
		if err == nil {
			t.Fatal("bind(unknown key) = nil, want error")
		}
		env.contains(out, "unknown parameter")
	})

	t.Run("malformed set flag", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("workflow.yaml", testDefinition)

		out, err := env.runErr("bind", "workflow.yaml", "--set", "reads")
		if err == nil {
			t.Fatal("bind(malformed --set) = nil, want error")
		}
		env.contains(out, "expected name=value")
	})

	t.Run("missing definition file", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("bind", "nope.yaml")
		if err == nil {
			t.Fatal("bind(missing definition) = nil, want error")
		}
		env.contains(out, "reading definition")
	})

	t.Run("invalid definition", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("workflow.yaml", "name: broken\nparams:\n  - kind: file\n")

		out, err := env.runErr("bind", "workflow.yaml")
		if err == nil {
			t.Fatal("bind(invalid definition) = nil, want error")
		}
		env.contains(out, "invalid workflow definition")
	})

	t.Run("json output", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("workflow.yaml", testDefinition)
		env.write("data/reads.fasta", ">r1\nACGT\n")

		out := env.run("bind", "-o", "json", "workflow.yaml",
			"--set", "reads=data/reads.fasta",
			"--set", "out=results/assembly.fasta")
		env.contains(out, `"name":"reads"`)
		env.contains(out, `"resolved"`)
	})
}
