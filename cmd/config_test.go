package cmd

import "testing"

func TestConfig(t *testing.T) {
	t.Run("list shows defaults", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config")
		env.contains(out, "audit.enabled: true")
		env.contains(out, "stats.format: fasta")
		env.contains(out, "limits.max_path: 1024")
	})

	t.Run("get single key after set", func(t *testing.T) {
		env := newTestEnv(t)

		env.run("config", "audit.enabled", "false")

		out := env.run("config", "audit.enabled")
		env.equals(out, "false")
	})

	t.Run("local scope", func(t *testing.T) {
		env := newTestEnv(t)

		env.run("config", "--local", "limits.max_path", "512")

		out := env.run("config", "limits.max_path")
		env.equals(out, "512")
	})
}

func TestConfig_Errors(t *testing.T) {
	t.Run("invalid key", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.runErr("config", "invalid.key", "value")
		if err == nil {
			t.Error("config(invalid key) = nil, want error")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.runErr("config", "audit.enabled", "maybe")
		if err == nil {
			t.Error("config(invalid value) = nil, want error")
		}
	})
}

func TestConfig_MaxPathEnforced(t *testing.T) {
	env := newTestEnv(t)
	env.run("config", "--local", "limits.max_path", "8")

	out, err := env.runErr("check", "a-path-well-over-eight-bytes.fasta")
	if err == nil {
		t.Fatal("check(over limit) = nil, want error")
	}
	env.contains(out, "path too long")
}
