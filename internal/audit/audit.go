// Package audit provides centralised audit logging for seqcheck operations.
// Entries are stored in ~/.seqcheck/log/seqcheck-log.db and track every
// validation run across projects.
//
// # Fluent API
//
// Use the fluent builder API to construct and write audit entries:
//
//	audit.Event("cli:check", "validate").
//		Param("reads").
//		Raw(arg).
//		Resolved(abs).
//		Write(err)
//
//	audit.Event("cli:bind", "bind").
//		Detail("workflow", def.Name).
//		Detail("params", len(def.Params)).
//		Write(err)
//
// The source parameter follows the format "cli:{command}". Write derives
// success or failure from the error it is given, so a single call records
// both outcomes.
package audit

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single audit entry.
type Entry struct {
	Source string // e.g., "cli:check", "cli:bind"
	Action string // verb: validate, bind, stats
	Param  string // input: parameter name, if any
	Raw    string // input: raw path value as supplied

	// Output fields - populated after the check passes
	ResolvedPath string // output: normalised absolute path

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether validation accepted the input
	Error   string         // rule violation message if rejected
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs an audit entry using a fluent API.
// Create with [Event], chain methods to set fields, then call
// [Builder.Write] to persist the entry.
type Builder struct {
	entry Entry
}

// Event creates a new audit entry builder for an operation.
//
// The source identifies the originating command ("cli:check", "cli:bind",
// "cli:stats"); the action describes what was performed ("validate",
// "bind", "stats").
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Param sets the parameter name this validation targets. Leave unset for
// operations not tied to a declared parameter (e.g. ad-hoc checks).
func (b *Builder) Param(name string) *Builder {
	b.entry.Param = name
	return b
}

// Raw sets the raw path value as the user supplied it.
func (b *Builder) Raw(raw string) *Builder {
	b.entry.Raw = raw
	return b
}

// Resolved sets the normalised absolute path (output). Set only after the
// check has accepted the input.
func (b *Builder) Resolved(path string) *Builder {
	b.entry.ResolvedPath = path
	return b
}

// Detail adds a key-value pair to the entry's detail map. Use for
// operation-specific data that doesn't fit standard fields: predicate
// names, sequence counts, workflow names. Can be called multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write persists the entry, deriving success/failure from err.
//
// If err is nil the entry is recorded as accepted; otherwise as rejected
// with the error message. This is the standard way to complete an entry
// after a validation:
//
//	abs, err := p.Validate(raw)
//	audit.Event("cli:check", "validate").Raw(raw).Resolved(abs).Write(err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort
// logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db, run: uuid.NewString()}
	return nil
}

// SetProject sets the project identifier for subsequent entries.
// The dir should be the absolute path of the working directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if the logger is not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
