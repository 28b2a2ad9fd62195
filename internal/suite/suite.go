// Package suite provides the suite descriptor and the ordered registry the
// coordinator runs.
package suite

import (
	"strings"
	"time"
)

// Descriptor declares one suite: an external command treated as an atomic
// unit of work. Descriptors are values; the registry hands out copies, so a
// descriptor cannot change once the run has started.
type Descriptor struct {
	Name        string
	Description string
	Command     string
	Args        []string
	WorkDir     string
	Env         map[string]string

	// Shell runs Command through the platform shell instead of executing it
	// directly. Args are quoted and appended (see ShellLine).
	Shell bool

	// Timeout bounds the suite's wall-clock time. Zero means no limit.
	Timeout time.Duration
}

// CommandLine renders the command and its arguments as one display string.
func (d Descriptor) CommandLine() string {
	if len(d.Args) == 0 {
		return d.Command
	}
	return d.Command + " " + strings.Join(d.Args, " ")
}

// clone returns a deep copy so callers cannot mutate registry state.
func (d Descriptor) clone() Descriptor {
	c := d
	if d.Args != nil {
		c.Args = make([]string, len(d.Args))
		copy(c.Args, d.Args)
	}
	c.Env = copyMapNilIfEmpty(d.Env)
	return c
}

// copyMapNilIfEmpty copies the map, returning nil if the map is nil or empty.
func copyMapNilIfEmpty(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	result := make(map[string]string, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
