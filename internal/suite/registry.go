package suite

import (
	"fmt"
	"path/filepath"

	"github.com/mattn/go-shellwords"

	"github.com/AndreyAkinshin/suiterun/internal/config"
	"github.com/AndreyAkinshin/suiterun/internal/errors"
)

// Registry is the ordered list of suites for one run. Order is declaration
// order and is the order the coordinator executes them in.
type Registry struct {
	suites []Descriptor
}

// NewRegistry validates the descriptors and returns a registry holding copies.
// Returns an error if the list is empty, a name is empty or repeated, or a
// command is missing.
func NewRegistry(descriptors []Descriptor) (*Registry, error) {
	if len(descriptors) == 0 {
		return nil, errors.Configf("suite registry is empty")
	}

	seen := make(map[string]bool, len(descriptors))
	r := &Registry{suites: make([]Descriptor, 0, len(descriptors))}
	for i, d := range descriptors {
		if d.Name == "" {
			return nil, errors.Configf("suite #%d has no name", i+1)
		}
		if seen[d.Name] {
			return nil, errors.SuiteError(d.Name, "duplicate suite name")
		}
		seen[d.Name] = true
		if d.Command == "" {
			return nil, errors.SuiteError(d.Name, "command is required")
		}
		r.suites = append(r.suites, d.clone())
	}
	return r, nil
}

// FromConfig builds the registry from a loaded suite file.
// rootDir anchors relative working directories; env holds entries from the
// project's env file and is merged under each suite's own env.
func FromConfig(cfg *config.Config, rootDir string, env map[string]string) (*Registry, error) {
	vars := builtinVars(cfg, rootDir)

	descriptors := make([]Descriptor, 0, len(cfg.Suites))
	for _, sc := range cfg.Suites {
		d, err := descriptorFromConfig(sc, rootDir, vars, env)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, d)
	}
	return NewRegistry(descriptors)
}

func descriptorFromConfig(sc config.SuiteConfig, rootDir string, vars, env map[string]string) (Descriptor, error) {
	timeout, err := config.ParseTimeout(sc.Timeout)
	if err != nil {
		return Descriptor{}, errors.SuiteError(sc.Name, err.Error())
	}

	d := Descriptor{
		Name:        sc.Name,
		Description: sc.Description,
		Shell:       sc.Shell,
		Timeout:     timeout,
		WorkDir:     resolveWorkDir(rootDir, interpolate(sc.Cwd, vars)),
	}

	switch {
	case sc.Run != "" && sc.Shell:
		d.Command = interpolate(sc.Run, vars)
	case sc.Run != "":
		words, err := shellwords.Parse(interpolate(sc.Run, vars))
		if err != nil {
			return Descriptor{}, &errors.SuiterunError{
				Kind:    errors.KindValidation,
				Suite:   sc.Name,
				Message: "cannot split run string",
				Cause:   err,
			}
		}
		if len(words) == 0 {
			return Descriptor{}, errors.SuiteError(sc.Name, "run string is empty")
		}
		d.Command, d.Args = words[0], words[1:]
	default:
		d.Command = interpolate(sc.Command, vars)
		d.Args = make([]string, len(sc.Args))
		for i, a := range sc.Args {
			d.Args[i] = interpolate(a, vars)
		}
	}

	merged := make(map[string]string, len(env)+len(sc.Env))
	for k, v := range env {
		merged[k] = v
	}
	for k, v := range sc.Env {
		merged[k] = interpolate(v, vars)
	}
	d.Env = merged

	return d, nil
}

// resolveWorkDir anchors a configured cwd at the project root.
func resolveWorkDir(rootDir, cwd string) string {
	if cwd == "" {
		return rootDir
	}
	if filepath.IsAbs(cwd) {
		return cwd
	}
	return filepath.Join(rootDir, cwd)
}

// All returns copies of every descriptor in execution order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.suites))
	for i, d := range r.suites {
		out[i] = d.clone()
	}
	return out
}

// Len returns the number of suites.
func (r *Registry) Len() int {
	return len(r.suites)
}

// Names returns the suite names in execution order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.suites))
	for i, d := range r.suites {
		names[i] = d.Name
	}
	return names
}

// Get retrieves a suite by name.
func (r *Registry) Get(name string) (Descriptor, bool) {
	for _, d := range r.suites {
		if d.Name == name {
			return d.clone(), true
		}
	}
	return Descriptor{}, false
}

func (r *Registry) String() string {
	return fmt.Sprintf("Registry(%d suites)", len(r.suites))
}
