package suite

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/AndreyAkinshin/suiterun/internal/config"
)

// varPattern matches variable references in the format ${varname}.
var varPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// escapePlaceholder temporarily stands in for escaped references ($${var})
// during interpolation. NUL cannot appear in a decoded config string.
const escapePlaceholder = "\x00ESCAPED\x00"

// builtinVars returns the variables available to every suite. User vars
// cannot override the built-ins.
//
//   - ${root}: project root (absolute)
//   - ${reports_dir}: reports directory (absolute)
func builtinVars(cfg *config.Config, rootDir string) map[string]string {
	vars := make(map[string]string, len(cfg.Vars)+2)
	for k, v := range cfg.Vars {
		vars[k] = v
	}
	vars["root"] = rootDir
	if cfg.Report != nil {
		dir := cfg.Report.Directory
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(rootDir, dir)
		}
		vars["reports_dir"] = dir
	}
	return vars
}

// interpolate replaces ${var} with variable values. Unknown variables are
// kept verbatim so shell-style references survive. $${var} yields a literal
// ${var}.
func interpolate(s string, vars map[string]string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	result := strings.ReplaceAll(s, "$${", escapePlaceholder)

	result = varPattern.ReplaceAllStringFunc(result, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := vars[name]; ok {
			return val
		}
		return match
	})

	return strings.ReplaceAll(result, escapePlaceholder, "${")
}
