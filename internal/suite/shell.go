package suite

import "strings"

// ShellLine renders the line handed to sh -c. Command is passed through
// verbatim so it may hold shell syntax; each argument is quoted so the shell
// sees exactly one word per argument.
func (d Descriptor) ShellLine() string {
	return d.shellLine(quotePOSIX)
}

// PowerShellLine is ShellLine for PowerShell's -Command.
func (d Descriptor) PowerShellLine() string {
	return d.shellLine(quotePowerShell)
}

func (d Descriptor) shellLine(quote func(string) string) string {
	if len(d.Args) == 0 {
		return d.Command
	}
	parts := make([]string, 0, len(d.Args)+1)
	parts = append(parts, d.Command)
	for _, arg := range d.Args {
		parts = append(parts, quote(arg))
	}
	return strings.Join(parts, " ")
}

// shellSafe reports whether s needs no quoting in either shell.
func shellSafe(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("_-./:=+,", r):
		default:
			return false
		}
	}
	return true
}

func quotePOSIX(s string) string {
	if shellSafe(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

func quotePowerShell(s string) string {
	if shellSafe(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
