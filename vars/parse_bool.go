package vars

import "strings"

// ParseBool accepts the on/off spellings used by the command line as well as
// the usual true/false forms. ok is false for anything else.
func ParseBool(str string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "on", "true", "t", "yes", "y", "1":
		return true, true
	case "off", "false", "f", "no", "n", "0":
		return false, true
	}
	return false, false
}
