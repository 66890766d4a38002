package vars

import "strings"

// ParseBool reads the boolean words accepted on the command line. ok is
// false for anything else.
func ParseBool(str string) (value bool, ok bool) {
	switch strings.ToLower(str) {
	case "true", "t", "yes", "y", "on", "1":
		return true, true
	case "false", "f", "no", "n", "off", "0":
		return false, true
	}
	return false, false
}
