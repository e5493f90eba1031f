package helper

import (
	"os"
	"strings"
)

// ResolveEnv dereferences values of the form "ENV:NAME" into the named
// environment variable, so credentials can be kept out of the process list.
func ResolveEnv(in string) string {
	if strings.HasPrefix(in, "ENV:") {
		return os.Getenv(in[4:])
	}
	return in
}
