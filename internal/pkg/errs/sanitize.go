package errs

import "strings"

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// sanitize keeps a rendered value on a single line so it cannot break log records.
func sanitize(s string) string {
	return lineBreaks.Replace(s)
}
