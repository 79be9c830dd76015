package util

import (
	"fmt"
	"os"
	"strings"
)

// ShapedbVersion is the version of this build.
var ShapedbVersion = "0.2.0"

// ModePermRW is the umask "-rw-------".
const ModePermRW = 0600

// ModePermRWX is the umask "-rwx------".
const ModePermRWX = 0700

func JoinSchemaTable(schema, table string) string {
	if schema == "" {
		return fmt.Sprintf("\"%s\"", table)
	} else {
		return fmt.Sprintf("\"%s\".\"%s\"", schema, table)
	}
}

func PostgresEncodeString(str string, e bool) string {
	var b strings.Builder
	if e {
		b.WriteRune('E')
	}
	b.WriteRune('\'')
	for _, c := range str {
		switch c {
		case '\\':
			b.WriteString("\\\\")
		case '\'':
			b.WriteString("''")
		case '\b':
			b.WriteString("\\b")
		case '\f':
			b.WriteString("\\f")
		case '\n':
			b.WriteString("\\n")
		case '\r':
			b.WriteString("\\r")
		case '\t':
			b.WriteString("\\t")
		default:
			b.WriteRune(c)
		}
	}
	b.WriteRune('\'')
	return b.String()
}

// FileExists returns true if f is an existing file or directory.
func FileExists(f string) (bool, error) {
	_, err := os.Stat(f)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
