package applog

import (
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// formatLine renders one log line:
//
//	dd.MM.yyyy hh:mm:ss [<Level>]: <message>
//
// followed by " [<file> (<line>)]", " [<file>]" or " (<line>)" when the
// source location is present, and a trailing newline. An empty file name
// or negative line means that part is absent.
func formatLine(ts time.Time, level Level, message, sourceFile string, sourceLine int) string {
	buf := make([]byte, 0, 40+len(message)+len(sourceFile))
	buf = ts.AppendFormat(buf, lineTimestampFormat)
	buf = append(buf, " ["...)
	buf = append(buf, level.String()...)
	buf = append(buf, "]: "...)
	buf = append(buf, sanitizeText(message)...)

	hasFile := sourceFile != ""
	hasLine := sourceLine >= 0
	switch {
	case hasFile && hasLine:
		buf = append(buf, " ["...)
		buf = append(buf, sanitizeText(sourceFile)...)
		buf = append(buf, " ("...)
		buf = strconv.AppendInt(buf, int64(sourceLine), 10)
		buf = append(buf, ")]"...)
	case hasFile:
		buf = append(buf, " ["...)
		buf = append(buf, sanitizeText(sourceFile)...)
		buf = append(buf, ']')
	case hasLine:
		buf = append(buf, " ("...)
		buf = strconv.AppendInt(buf, int64(sourceLine), 10)
		buf = append(buf, ')')
	}

	buf = append(buf, '\n')
	return string(buf)
}

// dumper renders arbitrary values for DebugDump and DevDump.
// Configured for log-friendly, compact output.
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true, // Cleaner for logs
	DisableCapacities:       true, // Less noise
	SortKeys:                true, // Consistent map output
}

// dumpValue renders a value on a single line so it can be embedded in a
// log message. Spew's multi-line output is collapsed to single spaces.
func dumpValue(v any) string {
	return strings.Join(strings.Fields(dumper.Sdump(v)), " ")
}
