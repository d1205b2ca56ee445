package alder

import (
	"fmt"
	"os"
)

// globalDebug enables extra consistency warnings on stderr. Plain bool, no
// atomic — alder is single-threaded.
var globalDebug bool

// SetDebug toggles debug warnings (misuse of deleted entities, clone of
// widget entities). Off by default.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[alder] warning: "+format+"\n", args...)
}

func describeEntity(e *Entity) string {
	state := "live"
	if e.deleted {
		state = "deleted"
	}
	return fmt.Sprintf("%s entity %q (ID %d, kind %d)", state, e.Name, e.ID, e.Kind)
}
