package mayo

import (
	"fmt"
	"os"
)

// Tracing is enabled by MAYO_TRACE=1 and reports retry decisions and system
// ranks on stderr. The hook must never receive secret-derived values.
var traceOn = os.Getenv("MAYO_TRACE") == "1"

func tracef(f string, a ...any) {
	if traceOn {
		fmt.Fprintf(os.Stderr, f, a...)
	}
}
