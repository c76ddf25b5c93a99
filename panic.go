package vgacons

import (
	"fmt"

	"pkt.systems/pslog"
)

// ReportPanic formats a fault description through the console print path
// and logs it, as a last resort before the caller halts. The diagnostic
// log happens first so the fault survives even if the display is gone.
//
// Known limitation: ReportPanic must not run while the calling goroutine
// already holds the console lock (for example a panic raised inside a
// WithWriter callback); the print path re-acquires the lock and would
// deadlock. Callers in that position should halt without display output.
func ReportPanic(logger pslog.Logger, v any) {
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	logger.Error("panic", "err", fmt.Sprint(v))
	Println("panic: %v", v)
}
