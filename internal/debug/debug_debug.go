//go:build debug

package debug

import (
	"fmt"
	"log"
	"os"
)

var logger = log.New(os.Stderr, "jsoncsv debug: ", log.Lmicroseconds|log.Lshortfile)

// Printf logs to stderr with the caller's file and line.
func Printf(msg string, args ...any) {
	_ = logger.Output(2, fmt.Sprintf(msg, args...))
}
