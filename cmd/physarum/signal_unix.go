//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals are the signals that stop a headless run.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
