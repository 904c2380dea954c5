//go:build !debug

// Package debug provides tracing which is only compiled in with the debug
// build tag:
//
//	go build -tags debug ./cmd/jsoncsv
package debug

func Printf(msg string, args ...any) {}
