// Package log wires the package-wide logger. It never receives secret
// material: the signing scalar, the derived nonce, and the raw ECDSA
// signature bytes must not be passed to any of its methods.
package log

import logging "github.com/ipfs/go-log"

// Logger is shared across every package in this module, matching the
// single-logger-per-binary convention this corpus uses (`common.Logger`).
var Logger = logging.Logger("loopring-sign")

// SetLevel adjusts the verbosity of Logger at runtime. level accepts the
// same strings as github.com/ipfs/go-log ("debug", "info", "warn", "error").
func SetLevel(level string) error {
	return logging.SetLogLevel("loopring-sign", level)
}
