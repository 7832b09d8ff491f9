package ui

import "github.com/lepinkainen/webpconvert/convert"

// Messages emitted by the conversion pool into the TUI event loop.

// ConversionStartedMsg signals that a worker picked up a file.
type ConversionStartedMsg struct {
	WorkerID int
	Path     string
}

// ConversionDoneMsg carries one finished conversion result and the worker
// that produced it.
type ConversionDoneMsg struct {
	WorkerID int
	Result   convert.ConversionResult
}

// BatchDoneMsg signals that every task in the batch has been processed.
type BatchDoneMsg struct{}
