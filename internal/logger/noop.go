package logger

import "time"

type nop struct{}

// NewNoOp returns a logger that discards everything.
func NewNoOp() Interface {
	return nop{}
}

func (nop) Debug(string, ...any) {}
func (nop) Info(string, ...any)  {}
func (nop) Warn(string, ...any)  {}
func (nop) Error(string, ...any) {}

func (n nop) With(...any) Interface                { return n }
func (n nop) WithComponent(string) Interface       { return n }
func (n nop) WithError(error) Interface            { return n }
func (n nop) WithDuration(time.Duration) Interface { return n }
