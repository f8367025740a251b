package app

import (
	"context"
	"io"
	"os"
	"syscall"
)

// Instance owns the process lifetime: a root context cancelled on shutdown
// and the closers to run once the work is done.
type Instance struct {
	closers []io.Closer
	signals []os.Signal
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewInstance() *Instance {
	return newInstance(os.Interrupt, syscall.SIGTERM)
}

func newInstance(signals ...os.Signal) *Instance {
	ctx, cancel := context.WithCancel(context.Background())
	return &Instance{
		signals: signals,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (instance *Instance) Context() context.Context {
	return instance.ctx
}
