//go:build !unix

package terminal

import (
	"errors"
)

type stubBackend struct{}

func newBackend() Backend {
	return stubBackend{}
}

func (stubBackend) Init() error {
	return errors.New("terminal session is not supported on this platform")
}

func (stubBackend) Fini() {}

func (stubBackend) Size() (int, int) {
	return 80, 24
}

func (stubBackend) Write(p []byte) error {
	return errors.New("terminal session is not supported on this platform")
}

func (stubBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	<-stopCh
	return nil, nil
}

func (stubBackend) SetResizeHandler(handler func(width, height int)) {}
