package operator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/report-server/internal/storage"
)

type failingOpener struct {
	calls atomic.Int32
	err   error
}

func (f *failingOpener) Write(ctx context.Context) (*storage.Writer, error) {
	f.calls.Add(1)
	return nil, f.err
}

type noopAction struct {
	performed atomic.Bool
}

func (a *noopAction) Perform(ctx context.Context, writer *storage.Writer) error {
	a.performed.Store(true)
	return nil
}

func TestProcess_WriteError(t *testing.T) {
	opener := &failingOpener{err: errors.New("no connection")}
	delegator := NewOperatorDelegator(opener, 2)
	delegator.Start()
	defer delegator.Stop()

	action := &noopAction{}
	err := delegator.Process(context.Background(), action)

	assert.EqualError(t, err, "no connection")
	assert.False(t, action.performed.Load())
	assert.Equal(t, int32(1), opener.calls.Load())
}

func TestProcess_CancelledContext(t *testing.T) {
	opener := &failingOpener{}
	delegator := NewOperatorDelegator(opener, 1)
	delegator.Start()
	defer delegator.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := delegator.Process(ctx, &noopAction{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcess_AfterStop(t *testing.T) {
	delegator := NewOperatorDelegator(&failingOpener{}, 1)
	delegator.Start()
	delegator.Stop()

	err := delegator.Process(context.Background(), &noopAction{})

	assert.ErrorIs(t, err, ErrStopped)
}

func TestStop_Idempotent(t *testing.T) {
	delegator := NewOperatorDelegator(&failingOpener{}, 0)
	delegator.Start()

	assert.NotPanics(t, func() {
		delegator.Stop()
		delegator.Stop()
	})
	assert.Equal(t, 1, delegator.numWorkers)
}
