package async_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/mctl/pkg/utils/async"
)

func TestWithSyncMode(t *testing.T) {
	ctx := async.WithSyncMode(context.Background())
	executed := false

	async.Dispatch(ctx, func(ctx context.Context) error {
		executed = true
		return nil
	})

	gt.True(t, executed)
}

func TestWithTimeout(t *testing.T) {
	ctx := async.WithTimeout(context.Background(), 20*time.Millisecond)
	done := make(chan error, 1)

	async.Dispatch(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		done <- ctx.Err()
		return nil
	})

	select {
	case err := <-done:
		gt.Equal(t, err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("dispatched handler was not bounded by the timeout")
	}
}
