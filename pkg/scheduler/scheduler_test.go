package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communityportal/notifier/pkg/notify"
	"github.com/communityportal/notifier/pkg/scheduler/mocks"
)

func TestNewScheduler(t *testing.T) {
	dispatcher := &mocks.DispatcherMock{}
	s := NewScheduler(Params{Dispatcher: dispatcher, Interval: 5 * time.Minute, RunOnStart: true})
	assert.Equal(t, 5*time.Minute, s.interval)
	assert.True(t, s.runOnStart)

	s = NewScheduler(Params{Dispatcher: dispatcher})
	assert.Equal(t, 24*time.Hour, s.interval)
	assert.False(t, s.runOnStart)
}

func TestScheduler_RunOnStart(t *testing.T) {
	var runs atomic.Int32
	dispatcher := &mocks.DispatcherMock{RunFunc: func(ctx context.Context, forced bool) (notify.RunResult, error) {
		assert.False(t, forced, "scheduled runs are never forced")
		runs.Add(1)
		return notify.RunResult{RunID: "abc", SkippedReason: notify.SkipNoContent}, nil
	}}

	s := NewScheduler(Params{Dispatcher: dispatcher, Interval: time.Hour, RunOnStart: true})
	s.Start(context.Background())
	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 10*time.Millisecond)
	s.Stop()
	assert.Len(t, dispatcher.RunCalls(), 1)
}

func TestScheduler_Ticks(t *testing.T) {
	var runs atomic.Int32
	dispatcher := &mocks.DispatcherMock{RunFunc: func(ctx context.Context, forced bool) (notify.RunResult, error) {
		if runs.Add(1) == 2 {
			return notify.RunResult{RunID: "failed"}, errors.New("db locked")
		}
		return notify.RunResult{SentGroups: 1}, nil
	}}

	s := NewScheduler(Params{Dispatcher: dispatcher, Interval: 20 * time.Millisecond})
	s.Start(context.Background())
	require.Eventually(t, func() bool { return runs.Load() >= 3 }, 2*time.Second, 10*time.Millisecond,
		"errors don't stop the trigger")
	s.Stop()

	stopped := runs.Load()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load(), "no runs after stop")
}

func TestScheduler_NoRunWithoutTick(t *testing.T) {
	dispatcher := &mocks.DispatcherMock{}
	s := NewScheduler(Params{Dispatcher: dispatcher, Interval: time.Hour})
	s.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	s.Stop()
	assert.Empty(t, dispatcher.RunCalls())
}

func TestScheduler_StopByContext(t *testing.T) {
	dispatcher := &mocks.DispatcherMock{}
	ctx, cancel := context.WithCancel(context.Background())
	s := NewScheduler(Params{Dispatcher: dispatcher, Interval: time.Hour})
	s.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker not stopped by context cancellation")
	}
}

func TestScheduler_RunNow(t *testing.T) {
	dispatcher := &mocks.DispatcherMock{RunFunc: func(ctx context.Context, forced bool) (notify.RunResult, error) {
		return notify.RunResult{RunID: "r1", SentGroups: 2, NotifiedItems: 3}, nil
	}}
	s := NewScheduler(Params{Dispatcher: dispatcher})

	res, err := s.RunNow(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 2, res.SentGroups)
	require.Len(t, dispatcher.RunCalls(), 1)
	assert.True(t, dispatcher.RunCalls()[0].Forced)
}

func TestScheduler_RunNowSerialized(t *testing.T) {
	var active, maxActive atomic.Int32
	dispatcher := &mocks.DispatcherMock{RunFunc: func(ctx context.Context, forced bool) (notify.RunResult, error) {
		n := active.Add(1)
		for {
			cur := maxActive.Load()
			if n <= cur || maxActive.CompareAndSwap(cur, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		active.Add(-1)
		return notify.RunResult{}, nil
	}}
	s := NewScheduler(Params{Dispatcher: dispatcher})

	done := make(chan struct{})
	for range 3 {
		go func() {
			_, _ = s.RunNow(context.Background(), true)
			done <- struct{}{}
		}()
	}
	for range 3 {
		<-done
	}
	assert.Equal(t, int32(1), maxActive.Load())
	assert.Len(t, dispatcher.RunCalls(), 3)
}
