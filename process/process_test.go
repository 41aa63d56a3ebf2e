package process_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/arvida/rastertrace/process"
	"github.com/stretchr/testify/require"
)

func countingStep(n int) (process.Step, *int32) {
	var done int32
	remaining := n
	return func() bool {
		if remaining <= 0 {
			return false
		}
		remaining--
		atomic.AddInt32(&done, 1)
		return remaining > 0
	}, &done
}

func TestRunnerDrivesStepToCompletion(t *testing.T) {
	step, done := countingStep(5)
	r := process.New(step)
	require.NoError(t, r.Run(context.Background()))
	require.EqualValues(t, 5, atomic.LoadInt32(done))
}

func TestRunnerAcceptsNilContext(t *testing.T) {
	step, done := countingStep(3)
	r := process.New(step)
	require.NoError(t, r.Run(nil))
	require.EqualValues(t, 3, atomic.LoadInt32(done))
}

func TestRunnerRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	step, _ := countingStep(1000000)
	r := process.New(step)
	err := r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunAllDrivesEveryRunnerConcurrently(t *testing.T) {
	var runners []*process.Runner
	dones := make([]*int32, 4)
	for i := range dones {
		step, done := countingStep(10)
		dones[i] = done
		runners = append(runners, process.New(step))
	}
	require.NoError(t, process.RunAll(context.Background(), runners))
	for _, d := range dones {
		require.EqualValues(t, 10, atomic.LoadInt32(d))
	}
}

func TestRunAllPropagatesFirstError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok := process.New(func() bool { return false })
	infinite := process.New(func() bool { return true })
	err := process.RunAll(ctx, []*process.Runner{ok, infinite})
	require.ErrorIs(t, err, context.Canceled)
}
