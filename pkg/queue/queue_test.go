package queue_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eshop-back/pkg/queue"
)

var (
	echoCalls = &atomic.Int32{}
	failCalls = &atomic.Int32{}
)

type echoJob struct {
	Val string `json:"val"`
}

func (j *echoJob) Handle() error {
	echoCalls.Add(1)
	return nil
}

type failJob struct{}

func (j *failJob) Handle() error {
	failCalls.Add(1)
	return errors.New("always fails")
}

func init() {
	queue.Register("*queue_test.echoJob", func() queue.Job { return &echoJob{} })
	queue.Register("*queue_test.failJob", func() queue.Job { return &failJob{} })
	queue.StartWorkers(context.Background(), 2)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestDispatchProcessesJob(t *testing.T) {
	before := echoCalls.Load()
	require.NoError(t, queue.Dispatch(&echoJob{Val: "hello"}))
	waitFor(t, func() bool { return echoCalls.Load() > before })
}

func TestFailingJobIsRetriedAndRecorded(t *testing.T) {
	queue.SetMaxRetry(2)
	defer queue.SetMaxRetry(3)

	beforeFailed := len(queue.FailedJobs())
	require.NoError(t, queue.Dispatch(&failJob{}))

	waitFor(t, func() bool { return len(queue.FailedJobs()) > beforeFailed })
	assert.GreaterOrEqual(t, failCalls.Load(), int32(2), "job should have been attempted maxRetry times")

	failed := queue.FailedJobs()
	last := failed[len(failed)-1]
	assert.Equal(t, 2, last.Attempts)
	assert.EqualError(t, last.Err, "always fails")
}

func TestDispatchAfterDelaysExecution(t *testing.T) {
	before := echoCalls.Load()
	queue.DispatchAfter(&echoJob{Val: "later"}, 50*time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, before, echoCalls.Load(), "job should not run before its delay")

	waitFor(t, func() bool { return echoCalls.Load() > before })
}
