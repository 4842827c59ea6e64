package scanner

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPauserWaitNotPaused(t *testing.T) {
	p := NewPauser()
	done := make(chan error, 1)
	go func() { done <- p.Wait(context.Background()) }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Wait blocked when not paused")
	}
}

func TestPauserToggle(t *testing.T) {
	p := NewPauser()
	assert.True(t, p.Toggle(), "first Toggle pauses")
	assert.False(t, p.Toggle(), "second Toggle resumes")
	assert.True(t, p.Toggle())
}

func TestPauserBlocksAndResumes(t *testing.T) {
	p := NewPauser()
	p.Toggle()

	var reached, released atomic.Int32
	var wg sync.WaitGroup
	n := 5
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reached.Add(1)
			if p.Wait(context.Background()) == nil {
				released.Add(1)
			}
		}()
	}

	require.Eventually(t, func() bool { return reached.Load() == int32(n) }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	require.Zero(t, released.Load(), "goroutines passed Wait while paused")

	p.Toggle()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("goroutines did not unblock after resume")
	}
	assert.Equal(t, int32(n), released.Load())
}

func TestPauserWaitHonoursContext(t *testing.T) {
	p := NewPauser()
	p.Toggle()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Wait(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after cancellation")
	}
}

func TestPauserResumeIsIdempotent(t *testing.T) {
	p := NewPauser()
	require.NotPanics(t, p.Resume, "Resume while running")
	p.Toggle()
	p.Resume()
	require.NotPanics(t, p.Resume)
	assert.NoError(t, p.Wait(context.Background()))
	assert.True(t, p.Toggle(), "Toggle after Resume pauses again")
}

func TestPauserDuration(t *testing.T) {
	p := NewPauser()
	assert.Zero(t, p.PausedDuration())

	p.Toggle()
	time.Sleep(100 * time.Millisecond)
	ongoing := p.PausedDuration()
	p.Toggle()

	total := p.PausedDuration()
	assert.GreaterOrEqual(t, ongoing, 80*time.Millisecond, "ongoing pause is included")
	assert.GreaterOrEqual(t, total, ongoing)
	assert.Less(t, total, 300*time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, total, p.PausedDuration(), "no accumulation while running")
}

func TestPauserConcurrent(t *testing.T) {
	p := NewPauser()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = p.Wait(context.Background())
			}
		}()
	}

	go func() {
		for i := 0; i < 10; i++ {
			p.Toggle()
			time.Sleep(5 * time.Millisecond)
		}
		p.Resume()
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("concurrent test timed out")
	}
}
