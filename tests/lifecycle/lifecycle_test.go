package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/tribunal/pkg/lifecycle"
)

func TestWaitForStartup(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	lc.OnStartup(func() { count.Add(1) })
	lc.OnStartup(func() { count.Add(1) })

	if lc.Ready() {
		t.Error("Ready should be false before WaitForStartup")
	}

	lc.WaitForStartup()

	if count.Load() != 2 {
		t.Errorf("startup hooks ran %d times, want 2", count.Load())
	}
	if !lc.Ready() {
		t.Error("Ready should be true after WaitForStartup")
	}
}

func TestShutdownRunsHooks(t *testing.T) {
	lc := lifecycle.New()

	var cleaned atomic.Bool
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		cleaned.Store(true)
	})

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown error: %v", err)
	}
	if !cleaned.Load() {
		t.Error("shutdown hook did not run")
	}
}

func TestShutdownCancelsContext(t *testing.T) {
	lc := lifecycle.New()

	select {
	case <-lc.Context().Done():
		t.Fatal("context cancelled before shutdown")
	default:
	}

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown error: %v", err)
	}

	select {
	case <-lc.Context().Done():
	default:
		t.Error("context should be cancelled after shutdown")
	}
}

func TestShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	release := make(chan struct{})
	lc.OnShutdown(func() {
		<-release
	})
	defer close(release)

	err := lc.Shutdown(10 * time.Millisecond)
	if err == nil {
		t.Error("expected timeout error for hung shutdown hook")
	}
}
