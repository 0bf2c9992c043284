package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnDiscoverStart(ctx, "docs")
	p.OnDiscoverComplete(ctx, "docs", 12, time.Second, nil)
	p.OnFileProcessed(ctx, "guide/01-intro.md", time.Millisecond, nil)
	p.OnFileProcessed(ctx, "broken.md", time.Millisecond, errors.New("bad utf-8"))
	p.OnRenderStart(ctx, "pdf")
	p.OnRenderComplete(ctx, "pdf", 7, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	Pipeline().OnFileProcessed(context.Background(), "a.md", 0, nil)
	if custom.files != 1 {
		t.Errorf("custom hook saw %d files, want 1", custom.files)
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)

	// Setting nil should be ignored
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testPipelineHooks struct {
	NoopPipelineHooks
	files int
}

func (h *testPipelineHooks) OnFileProcessed(context.Context, string, time.Duration, error) {
	h.files++
}
