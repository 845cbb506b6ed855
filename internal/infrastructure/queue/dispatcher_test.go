package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type countingRecorder struct {
	mu     sync.Mutex
	counts map[string]int
	done   chan struct{}
	want   int
	seen   int
}

func newCountingRecorder(want int) *countingRecorder {
	return &countingRecorder{
		counts: make(map[string]int),
		done:   make(chan struct{}),
		want:   want,
	}
}

func (r *countingRecorder) RecordView(_ context.Context, recipeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[recipeID]++
	r.seen++
	if r.seen == r.want {
		close(r.done)
	}
	return nil
}

func (r *countingRecorder) count(recipeID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[recipeID]
}

func TestDispatcher_DeliversEveryEvent(t *testing.T) {
	recorder := newCountingRecorder(30)
	d := NewDispatcher(4, recorder, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Enqueue(ViewEvent{RecipeID: "r1"})
		d.Enqueue(ViewEvent{RecipeID: "r2"})
		d.Enqueue(ViewEvent{RecipeID: "r3"})
	}

	select {
	case <-recorder.done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for events to drain")
	}

	for _, id := range []string{"r1", "r2", "r3"} {
		if got := recorder.count(id); got != 10 {
			t.Errorf("recipe %s: expected 10 views, got %d", id, got)
		}
	}
}

func TestDispatcher_ShardIsStablePerRecipe(t *testing.T) {
	d := NewDispatcher(4, newCountingRecorder(0), zerolog.Nop())

	for _, id := range []string{"r1", "r2", "abc", "a-much-longer-recipe-id"} {
		first := d.shardIndex(id)
		for i := 0; i < 5; i++ {
			if got := d.shardIndex(id); got != first {
				t.Fatalf("shard for %s changed from %d to %d", id, first, got)
			}
		}
		if first < 0 || first >= len(d.workers) {
			t.Errorf("shard %d for %s out of range", first, id)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newCountingRecorder(0), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Errorf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
