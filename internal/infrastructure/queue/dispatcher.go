package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/kusinadelights/recipe-platform/internal/core/ports"
	"github.com/kusinadelights/recipe-platform/internal/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ViewEvent is a single recipe view waiting to be counted.
type ViewEvent struct {
	RecipeID string
}

// Dispatcher routes view events to a fixed set of workers using consistent
// hashing on the recipe id, guaranteeing per-recipe increment ordering.
// This is the one write path that is deliberately asynchronous: view
// counts are display metadata and may lag, while every other mutation
// persists before returning to the caller.
type Dispatcher struct {
	workers  []chan ViewEvent
	recorder ports.ViewRecorder
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, recorder ports.ViewRecorder, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ViewEvent, numWorkers),
		recorder: recorder,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ViewEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a view event to the worker responsible for its recipe.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ViewEvent) {
	idx := d.shardIndex(event.RecipeID)
	d.workers[idx] <- event
	metrics.ViewQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a recipe id deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipeID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipeID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ViewEvent) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.ViewQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := d.recorder.RecordView(ctx, event.RecipeID); err != nil {
				d.log.Error().Err(err).
					Str("recipe_id", event.RecipeID).
					Int("worker_id", id).
					Msg("view increment failed")
			}
		}
	}
}
