package conveyor

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"github.com/sethvargo/go-retry"

	"github.com/fcurrie/matrix-display-golang/pkg/canvas"
)

const reloadBackoff = 10 * time.Millisecond

type reloadResult struct {
	canvas *canvas.Canvas
	err    error
}

// reloader evaluates a row's content in the background so a slow generator
// does not hold up the frame loop. At most one evaluation runs at a time and
// its result waits in results until the row takes it.
type reloader struct {
	ctx     context.Context
	retries uint64
	log     logr.Logger

	results  chan reloadResult
	inflight bool
}

func newReloader(retries int, log logr.Logger) *reloader {
	if retries < 0 {
		retries = 0
	}
	return &reloader{
		ctx:     context.Background(),
		retries: uint64(retries),
		log:     log,
		results: make(chan reloadResult, 1),
	}
}

func (r *reloader) start(render func() (*canvas.Canvas, error)) {
	if r.inflight {
		return
	}
	r.inflight = true

	ctx := r.ctx
	go func() {
		var c *canvas.Canvas
		backoff := retry.WithMaxRetries(r.retries, retry.NewExponential(reloadBackoff))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			var err error
			c, err = render()
			if err != nil {
				r.log.V(1).Info("Row reload failed", "error", err.Error())
				return retry.RetryableError(err)
			}
			return nil
		})
		r.results <- reloadResult{canvas: c, err: err}
	}()
}

// take returns a finished result, or false while the evaluation is still
// running or none was started.
func (r *reloader) take() (reloadResult, bool) {
	select {
	case res := <-r.results:
		r.inflight = false
		return res, true
	default:
		return reloadResult{}, false
	}
}
