package admission

import (
	"sync"
	"time"

	"candor/internal/logger"
)

// Janitor prunes expired buckets in the background so the per-client map
// cannot grow without bound between process restarts.
type Janitor struct {
	limiter  *Limiter
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewJanitor(limiter *Limiter, interval time.Duration) *Janitor {
	return &Janitor{
		limiter:  limiter,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (j *Janitor) Start() {
	j.wg.Add(1)
	go j.run()
	logger.Info("admission janitor started", "module", "admission", "action", "prune", "resource", "bucket", "result", "ok", "interval_ms", j.interval.Milliseconds())
}

func (j *Janitor) Stop() {
	close(j.stopCh)
	j.wg.Wait()
	logger.Info("admission janitor stopped", "module", "admission", "action", "prune", "resource", "bucket", "result", "ok")
}

func (j *Janitor) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if pruned := j.limiter.Prune(); pruned > 0 {
				logger.Debug("admission buckets pruned", "module", "admission", "action", "prune", "resource", "bucket", "result", "ok", "pruned", pruned)
			}
		case <-j.stopCh:
			return
		}
	}
}
