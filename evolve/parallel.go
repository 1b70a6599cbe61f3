package evolve

import (
	"runtime"
	"sync"
)

// parallelThreshold is the minimum organism count to use parallel
// processing. Below this, single-threaded is faster due to goroutine
// overhead.
const parallelThreshold = 64

// workChunk represents a range of flat organism indices for one worker.
type workChunk struct {
	start, end int
}

// workerPool runs per-organism batch work over the flat
// [species x trial x organism] index space. Workers are persistent: they are
// launched once and fed chunks per phase. Chunk work must be independent
// per index; the only writes allowed are to the worker's own scratch and to
// the slots of the indices it was handed.
type workerPool struct {
	numWorkers int

	workChan chan workChunk
	doneChan chan struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool

	// fn is the work for the current phase. It is set before any chunk is
	// dispatched and only read by workers after receiving a chunk.
	fn func(start, end, worker int)
}

func newWorkerPool() *workerPool {
	return &workerPool{numWorkers: runtime.GOMAXPROCS(0)}
}

func (p *workerPool) start() {
	if p.running {
		return
	}
	p.workChan = make(chan workChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

func (p *workerPool) stop() {
	if !p.running {
		return
	}
	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

func (p *workerPool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			p.fn(chunk.start, chunk.end, id)
			p.doneChan <- struct{}{}
		}
	}
}

// run executes fn over [0, n), chunked across the workers. Small batches run
// on the calling goroutine.
func (p *workerPool) run(n int, fn func(start, end, worker int)) {
	if n == 0 {
		return
	}
	if n < parallelThreshold {
		fn(0, n, 0)
		return
	}
	if !p.running {
		p.start()
	}
	p.fn = fn

	chunkSize := (n + p.numWorkers - 1) / p.numWorkers
	dispatched := 0
	for w := 0; w < p.numWorkers; w++ {
		start := w * chunkSize
		end := min(start+chunkSize, n)
		if start >= end {
			continue
		}
		p.workChan <- workChunk{start: start, end: end}
		dispatched++
	}
	for i := 0; i < dispatched; i++ {
		<-p.doneChan
	}
}
