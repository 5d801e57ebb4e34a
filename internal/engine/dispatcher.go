package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	rderrors "repodeck.dev/repodeck/internal/errors"
	"repodeck.dev/repodeck/internal/git"
)

// DefaultWorkers is the default number of parallel execution slots.
const DefaultWorkers = 5

// Options configures a Dispatcher. Zero values fall back to defaults.
type Options struct {
	// Workers is the pool size; requests beyond it queue in arrival order
	Workers int
	// ProgressInterval is the minimum spacing between progress notifications
	ProgressInterval time.Duration
	// Open resolves repository paths; defaults to OpenRepository
	Open Opener
	// Clone performs clone operations; defaults to git.Clone
	Clone Cloner
	// Observer, when set, receives every notification from the delivery
	// goroutine, after the request's own callbacks
	Observer func(Notification)
}

// Dispatcher accepts operation requests and runs them on a bounded worker
// pool. Submit never blocks beyond validation; progress and terminal outcomes
// are delivered from a single goroutine so a non-reentrant consumer can
// observe them safely.
type Dispatcher struct {
	open     Opener
	clone    Cloner
	interval time.Duration
	observer func(Notification)
	registry *Registry

	mu      sync.Mutex
	cond    *sync.Cond
	pending []*Request
	closed  bool

	deliverMu     sync.Mutex
	deliverCond   *sync.Cond
	deliverQueue  []delivery
	deliverClosed bool

	workers     sync.WaitGroup
	deliverDone chan struct{}
}

// delivery is one queued notification plus the key to release once a terminal
// outcome has reached the caller.
type delivery struct {
	req *Request
	n   Notification
}

// New creates a Dispatcher and starts its workers.
func New(opts Options) *Dispatcher {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = DefaultProgressInterval
	}
	if opts.Open == nil {
		opts.Open = OpenRepository
	}
	if opts.Clone == nil {
		opts.Clone = git.Clone
	}

	d := &Dispatcher{
		open:        opts.Open,
		clone:       opts.Clone,
		interval:    opts.ProgressInterval,
		observer:    opts.Observer,
		registry:    NewRegistry(),
		deliverDone: make(chan struct{}),
	}
	d.cond = sync.NewCond(&d.mu)
	d.deliverCond = sync.NewCond(&d.deliverMu)

	go d.deliverLoop()
	for i := 0; i < opts.Workers; i++ {
		d.workers.Add(1)
		go d.workerLoop()
	}
	return d
}

// Submit accepts a request for asynchronous execution. It returns an error
// only for invalid requests, a closed dispatcher, or a duplicate in-flight
// mutating key; everything else is reported through the request's callbacks.
func (d *Dispatcher) Submit(req *Request) error {
	if err := req.validate(); err != nil {
		return err
	}

	if req.Kind.Mutating() && !d.registry.TryAcquire(req.Key()) {
		return fmt.Errorf("%s on %s: %w", req.Kind, req.RepoPath, rderrors.ErrDuplicateOperation)
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		if req.Kind.Mutating() {
			d.registry.Release(req.Key())
		}
		return fmt.Errorf("dispatcher is closed")
	}
	d.pending = append(d.pending, req)
	d.mu.Unlock()
	d.cond.Signal()
	return nil
}

// Close stops accepting requests, runs the queue dry, and waits until every
// accepted request has delivered its terminal notification.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.deliverDone
		return
	}
	d.closed = true
	d.mu.Unlock()
	d.cond.Broadcast()
	d.workers.Wait()

	d.deliverMu.Lock()
	d.deliverClosed = true
	d.deliverMu.Unlock()
	d.deliverCond.Broadcast()
	<-d.deliverDone
}

// next blocks until a request is available or the dispatcher is closed.
func (d *Dispatcher) next() (*Request, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for len(d.pending) == 0 && !d.closed {
		d.cond.Wait()
	}
	if len(d.pending) == 0 {
		return nil, false
	}
	req := d.pending[0]
	d.pending = d.pending[1:]
	return req, true
}

func (d *Dispatcher) workerLoop() {
	defer d.workers.Done()
	for {
		req, ok := d.next()
		if !ok {
			return
		}
		d.execute(req)
	}
}

// execute runs one request to its terminal outcome. No retry: a failure is
// classified and reported, and any retry is the caller's decision.
func (d *Dispatcher) execute(req *Request) {
	ctx := context.Background()

	throttle := NewProgressThrottle(d.interval)
	onProgress := func(event git.ProgressEvent) {
		line, ok := throttle.Offer(event)
		if !ok {
			return
		}
		d.enqueueDelivery(delivery{req: req, n: Notification{
			RepoPath: req.RepoPath,
			Kind:     req.Kind,
			Progress: line,
		}})
	}

	result, err := d.run(ctx, req, onProgress)

	n := Notification{RepoPath: req.RepoPath, Kind: req.Kind}
	if err != nil {
		n.Failure = &Failure{Kind: req.Kind, Err: err, Code: rderrors.Classify(err)}
	} else {
		n.Result = result
	}
	d.enqueueDelivery(delivery{req: req, n: n})
}

// run dispatches to clone or to the catalog behind a freshly opened backend.
func (d *Dispatcher) run(ctx context.Context, req *Request, onProgress git.ProgressFunc) (Result, error) {
	if req.Kind == KindClone {
		args := req.Args.(CloneArgs)
		if err := d.clone(ctx, args.URL, req.RepoPath, onProgress); err != nil {
			return nil, err
		}
		return Confirmation{Kind: KindClone, Text: fmt.Sprintf("cloned into %s", req.RepoPath)}, nil
	}

	// The handle is re-validated on every operation; a path that stopped
	// being a working copy fails here
	backend, err := d.open(req.RepoPath)
	if err != nil {
		return nil, err
	}
	return execute(ctx, backend, req, onProgress)
}

func (d *Dispatcher) enqueueDelivery(item delivery) {
	d.deliverMu.Lock()
	d.deliverQueue = append(d.deliverQueue, item)
	d.deliverMu.Unlock()
	d.deliverCond.Signal()
}

// deliverLoop is the single notification consumer-facing goroutine: request
// callbacks and the observer are only ever invoked from here, in order. A
// mutating key is released only after its terminal notification has been
// handed over.
func (d *Dispatcher) deliverLoop() {
	defer close(d.deliverDone)
	for {
		d.deliverMu.Lock()
		for len(d.deliverQueue) == 0 && !d.deliverClosed {
			d.deliverCond.Wait()
		}
		if len(d.deliverQueue) == 0 {
			d.deliverMu.Unlock()
			return
		}
		item := d.deliverQueue[0]
		d.deliverQueue = d.deliverQueue[1:]
		d.deliverMu.Unlock()

		d.deliver(item)
	}
}

func (d *Dispatcher) deliver(item delivery) {
	req, n := item.req, item.n
	switch {
	case n.Failure != nil:
		if req.OnFailure != nil {
			req.OnFailure(*n.Failure)
		}
	case n.Result != nil:
		if req.OnResult != nil {
			req.OnResult(n.Result)
		}
	default:
		if req.OnProgress != nil {
			req.OnProgress(n.Progress)
		}
	}
	if d.observer != nil {
		d.observer(n)
	}
	if n.Terminal() && req.Kind.Mutating() {
		d.registry.Release(req.Key())
	}
}
