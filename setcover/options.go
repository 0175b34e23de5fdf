package setcover

import "context"

// Option configures a Solver or a direct BoundSearch/EnumerateAll call.
type Option func(*Options)

// Options holds the resolved search configuration.
type Options struct {
	// Ctx is checked once per generated combination; defaults to
	// context.Background(), which never cancels.
	Ctx context.Context

	// OnEvent, if non-nil, receives progress events. It is always called
	// from the goroutine running the search, never concurrently.
	OnEvent func(Event)

	// MaxElement declares the element domain 0..MaxElement. A negative value
	// (the default) leaves the domain open.
	MaxElement int

	// Workers is the number of goroutines used by phase 2. Values below 2
	// run the scan sequentially.
	Workers int
}

// DefaultOptions returns an Options value with:
//   - Background context (never cancels)
//   - No event hook
//   - Open element domain (MaxElement = -1)
//   - Sequential scanning (Workers = 1)
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnEvent:    nil,
		MaxElement: -1,
		Workers:    1,
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEvent installs fn as the progress hook.
func WithOnEvent(fn func(Event)) Option {
	return func(o *Options) {
		o.OnEvent = fn
	}
}

// WithMaxElement declares the element domain 0..m.
func WithMaxElement(m int) Option {
	return func(o *Options) {
		o.MaxElement = m
	}
}

// WithWorkers sets phase-2 parallelism. Values below 1 are treated as 1.
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 1 {
			w = 1
		}
		o.Workers = w
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// emit forwards ev to the hook, if any.
func (o Options) emit(ev Event) {
	if o.OnEvent != nil {
		o.OnEvent(ev)
	}
}

// canceled returns the context error once the context is done.
func (o Options) canceled() error {
	if o.Ctx == nil {
		return nil
	}
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}
