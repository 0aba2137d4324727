package csp

// SearchPosition describes the state of a search at the moment a Tracer
// is invoked. The Assignment it exposes is the engine's live state and
// must not be retained or modified.
type SearchPosition[V comparable] interface {
	Assignment() Assignment[V]
	Attempts() uint64
	Depth() int
}

type Tracer[V comparable] interface {
	Trace(p SearchPosition[V])
}

type DefaultTracer[V comparable] struct{}

func (DefaultTracer[V]) Trace(_ SearchPosition[V]) {
}
