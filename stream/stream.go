// Package stream runs sequences through channel pipelines.
//
// Every stage owns its sink: it closes the sink when its source is closed or
// the context is done. Cancelling the context therefore shuts the whole
// pipeline down from any stage.
package stream

import (
	"context"
	"iter"

	"github.com/on-the-ground/pure_ive_go/seq"
)

// FromSeq feeds the values of s into a new channel with the given buffer size.
func FromSeq[T any](ctx context.Context, s iter.Seq[T], bufferSize int) <-chan T {
	sink := make(chan T, bufferSize)
	go func() {
		defer close(sink)
		for v := range s {
			select {
			case sink <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return sink
}

func Map[T, R any](ctx context.Context, source <-chan T, f func(T) R) <-chan R {
	sink := make(chan R)
	go mapFn(ctx, source, sink, f)
	return sink
}

func Filter[T any](ctx context.Context, source <-chan T, predicate func(T) bool) <-chan T {
	sink := make(chan T)
	go filter(ctx, source, sink, predicate)
	return sink
}

// Zip combines values of a and b pairwise with f until either is closed.
// The stage feeding the longer input stays blocked until ctx is done.
func Zip[A, B, C any](ctx context.Context, a <-chan A, b <-chan B, f func(A, B) C) <-chan C {
	sink := make(chan C)
	go zip(ctx, a, b, sink, f)
	return sink
}

// Sum drains source. It returns ctx.Err() if the context ends first.
func Sum[T seq.Number](ctx context.Context, source <-chan T) (T, error) {
	var total T
	for {
		select {
		case v, ok := <-source:
			if !ok {
				return total, nil
			}
			total += v
		case <-ctx.Done():
			return total, ctx.Err()
		}
	}
}

func mapFn[T any, R any](ctx context.Context, source <-chan T, sink chan<- R, f func(T) R) {
	defer close(sink)
	for v := range source {
		select {
		case sink <- f(v):
		case <-ctx.Done():
			return
		}
	}
}

func filter[T any](ctx context.Context, source <-chan T, sink chan<- T, predicate func(T) bool) {
	defer close(sink)
	for v := range source {
		if predicate(v) {
			select {
			case sink <- v:
			case <-ctx.Done():
				return
			}
		}
	}
}

func zip[A, B, C any](ctx context.Context, a <-chan A, b <-chan B, sink chan<- C, f func(A, B) C) {
	defer close(sink)
	for {
		var (
			va A
			vb B
			ok bool
		)
		select {
		case va, ok = <-a:
		case <-ctx.Done():
			return
		}
		if !ok {
			return
		}
		select {
		case vb, ok = <-b:
		case <-ctx.Done():
			return
		}
		if !ok {
			return
		}
		select {
		case sink <- f(va, vb):
		case <-ctx.Done():
			return
		}
	}
}
