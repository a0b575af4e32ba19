package annot

import "sort"

// SpanIndex answers overlap queries against a fixed set of spans, each
// carrying a caller value such as a location or an annotation name.
// Spans are added once; Build sorts them and later additions are not
// allowed. Queries cost O(log n + k) per reference sequence.
type SpanIndex[R comparable, T any] struct {
	byRef map[R]*refIndex[T]
	built bool
}

type refIndex[T any] struct {
	entries []spanEntry[T]
	// maxEnd[i] = max(end) over entries[0..i], so a downward scan can
	// stop as soon as no earlier entry reaches the query.
	maxEnd []int64
}

type spanEntry[T any] struct {
	start, end int64
	value      T
}

// NewSpanIndex creates an empty index.
func NewSpanIndex[R comparable, T any]() *SpanIndex[R, T] {
	return &SpanIndex[R, T]{byRef: make(map[R]*refIndex[T])}
}

// Add records value under the given span. Zero-length spans are kept
// and never overlap anything.
func (ix *SpanIndex[R, T]) Add(span Span[R], value T) {
	if ix.built {
		panic("annot: Add after Build")
	}
	ri := ix.byRef[span.Refid]
	if ri == nil {
		ri = &refIndex[T]{}
		ix.byRef[span.Refid] = ri
	}
	ri.entries = append(ri.entries, spanEntry[T]{start: span.Start, end: span.End(), value: value})
}

// Build sorts the index for querying.
func (ix *SpanIndex[R, T]) Build() {
	for _, ri := range ix.byRef {
		sort.Slice(ri.entries, func(i, j int) bool {
			return ri.entries[i].start < ri.entries[j].start
		})
		ri.maxEnd = make([]int64, len(ri.entries))
		for i, e := range ri.entries {
			ri.maxEnd[i] = e.end
			if i > 0 && ri.maxEnd[i-1] > e.end {
				ri.maxEnd[i] = ri.maxEnd[i-1]
			}
		}
	}
	ix.built = true
}

// Find returns the values of all spans containing the position, in
// reverse start order.
func (ix *SpanIndex[R, T]) Find(refid R, pos int64) []T {
	return ix.FindSpan(Span[R]{Refid: refid, Start: pos, Length: 1})
}

// FindSpan returns the values of all spans overlapping query by at
// least one position, in reverse start order.
func (ix *SpanIndex[R, T]) FindSpan(query Span[R]) []T {
	if !ix.built {
		panic("annot: FindSpan before Build")
	}
	ri := ix.byRef[query.Refid]
	if ri == nil {
		return nil
	}

	// Candidates start before the query ends; scan them downward and
	// stop once no remaining entry can reach the query start.
	hi := sort.Search(len(ri.entries), func(i int) bool {
		return ri.entries[i].start >= query.End()
	})
	var result []T
	for i := hi - 1; i >= 0; i-- {
		if ri.maxEnd[i] <= query.Start {
			break
		}
		if ri.entries[i].end > query.Start {
			result = append(result, ri.entries[i].value)
		}
	}
	return result
}
