package datafix

import "sort"

// floorMap groups items by the version they were registered at and answers
// "what was registered at the greatest version <= v".
type floorMap[T any] struct {
	buckets []bucket[T]
}

type bucket[T any] struct {
	version DataVersion
	items   []T
}

func (f *floorMap[T]) search(v DataVersion) int {
	return sort.Search(len(f.buckets), func(i int) bool {
		return !f.buckets[i].version.Less(v)
	})
}

func (f *floorMap[T]) add(v DataVersion, item T) {
	i := f.search(v)
	if i < len(f.buckets) && f.buckets[i].version == v {
		f.buckets[i].items = append(f.buckets[i].items, item)
		return
	}
	f.buckets = append(f.buckets, bucket[T]{})
	copy(f.buckets[i+1:], f.buckets[i:])
	f.buckets[i] = bucket[T]{version: v, items: []T{item}}
}

func (f *floorMap[T]) floor(v DataVersion) []T {
	i := f.search(v)
	if i < len(f.buckets) && f.buckets[i].version == v {
		return f.buckets[i].items
	}
	if i == 0 {
		return nil
	}
	return f.buckets[i-1].items
}

func (f *floorMap[T]) len() int {
	n := 0
	for _, b := range f.buckets {
		n += len(b.items)
	}
	return n
}
