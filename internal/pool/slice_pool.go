package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a float64 slice of exactly size elements from the pool.
//
// The contents of the returned slice are unspecified; callers must overwrite
// every element before reading it. The returned cleanup function hands the
// slice back to the pool and must be called once the slice is no longer used,
// typically with defer.
//
// Example:
//
//	xs, release := pool.GetFloat64Slice(len(points))
//	defer release()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	if ptr == nil {
		ptr = &[]float64{}
	}

	slice := (*ptr)[:0]
	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}
