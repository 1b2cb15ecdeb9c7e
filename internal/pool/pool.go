// Package pool holds sync.Pools for the allocations made on every frame.
package pool

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
)

var stringBuilderPool = sync.Pool{
	New: func() any { return &strings.Builder{} },
}

// GetStringBuilder returns an empty builder.
func GetStringBuilder() *strings.Builder {
	return stringBuilderPool.Get().(*strings.Builder)
}

// PutStringBuilder resets sb and returns it to the pool.
func PutStringBuilder(sb *strings.Builder) {
	sb.Reset()
	stringBuilderPool.Put(sb)
}

var layerSlicePool = sync.Pool{
	New: func() any {
		s := make([]*lipgloss.Layer, 0, 32)
		return &s
	},
}

// GetLayerSlice returns a layer slice with length zero.
func GetLayerSlice() *[]*lipgloss.Layer {
	s := layerSlicePool.Get().(*[]*lipgloss.Layer)
	*s = (*s)[:0]
	return s
}

// PutLayerSlice returns s to the pool. Slices that grew very large are
// dropped.
func PutLayerSlice(s *[]*lipgloss.Layer) {
	if cap(*s) > 1024 {
		return
	}
	clear((*s)[:cap(*s)])
	layerSlicePool.Put(s)
}
