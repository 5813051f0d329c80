package model

import "sync"

// MatrixPool recycles CellMatrix backing arrays between ticks. A nil pool is
// valid and simply allocates.
type MatrixPool struct {
	pool sync.Pool
}

func NewMatrixPool() *MatrixPool {
	return &MatrixPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &CellMatrix{}
			},
		},
	}
}

// Get retrieves an all-Empty matrix with the given dimensions
func (p *MatrixPool) Get(width, height int) *CellMatrix {
	if p == nil {
		return &CellMatrix{width: width, height: height, cells: make([]Cell, width*height)}
	}

	cm := p.pool.Get().(*CellMatrix)
	cm.width = width
	cm.height = height
	if cap(cm.cells) < width*height {
		cm.cells = make([]Cell, width*height)
	} else {
		cm.cells = cm.cells[:width*height]
		clear(cm.cells)
	}
	return cm
}

// Put returns a matrix to the pool. The matrix must not be used afterwards.
func (p *MatrixPool) Put(cm *CellMatrix) {
	if p == nil || cm == nil {
		return
	}
	p.pool.Put(cm)
}
