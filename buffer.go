package kobraille

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
)

// Buffer collects cells during a transcription run. Every call to Encode
// borrows one buffer, which collects the cells of the whole text, including
// the remainders of abbreviated words. Concurrent callers produce a high
// fluctuation of short-lived buffers, so we pool them.
//
// Buffers are not safe for concurrent use. A buffer belongs to exactly one
// transcription call between BorrowBuffer and Release.
type Buffer struct {
	cells Cells
}

const initialBufferCap = 256

// Buffers are short-lived objects. To avoid multiple allocation of
// their backing arrays we will pool them.
type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			buf := &Buffer{cells: make(Cells, 0, initialBufferCap)}
			return buf, nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

// BorrowBuffer returns an empty Buffer from the pool. Clients must call
// Release when done with it.
func BorrowBuffer() *Buffer {
	o, err := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow cell buffer: %v", err)
		return &Buffer{cells: make(Cells, 0, initialBufferCap)}
	}
	buf := o.(*Buffer)
	buf.cells = buf.cells[:0]
	return buf
}

// Release clears the Buffer and puts it back into the pool.
func (buf *Buffer) Release() {
	buf.cells = buf.cells[:0]
	_ = globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, buf)
}

// Append adds cells at the end of the buffer.
func (buf *Buffer) Append(cells ...Cell) {
	buf.cells = append(buf.cells, cells...)
}

// Len is the number of cells collected so far.
func (buf *Buffer) Len() int {
	return len(buf.cells)
}

// Cells returns a copy of the collected cells. The copy stays valid after
// the buffer has been released.
func (buf *Buffer) Cells() Cells {
	out := make(Cells, len(buf.cells))
	copy(out, buf.cells)
	return out
}

// Simple stringer for debugging purposes.
func (buf *Buffer) String() string {
	if buf == nil {
		return "[nil buffer]"
	}
	return fmt.Sprintf("[buffer |%d| %s]", len(buf.cells), buf.cells)
}
