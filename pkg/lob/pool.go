package lob

import "sync"

// levelPool recycles price levels across books. Levels are zeroed on
// release so a recycled level never carries stale links.
var levelPool = &sync.Pool{
	New: func() interface{} {
		return &level{}
	},
}

// orderPool recycles order nodes for one book. cap 0 means unbounded;
// with a cap set, acquire fails once live nodes reach it and the caller
// surfaces ErrPoolExhausted.
type orderPool struct {
	pool sync.Pool
	live int
	cap  int
}

func newOrderPool(cap int) *orderPool {
	return &orderPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Order{}
			},
		},
		cap: cap,
	}
}

func (p *orderPool) acquire() *Order {
	if p.cap > 0 && p.live >= p.cap {
		return nil
	}
	p.live++
	return p.pool.Get().(*Order)
}

func (p *orderPool) release(o *Order) {
	*o = Order{}
	p.live--
	p.pool.Put(o)
}
