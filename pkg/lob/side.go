package lob

import "github.com/tidwall/btree"

// bookSide indexes one side's price levels. Both sides share the type; the
// comparator bakes the direction in, so Min is always the top of book
// (highest bid, lowest ask).
type bookSide struct {
	levels *btree.BTreeG[*level]
	less   func(a, b *level) bool
}

func newBookSide(s Side) *bookSide {
	less := func(a, b *level) bool { return a.price < b.price }
	if s == Buy {
		less = func(a, b *level) bool { return a.price > b.price }
	}
	return &bookSide{levels: btree.NewBTreeG[*level](less), less: less}
}

// get returns the level at price, or nil.
func (bs *bookSide) get(price float64) *level {
	l, ok := bs.levels.Get(&level{price: price})
	if !ok {
		return nil
	}
	return l
}

// getOrCreate returns the level at price, pulling a fresh one from the
// pool when absent.
func (bs *bookSide) getOrCreate(price float64) *level {
	if l := bs.get(price); l != nil {
		return l
	}
	l := levelPool.Get().(*level)
	l.price = price
	bs.levels.Set(l)
	return l
}

// drop removes an emptied level from the index and recycles it.
func (bs *bookSide) drop(l *level) {
	bs.levels.Delete(l)
	*l = level{}
	levelPool.Put(l)
}

// best returns the top level, or nil when the side is empty.
func (bs *bookSide) best() *level {
	l, ok := bs.levels.Min()
	if !ok {
		return nil
	}
	return l
}

func (bs *bookSide) len() int {
	return bs.levels.Len()
}

// scan walks levels best-first while fn returns true.
func (bs *bookSide) scan(fn func(*level) bool) {
	bs.levels.Scan(fn)
}

// clear recycles every level and leaves the side empty. Callers empty the
// level queues first.
func (bs *bookSide) clear() {
	bs.levels.Scan(func(l *level) bool {
		*l = level{}
		levelPool.Put(l)
		return true
	})
	bs.levels = btree.NewBTreeG[*level](bs.less)
}
