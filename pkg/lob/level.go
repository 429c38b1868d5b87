package lob

// level is one price on one side: a FIFO queue of orders plus the
// aggregates snapshots report. Orders link through their own next/prev
// fields so queue surgery never allocates.
type level struct {
	price         float64
	totalQuantity uint64
	orderCount    int
	head, tail    *Order
}

// append places o at the back of the queue. Arrival order is fill order.
func (l *level) append(o *Order) {
	o.level = l
	o.active = true
	o.next = nil
	o.prev = l.tail
	if l.tail != nil {
		l.tail.next = o
	} else {
		l.head = o
	}
	l.tail = o
	l.totalQuantity += o.Quantity
	l.orderCount++
}

// remove unlinks o and deactivates it. A node already taken out is a no-op,
// so double removal is harmless.
func (l *level) remove(o *Order) {
	if !o.active {
		return
	}
	o.active = false
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		l.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		l.tail = o.prev
	}
	o.next = nil
	o.prev = nil
	o.level = nil
	l.totalQuantity -= o.Quantity
	l.orderCount--
}

// reduce takes by units off o and the level aggregates. The caller keeps
// by within the order's remaining quantity.
func (l *level) reduce(o *Order, by uint64) {
	o.Quantity -= by
	l.totalQuantity -= by
}

// updateQuantity rewrites o's remaining quantity in place, keeping its
// queue position.
func (l *level) updateQuantity(o *Order, newQty uint64) {
	l.totalQuantity = l.totalQuantity - o.Quantity + newQty
	o.Quantity = newQty
}

func (l *level) empty() bool {
	return l.orderCount == 0
}
