package lob

// Side represents order side (buy/sell)
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

// Price and quantity limits enforced on every add and amend.
const (
	MinPrice         = 0.01
	MaxPrice         = 1_000_000.0
	MaxOrderQuantity = 1_000_000
)

// Order is both the submission record and the resting node. Add copies the
// public fields into a pooled node the book owns; everything past them is
// queue linkage and belongs to the book. Timestamp is nanoseconds supplied
// by the client and is consulted only when choosing a trade price; queue
// order inside a level is arrival order, never timestamp order.
type Order struct {
	ID        uint64
	Side      Side
	Price     float64
	Quantity  uint64 // remaining
	Timestamp uint64 // client time in ns, breaks trade price ties

	next, prev *Order
	level      *level
	active     bool
}

// OrderInfo is the caller-visible copy of a resting order's state.
type OrderInfo struct {
	ID        uint64
	Side      Side
	Price     float64
	Quantity  uint64
	Timestamp uint64
}
