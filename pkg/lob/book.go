// Package lob implements a single-symbol limit order book with
// price-time priority matching.
package lob

import (
	"math"
	"os"
)

// Book is a limit order book for one symbol. It is not safe for concurrent
// use: the book is single-writer and the caller owns serialization. The
// core consults no clock; given the same submissions with the same client
// timestamps, two books trade identically.
type Book struct {
	symbol string

	bids *bookSide
	asks *bookSide
	byID map[uint64]*Order

	pool *orderPool
	sink TradeSink

	minPrice    float64
	maxPrice    float64
	maxQuantity uint64

	version     uint64
	lastTradeID uint64
	matching    bool
	maxStamp    uint64
}

// New creates an empty book for symbol. cfg may be nil, which selects
// MATCH lines on stdout, the default price and quantity limits, and no
// cap on open orders.
func New(symbol string, cfg *Config) *Book {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	sink := cfg.Sink
	if sink == nil {
		sink = NewStreamSink(os.Stdout)
	}
	minPrice := cfg.MinPrice
	if minPrice == 0 {
		minPrice = MinPrice
	}
	maxPrice := cfg.MaxPrice
	if maxPrice == 0 {
		maxPrice = MaxPrice
	}
	maxQuantity := cfg.MaxOrderQuantity
	if maxQuantity == 0 {
		maxQuantity = MaxOrderQuantity
	}
	return &Book{
		symbol:      symbol,
		bids:        newBookSide(Buy),
		asks:        newBookSide(Sell),
		byID:        make(map[uint64]*Order),
		pool:        newOrderPool(cfg.MaxOpenOrders),
		sink:        sink,
		minPrice:    minPrice,
		maxPrice:    maxPrice,
		maxQuantity: maxQuantity,
	}
}

// Add validates o, rests a copy of it at the tail of its price level, then
// matches. Trades the add produced come back in execution order and reach
// the sink as they occur. A rejected add leaves the book untouched,
// version included.
func (b *Book) Add(o Order) ([]Trade, error) {
	if err := b.validate(o.ID, o.Price, o.Quantity); err != nil {
		return nil, err
	}
	if _, ok := b.byID[o.ID]; ok {
		return nil, ErrDuplicateID
	}
	n := b.pool.acquire()
	if n == nil {
		return nil, ErrPoolExhausted
	}
	n.ID = o.ID
	n.Side = o.Side
	n.Price = o.Price
	n.Quantity = o.Quantity
	n.Timestamp = o.Timestamp
	if o.Timestamp > b.maxStamp {
		b.maxStamp = o.Timestamp
	}

	b.sideFor(o.Side).getOrCreate(o.Price).append(n)
	b.byID[o.ID] = n
	b.version++

	return b.match(), nil
}

// Cancel removes a resting order. An id that resolves to an inactive node
// is dropped from the index and reported ErrInactiveOrder, so a stale
// entry is never left behind.
func (b *Book) Cancel(id uint64) error {
	if id == 0 {
		return ErrInvalidID
	}
	o, ok := b.byID[id]
	if !ok {
		return ErrOrderNotFound
	}
	delete(b.byID, id)
	if !o.active {
		return ErrInactiveOrder
	}
	b.detach(o)
	b.pool.release(o)
	b.version++
	return nil
}

// Amend changes a resting order's price and/or quantity. A same-price
// amend rewrites quantity in place and keeps queue position. A price
// change moves the order to the tail of the new level and restamps it
// past every timestamp the book has accepted, so it competes like a
// fresh arrival, and trades immediately when the new price crosses.
func (b *Book) Amend(id uint64, newPrice float64, newQty uint64) ([]Trade, error) {
	o, ok := b.byID[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	if !o.active {
		delete(b.byID, id)
		return nil, ErrInactiveOrder
	}
	if err := b.validate(id, newPrice, newQty); err != nil {
		return nil, err
	}

	if o.Price == newPrice {
		o.level.updateQuantity(o, newQty)
		b.version++
		return nil, nil
	}

	b.detach(o)
	o.Price = newPrice
	o.Quantity = newQty
	b.maxStamp++
	o.Timestamp = b.maxStamp
	b.sideFor(o.Side).getOrCreate(newPrice).append(o)
	b.version++

	return b.match(), nil
}

// BestBid returns the highest bid price, 0 with no bids.
func (b *Book) BestBid() float64 {
	if l := b.bids.best(); l != nil {
		return l.price
	}
	return 0
}

// BestAsk returns the lowest ask price, +Inf with no asks.
func (b *Book) BestAsk() float64 {
	if l := b.asks.best(); l != nil {
		return l.price
	}
	return math.Inf(1)
}

// Spread returns BestAsk - BestBid, or 0 when the ask side is empty so the
// infinite sentinel never leaks into arithmetic.
func (b *Book) Spread() float64 {
	if b.asks.len() == 0 {
		return 0
	}
	return b.BestAsk() - b.BestBid()
}

// Len returns the number of resting orders.
func (b *Book) Len() int {
	return len(b.byID)
}

// BidLevels returns the number of occupied bid price levels.
func (b *Book) BidLevels() int {
	return b.bids.len()
}

// AskLevels returns the number of occupied ask price levels.
func (b *Book) AskLevels() int {
	return b.asks.len()
}

// Version returns the mutation counter: +1 per successful add, cancel or
// amend, untouched by rejections and queries.
func (b *Book) Version() uint64 {
	return b.version
}

// Symbol returns the label the book was created with.
func (b *Book) Symbol() string {
	return b.symbol
}

// GetOrder reports a resting order's current state by id.
func (b *Book) GetOrder(id uint64) (OrderInfo, bool) {
	o, ok := b.byID[id]
	if !ok || !o.active {
		return OrderInfo{}, false
	}
	return OrderInfo{
		ID:        o.ID,
		Side:      o.Side,
		Price:     o.Price,
		Quantity:  o.Quantity,
		Timestamp: o.Timestamp,
	}, true
}

// match crosses the book while the best bid meets the best ask. The heads
// of the two best levels trade min(remaining); price follows the earlier
// timestamp, bid on a tie. Each trade's fills settle before the sink sees
// it and re-entry is a no-op, so a sink may mutate the book but never
// recurse the matcher.
func (b *Book) match() []Trade {
	if b.matching {
		return nil
	}
	b.matching = true
	defer func() { b.matching = false }()

	var trades []Trade
	for {
		bidLevel := b.bids.best()
		askLevel := b.asks.best()
		if bidLevel == nil || askLevel == nil || bidLevel.price < askLevel.price {
			break
		}
		bid := bidLevel.head
		ask := askLevel.head
		if bid == nil || ask == nil || !bid.active || !ask.active {
			// A linked level always has an active head; halt rather than
			// trade on a broken queue.
			break
		}

		qty := bid.Quantity
		if ask.Quantity < qty {
			qty = ask.Quantity
		}
		price := ask.Price
		if bid.Timestamp <= ask.Timestamp {
			price = bid.Price
		}

		b.lastTradeID++
		t := Trade{
			ID:         b.lastTradeID,
			Price:      price,
			Quantity:   qty,
			BidOrderID: bid.ID,
			AskOrderID: ask.ID,
		}
		trades = append(trades, t)

		// Settle both fills before the sink hears about the trade. The
		// loop re-reads the best levels afterwards, so a sink that
		// cancels or amends mid-pass mutates a settled book and the
		// matcher never holds a released node.
		b.fill(bid, qty)
		b.fill(ask, qty)
		b.sink.OnTrade(t)
	}
	return trades
}

// fill applies qty against o, retiring the node once nothing remains.
func (b *Book) fill(o *Order, qty uint64) {
	o.level.reduce(o, qty)
	if o.Quantity == 0 {
		delete(b.byID, o.ID)
		b.detach(o)
		b.pool.release(o)
	}
}

// detach unlinks o from its level and drops the level once it empties.
// The node itself stays alive for the caller.
func (b *Book) detach(o *Order) {
	l := o.level
	side := b.sideFor(o.Side)
	l.remove(o)
	if l.empty() {
		side.drop(l)
	}
}

func (b *Book) sideFor(s Side) *bookSide {
	if s == Buy {
		return b.bids
	}
	return b.asks
}

// Reset empties the book, handing every order node and level back to the
// pools, and starts the counters over. The book comes out exactly as New
// left it and can be fed again.
func (b *Book) Reset() {
	for id, o := range b.byID {
		delete(b.byID, id)
		o.level.remove(o)
		b.pool.release(o)
	}
	b.bids.clear()
	b.asks.clear()
	b.version = 0
	b.lastTradeID = 0
	b.maxStamp = 0
}

func (b *Book) validate(id uint64, price float64, qty uint64) error {
	if id == 0 {
		return ErrInvalidID
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < b.minPrice || price > b.maxPrice {
		return ErrInvalidPrice
	}
	if qty == 0 || qty > b.maxQuantity {
		return ErrInvalidQuantity
	}
	return nil
}
