package lob

import (
	"fmt"
	"io"
)

// Trade represents one fill between the best bid and the best ask. Price
// follows the earlier-arriving order; on equal timestamps the bid wins.
type Trade struct {
	ID         uint64
	Price      float64
	Quantity   uint64
	BidOrderID uint64
	AskOrderID uint64
}

// TradeSink receives each trade as the matcher produces it, after the
// trade's fills have settled in the book. A sink may re-enter the book:
// matching cannot recurse, orders it adds rest until the current pass
// ends, and cancels or amends land before the matcher pairs the next
// trade.
type TradeSink interface {
	OnTrade(Trade)
}

// TradeSinkFunc adapts a function to the TradeSink interface.
type TradeSinkFunc func(Trade)

func (f TradeSinkFunc) OnTrade(t Trade) { f(t) }

type streamSink struct {
	w io.Writer
}

// NewStreamSink returns a sink printing one line per trade:
//
//	MATCH: 200 @ 100.6 (Bid: 5, Ask: 4)
func NewStreamSink(w io.Writer) TradeSink {
	return &streamSink{w: w}
}

func (s *streamSink) OnTrade(t Trade) {
	fmt.Fprintf(s.w, "MATCH: %d @ %s (Bid: %d, Ask: %d)\n",
		t.Quantity, formatPrice(t.Price), t.BidOrderID, t.AskOrderID)
}

// CollectorSink accumulates trades in execution order.
type CollectorSink struct {
	Trades []Trade
}

func (c *CollectorSink) OnTrade(t Trade) {
	c.Trades = append(c.Trades, t)
}

// Reset drops collected trades.
func (c *CollectorSink) Reset() {
	c.Trades = c.Trades[:0]
}

// MultiSink fans each trade out to every sink in order.
func MultiSink(sinks ...TradeSink) TradeSink {
	return TradeSinkFunc(func(t Trade) {
		for _, s := range sinks {
			s.OnTrade(t)
		}
	})
}
