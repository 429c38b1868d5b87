package lob

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamSinkFormat(t *testing.T) {
	var buf bytes.Buffer
	sink := NewStreamSink(&buf)

	sink.OnTrade(Trade{ID: 1, Price: 100.60, Quantity: 200, BidOrderID: 5, AskOrderID: 4})
	assert.Equal(t, "MATCH: 200 @ 100.6 (Bid: 5, Ask: 4)\n", buf.String())

	buf.Reset()
	sink.OnTrade(Trade{ID: 2, Price: 100.00, Quantity: 50, BidOrderID: 21, AskOrderID: 20})
	assert.Equal(t, "MATCH: 50 @ 100 (Bid: 21, Ask: 20)\n", buf.String())

	buf.Reset()
	sink.OnTrade(Trade{ID: 3, Price: 0.25, Quantity: 1, BidOrderID: 1, AskOrderID: 2})
	assert.Equal(t, "MATCH: 1 @ 0.25 (Bid: 1, Ask: 2)\n", buf.String())
}

func TestStreamSinkWiredToBook(t *testing.T) {
	var buf bytes.Buffer
	book := New("WIRE", &Config{Sink: NewStreamSink(&buf)})

	_, err := book.Add(Order{ID: 4, Side: Sell, Price: 100.60, Quantity: 300, Timestamp: 1})
	require.NoError(t, err)
	_, err = book.Add(Order{ID: 5, Side: Buy, Price: 100.80, Quantity: 200, Timestamp: 2})
	require.NoError(t, err)

	assert.Equal(t, "MATCH: 200 @ 100.6 (Bid: 5, Ask: 4)\n", buf.String())
}

func TestCollectorSink(t *testing.T) {
	c := &CollectorSink{}
	c.OnTrade(Trade{ID: 1, Quantity: 10})
	c.OnTrade(Trade{ID: 2, Quantity: 20})

	require.Len(t, c.Trades, 2)
	assert.Equal(t, uint64(1), c.Trades[0].ID)
	assert.Equal(t, uint64(2), c.Trades[1].ID)

	c.Reset()
	assert.Empty(t, c.Trades)
}

func TestMultiSinkFansOut(t *testing.T) {
	var order []string
	first := TradeSinkFunc(func(t Trade) { order = append(order, "first") })
	second := TradeSinkFunc(func(t Trade) { order = append(order, "second") })

	MultiSink(first, second).OnTrade(Trade{ID: 1})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestTradeSinkFuncAdapter(t *testing.T) {
	var got Trade
	var sink TradeSink = TradeSinkFunc(func(t Trade) { got = t })
	sink.OnTrade(Trade{ID: 42, Price: 100.50})
	assert.Equal(t, uint64(42), got.ID)
	assert.Equal(t, 100.50, got.Price)
}
