package lob

// Config carries the optional knobs for a book. The zero value works.
type Config struct {
	// Sink receives executed trades. Nil routes MATCH lines to stdout.
	Sink TradeSink

	// MaxOpenOrders caps resting orders. 0 means unbounded. At the cap,
	// Add returns ErrPoolExhausted and the book is unchanged.
	MaxOpenOrders int

	// MinPrice and MaxPrice bound accepted prices. Zero selects the
	// package defaults MinPrice and MaxPrice.
	MinPrice float64
	MaxPrice float64

	// MaxOrderQuantity caps a single order's quantity. Zero selects the
	// package default MaxOrderQuantity.
	MaxOrderQuantity uint64
}

// DefaultConfig returns the defaults New applies to a nil config.
func DefaultConfig() *Config {
	return &Config{}
}
