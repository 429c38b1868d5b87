package lob

import "fmt"

var (
	ErrInvalidID       = fmt.Errorf("invalid order id")
	ErrInvalidPrice    = fmt.Errorf("invalid price")
	ErrInvalidQuantity = fmt.Errorf("invalid quantity")
	ErrDuplicateID     = fmt.Errorf("duplicate order id")
	ErrOrderNotFound   = fmt.Errorf("order not found")
	ErrInactiveOrder   = fmt.Errorf("order not active")
	ErrPoolExhausted   = fmt.Errorf("order pool exhausted")
)
