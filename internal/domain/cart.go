package domain

import "github.com/shopspring/decimal"

// Cart domain errors.
var (
	ErrCartEmpty       = &Error{Code: EINVALID, Message: "Cart is empty"}
	ErrInvalidQuantity = &Error{Code: EINVALID, Message: "Quantity must be greater than 0"}
	ErrNoProduct       = &Error{Code: EINVALID, Message: "Product not loaded"}
)

// LineItem is one entry in the shopping cart. Name and unit price are
// snapshotted at add time and are not re-validated against the catalog at
// checkout.
type LineItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Variant   string          `json:"variant"`
	Quantity  int             `json:"quantity"`
}

// Subtotal is the line's quantity times its snapshotted unit price.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is an ordered sequence of line items, insertion order preserved.
// Repeated additions of the same (product, variant) pair stay separate
// entries; the cart never merges duplicates.
type Cart []LineItem

// Total sums quantity x unit price over all line items.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c {
		total = total.Add(li.Subtotal())
	}
	return total
}

// ItemCount sums the quantities of all line items.
func (c Cart) ItemCount() int {
	count := 0
	for _, li := range c {
		count += li.Quantity
	}
	return count
}
