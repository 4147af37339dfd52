package domain

// OrderRequest is the payload for the order-creation endpoint: the full
// line-item sequence of the cart being submitted.
type OrderRequest struct {
	Items []LineItem `json:"items"`
}

// OrderConfirmation is the service's response to a successful order.
type OrderConfirmation struct {
	ID      string `json:"_id,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}
