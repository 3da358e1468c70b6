package event

const (
	OrderEventsTopic   = "order_events"
	PaymentEventsTopic = "payment_events"
)

const (
	OrderEventKindConfirmed = "confirmed"
	OrderEventKindReady     = "ready"
)

// OrderEvent fans order milestones out to side effects such as email.
type OrderEvent struct {
	Kind       string `json:"kind"`
	OrderSN    string `json:"orderSN"`
	BuyerID    int64  `json:"buyerID"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	TotalCents int64  `json:"totalCents"`
	PickupCode string `json:"pickupCode"`
}

// PaymentEvent mirrors the payment module's wire format.
type PaymentEvent struct {
	OrderSN  string `json:"orderSN"`
	IntentID string `json:"intentID"`
	Status   uint8  `json:"status"`
	Method   string `json:"method"`
}

const (
	paymentStatusSucceeded uint8 = 2
	paymentStatusFailed    uint8 = 3
	paymentStatusRefunded  uint8 = 4
)
