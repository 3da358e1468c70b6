package event

const PaymentEventsTopic = "payment_events"

// PaymentEvent stays minimal: the order module re-reads whatever else it
// needs by order SN.
type PaymentEvent struct {
	OrderSN  string `json:"orderSN"`
	IntentID string `json:"intentID"`
	Status   uint8  `json:"status"`
	// Method is the human-readable instrument summary, e.g. "visa **** 4242".
	Method string `json:"method"`
}
