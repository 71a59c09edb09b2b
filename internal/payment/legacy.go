package payment

// legacyCharger is the shape of the old gateway: a numeric status code
// instead of a boolean, 1 for success and 0 for failure.
type legacyCharger interface {
	makePayment(amount float64) int
}

type legacyGateway struct{}

func (legacyGateway) makePayment(amount float64) int {
	if amount > 0 {
		return 1
	}
	return 0
}

// legacyAdapter exposes the old gateway through the Service contract.
type legacyAdapter struct {
	gateway legacyCharger
}

func newLegacyAdapter(g legacyCharger) legacyAdapter {
	return legacyAdapter{gateway: g}
}

func (a legacyAdapter) Pay(amount float64) bool {
	return a.gateway.makePayment(amount) == 1
}
