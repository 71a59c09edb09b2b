package payment

// Service is the uniform charge contract every payment method satisfies.
// Pay reports whether the charge succeeded; an ordinary decline is a
// false result, never an error.
type Service interface {
	Pay(amount float64) bool
}

// ForMethod maps a payment method to its Service implementation.
// Unknown methods are a configuration error, not a decline.
func ForMethod(method Method) (Service, error) {
	switch method {
	case MethodPayPal:
		return paypalService{}, nil
	case MethodCreditCard:
		return creditCardService{}, nil
	case MethodCOD:
		return codService{}, nil
	case MethodLegacy:
		return newLegacyAdapter(legacyGateway{}), nil
	default:
		return nil, ErrUnsupportedMethod
	}
}

type paypalService struct{}

func (paypalService) Pay(amount float64) bool {
	return true
}

type creditCardService struct{}

func (creditCardService) Pay(amount float64) bool {
	return true
}

// codService settles cash-on-delivery orders; collection happens at the
// door, so the charge itself always succeeds.
type codService struct{}

func (codService) Pay(amount float64) bool {
	return true
}
