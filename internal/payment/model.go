package payment

import "errors"

// Method is the closed set of payment methods the store accepts.
type Method string

const (
	MethodPayPal     Method = "PAYPAL"
	MethodCreditCard Method = "CREDIT_CARD"
	MethodCOD        Method = "COD"
	MethodLegacy     Method = "LEGACY"
)

var ErrUnsupportedMethod = errors.New("unsupported payment type")

// ParseMethod validates a client-supplied method identifier.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodPayPal, MethodCreditCard, MethodCOD, MethodLegacy:
		return m, nil
	default:
		return "", ErrUnsupportedMethod
	}
}
