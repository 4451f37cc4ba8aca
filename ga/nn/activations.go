package nn

import "math"

const (
	// Bias is the constant input every neuron multiplies its trailing weight by.
	Bias = -1.0
	// ActivationResponse is the sigmoid response used by Apply.
	ActivationResponse = 1.0
)

// Sigmoid is the logistic activation 1 / (1 + exp(-x / response)).
// Output lies in the open interval (0, 1) for finite x.
func Sigmoid(x, response float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x/response))
}
