package ml

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Perceptron is a single linear unit followed by an activation.
// A nil Activation means sigmoid.
type Perceptron struct {
	Weights    []float64
	Bias       float64
	Activation IActivationFn
}

func NewPerceptron(weights []float64, bias float64) *Perceptron {
	return &Perceptron{
		Weights:    weights,
		Bias:       bias,
		Activation: &SigmoidActivation{},
	}
}

// Score returns w·x + b.
func (p *Perceptron) Score(x []float64) (float64, error) {
	if len(x) != len(p.Weights) {
		return 0, errors.Wrapf(ErrShape, "perceptron has %v weights, got %v inputs", len(p.Weights), len(x))
	}
	return floats.Dot(p.Weights, x) + p.Bias, nil
}

func (p *Perceptron) Predict(x []float64) (float64, error) {
	var score, err = p.Score(x)
	if err != nil {
		return 0, err
	}
	if p.Activation == nil {
		return Sigmoid(score), nil
	}
	return p.Activation.Sigma(score), nil
}
