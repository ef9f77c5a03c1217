package ml

import "math"

type IModelCost interface {
	Cost(predicted, target float64) float64
	CostPrime(predicted, target float64) float64
}

type MSECost struct{}

func (*MSECost) Cost(predicted, target float64) float64 {
	var x = predicted - target
	return x * x
}

func (*MSECost) CostPrime(predicted, target float64) float64 {
	return 2 * (predicted - target)
}

// CrossEntropyCost is the binary cross-entropy of a single prediction.
// predicted must lie in (0,1).
type CrossEntropyCost struct{}

func (*CrossEntropyCost) Cost(predicted, target float64) float64 {
	return -(target*math.Log(predicted) + (1-target)*math.Log(1-predicted))
}

func (*CrossEntropyCost) CostPrime(predicted, target float64) float64 {
	return (predicted - target) / (predicted * (1 - predicted))
}
