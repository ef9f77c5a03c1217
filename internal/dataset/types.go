package dataset

import "context"

// Sample is a ground-truth label and the predicted probability for it.
type Sample struct {
	Label      float64
	Prediction float64
}

type IDatasetProvider interface {
	Load(ctx context.Context, samples chan<- Sample) error
}
