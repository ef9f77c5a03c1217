package dataset

import (
	"context"
	"log"

	"github.com/ChizhovVadim/mlbasics/pkg/ml"
	"golang.org/x/sync/errgroup"
)

func LoadSamples(
	ctx context.Context,
	datasetProvider IDatasetProvider,
) ([]Sample, error) {
	g, ctx := errgroup.WithContext(ctx)

	var samples = make(chan Sample, 128)

	g.Go(func() error {
		defer close(samples)
		return datasetProvider.Load(ctx, samples)
	})

	var result []Sample

	g.Go(func() error {
		for sample := range samples {
			result = append(result, sample)
		}
		return nil
	})

	var err = g.Wait()
	if err != nil {
		return nil, err
	}

	log.Println("loadSamples",
		"count", len(result))
	return result, nil
}

// Evaluate returns the cross-entropy of the predictions against the labels.
func Evaluate(samples []Sample) (float64, error) {
	var labels = make([]float64, len(samples))
	var predictions = make([]float64, len(samples))
	for i := range samples {
		labels[i] = samples[i].Label
		predictions[i] = samples[i].Prediction
	}
	return ml.CrossEntropy(labels, predictions)
}
