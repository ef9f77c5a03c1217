package main

import (
	"context"
	"fmt"
	"io"

	"github.com/ChizhovVadim/mlbasics/internal/dataset"
	"github.com/ChizhovVadim/mlbasics/pkg/ml"
	"github.com/pkg/errors"
)

func runDemo(w io.Writer) error {
	simpleEntropy, err := ml.SimpleEntropy(4, 10)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "simple entropy (4, 10):", simpleEntropy)

	err = runEntropy(w, []float64{8, 3, 2})
	if err != nil {
		return err
	}

	ce, err := ml.CrossEntropy([]float64{1, 0, 1, 1}, []float64{0.4, 0.6, 0.1, 0.5})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "cross entropy:", ce)

	err = runSoftmax(w, []float64{5, 6, 7})
	if err != nil {
		return err
	}

	var perceptron = ml.NewPerceptron([]float64{3, 5}, -2.2)
	prediction, err := perceptron.Predict([]float64{0.4, 0.6})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "perceptron:", prediction)

	for _, x := range []float64{-2, -20} {
		fmt.Fprintf(w, "sigmoid(%v): %v\n", x, ml.Sigmoid(x))
	}
	return nil
}

func runCrossEntropy(ctx context.Context, w io.Writer, path string) error {
	if path == "" {
		return errors.New("crossentropy: -path is required")
	}
	samples, err := dataset.LoadSamples(ctx, &dataset.FileProvider{FilePath: path})
	if err != nil {
		return err
	}
	ce, err := dataset.Evaluate(samples)
	if err != nil {
		return err
	}
	logger.Println("runCrossEntropy",
		"path", path,
		"samples", len(samples))
	fmt.Fprintln(w, "cross entropy:", ce)
	return nil
}

func runSoftmax(w io.Writer, values []float64) error {
	var result, err = ml.Softmax(values)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "softmax", values, ":", result)
	return nil
}

func runEntropy(w io.Writer, values []float64) error {
	var result, err = ml.Entropy(values)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "entropy", values, ":", result)
	return nil
}
