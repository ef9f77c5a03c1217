package main

import (
	"context"
	"log"
	"os"
)

var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

func main() {
	var err = run()
	if err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func run() error {
	var cli = NewCli()
	cli.AddCommand("demo", func() error {
		return runDemo(os.Stdout)
	})
	cli.AddCommand("crossentropy", func() error {
		var path = cli.Params().GetString("path", "")
		return runCrossEntropy(context.Background(), os.Stdout, path)
	})
	cli.AddCommand("softmax", func() error {
		var values, err = cli.Params().GetFloats("values", []float64{5, 6, 7})
		if err != nil {
			return err
		}
		return runSoftmax(os.Stdout, values)
	})
	cli.AddCommand("entropy", func() error {
		var values, err = cli.Params().GetFloats("values", []float64{8, 3, 2})
		if err != nil {
			return err
		}
		return runEntropy(os.Stdout, values)
	})
	return cli.Execute()
}
