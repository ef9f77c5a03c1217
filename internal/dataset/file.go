package dataset

import (
	"bufio"
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FileProvider reads samples from a text file with one "label,prediction"
// pair per line. Blank lines and lines starting with '#' are skipped.
type FileProvider struct {
	FilePath string
}

func (dp *FileProvider) Load(
	ctx context.Context,
	samples chan<- Sample,
) error {
	file, err := os.Open(dp.FilePath)
	if err != nil {
		return err
	}
	defer file.Close()

	var scanner = bufio.NewScanner(file)
	var lineNumber int
	for scanner.Scan() {
		lineNumber++
		var s = strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}

		sample, err := parseSample(s)
		if err != nil {
			return errors.Wrapf(err, "%v:%v", dp.FilePath, lineNumber)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case samples <- sample:
		}
	}

	return scanner.Err()
}

func parseSample(s string) (Sample, error) {
	var fields = strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return Sample{}, errors.Errorf("parseSample failed %q", s)
	}
	label, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Sample{}, errors.Wrap(err, "parse label")
	}
	prediction, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Sample{}, errors.Wrap(err, "parse prediction")
	}
	return Sample{
		Label:      label,
		Prediction: prediction,
	}, nil
}
