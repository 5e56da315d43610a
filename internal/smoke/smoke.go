// Package smoke checks the terbilang converter against case files and
// sweeps over integer ranges.
//
// A case file is YAML:
//
//	cases:
//	  - name: default style
//	    input: 1057
//	    want: Seribu lima puluh tujuh
//	  - name: comma decimal
//	    input: "305,07"
//	    style: lower
//	    decimal: digit
//	    want: tiga ratus lima koma nol tujuh
//
// Quote inputs that must stay strings; unquoted numbers reach the converter
// as int or float64, null as nil.
package smoke

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/az-ai-labs/id-lang-nlp/terbilang"
)

const (
	// MaxSweep is the exclusive upper bound for Sweep; larger integers have
	// no word form to check.
	MaxSweep int64 = 1_000_000_000_000_000

	chunkSize = 4096 // integers per worker batch
)

// ErrRange is returned by Sweep for an empty or out-of-bounds range.
var ErrRange = errors.New("smoke: invalid range")

// wordForm matches lowercase letter tokens joined by single spaces.
var wordForm = regexp.MustCompile(`^[a-z]+( [a-z]+)*$`)

// Case is one expected conversion.
type Case struct {
	Name    string `yaml:"name"`
	Input   any    `yaml:"input"`
	Style   string `yaml:"style"`
	Decimal string `yaml:"decimal"`
	Want    string `yaml:"want"`
}

// Options returns the converter options named by c.
func (c Case) Options() terbilang.Options {
	return terbilang.Options{
		Style:   terbilang.ParseStyle(c.Style),
		Decimal: terbilang.ParseDecimalMode(c.Decimal),
	}
}

// Failure describes one failed check.
type Failure struct {
	Name  string
	Input string
	Got   string
	Want  string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: input %s: got %q, want %q", f.Name, f.Input, f.Got, f.Want)
}

// Report summarizes a run.
type Report struct {
	Checked  int
	Failures []Failure
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	return len(r.Failures) == 0
}

type caseFile struct {
	Cases []Case `yaml:"cases"`
}

// LoadCases decodes a YAML case file. Cases without a name are named by
// their position.
func LoadCases(r io.Reader) ([]Case, error) {
	var f caseFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("smoke: decoding cases: %w", err)
	}
	for i := range f.Cases {
		if f.Cases[i].Name == "" {
			f.Cases[i].Name = fmt.Sprintf("case %d", i+1)
		}
	}
	return f.Cases, nil
}

// RunCases converts every case and compares the result with its Want.
func RunCases(cases []Case) Report {
	var r Report
	for _, c := range cases {
		r.Checked++
		got := terbilang.Terbilang(c.Input, c.Options())
		if got != c.Want {
			r.Failures = append(r.Failures, Failure{
				Name:  c.Name,
				Input: fmt.Sprintf("%#v", c.Input),
				Got:   got,
				Want:  c.Want,
			})
		}
	}
	return r
}

// Sweep checks every integer in [from, to): the lowercase text must consist
// of single-spaced letter tokens and parse back to the same integer.
// Work is split into batches processed by up to workers goroutines.
// Cancelling ctx stops the sweep and returns the partial report with
// ctx.Err().
func Sweep(ctx context.Context, from, to int64, workers int) (Report, error) {
	if from > to || from <= -MaxSweep || to > MaxSweep {
		return Report{}, fmt.Errorf("%w: [%d, %d)", ErrRange, from, to)
	}
	if workers < 1 {
		workers = 1
	}

	var (
		mu     sync.Mutex
		report Report
		wg     sync.WaitGroup
	)
	semaphore := make(chan struct{}, workers)

	for lo := from; lo < to; lo += chunkSize {
		hi := min(lo+chunkSize, to)

		if err := ctx.Err(); err != nil {
			wg.Wait()
			return report, err
		}
		select {
		case <-ctx.Done():
			wg.Wait()
			return report, ctx.Err()
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(lo, hi int64) {
			defer wg.Done()
			defer func() { <-semaphore }()

			batch := checkRange(lo, hi)

			mu.Lock()
			report.Checked += batch.Checked
			report.Failures = append(report.Failures, batch.Failures...)
			mu.Unlock()
		}(lo, hi)
	}

	wg.Wait()
	return report, nil
}

func checkRange(lo, hi int64) Report {
	var r Report
	for n := lo; n < hi; n++ {
		r.Checked++
		if f, ok := checkInt(n); !ok {
			r.Failures = append(r.Failures, f)
		}
	}
	return r
}

// checkInt verifies the word form and round trip of n.
func checkInt(n int64) (Failure, bool) {
	text := terbilang.Convert(n)
	input := fmt.Sprintf("%d", n)

	if !wordForm.MatchString(text) {
		return Failure{Name: "word form", Input: input, Got: text, Want: "lowercase single-spaced words"}, false
	}

	got, err := terbilang.Parse(text)
	if err != nil {
		return Failure{Name: "round trip", Input: input, Got: err.Error(), Want: input}, false
	}
	if got != n {
		return Failure{Name: "round trip", Input: input, Got: fmt.Sprintf("%d", got), Want: input}, false
	}
	return Failure{}, true
}
