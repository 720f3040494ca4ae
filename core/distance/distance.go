// core/distance/distance.go
package distance

import (
	"context"
	"math"
	"runtime"

	"github.com/acorg/christian-beast/core/table"
	"golang.org/x/sync/errgroup"
)

// Config holds computation parameters.
type Config struct {
	// Raw skips the log10 transform and differences the plain values. No
	// positivity constraint applies in raw mode.
	Raw bool
	// Workers caps concurrent feature computations in AllFeatures. Zero or
	// negative means one worker per CPU.
	Workers int
}

// Computer computes distance sequences and matrices. The zero value is
// usable: log10 transform on, one worker per CPU.
type Computer struct {
	cfg Config
}

// New returns a Computer with the given configuration.
func New(cfg Config) *Computer {
	return &Computer{cfg: cfg}
}

// FeatureDistances pairs a feature name with its flattened upper-triangular
// distance sequence.
type FeatureDistances struct {
	Name   string
	Values []float64
}

// scaled returns feature f's column ready for differencing: the raw values in
// raw mode, otherwise their base-10 logarithms. Non-positive values are
// rejected before math.Log10 ever sees them, so no NaN or -Inf can leak into
// the results.
func (c *Computer) scaled(t *table.Table, f int) ([]float64, error) {
	col := t.Column(f)
	if c.cfg.Raw {
		return col, nil
	}
	for i, v := range col {
		if v <= 0 {
			return nil, &DomainError{Feature: t.Features[f], Taxon: t.Taxa[i], Row: i, Value: v}
		}
		col[i] = math.Log10(v)
	}
	return col, nil
}

// Feature computes the flattened upper-triangular distance sequence for
// feature f: x[i]-x[j] for every pair i < j, signs kept. With N taxa the
// result has N*(N-1)/2 entries; a single taxon yields an empty sequence.
func (c *Computer) Feature(t *table.Table, f int) ([]float64, error) {
	x, err := c.scaled(t, f)
	if err != nil {
		return nil, err
	}
	return upperTriangle(x), nil
}

// MatrixFor computes the full square distance matrix for feature f. The
// diagonal is zero and entry (i,j) is the negation of entry (j,i).
func (c *Computer) MatrixFor(t *table.Table, f int) ([][]float64, error) {
	x, err := c.scaled(t, f)
	if err != nil {
		return nil, err
	}
	m := make([][]float64, len(x))
	for i := range x {
		row := make([]float64, len(x))
		for j := range x {
			row[j] = x[i] - x[j]
		}
		m[i] = row
	}
	return m, nil
}

// AllFeatures computes every feature's distance sequence, in table column
// order. Features are independent, so they are computed concurrently up to
// the worker cap; results land in their own slots and on failure the error
// of the lowest-index failing feature is reported. Output and errors are
// therefore identical whatever the worker count.
func (c *Computer) AllFeatures(ctx context.Context, t *table.Table) ([]FeatureDistances, error) {
	workers := c.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	out := make([]FeatureDistances, len(t.Features))
	errs := make([]error, len(t.Features))

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for f := range t.Features {
		if ctx.Err() != nil {
			break
		}
		f := f
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			values, err := c.Feature(t, f)
			if err != nil {
				errs[f] = err
				return nil
			}
			out[f] = FeatureDistances{Name: t.Features[f], Values: values}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FeatureMatrix pairs a feature name with its full square distance matrix.
type FeatureMatrix struct {
	Name   string
	Values [][]float64
}

// Matrices computes full distance matrices for the given feature indices,
// with the same worker cap and deterministic error selection as AllFeatures.
func (c *Computer) Matrices(ctx context.Context, t *table.Table, features []int) ([]FeatureMatrix, error) {
	workers := c.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	out := make([]FeatureMatrix, len(features))
	errs := make([]error, len(features))

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i, f := range features {
		if ctx.Err() != nil {
			break
		}
		i, f := i, f
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			m, err := c.MatrixFor(t, f)
			if err != nil {
				errs[i] = err
				return nil
			}
			out[i] = FeatureMatrix{Name: t.Features[f], Values: m}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func upperTriangle(x []float64) []float64 {
	n := len(x)
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, x[i]-x[j])
		}
	}
	return out
}
