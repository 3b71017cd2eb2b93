package stats

import (
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Finite returns the values of x that are neither NaN nor infinite.
func Finite(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

// Mean computes the average of the finite values of x. NaN when there are none.
func Mean(x []float64) float64 {
	f := Finite(x)
	if len(f) == 0 {
		return math.NaN()
	}
	return stat.Mean(f, nil)
}

// Std computes the population standard deviation of the finite values of x.
func Std(x []float64) float64 {
	f := Finite(x)
	if len(f) == 0 {
		return math.NaN()
	}
	_, std := stat.PopMeanStdDev(f, nil)
	return std
}

// Median returns the median of the finite values of x.
func Median(x []float64) (float64, error) {
	return mstats.Median(Finite(x))
}

// MinMax returns the minimum and maximum finite values in the slice.
func MinMax(x []float64) (float64, float64) {
	f := Finite(x)
	if len(f) == 0 {
		return math.NaN(), math.NaN()
	}
	lo, _ := mstats.Min(f)
	hi, _ := mstats.Max(f)
	return lo, hi
}

// ModeString returns the most frequent non-empty value. Ties go to the
// lexically smallest value. ok is false when every value is empty.
func ModeString(x []string) (mode string, ok bool) {
	counts := make(map[string]int)
	for _, v := range x {
		if v != "" {
			counts[v]++
		}
	}
	best := -1
	for v, c := range counts {
		if c > best || (c == best && v < mode) {
			mode, best = v, c
		}
	}
	return mode, best > 0
}

// Count is the number of occurrences of one label.
type Count struct {
	Label string
	N     int
}

// ValueCounts counts the non-empty values of x, most frequent first.
// Equal counts are ordered by label.
func ValueCounts(x []string) []Count {
	counts := make(map[string]int)
	for _, v := range x {
		if v != "" {
			counts[v]++
		}
	}
	out := make([]Count, 0, len(counts))
	for k, n := range counts {
		out = append(out, Count{Label: k, N: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// GroupMean averages vals grouped by keys. Keys come back in ascending order;
// rows with a missing key or value are skipped.
func GroupMean(keys, vals []float64) (xs, means []float64) {
	sums := make(map[float64]float64)
	counts := make(map[float64]int)
	for i, k := range keys {
		v := vals[i]
		if math.IsNaN(k) || math.IsNaN(v) {
			continue
		}
		sums[k] += v
		counts[k]++
	}
	for k := range sums {
		xs = append(xs, k)
	}
	sort.Float64s(xs)
	means = make([]float64, len(xs))
	for i, k := range xs {
		means[i] = sums[k] / float64(counts[k])
	}
	return xs, means
}

// GroupValues collects the finite vals for each key in order.
func GroupValues(keys []string, vals []float64, order []string) [][]float64 {
	pos := make(map[string]int, len(order))
	for i, k := range order {
		pos[k] = i
	}
	out := make([][]float64, len(order))
	for i, k := range keys {
		j, ok := pos[k]
		if !ok || math.IsNaN(vals[i]) {
			continue
		}
		out[j] = append(out[j], vals[i])
	}
	return out
}

// Correlation computes the Pearson correlation coefficient over the rows
// where both x and y are present. NaN with fewer than two such rows.
func Correlation(x, y []float64) float64 {
	var xs, ys []float64
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}

// CorrMatrix returns the pairwise correlation matrix of cols.
func CorrMatrix(cols [][]float64) [][]float64 {
	n := len(cols)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			r := Correlation(cols[i], cols[j])
			out[i][j], out[j][i] = r, r
		}
	}
	return out
}

// KDE returns a Gaussian kernel density estimate of the finite values of x
// using Scott's bandwidth. Nil when the bandwidth would be zero.
func KDE(x []float64) func(float64) float64 {
	f := Finite(x)
	if len(f) < 2 {
		return nil
	}
	bw := stat.StdDev(f, nil) * math.Pow(float64(len(f)), -0.2)
	if bw == 0 || math.IsNaN(bw) {
		return nil
	}
	kernel := distuv.Normal{Mu: 0, Sigma: 1}
	n := float64(len(f))
	return func(v float64) float64 {
		s := 0.0
		for _, xi := range f {
			s += kernel.Prob((v - xi) / bw)
		}
		return s / (n * bw)
	}
}
