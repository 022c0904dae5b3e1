package tabular

//Histograms for exploratory plots of the course data sets. Adapted from
//the goChem histo package, without the matrix-of-histograms machinery:
//EDA here only ever needs one histogram per column.

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Histogram is a binned view of one column. The dividers slice holds the
//bin edges (len(dividers)-1 bins); values outside the edges are omitted,
//not clamped.
type Histogram struct {
	normalized bool
	total      int
	dividers   []float64
	counts     []float64
}

//NewHistogram builds a histogram with the given bin edges, filled with
//rawdata if it is non-nil. The dividers are copied so nobody can change
//them from outside. Missing values (NaN) in rawdata are skipped.
func NewHistogram(dividers []float64, rawdata []float64) (*Histogram, error) {
	if len(dividers) < 2 {
		return nil, Error{fmt.Sprintf("need at least 2 bin edges, got %d", len(dividers)), "", []string{"NewHistogram"}}
	}
	for i := 1; i < len(dividers); i++ {
		if dividers[i] <= dividers[i-1] {
			return nil, Error{"bin edges must be strictly increasing", "", []string{"NewHistogram"}}
		}
	}
	H := new(Histogram)
	H.dividers = make([]float64, len(dividers))
	copy(H.dividers, dividers)
	H.counts = make([]float64, len(dividers)-1)
	if rawdata != nil {
		H.rebin(rawdata)
	}
	return H, nil
}

//HistogramColumn bins the named column of the table into nbins equal
//bins spanning its range.
func (T *Table) HistogramColumn(name string, nbins int) (*Histogram, error) {
	if nbins < 1 {
		return nil, Error{fmt.Sprintf("need at least 1 bin, got %d", nbins), "", []string{"HistogramColumn"}}
	}
	col, err := T.Column(name)
	if err != nil {
		return nil, errDecorate(err, "HistogramColumn")
	}
	min, max, err := T.Range(name)
	if err != nil {
		return nil, errDecorate(err, "HistogramColumn")
	}
	if min == max {
		max = min + 1 //a degenerate range still gets one usable bin
	}
	dividers := make([]float64, nbins+1)
	floats.Span(dividers, min, max)
	dividers[nbins] = math.Nextafter(max, math.Inf(1)) //the top edge is exclusive in stat.Histogram
	return NewHistogram(dividers, col)
}

//rebin sorts a copy of rawdata, drops NaNs and out-of-range values (the
//gonum stat.Histogram just panics on those instead of omitting them, so
//we remove them before the call) and counts the rest.
func (H *Histogram) rebin(rawdata []float64) {
	data := make([]float64, 0, len(rawdata))
	for _, v := range rawdata {
		if !math.IsNaN(v) {
			data = append(data, v)
		}
	}
	sort.Float64s(data)
	maxi := sort.SearchFloat64s(data, H.dividers[len(H.dividers)-1])
	mini := sort.SearchFloat64s(data, H.dividers[0])
	if maxi < len(data) {
		data = data[:maxi]
	}
	if mini != 0 {
		data = data[mini:]
	}
	H.total = len(data)
	H.normalized = false
	stat.Histogram(H.counts, H.dividers, data, nil)
}

//Add adds the given data point(s) to the histogram. Values outside the
//edges are omitted. If the histogram was normalized it is un-normalized,
//filled, and normalized again.
func (H *Histogram) Add(points ...float64) {
	var norma bool
	if H.normalized {
		norma = true
		H.UnNormalize()
	}
	for _, v := range points {
		if math.IsNaN(v) {
			continue
		}
		for j := 0; j < len(H.dividers)-1; j++ {
			if H.dividers[j] <= v && v < H.dividers[j+1] {
				H.counts[j]++
				H.total++
				break
			}
		}
	}
	if norma {
		H.Normalize()
	}
}

//Normalized returns whether the histogram is normalized.
func (H *Histogram) Normalized() bool {
	return H.normalized
}

//Normalize scales the counts to sum to 1.
func (H *Histogram) Normalize() {
	H.normaunnorma(true)
}

//UnNormalize returns the histogram to raw counts.
func (H *Histogram) UnNormalize() {
	H.normaunnorma(false)
}

func (H *Histogram) normaunnorma(normalize bool) {
	if H.total <= 0 || H.normalized == normalize {
		return
	}
	n := float64(H.total)
	if normalize {
		n = 1 / float64(H.total)
	}
	H.normalized = normalize
	floats.Scale(n, H.counts)
}

//Counts returns a copy of the bin counts.
func (H *Histogram) Counts() []float64 {
	c := make([]float64, len(H.counts))
	copy(c, H.counts)
	return c
}

//Dividers returns a copy of the bin edges.
func (H *Histogram) Dividers() []float64 {
	d := make([]float64, len(H.dividers))
	copy(d, H.dividers)
	return d
}

//Total returns the number of points counted into the histogram.
func (H *Histogram) Total() int {
	return H.total
}

//String prints a -hopefully- pretty representation of the histogram,
//as two aligned lines of edges and counts.
func (H *Histogram) String() string {
	d := make([]string, 0, len(H.dividers)-1)
	c := make([]string, 0, len(H.dividers)-1)
	for i, v := range H.counts {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", H.dividers[i], H.dividers[i+1]))
		c = append(c, fmt.Sprintf("%9.3f", v))
	}
	return fmt.Sprintf("total: %d, normalized: %v\n%s\n%s", H.total, H.normalized, strings.Join(d, " "), strings.Join(c, " "))
}
