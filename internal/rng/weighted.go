package rng

import "errors"

// ErrNoWeight is returned when a weighted sampler has nothing to select.
var ErrNoWeight = errors.New("rng: weights must contain a positive entry")

// Weighted draws indices proportionally to a fixed set of integer weights
// using the alias method: O(n) setup, O(1) per sample. Entries with zero
// weight are never selected. The table itself is immutable after
// construction and may be shared; draws consume the Stream passed to Sample.
type Weighted struct {
	index []int
	prob  []float64
	alias []int
}

// NewWeighted builds an alias table over weights. It returns ErrNoWeight if
// the slice is empty or all entries are zero.
func NewWeighted(weights []uint64) (*Weighted, error) {
	var total uint64
	index := make([]int, 0, len(weights))
	for i, w := range weights {
		if w == 0 {
			continue
		}
		total += w
		index = append(index, i)
	}
	if total == 0 {
		return nil, ErrNoWeight
	}

	// Vose's alias method over the non-zero entries only, so float rounding
	// in the final drain can never resurrect a zero-weight entry.
	n := len(index)
	scaled := make([]float64, n)
	for j, i := range index {
		scaled[j] = float64(weights[i]) * float64(n) / float64(total)
	}

	prob := make([]float64, n)
	alias := make([]int, n)
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for j, p := range scaled {
		if p < 1 {
			small = append(small, j)
		} else {
			large = append(large, j)
		}
	}
	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		prob[s] = scaled[s]
		alias[s] = l
		scaled[l] -= 1 - scaled[s]
		if scaled[l] < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}
	for _, j := range large {
		prob[j] = 1
	}
	for _, j := range small {
		prob[j] = 1
	}

	return &Weighted{index: index, prob: prob, alias: alias}, nil
}

// Sample draws one index from the original weights slice.
func (w *Weighted) Sample(s *Stream) int {
	j := s.Intn(len(w.prob))
	if s.Float64() >= w.prob[j] {
		j = w.alias[j]
	}
	return w.index[j]
}
