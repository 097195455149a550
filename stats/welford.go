package stats

import "math"

// Welford keeps a running mean and sum of squared deviations.
type Welford struct {
	count uint64
	mean  float64
	m2    float64
}

func NewWelford() *Welford {
	return &Welford{
		count: 0,
		mean:  0,
		m2:    0,
	}
}

func (welford *Welford) Update(value float64) {
	welford.count++
	delta := value - welford.mean
	welford.mean += delta / float64(welford.count)
	delta2 := value - welford.mean
	welford.m2 += delta * delta2
}

// Merge folds other into welford using the pairwise update of Chan et al.
func (welford *Welford) Merge(other *Welford) {
	if other == nil || other.count == 0 {
		return
	}
	if welford.count == 0 {
		*welford = *other
		return
	}
	n := float64(welford.count + other.count)
	delta := other.mean - welford.mean
	welford.mean += delta * float64(other.count) / n
	welford.m2 += other.m2 + delta*delta*float64(welford.count)*float64(other.count)/n
	welford.count += other.count
}

func (welford *Welford) GetCount() uint64 {
	return welford.count
}

func (welford *Welford) GetMean() float64 {
	return welford.mean
}

func (welford *Welford) GetVariance() float64 {
	if welford.count < 2 {
		return 0
	}
	return welford.m2 / float64(welford.count)
}

func (welford *Welford) GetSampleVariance() float64 {
	if welford.count < 2 {
		return 0
	}
	return welford.m2 / float64(welford.count-1)
}

func (welford *Welford) GetSD() float64 {
	return math.Sqrt(welford.GetSampleVariance())
}

func (welford *Welford) GetCV() float64 {
	if welford.count < 2 {
		return 0
	}
	return welford.GetSD() / welford.GetMean()
}
