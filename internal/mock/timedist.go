package mock

import (
	"math"
	"math/rand"
	"time"
)

// Publication horizons in days. Trending topics cluster near the present.
const (
	trendingHorizon = 30
	generalHorizon  = 90
)

// businessHourWeights skews publication hours toward market open and close.
// Hours outside 8-18 only appear through the uniform branch.
var businessHourWeights = map[int]int{
	8: 2, 9: 4, 10: 3, 11: 2, 12: 1, 13: 1,
	14: 2, 15: 3, 16: 4, 17: 3, 18: 2,
}

// timeSampler produces publish timestamps that are never later than now,
// skewed toward recent days.
type timeSampler struct {
	rng *rand.Rand
	now func() time.Time
}

// sample returns a timestamp up to maxDaysAgo days in the past. U^1.8 skews
// the day offset toward zero; 70% of samples land in weighted business hours.
func (s *timeSampler) sample(maxDaysAgo int) time.Time {
	now := s.now()
	daysAgo := int(math.Pow(s.rng.Float64(), 1.8) * float64(maxDaysAgo))

	if daysAgo == 0 {
		// Same-day articles get sub-day precision and stay in the past.
		offset := time.Duration(s.rng.Intn(12))*time.Hour +
			time.Duration(s.rng.Intn(60))*time.Minute
		return now.Add(-offset)
	}

	day := now.AddDate(0, 0, -daysAgo)
	return time.Date(day.Year(), day.Month(), day.Day(),
		s.hour(), s.rng.Intn(60), s.rng.Intn(60), 0, day.Location())
}

func (s *timeSampler) hour() int {
	if s.rng.Float64() >= 0.7 {
		return s.rng.Intn(24)
	}

	total := 0
	for _, w := range businessHourWeights {
		total += w
	}
	pick := s.rng.Intn(total)
	for h := 8; h <= 18; h++ {
		pick -= businessHourWeights[h]
		if pick < 0 {
			return h
		}
	}
	return 12
}

// spreadBuckets are the fixed day ranges used to guarantee a visible time
// spread across a results page.
var spreadBuckets = [][2]int{{0, 7}, {8, 30}, {31, 60}, {61, 90}}

// sampleSpread returns n timestamps distributed evenly across the fixed
// buckets, oldest bucket last.
func (s *timeSampler) sampleSpread(n int) []time.Time {
	now := s.now()
	out := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		b := spreadBuckets[i%len(spreadBuckets)]
		daysAgo := b[0] + s.rng.Intn(b[1]-b[0]+1)
		if daysAgo == 0 {
			offset := time.Duration(s.rng.Intn(12))*time.Hour +
				time.Duration(s.rng.Intn(60))*time.Minute
			out = append(out, now.Add(-offset))
			continue
		}
		day := now.AddDate(0, 0, -daysAgo)
		out = append(out, time.Date(day.Year(), day.Month(), day.Day(),
			s.hour(), s.rng.Intn(60), s.rng.Intn(60), 0, day.Location()))
	}
	return out
}
