package capengine

// WindowYears is the number of seasons every projection covers, the current
// season included
const WindowYears = 5

// SalaryYears holds one monetary total per salary-year index. Index 0 is the
// current season.
type SalaryYears [WindowYears]float64

// Window returns the season labels for a window starting at currentSeason
func Window(currentSeason int) [WindowYears]int {
	var seasons [WindowYears]int
	for i := range seasons {
		seasons[i] = currentSeason + i
	}
	return seasons
}

// Total sums every year in the window
func (s SalaryYears) Total() float64 {
	total := 0.0
	for _, v := range s {
		total += v
	}
	return total
}

// Current returns the current-season value
func (s SalaryYears) Current() float64 {
	return s[0]
}

// Terminal returns the value for the last season in the window
func (s SalaryYears) Terminal() float64 {
	return s[WindowYears-1]
}

// add accumulates v at index i; out-of-window indices are dropped
func (s *SalaryYears) add(i int, v float64) {
	if i < 0 || i >= WindowYears {
		return
	}
	s[i] += v
}
