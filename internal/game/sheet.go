package game

import "time"

// Sheet is the ordered practice sequence of one session
type Sheet []*Note

// Reset puts every note back to the state of a freshly generated sheet
func (s Sheet) Reset() {
	for i, n := range s {
		if i == 0 {
			n.Status = Current
		} else {
			n.Status = Waiting
		}
	}
}

func (s Sheet) Count(status Status) int {
	count := 0
	for _, n := range s {
		if n.Status == status {
			count++
		}
	}
	return count
}

// Duration is the time it takes to play every note back to back
func (s Sheet) Duration() time.Duration {
	var total time.Duration
	for _, n := range s {
		total += n.Duration
	}
	return total
}

func (s Sheet) Statuses() []Status {
	st := make([]Status, len(s))
	for i, n := range s {
		st[i] = n.Status
	}
	return st
}
