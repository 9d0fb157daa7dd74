package model

// ActivitySeries holds commit activity as two index-aligned slices, in the
// order the samples were recorded
type ActivitySeries struct {
	Labels  []string `json:"labels"`
	Commits []int    `json:"commits"`
}

func (s ActivitySeries) Len() int {
	return len(s.Labels)
}

func (s ActivitySeries) Clone() ActivitySeries {
	clone := ActivitySeries{
		Labels:  make([]string, len(s.Labels)),
		Commits: make([]int, len(s.Commits)),
	}
	copy(clone.Labels, s.Labels)
	copy(clone.Commits, s.Commits)
	return clone
}

// Max returns the highest commit count. ok is false for an empty series.
func (s ActivitySeries) Max() (highest int, ok bool) {
	if len(s.Commits) == 0 {
		return 0, false
	}

	highest = s.Commits[0]
	for _, commits := range s.Commits[1:] {
		if commits > highest {
			highest = commits
		}
	}

	return highest, true
}

// MustMax is Max for callers that treat an empty series as a failure
func (s ActivitySeries) MustMax() (int, error) {
	highest, ok := s.Max()
	if !ok {
		return 0, &EmptyInputError{Op: "activity series maximum"}
	}
	return highest, nil
}
