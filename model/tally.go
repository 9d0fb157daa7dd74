package model

import "encoding/json"

type TechnologyCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TechnologyTally maps technology names to occurrence counts.
// Iteration order is the order in which names were first added.
type TechnologyTally struct {
	order  []string
	counts map[string]int
}

func NewTechnologyTally() TechnologyTally {
	return TechnologyTally{counts: make(map[string]int)}
}

// Add increments the count of name, registering it on first sight
func (t *TechnologyTally) Add(name string) {
	if t.counts == nil {
		t.counts = make(map[string]int)
	}

	if _, found := t.counts[name]; !found {
		t.order = append(t.order, name)
	}

	t.counts[name]++
}

// Clone returns a tally that shares no storage with t
func (t TechnologyTally) Clone() TechnologyTally {
	clone := TechnologyTally{
		order:  make([]string, len(t.order)),
		counts: make(map[string]int, len(t.counts)),
	}
	copy(clone.order, t.order)
	for name, count := range t.counts {
		clone.counts[name] = count
	}
	return clone
}

func (t TechnologyTally) Count(name string) (int, bool) {
	count, found := t.counts[name]
	return count, found
}

func (t TechnologyTally) Len() int {
	return len(t.order)
}

// Names returns a copy of the keys in first-seen order
func (t TechnologyTally) Names() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// Counts returns the values aligned with Names
func (t TechnologyTally) Counts() []int {
	counts := make([]int, len(t.order))
	for i, name := range t.order {
		counts[i] = t.counts[name]
	}
	return counts
}

// Total is the sum of all counts
func (t TechnologyTally) Total() int {
	total := 0
	for _, count := range t.counts {
		total += count
	}
	return total
}

func (t TechnologyTally) Entries() []TechnologyCount {
	entries := make([]TechnologyCount, len(t.order))
	for i, name := range t.order {
		entries[i] = TechnologyCount{Name: name, Count: t.counts[name]}
	}
	return entries
}

func (t TechnologyTally) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Entries())
}
