package models

// ResourceTotals holds aggregated container resource requests and limits.
// Memory values are kept as the raw magnitude found in the source text
// (no unit conversion); CPU values are fractional cores.
type ResourceTotals struct {
	MemoryRequested uint64  // Sum of memory requests
	MemoryLimit     uint64  // Sum of memory limits
	CPURequested    float64 // Sum of CPU requests, in cores
	CPULimit        float64 // Sum of CPU limits, in cores
}

// Add returns the field-wise sum of t and other. ResourceTotals values are
// immutable; Add never modifies its receiver or argument.
func (t ResourceTotals) Add(other ResourceTotals) ResourceTotals {
	return ResourceTotals{
		MemoryRequested: t.MemoryRequested + other.MemoryRequested,
		MemoryLimit:     t.MemoryLimit + other.MemoryLimit,
		CPURequested:    t.CPURequested + other.CPURequested,
		CPULimit:        t.CPULimit + other.CPULimit,
	}
}

// Sum folds any number of ResourceTotals into one, starting from the
// all-zero identity. An empty input yields the zero value. Because Add is
// commutative and associative, input order does not affect the result.
func Sum(totals []ResourceTotals) ResourceTotals {
	var grand ResourceTotals
	for _, t := range totals {
		grand = grand.Add(t)
	}
	return grand
}
