// Package parser extracts container resource requests and limits from
// kubernetes configuration text.
//
// The parser deliberately treats documents as unstructured text: resource
// blocks are located by fixed patterns rather than a yaml object model, so
// any file is accepted and non-matching text contributes nothing. Only two
// field orders per section (cpu-then-memory and memory-then-cpu) are
// recognized; blocks in any other shape are silently skipped.
package parser

import "github.com/harrison/kubesum/internal/models"

// Matches holds the raw value strings captured from one document, one slice
// per accumulation bucket, in document order.
type Matches struct {
	RequestCPU    []string
	RequestMemory []string
	LimitCPU      []string
	LimitMemory   []string
}

// Extract applies the four section patterns to doc and collects every
// non-overlapping occurrence. A document may declare any number of
// containers; each requests/limits block contributes independently.
func Extract(doc string) Matches {
	var m Matches

	for _, cap := range reqCPUMem.FindAllStringSubmatch(doc, -1) {
		m.RequestCPU = append(m.RequestCPU, cap[1])
		m.RequestMemory = append(m.RequestMemory, cap[2])
	}

	for _, cap := range reqMemCPU.FindAllStringSubmatch(doc, -1) {
		m.RequestMemory = append(m.RequestMemory, cap[1])
		m.RequestCPU = append(m.RequestCPU, cap[2])
	}

	for _, cap := range limCPUMem.FindAllStringSubmatch(doc, -1) {
		m.LimitCPU = append(m.LimitCPU, cap[1])
		m.LimitMemory = append(m.LimitMemory, cap[2])
	}

	for _, cap := range limMemCPU.FindAllStringSubmatch(doc, -1) {
		m.LimitMemory = append(m.LimitMemory, cap[1])
		m.LimitCPU = append(m.LimitCPU, cap[2])
	}

	return m
}

// Summarize extracts and normalizes all resource values in doc and returns
// their per-document totals.
func Summarize(doc string) models.ResourceTotals {
	m := Extract(doc)

	var totals models.ResourceTotals
	for _, s := range m.RequestMemory {
		totals.MemoryRequested += parseMemory(s)
	}
	for _, s := range m.LimitMemory {
		totals.MemoryLimit += parseMemory(s)
	}
	for _, s := range m.RequestCPU {
		totals.CPURequested += parseCPU(s)
	}
	for _, s := range m.LimitCPU {
		totals.CPULimit += parseCPU(s)
	}
	return totals
}
