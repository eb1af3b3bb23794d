package fetcher

import "sort"

// Table maps response status codes to the Decoder handling them. Lookups
// are by exact status code only.
type Table[R any] map[int]Decoder[R]

// Codes returns the status codes handled by the table, in ascending order
func (t Table[R]) Codes() []int {
	codes := make([]int, 0, len(t))
	for c := range t {
		codes = append(codes, c)
	}
	sort.Ints(codes)
	return codes
}

func (t Table[R]) clone() Table[R] {
	cp := make(Table[R], len(t))
	for c, d := range t {
		cp[c] = d
	}
	return cp
}

// overlay returns a new table holding the entries of t and other. Entries in
// other win when both tables handle the same status code.
func (t Table[R]) overlay(other Table[R]) Table[R] {
	cp := make(Table[R], len(t)+len(other))
	for c, d := range t {
		cp[c] = d
	}
	for c, d := range other {
		cp[c] = d
	}
	return cp
}

func (t Table[R]) nilEntries() []int {
	var codes []int
	for c, d := range t {
		if d == nil {
			codes = append(codes, c)
		}
	}
	return codes
}

func (t Table[R]) missing(expected []int) []int {
	var codes []int
	for _, c := range expected {
		if _, ok := t[c]; !ok {
			codes = append(codes, c)
		}
	}
	return codes
}
