package useragent

import "sort"

func init() {
	// OrderHint decides precedence when several patterns match the same string
	sort.SliceStable(browserPatterns, func(i, j int) bool {
		return browserPatterns[i].OrderHint < browserPatterns[j].OrderHint
	})
}
