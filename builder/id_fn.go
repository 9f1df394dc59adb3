// Package builder provides helper functions for naming generated people.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a person name from a zero-based running index.
// It must be pure: the same idx always yields the same name, and distinct
// indices must yield distinct names.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PaddedIDFn returns prefix followed by idx zero-padded to width digits, so
// that byte-wise name order equals index order up to 10^width people.
// e.g. PaddedIDFn("g", 3)(7) → "g007".
func PaddedIDFn(prefix string, width int) IDFn {
	if width < 1 {
		panic(fmt.Sprintf("PaddedIDFn: width must be ≥ 1, got %d", width))
	}
	return func(idx int) string {
		return fmt.Sprintf("%s%0*d", prefix, width, idx)
	}
}

// ExcelColumnIDFn returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var letters []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		letters = append(letters, byte('A'+i%26))
	}
	for l, r := 0, len(letters)-1; l < r; l, r = l+1, r-1 {
		letters[l], letters[r] = letters[r], letters[l]
	}

	return string(letters)
}
