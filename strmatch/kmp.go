// SPDX-License-Identifier: MIT

package strmatch

// PrefixTable returns the KMP failure table of pattern: entry i is the
// length of the longest proper prefix of pattern[:i+1] that is also a
// suffix of it.
func PrefixTable(pattern string) []int {
	pi := make([]int, len(pattern))
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = pi[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		pi[i] = k
	}

	return pi
}

// KMP returns the start offsets of every occurrence of pattern in text.
func KMP(text, pattern string) []int {
	var out []int
	kmpScan(text, pattern, func(i int) bool {
		out = append(out, i)
		return true
	})

	return out
}

// KMPFirst returns the offset of the first occurrence of pattern in
// text, or -1.
func KMPFirst(text, pattern string) int {
	first := -1
	kmpScan(text, pattern, func(i int) bool {
		first = i
		return false
	})

	return first
}

// kmpScan reports each match to emit until emit returns false.
func kmpScan(text, pattern string, emit func(int) bool) {
	m := len(pattern)
	if m == 0 || m > len(text) {
		return
	}
	pi := PrefixTable(pattern)
	k := 0
	for i := 0; i < len(text); i++ {
		for k > 0 && text[i] != pattern[k] {
			k = pi[k-1]
		}
		if text[i] == pattern[k] {
			k++
		}
		if k == m {
			if !emit(i - m + 1) {
				return
			}
			k = pi[k-1]
		}
	}
}
