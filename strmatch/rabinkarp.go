// SPDX-License-Identifier: MIT

package strmatch

const (
	rkBase    = 256
	rkModulus = 1_000_000_007
)

// RabinKarp returns the start offsets of every occurrence of pattern in
// text. Windows are hashed as base-256 polynomials modulo 1_000_000_007
// and rolled in O(1); a window whose hash equals the pattern's is
// compared directly before it is reported.
func RabinKarp(text, pattern string) []int {
	n, m := len(text), len(pattern)
	if m == 0 || m > n {
		return nil
	}

	// high = base^(m-1) mod p, the weight of the byte leaving the window
	var high uint64 = 1
	for i := 1; i < m; i++ {
		high = high * rkBase % rkModulus
	}
	var hp, ht uint64
	for i := 0; i < m; i++ {
		hp = (hp*rkBase + uint64(pattern[i])) % rkModulus
		ht = (ht*rkBase + uint64(text[i])) % rkModulus
	}

	var out []int
	for i := 0; ; i++ {
		if ht == hp && text[i:i+m] == pattern {
			out = append(out, i)
		}
		if i+m >= n {
			return out
		}
		ht = (ht + rkModulus - uint64(text[i])*high%rkModulus) % rkModulus
		ht = (ht*rkBase + uint64(text[i+m])) % rkModulus
	}
}

// Naive returns the start offsets of every occurrence of pattern in text
// by comparing at every position.
func Naive(text, pattern string) []int {
	m := len(pattern)
	if m == 0 || m > len(text) {
		return nil
	}
	var out []int
	for i := 0; i+m <= len(text); i++ {
		if text[i:i+m] == pattern {
			out = append(out, i)
		}
	}

	return out
}

// Contains reports whether pattern occurs in text. An empty pattern is
// never found.
func Contains(text, pattern string) bool {
	return KMPFirst(text, pattern) >= 0
}
