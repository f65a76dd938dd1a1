// Package strmatch finds every occurrence of a pattern in a text.
//
// All functions work on bytes: positions are byte offsets into text, and
// a multi-byte UTF-8 pattern matches only at the byte sequence it
// encodes. Overlapping occurrences are all reported, in increasing
// order. An empty pattern, or one longer than the text, has no matches.
//
//	KMP        O(n + m) with the prefix (failure) table from PrefixTable
//	RabinKarp  O(n + m) expected; rolling hash, every hash hit is checked
//	           byte by byte, so collisions never produce false matches
//	Naive      O(n · m) reference used by tests and tiny inputs
package strmatch
