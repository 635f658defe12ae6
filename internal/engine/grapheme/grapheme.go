// Package grapheme provides grapheme-cluster bookkeeping over rune slices.
//
// The storage engine keeps text as []rune (one rune per Unicode scalar). It
// calls HasCombining on either path, to scan inserted text and to rescan the
// content on construction, reallocation and recheck; the rest of the cluster
// math (counting, strides, bounds) runs only on its slow path, when the
// content is known to contain clusters spanning more than one scalar. All
// segmentation is done by github.com/rivo/uniseg.
package grapheme

import "github.com/rivo/uniseg"

// Count returns the number of grapheme clusters in rs.
func Count(rs []rune) int {
	if len(rs) == 0 {
		return 0
	}
	return uniseg.GraphemeClusterCount(string(rs))
}

// HasCombining reports whether rs contains at least one cluster spanning
// more than one scalar (combining marks, ZWJ sequences, regional pairs).
func HasCombining(rs []rune) bool {
	if len(rs) == 0 {
		return false
	}
	g := uniseg.NewGraphemes(string(rs))
	for g.Next() {
		if len(g.Runes()) > 1 {
			return true
		}
	}
	return false
}

// Next computes the forward stride for up to n clusters from the start of rs.
// It returns the number of scalars covered and the number of clusters
// actually available (clusters <= n).
func Next(rs []rune, n int) (units, clusters int) {
	if len(rs) == 0 || n <= 0 {
		return 0, 0
	}
	g := uniseg.NewGraphemes(string(rs))
	for clusters < n && g.Next() {
		units += len(g.Runes())
		clusters++
	}
	return units, clusters
}

// Prev computes the backward stride for up to n clusters from the end of rs.
// It returns the number of scalars covered and the number of clusters
// actually available.
func Prev(rs []rune, n int) (units, clusters int) {
	if len(rs) == 0 || n <= 0 {
		return 0, 0
	}
	widths := widths(rs)
	if n > len(widths) {
		n = len(widths)
	}
	for i := len(widths) - n; i < len(widths); i++ {
		units += widths[i]
	}
	return units, n
}

// At returns the scalar offsets [lo, hi) of the i-th cluster of rs.
// The second return is false when i is out of range.
func At(rs []rune, i int) (lo, hi int, ok bool) {
	if i < 0 || len(rs) == 0 {
		return 0, 0, false
	}
	g := uniseg.NewGraphemes(string(rs))
	idx := 0
	for g.Next() {
		w := len(g.Runes())
		if idx == i {
			return lo, lo + w, true
		}
		lo += w
		idx++
	}
	return 0, 0, false
}

// Bounds returns the scalar offsets [lo, hi) covering clusters [a, b) of rs.
// The second return is false when the range does not fit the content.
func Bounds(rs []rune, a, b int) (lo, hi int, ok bool) {
	if a < 0 || b < a {
		return 0, 0, false
	}
	if a == b {
		units, clusters := Next(rs, a)
		if clusters < a {
			return 0, 0, false
		}
		return units, units, true
	}
	g := uniseg.NewGraphemes(string(rs))
	idx, off := 0, 0
	for g.Next() {
		w := len(g.Runes())
		if idx == a {
			lo = off
		}
		off += w
		idx++
		if idx == b {
			return lo, off, true
		}
	}
	return 0, 0, false
}

// Clusters splits rs into its grapheme clusters, preserving text order.
func Clusters(rs []rune) [][]rune {
	if len(rs) == 0 {
		return nil
	}
	out := make([][]rune, 0, len(rs))
	g := uniseg.NewGraphemes(string(rs))
	for g.Next() {
		cl := g.Runes()
		c := make([]rune, len(cl))
		copy(c, cl)
		out = append(out, c)
	}
	return out
}

// widths returns the scalar width of every cluster of rs, in order.
func widths(rs []rune) []int {
	g := uniseg.NewGraphemes(string(rs))
	var out []int
	for g.Next() {
		out = append(out, len(g.Runes()))
	}
	return out
}
