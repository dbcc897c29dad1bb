/*
 * Copyright (C) 2020-2022, IrineSistiana
 *
 * This file is part of forwardlist.
 *
 * forwardlist is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * forwardlist is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package forward_list

import "golang.org/x/exp/constraints"

// Sort sorts the list in place with a count-based top-down merge sort
// over the node chain. Splitting is by element count, merging relinks
// existing nodes; no nodes are allocated and element values are copied
// only for the two-element base case swap. O(n log n) time, O(log n)
// recursion stack.
func (l *List[E]) Sort(ascending bool) {
	sortRange(l.head, l.size, ascending)
}

// sortRange sorts the bound elements of the range (first, first+bound]
// and returns the last node of the sorted range, which serves as the
// exclusive start of whatever follows it at the next recursion level.
func sortRange[E constraints.Ordered](first *node[E], bound int, ascending bool) *node[E] {
	switch bound {
	case 0:
		return first
	case 1:
		return first.succ
	case 2:
		return sortPair(first, ascending)
	}
	half := bound / 2
	mid := sortRange(first, half, ascending)
	last := sortRange(mid, bound-half, ascending)
	return inplaceMerge(first, mid, last, ascending)
}

// sortPair orders the two nodes after first by swapping their data and
// returns the second of them.
func sortPair[E constraints.Ordered](first *node[E], ascending bool) *node[E] {
	a := first.succ
	b := a.succ
	if a.data != b.data && (a.data < b.data) != ascending {
		a.data, b.data = b.data, a.data
	}
	return b
}

// inplaceMerge merges the two adjacent sorted sub-chains (first, mid] and
// (mid, last] into one sorted chain by relinking, preferring the left
// sub-chain on equal heads. The remainder of the chain that followed last
// is reattached behind the merged region. Returns the last node of the
// merged range.
func inplaceMerge[E constraints.Ordered](first, mid, last *node[E], ascending bool) *node[E] {
	i := first.succ
	j := mid.succ
	rest := last.succ
	h := first
	leftDone := false
	rightDone := false

	for !leftDone && !rightDone {
		if i.data == j.data || (i.data < j.data) == ascending {
			h.succ = i
			h = i
			leftDone = i == mid
			i = i.succ
		} else {
			h.succ = j
			h = j
			rightDone = j == last
			j = j.succ
		}
	}
	for !leftDone {
		h.succ = i
		h = i
		leftDone = i == mid
		i = i.succ
	}
	for !rightDone {
		h.succ = j
		h = j
		rightDone = j == last
		j = j.succ
	}
	h.succ = rest
	return h
}
