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

// Package forward_list implements a generic singly linked list with
// forward-only cursors, ordered search, dedup, splice, merge and an
// in-place merge sort.
//
// The element chain is bracketed by two sentinel nodes that never store
// elements: a before-begin sentinel and an end sentinel. Nodes belong to
// exactly one list; cross-list operations copy before splicing.
//
// The list is not safe for concurrent use.
package forward_list

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Sort order arguments for Search, Sorted, Merge and Sort.
const (
	Ascending  = true
	Descending = false
)

type node[E constraints.Ordered] struct {
	data E
	succ *node[E]
}

// List is a singly linked list of E. Following succ links from the head
// sentinel exactly Len times reaches the tail sentinel. The zero value is
// not usable; create lists with New, Of, FromSlice, Range, Collect or
// Clone.
type List[E constraints.Ordered] struct {
	head *node[E]
	tail *node[E]
	size int
}

// New creates an empty list.
func New[E constraints.Ordered]() *List[E] {
	tail := &node[E]{}
	return &List[E]{
		head: &node[E]{succ: tail},
		tail: tail,
	}
}

// Of creates a list holding elems in order.
func Of[E constraints.Ordered](elems ...E) *List[E] {
	l := New[E]()
	for _, e := range elems {
		l.PushBack(e)
	}
	return l
}

// FromSlice creates a list holding a copy of s in order.
func FromSlice[E constraints.Ordered](s []E) *List[E] {
	return Of(s...)
}

// Range creates a list from the elements of s in the half-open interval
// [i, j). A slice is a random access range, so checked builds validate the
// interval: a reversed interval panics with ErrRange, and a nil slice with
// an interval that delimits elements panics with ErrNullReference.
func Range[E constraints.Ordered](s []E, i, j int) *List[E] {
	if checked {
		if j < i {
			panic(ErrRange)
		}
		if s == nil && (i != 0 || j != 0) {
			panic(ErrNullReference)
		}
	}
	return Of(s[i:j]...)
}

// Collect creates a list by draining next, appending elements in the
// order produced, until next reports false. Any sequence that can be
// iterated once qualifies; no random access capability is required, so
// the range cannot be and is not validated.
func Collect[E constraints.Ordered](next func() (E, bool)) *List[E] {
	l := New[E]()
	for {
		e, ok := next()
		if !ok {
			return l
		}
		l.PushBack(e)
	}
}

// Clone returns a deep copy of l. Nodes are never shared between lists.
func (l *List[E]) Clone() *List[E] {
	c := New[E]()
	for n := l.head.succ; n != l.tail; n = n.succ {
		c.PushBack(n.data)
	}
	return c
}

// Len returns the number of elements.
func (l *List[E]) Len() int {
	return l.size
}

// Empty reports whether the list has no elements.
func (l *List[E]) Empty() bool {
	return l.size == 0
}

// BeforeBegin returns a cursor at the before-begin sentinel. It is valid
// only as an insertion or erase anchor and cannot be dereferenced.
func (l *List[E]) BeforeBegin() Cursor[E] {
	return Cursor[E]{n: l.head, l: l}
}

// Begin returns a cursor at the first element, or End on an empty list.
func (l *List[E]) Begin() Cursor[E] {
	return Cursor[E]{n: l.head.succ, l: l}
}

// Front is an alias of Begin.
func (l *List[E]) Front() Cursor[E] {
	return l.Begin()
}

// End returns a cursor at the end sentinel, one past the last element.
func (l *List[E]) End() Cursor[E] {
	return Cursor[E]{n: l.tail, l: l}
}

// Back returns a cursor at the last element, found by a linear scan (the
// chain has no back links). On an empty list it returns BeforeBegin.
func (l *List[E]) Back() Cursor[E] {
	n := l.head
	for n.succ != l.tail {
		n = n.succ
	}
	return Cursor[E]{n: n, l: l}
}

// Find returns a cursor at the first element equal to elem, or End if
// elem does not occur.
func (l *List[E]) Find(elem E) Cursor[E] {
	for n := l.head.succ; n != l.tail; n = n.succ {
		if n.data == elem {
			return Cursor[E]{n: n, l: l}
		}
	}
	return l.End()
}

// Search assumes the list is sorted in the given order and returns a
// cursor at the last position whose element is <= elem (ascending) or
// >= elem (descending). If even the first element is past elem it returns
// BeforeBegin. The result is the anchor that keeps the list sorted when
// elem is inserted after it.
func (l *List[E]) Search(elem E, ascending bool) Cursor[E] {
	n := l.head
	for n.succ != l.tail {
		d := n.succ.data
		if ascending && d > elem || !ascending && d < elem {
			break
		}
		n = n.succ
	}
	return Cursor[E]{n: n, l: l}
}

// Sorted reports whether the elements are in the given order. Lists with
// fewer than two elements are always sorted. Equal neighbours never
// violate the order.
func (l *List[E]) Sorted(ascending bool) bool {
	if l.size < 2 {
		return true
	}
	for n := l.head.succ; n.succ != l.tail; n = n.succ {
		if n.data == n.succ.data {
			continue
		}
		if (n.data < n.succ.data) != ascending {
			return false
		}
	}
	return true
}

// Contains reports whether elem occurs in the list.
func (l *List[E]) Contains(elem E) bool {
	return l.Find(elem) != l.End()
}

// Count returns the number of occurrences of elem.
func (l *List[E]) Count(elem E) int {
	c := 0
	for n := l.head.succ; n != l.tail; n = n.succ {
		if n.data == elem {
			c++
		}
	}
	return c
}

// PushBack appends elem in O(1): the current end sentinel absorbs the
// element and a fresh sentinel takes its place. This keeps the end
// sentinel's own slot at the zero value at all times.
func (l *List[E]) PushBack(elem E) {
	l.tail.data = elem
	l.tail.succ = &node[E]{}
	l.tail = l.tail.succ
	l.size++
}

// PushFront prepends elem. Defined as InsertAfter(BeforeBegin, elem).
func (l *List[E]) PushFront(elem E) {
	l.InsertAfter(l.BeforeBegin(), elem)
}

// InsertAfter inserts elem immediately after the node c references.
// The anchor is located by identity with a scan from the before-begin
// sentinel; if c is not found in the chain (End, a foreign cursor, or a
// cursor left dangling by an earlier mutation) the element is appended at
// the back instead. The fallback is part of the contract, not an error.
func (l *List[E]) InsertAfter(c Cursor[E], elem E) {
	l.InsertAfterN(c, elem, 1)
}

// InsertAfterN inserts n copies of elem immediately after c. See
// InsertAfter for the anchor contract. No-op if n < 1.
func (l *List[E]) InsertAfterN(c Cursor[E], elem E, n int) {
	if n < 1 {
		return
	}
	for anchor := l.head; anchor != l.tail; anchor = anchor.succ {
		if anchor != c.n {
			continue
		}
		for j := 0; j < n; j++ {
			anchor.succ = &node[E]{data: elem, succ: anchor.succ}
			anchor = anchor.succ
			l.size++
		}
		return
	}
	for j := 0; j < n; j++ {
		l.PushBack(elem)
	}
}

// PopFront removes the first element in O(1). No-op on an empty list.
func (l *List[E]) PopFront() {
	if l.size == 0 {
		return
	}
	l.head.succ = l.head.succ.succ
	l.size--
}

// PopBack removes the last element. The predecessor of the last node is
// found by a linear scan. No-op on an empty list.
func (l *List[E]) PopBack() {
	if l.size == 0 {
		return
	}
	n := l.head
	for n.succ.succ != l.tail {
		n = n.succ
	}
	n.succ = l.tail
	l.size--
}

// RemoveAt removes the element at c and returns its value. ok reports
// whether the removal happened: it is false when c is not found in the
// chain, and the returned value is then the end sentinel's unused slot
// (the zero value). Callers must inspect ok, not the value, to detect
// failure.
func (l *List[E]) RemoveAt(c Cursor[E]) (elem E, ok bool) {
	for p := l.head; p.succ != l.tail; p = p.succ {
		if p.succ != c.n {
			continue
		}
		elem = p.succ.data
		p.succ = p.succ.succ
		l.size--
		return elem, true
	}
	return l.tail.data, false
}

// EraseAfter removes every element strictly after c through the end.
// No-op if the list is empty or c is not found in the chain.
func (l *List[E]) EraseAfter(c Cursor[E]) {
	l.EraseRange(c, l.End())
}

// EraseRange removes the open interval (from, to): every element strictly
// after from, up to but excluding to. If to is not reached the removal
// stops at the end sentinel. Passing from's immediate successor as to
// removes nothing. No-op if the list is empty or from is not found in the
// chain.
func (l *List[E]) EraseRange(from, to Cursor[E]) {
	if l.size == 0 {
		return
	}
	for anchor := l.head; anchor != l.tail; anchor = anchor.succ {
		if anchor != from.n {
			continue
		}
		j := anchor.succ
		for j != to.n && j != l.tail {
			j = j.succ
			l.size--
		}
		anchor.succ = j
		return
	}
}

// Clear removes every element. Equivalent to EraseAfter(BeforeBegin()).
func (l *List[E]) Clear() {
	l.EraseAfter(l.BeforeBegin())
}

// Link appends a copy of other's elements to the end of l, in order.
// other is never modified and its nodes are never aliased into l. No-op
// when other is empty. Linking a list to itself duplicates its elements.
func (l *List[E]) Link(other *List[E]) {
	if other.size == 0 {
		return
	}
	cp := other.Clone()
	// Adopt the copy's chain: the current end sentinel absorbs the
	// copy's first element and the copy's sentinel becomes the new one.
	l.tail.data = cp.head.succ.data
	l.tail.succ = cp.head.succ.succ
	l.tail = cp.tail
	l.size += cp.size
}

// Merge combines a copy of other into l so that the result is sorted in
// the given order and holds every element of both operands. Both operands
// must already be sorted in that order; checked builds sort an unsorted
// operand first. When the head elements of both chains compare equal the
// element from l is taken first. No-op when other is empty.
func (l *List[E]) Merge(other *List[E], ascending bool) {
	if other.size == 0 {
		return
	}
	cp := other.Clone()
	if checked {
		if !l.Sorted(ascending) {
			l.Sort(ascending)
		}
		if !cp.Sorted(ascending) {
			cp.Sort(ascending)
		}
	}

	i := l.head.succ
	j := cp.head.succ
	h := l.head
	for i != l.tail && j != cp.tail {
		// Ties favour the receiver.
		if i.data == j.data || (i.data < j.data) == ascending {
			h.succ = i
			h = i
			i = i.succ
		} else {
			h.succ = j
			h = j
			j = j.succ
		}
	}
	for i != l.tail {
		h.succ = i
		h = i
		i = i.succ
	}
	for j != cp.tail {
		h.succ = j
		h = j
		j = j.succ
	}
	h.succ = l.tail
	l.size += cp.size
}

// Unique collapses every maximal run of adjacent equal elements into a
// single occurrence, in one linear pass. The list must be sorted; checked
// builds sort an unsorted list (ascending) first. No-op on lists with
// fewer than two elements.
func (l *List[E]) Unique() {
	if l.size < 2 {
		return
	}
	if checked && !l.Sorted(Ascending) {
		l.Sort(Ascending)
	}
	for n := l.head.succ; n != l.tail && n.succ != l.tail; {
		if n.data == n.succ.data {
			n.succ = n.succ.succ
			l.size--
		} else {
			n = n.succ
		}
	}
}

// Values returns the elements in order as a slice.
func (l *List[E]) Values() []E {
	s := make([]E, 0, l.size)
	for n := l.head.succ; n != l.tail; n = n.succ {
		s = append(s, n.data)
	}
	return s
}

// String formats the elements space separated.
func (l *List[E]) String() string {
	sb := new(strings.Builder)
	for n := l.head.succ; n != l.tail; n = n.succ {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(sb, n.data)
	}
	return sb.String()
}
