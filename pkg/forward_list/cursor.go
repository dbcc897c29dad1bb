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

// Cursor is a forward-only position in a List. Obtain cursors from the
// owning list (BeforeBegin, Begin, End, Back, Find, Search); the zero
// value references nothing.
//
// Two cursors compare equal with == iff they reference the same node.
//
// A cursor holds a raw reference into the chain. Any structural mutation
// of the owning list (insert, erase, merge, sort, clear) invalidates every
// cursor obtained before the mutation. Using an invalidated cursor is
// undefined behavior in fast builds; checked builds report it only when
// the cursor happens to land on a sentinel.
type Cursor[E constraints.Ordered] struct {
	n *node[E]
	l *List[E]
}

// Value returns the element at the cursor.
//
// Checked builds panic with ErrNullReference, ErrUnderflow or ErrOverflow
// if the cursor holds no node or sits on a sentinel.
func (c Cursor[E]) Value() E {
	if checked {
		c.mustDeref()
	}
	return c.n.data
}

// Set overwrites the element at the cursor. Same validation as Value.
func (c Cursor[E]) Set(elem E) {
	if checked {
		c.mustDeref()
	}
	c.n.data = elem
}

// Next returns the cursor advanced by one position. Advancing past the
// end sentinel panics with ErrOverflow in checked builds. Advancing from
// the before-begin sentinel is allowed; that is how insertion anchors
// reach the first element.
func (c Cursor[E]) Next() Cursor[E] {
	if checked {
		if c.n == nil {
			panic(ErrNullReference)
		}
		if c.n == c.l.tail {
			panic(ErrOverflow)
		}
	}
	return Cursor[E]{n: c.n.succ, l: c.l}
}

// Advance returns the cursor advanced by n positions. The overflow check
// applies at every step, so checked builds panic with ErrOverflow the
// moment the end sentinel would be passed, not only at entry. The cursor
// cannot move backwards; checked builds panic with ErrRange on a negative
// count, fast builds treat it as a no-op.
func (c Cursor[E]) Advance(n int) Cursor[E] {
	if checked && n < 0 {
		panic(ErrRange)
	}
	for i := 0; i < n; i++ {
		c = c.Next()
	}
	return c
}

func (c Cursor[E]) mustDeref() {
	if c.n == nil {
		panic(ErrNullReference)
	}
	if c.n == c.l.head {
		panic(ErrUnderflow)
	}
	if c.n == c.l.tail {
		panic(ErrOverflow)
	}
}
