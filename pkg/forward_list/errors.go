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

import "errors"

// Contract violations. In the default (checked) build they are delivered
// via panic at the point of violation. A build with the "forwardlist_fast"
// tag elides all checks and never raises them.
var (
	// ErrUnderflow: a cursor at the before-begin sentinel was dereferenced
	// or assigned through.
	ErrUnderflow = errors.New("forward_list: cursor underflow")

	// ErrOverflow: a cursor at the end sentinel was dereferenced, assigned
	// through, or advanced.
	ErrOverflow = errors.New("forward_list: cursor overflow")

	// ErrNullReference: a cursor or input holds no node where one was
	// required.
	ErrNullReference = errors.New("forward_list: null node reference")

	// ErrRange: a constructor range's end precedes its begin, or a cursor
	// was advanced by a negative count.
	ErrRange = errors.New("forward_list: range end precedes begin")
)
