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

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Sort(t *testing.T) {
	tests := []struct {
		name      string
		in        []int
		ascending bool
		want      []int
	}{
		{"empty", []int{}, true, []int{}},
		{"single", []int{7}, true, []int{7}},
		{"pair out of order", []int{2, 1}, true, []int{1, 2}},
		{"pair in order", []int{1, 2}, true, []int{1, 2}},
		{"walkthrough", []int{9, 1024, -12, 7}, true, []int{-12, 7, 9, 1024}},
		{"duplicates", []int{3, 1, 3, 2, 1}, true, []int{1, 1, 2, 3, 3}},
		{"descending", []int{9, 1024, -12, 7}, false, []int{1024, 9, 7, -12}},
		{"already sorted", []int{1, 2, 3, 4, 5}, true, []int{1, 2, 3, 4, 5}},
		{"reverse sorted", []int{5, 4, 3, 2, 1}, true, []int{1, 2, 3, 4, 5}},
		{"all equal", []int{4, 4, 4}, true, []int{4, 4, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Of(tt.in...)
			l.Sort(tt.ascending)
			assert.Equal(t, tt.want, l.Values())
			assert.Equal(t, len(tt.want), l.Len())
			assert.True(t, l.Sorted(tt.ascending))
			checkChain(t, l)
		})
	}
}

func TestList_Sort_Idempotent(t *testing.T) {
	l := Of(9, 1024, -12, 7, 7, 0)
	l.Sort(Ascending)
	want := l.Values()
	l.Sort(Ascending)
	assert.Equal(t, want, l.Values())
	checkChain(t, l)
}

func TestList_Sort_PreservesMultiset(t *testing.T) {
	rd := rand.New(rand.NewSource(1))
	for _, n := range []int{3, 17, 64, 255} {
		in := make([]int, n)
		for i := range in {
			in[i] = rd.Intn(16) // plenty of duplicates
		}

		l := FromSlice(in)
		l.Sort(Ascending)
		require.True(t, l.Sorted(Ascending))

		want := append([]int(nil), in...)
		sort.Ints(want)
		require.Equal(t, want, l.Values())
		checkChain(t, l)
	}
}

func TestList_Merge(t *testing.T) {
	tests := []struct {
		name      string
		recv      []int
		arg       []int
		ascending bool
		want      []int
	}{
		{"walkthrough", []int{1, 7, 9, 1024}, []int{1, 2, 3, 4, 7, 10}, true,
			[]int{1, 1, 2, 3, 4, 7, 7, 9, 10, 1024}},
		{"into empty", []int{}, []int{1, 2}, true, []int{1, 2}},
		{"empty arg is a no-op", []int{1, 2}, []int{}, true, []int{1, 2}},
		{"interleaved", []int{1, 3, 5}, []int{2, 4, 6}, true, []int{1, 2, 3, 4, 5, 6}},
		{"receiver drains first", []int{1, 2}, []int{3, 4, 5}, true, []int{1, 2, 3, 4, 5}},
		{"argument drains first", []int{3, 4, 5}, []int{1, 2}, true, []int{1, 2, 3, 4, 5}},
		{"descending", []int{9, 5, 1}, []int{8, 4}, false, []int{9, 8, 5, 4, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Of(tt.recv...)
			arg := Of(tt.arg...)
			l.Merge(arg, tt.ascending)
			assert.Equal(t, tt.want, l.Values())
			assert.Equal(t, len(tt.recv)+len(tt.arg), l.Len())
			assert.True(t, l.Sorted(tt.ascending))
			// The argument is untouched.
			assert.Equal(t, tt.arg, append([]int{}, arg.Values()...))
			checkChain(t, l)
			checkChain(t, arg)
		})
	}
}

func TestList_Merge_Self(t *testing.T) {
	// Merging a list with itself doubles every element; the copy taken
	// up front keeps the relinking away from the receiver's own nodes.
	l := Of(1, 2, 3)
	l.Merge(l, Ascending)
	assert.Equal(t, []int{1, 1, 2, 2, 3, 3}, l.Values())
	assert.Equal(t, 6, l.Len())
	assert.True(t, l.Sorted(Ascending))
	checkChain(t, l)
}

func TestList_Merge_ThenGrow(t *testing.T) {
	// The merged chain must still end on the receiver's own sentinel so
	// that O(1) appends keep working.
	l := Of(1, 3)
	l.Merge(Of(2, 4), Ascending)
	l.PushBack(5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Values())
	checkChain(t, l)
}

func TestList_Merge_SortsUnsortedOperands(t *testing.T) {
	// With checks enabled unsorted operands are sorted before merging.
	l := Of(2, 1)
	l.Merge(Of(4, 3), Ascending)
	assert.Equal(t, []int{1, 2, 3, 4}, l.Values())
	checkChain(t, l)
}

func TestList_Merge_PreservesMultiset(t *testing.T) {
	rd := rand.New(rand.NewSource(2))
	a := make([]int, 40)
	b := make([]int, 25)
	for i := range a {
		a[i] = rd.Intn(10)
	}
	for i := range b {
		b[i] = rd.Intn(10)
	}
	sort.Ints(a)
	sort.Ints(b)

	l := FromSlice(a)
	l.Merge(FromSlice(b), Ascending)

	want := append(append([]int{}, a...), b...)
	sort.Ints(want)
	require.Equal(t, want, l.Values())
	require.Equal(t, len(a)+len(b), l.Len())
	checkChain(t, l)
}
