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

package coremain

import (
	"fmt"

	"github.com/IrineSistiana/forwardlist/mlog"
	"github.com/IrineSistiana/forwardlist/pkg/forward_list"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newDemoLogger builds the demo logger from the loaded config, honoring
// both the level and the log file. --quiet discards all logs.
func newDemoLogger(cfg *Config, quiet bool) (*zap.Logger, error) {
	if quiet {
		return mlog.Nop(), nil
	}
	return mlog.NewLogger(cfg.Log)
}

// RunDemo walks through the list operations and prints the contents
// after each step.
func RunDemo(cmd *cobra.Command, args []string) {
	cfg := DefaultConfig()
	if len(df.c) > 0 {
		c, err := loadConfig(df.c)
		if err != nil {
			mlog.L().Fatal("failed to load config", zap.Error(err))
		}
		cfg = c
	}
	lgr, err := newDemoLogger(cfg, df.quiet)
	if err != nil {
		mlog.L().Fatal("failed to init logger", zap.Error(err))
	}
	if len(df.c) > 0 {
		lgr.Info("config loaded", zap.String("path", df.c))
	}

	list1 := forward_list.New[int]()
	list2 := forward_list.FromSlice(cfg.List2)
	list3 := forward_list.Range(cfg.List3, 0, len(cfg.List3))

	list1.PushFront(9)
	list1.PushBack(-12)
	list1.PushBack(7)
	list1.InsertAfter(list1.Begin().Advance(1), 1024)
	fmt.Printf("list1: %v\n", list1)
	fmt.Printf("list2: %v\n", list2)
	fmt.Printf("list3: %v\n", list3)

	fmt.Printf("list1 sorted: %v\n", list1.Sorted(forward_list.Ascending))
	list1.Sort(forward_list.Ascending)
	fmt.Printf("list1: %v\n", list1)
	fmt.Printf("list1 sorted: %v\n", list1.Sorted(forward_list.Ascending))

	list3.Unique()
	fmt.Printf("list3: %v\n", list3)

	list1.Merge(list3, forward_list.Ascending)
	fmt.Printf("list1: %v\n", list1)

	if !list2.Empty() {
		list1.InsertAfter(list1.BeforeBegin(), list2.Back().Value())
	}
	list1.InsertAfterN(list1.Front().Advance(4), 9, 5)
	fmt.Printf("list1: %v\n", list1)
	fmt.Printf("list1 contains %d \"9\"s\n", list1.Count(9))

	if c := list1.Find(1024); c != list1.End() {
		c.Set(2048)
	}
	fmt.Printf("list1: %v\n", list1)

	list1.Link(list2)
	fmt.Printf("list1: (size: %d) %v\n", list1.Len(), list1)

	list1.EraseRange(list1.Begin().Advance(4), list1.Begin().Advance(8))
	fmt.Printf("list1: (size: %d) %v\n", list1.Len(), list1)

	list1.Clear()
	fmt.Printf("list1: (size: %d) %v\n", list1.Len(), list1)

	lgr.Info("walkthrough finished",
		zap.Int("list2_size", list2.Len()),
		zap.Int("list3_size", list3.Len()))
}
