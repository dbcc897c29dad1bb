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
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use: "forwardlist",
}

func init() {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the forward list walkthrough and print list contents.",
		Run:   RunDemo,
	}
	rootCmd.AddCommand(demoCmd)
	fs := demoCmd.PersistentFlags()
	fs.StringVarP(&df.c, "config", "c", "", "config file with initial list contents")
	fs.BoolVarP(&df.quiet, "quiet", "q", false, "discard all logs")
}

func AddSubCmd(c *cobra.Command) {
	rootCmd.AddCommand(c)
}

func Run() error {
	return rootCmd.Execute()
}

type demoFlags struct {
	c     string
	quiet bool
}

var df = demoFlags{}
