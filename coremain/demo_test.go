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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewDemoLogger(t *testing.T) {
	t.Run("quiet discards everything", func(t *testing.T) {
		lgr, err := newDemoLogger(DefaultConfig(), true)
		require.NoError(t, err)
		assert.False(t, lgr.Core().Enabled(zapcore.ErrorLevel))
	})

	t.Run("empty level defaults to info", func(t *testing.T) {
		lgr, err := newDemoLogger(DefaultConfig(), false)
		require.NoError(t, err)
		assert.True(t, lgr.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, lgr.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Log.Level = "not-a-level"
		_, err := newDemoLogger(cfg, false)
		require.Error(t, err)
	})

	t.Run("log file", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Log.Level = "debug"
		cfg.Log.File = filepath.Join(t.TempDir(), "demo.log")
		lgr, err := newDemoLogger(cfg, false)
		require.NoError(t, err)

		lgr.Info("hello from the walkthrough")
		require.NoError(t, lgr.Sync())

		b, err := os.ReadFile(cfg.Log.File)
		require.NoError(t, err)
		assert.Contains(t, string(b), "hello from the walkthrough")
	})
}
