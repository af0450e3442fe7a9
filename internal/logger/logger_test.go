/*
 * Copyright (c) 2023. Anton Starikov -- All Rights Reserved
 *
 * This file is part of HPXDEFAULTS project.
 *
 * HPXDEFAULTS is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as the Free Software Foundation,
 * either version 3 of the License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetEncoding(t *testing.T) {
	assert.NoError(t, SetEncoding("json"))
	assert.NotNil(t, L())
	assert.NoError(t, SetEncoding("console"))
	assert.Error(t, SetEncoding("xml"))
}

func TestSetLogLevel(t *testing.T) {
	SetLogLevel(zapcore.WarnLevel)
	assert.False(t, L().Desugar().Core().Enabled(zapcore.InfoLevel))
	SetLogLevel(zapcore.InfoLevel)
	assert.True(t, L().Desugar().Core().Enabled(zapcore.InfoLevel))
}
