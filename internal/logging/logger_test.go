// SPDX-License-Identifier: MIT
package logging_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/katalvlaran/mathobjects/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestNewWriterRenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWriter(&buf, slog.LevelInfo)

	log.Info("failed", "error", errors.New("boom"))
	require.Contains(t, buf.String(), "err=boom")
	require.NotContains(t, buf.String(), "error=")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWriter(&buf, logging.Level(false))
	log.Debug("hidden")
	log.Info("hidden too")
	require.Empty(t, buf.String())

	log = logging.NewWriter(&buf, logging.Level(true))
	log.Debug("shown")
	require.Contains(t, buf.String(), "msg=shown")
}

func TestNewNop(t *testing.T) {
	require.NotPanics(t, func() { logging.NewNop().Error("dropped", "error", errors.New("x")) })
}
