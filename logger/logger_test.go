package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	asserts := require.New(t)
	defer Set(zap.NewNop())

	asserts.NoError(Init(EnvDev))
	asserts.NoError(Init(EnvProd))
	asserts.Error(Init("staging"))
}

func TestLevels(t *testing.T) {
	asserts := require.New(t)
	core, logs := observer.New(zap.DebugLevel)
	Set(zap.New(core))
	defer Set(zap.NewNop())

	Debug("debug")
	Info("info", zap.String("key", "value"))
	Warn("warn")
	Error("error")

	asserts.Equal(4, logs.Len())
	asserts.Equal("value", logs.FilterMessage("info").All()[0].ContextMap()["key"])
}
