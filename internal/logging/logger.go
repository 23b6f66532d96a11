// Package logging builds the process-wide zap logger. Library packages take
// an injected *zap.Logger and default to zap.NewNop(); only the cmds call New.
package logging

// #region imports
import (
	"os"

	"github.com/syntra-foundation/syntra-core/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// #endregion imports

// #region constructor

// New builds a logger from config. Console encoder by default, JSON when
// cfg.JSON is set. Unknown levels fall back to info.
func New(cfg config.Logging) *zap.Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if cfg.JSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level)
	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel))
}

// #endregion constructor
