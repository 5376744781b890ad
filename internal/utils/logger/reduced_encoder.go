package logger

import (
	"github.com/mattn/go-colorable"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// ReducedEncoder writes only the level and the message, used by the interactive commands
// where structured fields would drown the console output.
type ReducedEncoder struct {
	zapcore.Encoder
	pool buffer.Pool
}

func newReducedEncoder() *ReducedEncoder {
	return &ReducedEncoder{
		pool: buffer.NewPool(),
		Encoder: zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey: "message",
		}),
	}
}

func (r *ReducedEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line := r.pool.Get()

	if ent.Level != zapcore.InfoLevel {
		line.AppendString("[" + ent.Level.CapitalString() + "] ")
	}
	line.AppendString(ent.Message)
	line.AppendString("\n")

	return line, nil
}

func (r *ReducedEncoder) Clone() zapcore.Encoder {
	return newReducedEncoder()
}

func NewReducedEncoder(level zapcore.Level) zapcore.Core {
	return zapcore.NewCore(newReducedEncoder(), zapcore.AddSync(colorable.NewColorableStderr()), level)
}
