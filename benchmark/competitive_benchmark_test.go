package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lumenlog/lumen/core"
	"github.com/lumenlog/lumen/logger"
	"github.com/lumenlog/lumen/style"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard)
// ---------------------------------------------------------------------------

// newLumenConfig returns a lumen Config that writes styled text to io.Discard.
func newLumenConfig() *logger.Config {
	return logger.NewBuilder().
		WithLevel(core.TraceLevel).
		WithReleaseLogging(true).
		WithStyler(style.ANSI{}).
		WithConsoleWriter(io.Discard).
		Build()
}

// newZapLogger returns a zap.Logger that writes console lines to io.Discard.
func newZapLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	zc := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(zc)
}

// newSlogLogger returns an slog.Logger that writes text to io.Discard.
func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newLogrusLogger returns a logrus.Logger that writes text to io.Discard.
func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{})
	l.SetLevel(logrus.TraceLevel)
	return l
}

// newZerologLogger returns a zerolog.Logger that writes to io.Discard.
func newZerologLogger() zerolog.Logger {
	return zerolog.New(io.Discard).With().Timestamp().Logger().Level(zerolog.TraceLevel)
}

// ---------------------------------------------------------------------------
// Scenario 1 – Info message, no interpolation
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_InfoMessage(b *testing.B) {
	b.Run("lumen", func(b *testing.B) {
		l := newLumenConfig()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – formatted message
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Formatted(b *testing.B) {
	b.Run("lumen", func(b *testing.B) {
		l := newLumenConfig()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("request %d took %dms", i, 42)
		}
	})

	b.Run("zap_sugar", func(b *testing.B) {
		l := newZapLogger().Sugar()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("request %d took %dms", i, 42)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("request %d took %dms", i, 42)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msgf("request %d took %dms", i, 42)
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – message dropped by the level filter
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Filtered(b *testing.B) {
	b.Run("lumen", func(b *testing.B) {
		l := logger.NewBuilder().
			WithLevel(core.ErrorLevel).
			WithReleaseLogging(true).
			WithConsoleWriter(io.Discard).
			Build()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("filtered message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
		zc := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.ErrorLevel)
		l := zap.New(zc)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("filtered message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("filtered message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		l.SetLevel(logrus.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("filtered message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := zerolog.New(io.Discard).Level(zerolog.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("filtered message")
		}
	})
}
