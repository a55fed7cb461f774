package agent

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kardolus/adventure-agent/internal"
)

// RunLogs is the pair of per-run log sinks: a human-readable transcript and
// a JSONL debug stream, both under the cache home so runs can be replayed
// and diffed after the fact.
type RunLogs struct {
	Dir            string
	TranscriptPath string
	DebugPath      string

	TranscriptLogger *zap.SugaredLogger
	DebugLogger      *zap.SugaredLogger

	TranscriptZap *zap.Logger
	DebugZap      *zap.Logger

	transcriptFile *os.File
	debugFile      *os.File
}

func (l *RunLogs) Close() {
	// best-effort; ignore errors
	if l.TranscriptZap != nil {
		_ = l.TranscriptZap.Sync()
	}
	if l.DebugZap != nil {
		_ = l.DebugZap.Sync()
	}
	if l.transcriptFile != nil {
		_ = l.transcriptFile.Close()
	}
	if l.debugFile != nil {
		_ = l.debugFile.Close()
	}
}

// NewRunLogs creates a fresh run directory named after the game plus a short
// random slug, so concurrent and repeated runs never clobber each other.
func NewRunLogs(game string) (*RunLogs, error) {
	cacheHome, err := internal.GetCacheHome()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(cacheHome, "runs", internal.GenerateRunSlug(game+"-"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	// Naming + formats:
	// - transcript: human-readable, line-oriented
	// - debug: JSONL for machines/grep/jq tooling
	transcriptPath := filepath.Join(dir, "run.transcript.log")
	debugPath := filepath.Join(dir, "run.debug.jsonl")

	transcriptSug, transcriptZap, transcriptFile, err := newFileLogger(transcriptPath, zapcore.InfoLevel, false /* json */)
	if err != nil {
		return nil, err
	}

	debugSug, debugZap, debugFile, err := newFileLogger(debugPath, zapcore.DebugLevel, true /* json */)
	if err != nil {
		_ = transcriptZap.Sync()
		_ = transcriptFile.Close()
		return nil, err
	}

	return &RunLogs{
		Dir:              dir,
		TranscriptPath:   transcriptPath,
		DebugPath:        debugPath,
		TranscriptLogger: transcriptSug,
		DebugLogger:      debugSug,
		TranscriptZap:    transcriptZap,
		DebugZap:         debugZap,
		transcriptFile:   transcriptFile,
		debugFile:        debugFile,
	}, nil
}

func newFileLogger(path string, level zapcore.Level, json bool) (*zap.SugaredLogger, *zap.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if json {
		enc = zapcore.NewJSONEncoder(encCfg) // JSONL: 1 JSON object per line
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg) // human-readable
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(f), level)
	zl := zap.New(core)
	return zl.Sugar(), zl, f, nil
}
