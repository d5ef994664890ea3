package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"table-planner/internal/config"
)

var (
	sinkMu sync.Mutex
	sink   io.Writer = os.Stdout
)

// Init configures the global zerolog logger: level, optional pretty console
// output, optional size-limited log file. Safe to call more than once.
func Init(cfg config.LogConfig) {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil && parsed != zerolog.NoLevel {
		level = parsed
	}

	out := io.Writer(os.Stdout)
	if cfg.File != "" {
		if w, err := newSizeLimitedWriter(cfg.File, cfg.MaxMB); err == nil {
			out = w
		} else {
			log.Error().Err(err).Str("path", cfg.File).Msg("log file unavailable, using stdout")
		}
	}
	sinkMu.Lock()
	sink = out
	sinkMu.Unlock()

	display := out
	if cfg.Pretty {
		display = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(display).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger
}

// Writer exposes the raw log sink so the HTTP request logger can share it.
func Writer() io.Writer {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	return sink
}
