// SPDX-License-Identifier: MIT

package settings

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// rotation limits for LogFile
const (
	logMaxSizeMB  = 2
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// nopCloser is returned when the logger owns no file.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Logger builds a leveled, timestamped zerolog logger. When LogFile is set the
// output goes to a rotating file and w is ignored; a nil w without LogFile
// yields a Nop logger. The returned io.Closer releases the file and must be
// closed once the logger is no longer used.
func (c Config) Logger(w io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("%w: log_level: %w", ErrInvalidConfiguration, err)
	}
	var closer io.Closer = nopCloser{}
	if c.LogFile != "" {
		// lumberjack lets us rotate log files automatically
		rotating := &lumberjack.Logger{
			Filename:   c.LogFile,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAgeDays,
		}
		w, closer = rotating, rotating
	}
	if w == nil {
		return zerolog.Nop(), closer, nil
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), closer, nil
}
