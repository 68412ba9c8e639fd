package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// NewLogger creates a new hclog logger with standard settings. level may be
// a plain hclog level name, or "json"/"json:<level>" to select JSON output.
// GPL2COL_JSON_LOG=1 also selects JSON output; GPL2COL_LOG_PATH redirects
// logging to a file.
func NewLogger(name string, level string) hclog.Logger {
	jsonFormat := os.Getenv("GPL2COL_JSON_LOG") == "1"
	actual := level
	if strings.HasPrefix(level, "json") {
		jsonFormat = true
		actual = "info"
		if _, rest, ok := strings.Cut(level, ":"); ok && rest != "" {
			actual = rest
		}
	}

	var output io.Writer = os.Stderr
	if logPath := os.Getenv("GPL2COL_LOG_PATH"); logPath != "" {
		if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			output = file
		}
	}

	// Add prefix for non-JSON output
	if !jsonFormat {
		output = NewPrefixWriter("🎨 ", output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(actual),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// ResolveLevel picks the effective log level: the CLI flag wins, then the
// GPL2COL_LOG_LEVEL environment variable, then the default. The second
// return value names the source for diagnostics.
func ResolveLevel(cliLevel string) (string, string) {
	if cliLevel != "" {
		return cliLevel, "CLI --log-level"
	}
	if env := os.Getenv("GPL2COL_LOG_LEVEL"); env != "" {
		return env, "GPL2COL_LOG_LEVEL"
	}
	return "info", "default"
}
