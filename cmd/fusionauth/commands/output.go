package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/fatih/color"
	"github.com/fusionauth-community/go-client/internal/constants"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Output format constants shared by all commands.
const (
	OutputFormatTable = constants.FormatTable
	OutputFormatJSON  = constants.FormatJSON
	OutputFormatYAML  = constants.FormatYAML
)

// StandardJSONRenderer writes data as indented JSON to stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML to stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// ColorScheme defines the colors used for different elements in the output.
type ColorScheme struct {
	Success   *color.Color
	Warning   *color.Color
	Error     *color.Color
	Highlight *color.Color
}

// DefaultColorScheme returns the default color scheme.
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Success:   color.New(color.FgGreen),
		Warning:   color.New(color.FgYellow),
		Error:     color.New(color.FgRed),
		Highlight: color.New(color.FgCyan, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled.
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Success.DisableColor()
	scheme.Warning.DisableColor()
	scheme.Error.DisableColor()
	scheme.Highlight.DisableColor()

	return scheme
}

// Colors returns the color scheme for the current invocation. Colors are
// disabled by the no-color flag and when stdout is not a terminal.
func Colors() *ColorScheme {
	if colorsEnabled() {
		return DefaultColorScheme()
	}

	return NoColorScheme()
}

func colorsEnabled() bool {
	if viper.GetBool("no-color") || viper.GetBool("no_color") {
		return false
	}

	return checkIsTerminal(os.Stdout)
}

// checkIsTerminal checks if the file is a terminal.
func checkIsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// formatInstant renders a FusionAuth epoch-millisecond instant.
func formatInstant(instant int64) string {
	if instant == 0 {
		return constants.NotAvailable
	}

	return time.UnixMilli(instant).UTC().Format("2006-01-02 15:04")
}

// formatActive renders an account state, colored when enabled.
func formatActive(active bool) string {
	scheme := Colors()
	if active {
		return scheme.Success.Sprint("active")
	}

	return scheme.Error.Sprint("inactive")
}

// valueOrNA substitutes a placeholder for empty values in tables.
func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// headerLabel humanizes a camelCase API field name into a table label,
// like "lastLoginInstant" into "Last Login Instant".
func headerLabel(field string) string {
	var words strings.Builder

	runes := []rune(field)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			words.WriteRune(' ')
		}

		words.WriteRune(r)
	}

	return cases.Title(language.English, cases.NoLower).String(words.String())
}

// stderrLogger writes client debug output to stderr for --verbose runs.
type stderrLogger struct{}

func (stderrLogger) Debug(msg string, fields map[string]interface{}) { logLine("DEBUG", msg, fields) }
func (stderrLogger) Info(msg string, fields map[string]interface{})  { logLine("INFO", msg, fields) }
func (stderrLogger) Warn(msg string, fields map[string]interface{})  { logLine("WARN", msg, fields) }
func (stderrLogger) Error(msg string, fields map[string]interface{}) { logLine("ERROR", msg, fields) }

func logLine(level, msg string, fields map[string]interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)

	for key, value := range fields {
		_, _ = fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	_, _ = fmt.Fprintln(os.Stderr)
}
