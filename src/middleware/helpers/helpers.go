/*
- LOGGER FUNCTION
- INITIALIZE FILES FUNCTION
- TERMINAL FUNCTIONS
*/
package helpers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
)

// ---------------------- LOGGER FUNCTION ---------------------- \\
func FormatDate(t time.Time) string {
	return t.Format("03:04:05 PM - 01/02/2006")
}

var colorCodes = map[string]func(a ...any) string{
	"info":    color.New(color.FgBlue).SprintFunc(),
	"verbose": color.New(color.FgCyan).SprintFunc(),
	"warn":    color.New(color.FgYellow).SprintFunc(),
	"error":   color.New(color.FgRed).SprintFunc(),
	"http":    color.New(color.FgMagenta).SprintFunc(),
	"silly":   color.New(color.FgGreen).SprintFunc(),
}

// verbose and http lines are debugging output and stay quiet unless asked for.
var quietLevels = map[string]bool{
	"verbose": true,
	"http":    true,
}

func (l *ColorizedLogger) log(level, message string) {
	if quietLevels[level] && !l.verbose {
		return
	}

	timestamp := FormatDate(time.Now())
	colorFunc, exists := colorCodes[level]
	if !exists {
		colorFunc = color.New(color.Reset).SprintFunc()
	}

	var logMessage string
	if l.useColor {
		logMessage = fmt.Sprintf("%s: %s\n", colorFunc(timestamp), colorFunc(message))
	} else {
		logMessage = fmt.Sprintf("[%s]: %s\n", timestamp, message)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.out, logMessage)
}

func NewColorizedLogger(useColor bool) *ColorizedLogger {
	return &ColorizedLogger{useColor: useColor, out: os.Stdout}
}

// NewLoggerTo writes plain lines to w, with verbose output enabled.
func NewLoggerTo(w io.Writer) *ColorizedLogger {
	return &ColorizedLogger{out: w, verbose: true}
}

func (l *ColorizedLogger) SetVerbose(verbose bool) { l.verbose = verbose }
func (l *ColorizedLogger) IsVerbose() bool         { return l.verbose }

func (l *ColorizedLogger) Info(message string)    { l.log("info", message) }
func (l *ColorizedLogger) Verbose(message string) { l.log("verbose", message) }
func (l *ColorizedLogger) Warn(message string)    { l.log("warn", message) }
func (l *ColorizedLogger) HTTP(message string)    { l.log("http", message) }
func (l *ColorizedLogger) Silly(message string)   { l.log("silly", message) }
func (l *ColorizedLogger) Error(message string)   { l.log("error", message) }

// ---------------------- INITIALIZE FILES FUNCTION ---------------------- \\
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, AppDirName), nil
}

func createSettingsJSON(path string) {
	settings := map[string]string{
		"router_ip":   DefaultRouterIP,
		"username":    DefaultUsername,
		"webhook_url": "",
	}
	data, _ := json.MarshalIndent(settings, "", "  ")
	os.WriteFile(path, data, 0644)
}

func InitFileSystem(logger *ColorizedLogger) {
	logger.Verbose("Initializing Superbox Helper")
	baseDir, err := BaseDir()
	if err != nil {
		logger.Error("Failed To Get Users Home Directory: " + err.Error())
		os.Exit(1)
	}

	for _, dir := range []string{baseDir, filepath.Join(baseDir, ExportsDirName)} {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				logger.Error(fmt.Sprintf("Failed To Create %s Directory: %s", dir, err.Error()))
				os.Exit(1)
			}
		}
	}

	settingsPath := filepath.Join(baseDir, SettingsFileName)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		createSettingsJSON(settingsPath)
	}
}

// ---------------------- TERMINAL FUNCTIONS ---------------------- \\
func SetTitle(status string) {
	title := fmt.Sprintf("Superbox Helper v%s | %s", Version, status)
	fmt.Printf("\033]0;%s\007", title)
}

func PrintBanner() {
	fmt.Print(Banner)
}

// MaskSecret keeps the first character of s and hides the rest.
func MaskSecret(s string) string {
	runes := []rune(s)
	if len(runes) <= 1 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-1)
}
