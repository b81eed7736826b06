// internal/logging/logging.go
// Package logging routes the std logger to the ModelHub log file.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init points the std logger at logPath, creating parent directories as
// needed. An empty path discards all output, which keeps the terminal
// dashboard clean.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	if strings.TrimSpace(logPath) == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	if dir := filepath.Dir(logPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	logFile = file
	log.SetOutput(logFile)
	return nil
}

// Close flushes and detaches the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogRequest records one leg of an HTTP exchange with the backend.
func LogRequest(direction, method, url, requestID string, payload any) {
	log.Println(buildRequestMessage(direction, method, url, requestID, payload))
}

func buildRequestMessage(direction, method, url, requestID string, payload any) string {
	dir := strings.ToUpper(strings.TrimSpace(direction))
	methodValue := strings.ToUpper(strings.TrimSpace(method))
	if methodValue == "" {
		methodValue = "GET"
	}
	urlValue := strings.TrimSpace(url)
	if urlValue == "" {
		urlValue = "unknown"
	}
	parts := []string{fmt.Sprintf("[%s]", dir)}
	parts = append(parts, fmt.Sprintf("method=%s", methodValue))
	parts = append(parts, fmt.Sprintf("url=%s", urlValue))
	if id := strings.TrimSpace(requestID); id != "" {
		parts = append(parts, fmt.Sprintf("request_id=%s", id))
	}
	parts = append(parts, fmt.Sprintf("payload=%s", formatPayload(payload)))
	return strings.Join(parts, " ")
}

func formatPayload(payload any) string {
	switch v := payload.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(v) == "" {
			return `""`
		}
		return v
	case []byte:
		if len(v) == 0 {
			return "[]"
		}
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
