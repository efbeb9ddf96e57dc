// Package obslog provides config-driven categorized file-based logging.
// Logs are written to .i18nls/logs/ with a separate file per category.
// Logging is controlled by debugMode in the loaded configuration - when
// false, no logs are written.
package obslog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category represents a log category/subsystem.
type Category string

const (
	CategoryBoot      Category = "boot"      // process startup, config load
	CategoryConfig    Category = "config"    // configuration validation
	CategoryCatalog   Category = "catalog"   // catalog loading, JSON flattening
	CategoryExtractor Category = "extractor" // tree-sitter extraction, scope resolution
	CategoryDB        Category = "db"        // incremental query engine
	CategoryIndexer   Category = "indexer"   // workspace indexing
	CategoryWatch     Category = "watch"     // filesystem watch bridge
	CategoryTransport Category = "transport" // LSP-style JSON-RPC transport
)

// loggingConfig mirrors the relevant part of the top-level configuration,
// duplicated here to avoid an import cycle with internal/config.
type loggingConfig struct {
	DebugMode  bool            `json:"debugMode"`
	Categories map[string]bool `json:"categories"`
	Level      string          `json:"level"`
	JSONFormat bool            `json:"jsonFormat"`
}

type configFile struct {
	Logging loggingConfig `json:"logging"`
}

// StructuredLogEntry is the shape written to disk when JSONFormat is set.
type StructuredLogEntry struct {
	Timestamp int64                  `json:"ts"`
	Category  string                 `json:"cat"`
	Level     string                 `json:"lvl"`
	Message   string                 `json:"msg"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// Logger wraps a standard logger with category and file output.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	loggers      = make(map[Category]*Logger)
	loggersMu    sync.RWMutex
	logsDir      string
	workspace    string
	cfg          loggingConfig
	configMu     sync.RWMutex
	logLevel     int
)

const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// Initialize sets up the logging directory and loads config. Call once at
// startup with the workspace path.
func Initialize(ws string) error {
	if ws == "" {
		return fmt.Errorf("workspace path required")
	}
	workspace = ws
	logsDir = filepath.Join(workspace, ".i18nls", "logs")

	if err := loadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "[obslog] warning: could not load config: %v\n", err)
		cfg.DebugMode = false
	}

	if !cfg.DebugMode {
		return nil
	}

	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("create logs directory: %w", err)
	}

	boot := Get(CategoryBoot)
	boot.Info("logging initialized, workspace=%s level=%s", workspace, cfg.Level)
	return nil
}

func loadConfig() error {
	configMu.Lock()
	defer configMu.Unlock()

	path := filepath.Join(workspace, ".i18nls", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.DebugMode = false
			return nil
		}
		return err
	}

	var cf configFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return fmt.Errorf("parse logging config: %w", err)
	}
	cfg = cf.Logging

	switch cfg.Level {
	case "debug":
		logLevel = LevelDebug
	case "warn", "warning":
		logLevel = LevelWarn
	case "error":
		logLevel = LevelError
	default:
		logLevel = LevelInfo
	}
	return nil
}

// IsCategoryEnabled reports whether a category currently writes output.
func IsCategoryEnabled(category Category) bool {
	configMu.RLock()
	defer configMu.RUnlock()
	if !cfg.DebugMode {
		return false
	}
	if cfg.Categories == nil {
		return true
	}
	enabled, exists := cfg.Categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns (or lazily creates) the logger for a category. When logging is
// disabled the returned logger is a no-op.
func Get(category Category) *Logger {
	if !IsCategoryEnabled(category) || logsDir == "" {
		return &Logger{category: category}
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	fname := fmt.Sprintf("%s-%s.log", category, time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(filepath.Join(logsDir, fname), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &Logger{category: category}
	}
	l := &Logger{category: category, logger: log.New(f, "", log.LstdFlags), file: f}
	loggers[category] = l
	return l
}

func (l *Logger) write(level int, levelName, format string, args ...interface{}) {
	if l.logger == nil || level < logLevel {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if cfg.JSONFormat {
		entry := StructuredLogEntry{
			Timestamp: time.Now().UnixMilli(),
			Category:  string(l.category),
			Level:     levelName,
			Message:   msg,
		}
		data, err := json.Marshal(entry)
		if err == nil {
			l.logger.Println(string(data))
			return
		}
	}
	l.logger.Printf("[%s] %s", levelName, msg)
}

func (l *Logger) Debug(format string, args ...interface{}) { l.write(LevelDebug, "DEBUG", format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.write(LevelInfo, "INFO", format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.write(LevelWarn, "WARN", format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.write(LevelError, "ERROR", format, args...) }

// CloseAll flushes and closes every open category log file. Call during
// graceful shutdown.
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	for cat, l := range loggers {
		if l.file != nil {
			_ = l.file.Close()
		}
		delete(loggers, cat)
	}
}
