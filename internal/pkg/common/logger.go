package common

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LOG_MODE=concise 時仍會輸出的日誌訊息
const (
	MsgRequestCompleted = "request completed"
	MsgAppStarting      = "starting application"
	MsgServerShutdown   = "shutting down server"
	MsgServerExited     = "server exited"
)

var (
	// Logger 全局日誌實例，InitLogger 之前為 no-op
	Logger  = zap.NewNop()
	LogMode string

	// 日誌級別顏色
	levelColors = map[zapcore.Level]string{
		zapcore.DebugLevel: "\033[36m", // cyan
		zapcore.InfoLevel:  "\033[32m", // green
		zapcore.WarnLevel:  "\033[33m", // yellow
		zapcore.ErrorLevel: "\033[31m", // red
		zapcore.FatalLevel: "\033[35m", // magenta
	}
	resetColor = "\033[0m"

	conciseMessages = map[string]bool{
		MsgRequestCompleted: true,
		MsgAppStarting:      true,
		MsgServerShutdown:   true,
		MsgServerExited:     true,
	}
)

// 自定義編碼器配置
func getEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "",
		CallerKey:      "",
		MessageKey:     "msg",
		StacktraceKey:  "",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    customLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   nil,
	}
}

// 自定義時間格式
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05.000"))
}

// 自定義級別編碼器（添加顏色）
func customLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	color := levelColors[l]
	level := l.String()
	switch l {
	case zapcore.DebugLevel:
		level = "DBG"
	case zapcore.InfoLevel:
		level = "INF"
	case zapcore.WarnLevel:
		level = "WRN"
	case zapcore.ErrorLevel:
		level = "ERR"
	case zapcore.FatalLevel:
		level = "FAT"
	}
	enc.AppendString(color + level + resetColor)
}

// ParseLevel 解析日誌級別，預設為 info
func ParseLevel(logLevel string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(logLevel)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// InitLogger 初始化日誌系統
func InitLogger(logLevel string) error {
	level := ParseLevel(logLevel)

	// LOG_MODE 需在 .env 載入後讀取
	LogMode = os.Getenv("LOG_MODE")

	if err := os.MkdirAll("logs", 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile("logs/app.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(getEncoderConfig()),
		zapcore.AddSync(logFile),
		level,
	)
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(getEncoderConfig()),
		zapcore.AddSync(os.Stdout),
		level,
	)

	Logger = zap.New(zapcore.NewTee(fileCore, consoleCore),
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("service", "dinner-menu"),
		),
	)

	zap.ReplaceGlobals(Logger)

	return nil
}

// isSecretKey 判斷欄位名稱是否為敏感資訊
func isSecretKey(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "api_key") || strings.Contains(k, "apikey") ||
		strings.Contains(k, "password") || strings.Contains(k, "token") || strings.Contains(k, "secret")
}

// sanitizeFields 遮罩敏感欄位
func sanitizeFields(fields []zap.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		if isSecretKey(field.Key) && field.Type == zapcore.StringType {
			out = append(out, zap.String(field.Key, MaskSecret(field.String)))
			continue
		}
		out = append(out, field)
	}
	return out
}

// MaskSecret 遮罩敏感字串，只顯示前後各 4 個字符
func MaskSecret(s string) string {
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "..." + s[len(s)-4:]
}

// LogInfo 記錄信息日誌
func LogInfo(msg string, fields ...zap.Field) {
	if LogMode == "concise" && !conciseMessages[msg] {
		return
	}
	Logger.Info(msg, sanitizeFields(fields)...)
}

// LogError 記錄錯誤日誌
func LogError(msg string, fields ...zap.Field) {
	Logger.Error(msg, sanitizeFields(fields)...)
}

// LogWarn 記錄警告日誌
func LogWarn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, sanitizeFields(fields)...)
}

// LogDebug 記錄調試日誌
func LogDebug(msg string, fields ...zap.Field) {
	if LogMode == "concise" {
		return
	}
	Logger.Debug(msg, sanitizeFields(fields)...)
}

// LogFatal 記錄致命錯誤日誌
func LogFatal(msg string, fields ...zap.Field) {
	Logger.Fatal(msg, sanitizeFields(fields)...)
}

// Sync 同步日誌緩衝
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// LogCacheHit 記錄快取命中
func LogCacheHit(cacheType, key string) {
	LogDebug("cache hit", zap.String("type", cacheType), zap.String("key", key))
}

// LogCacheMiss 記錄快取未命中
func LogCacheMiss(cacheType, key string) {
	LogDebug("cache miss", zap.String("type", cacheType), zap.String("key", key))
}

// LogUpstreamCall 記錄外部服務調用
func LogUpstreamCall(service string, duration time.Duration, err error, requestID string) {
	if err != nil {
		LogError("upstream request failed",
			zap.String("upstream", service),
			zap.Error(err),
			zap.Duration("duration", duration),
			zap.String("request_id", requestID),
		)
		return
	}
	LogInfo("upstream request succeeded",
		zap.String("upstream", service),
		zap.Duration("duration", duration),
		zap.String("request_id", requestID),
	)
}
