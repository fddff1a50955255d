package common

import (
	"errors"
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`              // 錯誤代碼
	Message string `json:"error"`             // 錯誤訊息
	Details string `json:"details,omitempty"` // 僅在調試模式顯示
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤訊息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap 返回原始錯誤
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is 以錯誤代碼比對
func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	return ok && t.Code == e.Code
}

// WithErr 返回附帶原始錯誤的副本
func (e *CustomError) WithErr(err error) *CustomError {
	cp := *e
	cp.Err = err
	return &cp
}

// WithMessage 返回替換訊息後的副本
func (e *CustomError) WithMessage(msg string) *CustomError {
	cp := *e
	cp.Message = msg
	return &cp
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// AsCustomError 將任意錯誤轉為自定義錯誤，預設為 ErrInternalError
func AsCustomError(err error) *CustomError {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ErrInvalidRequest.WithMessage(ve.Error())
	}
	return ErrInternalError.WithErr(err)
}

// ValidationError 表示驗證錯誤
type ValidationError struct {
	message string
}

// Error 實現 error 介面
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError 創建新的驗證錯誤
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError 檢查是否為驗證錯誤
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidRequest   = "INVALID_REQUEST"    // 400
	ErrCodeNotFound         = "NOT_FOUND"          // 404
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED" // 405
	ErrCodeConflict         = "CONFLICT"           // 409
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"  // 429

	// 服務器錯誤 (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"     // 504
)

var (
	// 客戶端錯誤
	ErrInvalidRequest   = NewError(ErrCodeInvalidRequest, "invalid request", http.StatusBadRequest, nil)
	ErrNotFound         = NewError(ErrCodeNotFound, "resource not found", http.StatusNotFound, nil)
	ErrMethodNotAllowed = NewError(ErrCodeMethodNotAllowed, "method not allowed", http.StatusMethodNotAllowed, nil)
	ErrConflict         = NewError(ErrCodeConflict, "resource conflict", http.StatusConflict, nil)
	ErrTooManyRequests  = NewError(ErrCodeTooManyRequests, "too many requests", http.StatusTooManyRequests, nil)

	// 服務器錯誤
	ErrInternalError      = NewError(ErrCodeInternalError, "internal server error", http.StatusInternalServerError, nil)
	ErrGatewayTimeout     = NewError(ErrCodeGatewayTimeout, "gateway timeout", http.StatusGatewayTimeout, nil)

	// 業務錯誤
	ErrRecipeNotFound       = NewError("RECIPE_NOT_FOUND", "recipe not found", http.StatusNotFound, nil)
	ErrMissingTitle         = NewError("MISSING_TITLE", "missing required field: title", http.StatusBadRequest, nil)
	ErrMissingIngredients   = NewError("MISSING_INGREDIENTS", "missing required field: ingredients", http.StatusBadRequest, nil)
	ErrInvalidDays          = NewError("INVALID_DAYS", "days must be between 1 and 14", http.StatusBadRequest, nil)
	ErrInvalidRerollIndex   = NewError("INVALID_REROLL_INDEX", "reroll index out of range", http.StatusBadRequest, nil)
	ErrInsufficientRecipes  = NewError("INSUFFICIENT_RECIPES", "not enough recipes for the requested days", http.StatusOK, nil)
	ErrNoRecipes            = NewError("NO_RECIPES", "no recipes available", http.StatusNotFound, nil)
	ErrWeatherUnavailable   = NewError("WEATHER_UNAVAILABLE", "weather forecast unavailable", http.StatusBadGateway, nil)
	ErrWeatherNotConfigured = NewError("WEATHER_NOT_CONFIGURED", "weather api key not configured", http.StatusServiceUnavailable, nil)
	ErrCacheMiss            = NewError("CACHE_MISS", "cache miss", http.StatusNotFound, nil)
	ErrCacheFull            = NewError("CACHE_FULL", "cache is full", http.StatusServiceUnavailable, nil)
)
