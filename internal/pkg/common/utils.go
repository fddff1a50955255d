package common

import (
	"github.com/google/uuid"
)

// DateLayout 食譜日期格式
const DateLayout = "2006-01-02"

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// IsUUID 檢查字串是否為合法 UUID
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
