package util

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID 生成一个标准的 UUID (v4)，用作会话和消息的主标识
func GenerateUUID() string {
	return uuid.New().String()
}

// GenerateShortUUID 生成一个不带中划线的短 UUID，通知条目等短生命周期对象用
func GenerateShortUUID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
