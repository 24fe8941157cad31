package utils

import (
	"encoding/json"
	"net/http"

	"person_search/logger"
)

// WriteJSON 写入JSON响应并设置状态码
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("写入响应失败", "error", err)
	}
}

// WriteFormattedJSON 格式化JSON输出，使其更易读
func WriteFormattedJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ") // 使用4个空格缩进
	if err := encoder.Encode(data); err != nil {
		logger.Error("写入响应失败", "error", err)
	}
}
