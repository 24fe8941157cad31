package utils

import "unicode/utf8"

// Preview 截断过长的文本用于日志，返回是否发生截断。截断位置回退到字符边界
func Preview(body []byte, limit int) (string, bool) {
	if limit <= 0 || len(body) <= limit {
		return string(body), false
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return string(body[:cut]) + "...", true
}
