package util

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatAmount 整数金额千分位格式化
func FormatAmount(amount int) string {
	s := strconv.Itoa(amount)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	result := strings.Join(parts, ",")
	if neg {
		result = "-" + result
	}
	return result
}

// FormatPercent 百分比数值格式化（20 → "20%"）
func FormatPercent(percent float64) string {
	return fmt.Sprintf("%g%%", percent)
}
