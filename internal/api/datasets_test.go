package api

import "testing"

func TestParseColumnsParam(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"空参数", "", nil},
		{"仅空白", "  ", nil},
		{"单列", "标题", []string{"标题"}},
		{"多列", "标题,期刊", []string{"标题", "期刊"}},
		{"带空白与空项", " 标题 ,, 期刊 ", []string{"标题", "期刊"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseColumnsParam(tt.raw)
			if len(got) != len(tt.expected) {
				t.Fatalf("parseColumnsParam(%q) = %v, want %v", tt.raw, got, tt.expected)
			}
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("第 %d 列 = %s, want %s", i, got[i], tt.expected[i])
				}
			}
		})
	}
}
