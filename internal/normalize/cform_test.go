package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		want         string
		wantFallback bool
	}{
		{"shushi prefix", "終止形-一般", "基本形", false},
		{"rentai prefix", "連体形-省略", "基本形", false},
		{"shushi rentai", "終止連体形", "基本形", false},
		{"renyou", "連用形-促音便", "連用形", false},
		{"mizen", "未然形-撥音便", "未然形", false},
		{"katei", "仮定形-融合", "仮定形", false},
		{"meirei", "命令形", "命令ｙｏ", false},
		{"ishi suiryou", "意志推量形", "未然ウ接続", false},
		{"pass-through allowed", "連用タ接続", "連用タ接続", false},
		{"spaces stripped", " 連用 テ接続 ", "連用テ接続", false},
		{"empty", "", "*", false},
		{"star", "*", "*", false},
		{"unknown", "語幹-一般", "*", true},
		{"ku form", "ク語法", "*", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, fallback := CForm(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFallback, fallback)
		})
	}
}

func TestCForm_Idempotent(t *testing.T) {
	t.Parallel()

	for _, v := range AllowedCForms() {
		got, fallback := CForm(v)
		assert.Falsef(t, fallback, "%q", v)
		assert.Equal(t, v, got)
	}
}

func TestIsAllowedCForm(t *testing.T) {
	t.Parallel()

	assert.True(t, IsAllowedCForm("基本形"))
	assert.True(t, IsAllowedCForm("命令ｙｏ"))
	assert.False(t, IsAllowedCForm("終止形-一般"))
}
