package models

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate_ShortStringUnchanged(t *testing.T) {
	assert.Equal(t, "Shooting in Paris", Truncate("Shooting in Paris", 200))
	assert.Equal(t, "", Truncate("", 200))
}

func TestTruncate_ASCIICutsAtLimit(t *testing.T) {
	long := strings.Repeat("a", 250)
	got := Truncate(long, 200)
	assert.Len(t, got, 200)
}

func TestTruncate_MultibyteRuneNotSplit(t *testing.T) {
	// 199 ASCII символов плюс "ééé": байтовый срез [:200] разрезал бы
	// первую "é" посередине и дал невалидный UTF-8
	title := strings.Repeat("a", 199) + "ééé"
	got := Truncate(title, 200)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 200, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "é"))
}

func TestEventHash_Deterministic(t *testing.T) {
	a := EventHash("Man killed in shooting", "2026-08-20", "ACLED", "")
	b := EventHash("  MAN KILLED IN SHOOTING", "2026-08-20", "ACLED", "")
	assert.NotEmpty(t, a)
	// Хеш нечувствителен к регистру и внешним пробелам
	assert.Equal(t, a, b)
}
