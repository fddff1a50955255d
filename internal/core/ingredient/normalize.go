package ingredient

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"dinner-menu/internal/pkg/common"
)

// 爬取資料殘留的佔位文字，不是真正的食材
var placeholders = []string{
	"look it up",
	"see recipe",
	"check recipe",
	"refer to",
	"as needed",
}

// NormalizeItem 食材名稱正規化：去除變音符號、轉小寫、合併空白
func NormalizeItem(item string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, item)
	if err != nil {
		folded = item
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// Key 食材分組鍵；item 為空時改用 original
func Key(ing common.Ingredient) string {
	if k := NormalizeItem(ing.Item); k != "" {
		return k
	}
	return NormalizeItem(ing.Original)
}

// IsPlaceholder 檢查是否為佔位文字
func IsPlaceholder(name string) bool {
	n := NormalizeItem(name)
	for _, p := range placeholders {
		if strings.Contains(n, p) {
			return true
		}
	}
	return false
}
