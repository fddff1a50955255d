package ingredient

import (
	"regexp"
	"strings"

	"dinner-menu/internal/pkg/common"
)

var (
	// 從食譜網站複製時殘留的勾選框與項目符號
	glyphReplacer = strings.NewReplacer(
		"▢", " ", "☐", " ", "□", " ", "◻", " ", "■", " ",
		"✓", " ", "✔", " ", "•", " ", "●", " ", "▪", " ",
	)

	// 「($0.42)」形式的價格標註
	priceRe = regexp.MustCompile(`\(\s*\$[^)]*\)`)
)

// clean 清除符號與價格標註
func clean(line string) string {
	s := glyphReplacer.Replace(line)
	s = priceRe.ReplaceAllString(s, " ")
	s = expandFractions(s)
	return strings.TrimLeft(s, "-*+ ")
}

// Parse 將一行食材文字拆解為數量、單位、名稱。
// 不會失敗：沒有數量開頭的文字整行作為 item；Original 永遠保留原始輸入。
func Parse(line string) common.Ingredient {
	bare := func(item string) common.Ingredient {
		if item == "" {
			item = strings.TrimSpace(line)
		}
		if item == "" {
			item = line
		}
		return common.Ingredient{Item: item, Original: line}
	}

	text := clean(line)
	if text == "" {
		return bare("")
	}

	quantity, rest, ok := consumeQuantity(text)
	if !ok {
		return bare(text)
	}
	rest = strings.TrimSpace(rest)

	// 只有在數量之後才解析單位，「Cup Noodles」維持為名稱
	unit := ""
	if u, r, found := consumeUnit(rest); found {
		unit, rest = u, r
	}

	item := trimItem(rest)
	if item == "" {
		return bare(text)
	}
	return common.Ingredient{
		Quantity: quantity,
		Unit:     unit,
		Item:     item,
		Original: line,
	}
}

func trimItem(s string) string {
	s = strings.TrimLeft(s, " ,;:.")
	if len(s) > 3 && strings.EqualFold(s[:3], "of ") {
		s = s[3:]
	}
	return strings.TrimSpace(s)
}

// ParseLines 逐行解析，保持順序與數量
func ParseLines(lines []string) []common.Ingredient {
	out := make([]common.Ingredient, 0, len(lines))
	for _, l := range lines {
		out = append(out, Parse(l))
	}
	return out
}

// SplitText 將貼上的食材文字拆成多行；只有一行時以逗號分隔。空白項目會被略過
func SplitText(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	if len(nonBlank(parts)) == 1 {
		parts = strings.Split(text, ",")
	}
	return nonBlank(parts)
}

func nonBlank(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
