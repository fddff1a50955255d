package ingredient

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// 數字格式，依優先順序嘗試
const (
	mixedPattern    = `\d+\s+\d+/\d+`
	fractionPattern = `\d+/\d+`
	decimalPattern  = `\d*\.\d+`
	integerPattern  = `\d+`
	numberPattern   = `(?:` + mixedPattern + `|` + fractionPattern + `|` + decimalPattern + `|` + integerPattern + `)`
	rangeSeparator  = `\s*(?:-|–|—|\bto\b)\s*`
)

var (
	rangeRe    = regexp.MustCompile(`^(` + numberPattern + `)` + rangeSeparator + `(` + numberPattern + `)`)
	mixedRe    = regexp.MustCompile(`^(\d+)\s+(\d+)/(\d+)`)
	fractionRe = regexp.MustCompile(`^(\d+)/(\d+)`)
	decimalRe  = regexp.MustCompile(`^` + decimalPattern)
	integerRe  = regexp.MustCompile(`^` + integerPattern)

	spaceRe = regexp.MustCompile(`\s+`)

	vulgarFractions = strings.NewReplacer(
		"½", " 1/2", "⅓", " 1/3", "⅔", " 2/3", "¼", " 1/4", "¾", " 3/4",
		"⅕", " 1/5", "⅖", " 2/5", "⅗", " 3/5", "⅘", " 4/5", "⅙", " 1/6",
		"⅚", " 5/6", "⅛", " 1/8", "⅜", " 3/8", "⅝", " 5/8", "⅞", " 7/8",
		"⁄", "/",
	)
)

// expandFractions 將 Unicode 分數字元轉為 ASCII 並合併空白
func expandFractions(s string) string {
	s = vulgarFractions.Replace(s)
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// ParseQuantity 將數量字串轉為數值。
// 支援整數、小數、分數、帶分數與範圍（範圍取下限）；其他格式與空字串返回 false
func ParseQuantity(text string) (float64, bool) {
	s := expandFractions(text)
	if s == "" {
		return 0, false
	}
	if m := rangeRe.FindStringSubmatch(s); m != nil && len(m[0]) == len(s) {
		return parseNumber(m[1])
	}
	return parseNumber(s)
}

// parseNumber 解析單一非範圍數字
func parseNumber(s string) (float64, bool) {
	if m := mixedRe.FindStringSubmatch(s); m != nil && len(m[0]) == len(s) {
		whole, _ := strconv.ParseFloat(m[1], 64)
		frac, ok := fraction(m[2], m[3])
		if !ok {
			return 0, false
		}
		return whole + frac, true
	}
	if m := fractionRe.FindStringSubmatch(s); m != nil && len(m[0]) == len(s) {
		return fraction(m[1], m[2])
	}
	if m := decimalRe.FindString(s); m != "" && len(m) == len(s) {
		v, err := strconv.ParseFloat(m, 64)
		return v, err == nil
	}
	if m := integerRe.FindString(s); m != "" && len(m) == len(s) {
		v, err := strconv.ParseFloat(m, 64)
		return v, err == nil
	}
	return 0, false
}

func fraction(num, den string) (float64, bool) {
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}

// consumeQuantity 比對開頭的數量，返回標準格式與剩餘文字
func consumeQuantity(s string) (quantity, rest string, ok bool) {
	if m := rangeRe.FindStringSubmatch(s); m != nil {
		return canonicalNumber(m[1]) + "-" + canonicalNumber(m[2]), s[len(m[0]):], true
	}
	for _, re := range []*regexp.Regexp{mixedRe, fractionRe, decimalRe, integerRe} {
		if m := re.FindString(s); m != "" {
			return canonicalNumber(m), s[len(m):], true
		}
	}
	return "", s, false
}

func canonicalNumber(s string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// FormatQuantity 格式化數量，最多兩位小數
func FormatQuantity(v float64) string {
	v = math.Round(v*100) / 100
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
