package ingredient

import (
	"sort"
	"strings"
)

// unitSynonyms 單位同義詞對照表，初始化後唯讀
var unitSynonyms = map[string]string{
	// 容量
	"cup": "cup", "cups": "cup", "c": "cup",
	"tablespoon": "tbsp", "tablespoons": "tbsp", "tbsp": "tbsp", "tbsps": "tbsp", "tbs": "tbsp", "tb": "tbsp", "tbl": "tbsp",
	"teaspoon": "tsp", "teaspoons": "tsp", "tsp": "tsp", "tsps": "tsp", "ts": "tsp",
	"fluid ounce": "fl oz", "fluid ounces": "fl oz", "fl oz": "fl oz",
	"pint": "pint", "pints": "pint", "pt": "pint",
	"quart": "quart", "quarts": "quart", "qt": "quart",
	"gallon": "gallon", "gallons": "gallon", "gal": "gallon",
	"milliliter": "ml", "milliliters": "ml", "millilitre": "ml", "millilitres": "ml", "ml": "ml",
	"liter": "liter", "liters": "liter", "litre": "liter", "litres": "liter", "l": "liter",

	// 重量
	"pound": "lb", "pounds": "lb", "lb": "lb", "lbs": "lb",
	"ounce": "oz", "ounces": "oz", "oz": "oz",
	"gram": "gram", "grams": "gram", "g": "gram",
	"kilogram": "kg", "kilograms": "kg", "kg": "kg",

	// 計數與包裝
	"clove": "clove", "cloves": "clove",
	"head": "head", "heads": "head",
	"bunch": "bunch", "bunches": "bunch",
	"package": "package", "packages": "package", "pkg": "package",
	"can": "can", "cans": "can",
	"jar": "jar", "jars": "jar",
	"bottle": "bottle", "bottles": "bottle",
	"slice": "slice", "slices": "slice",
	"piece": "piece", "pieces": "piece",
	"stick": "stick", "sticks": "stick",
	"sprig": "sprig", "sprigs": "sprig",
	"pinch": "pinch", "pinches": "pinch",
	"dash": "dash", "dashes": "dash",
	"whole": "whole",
}

// synonymsByLength 依長度由長到短，「cups」優先於「c」
var synonymsByLength = func() []string {
	keys := make([]string, 0, len(unitSynonyms))
	for k := range unitSynonyms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// NormalizeUnit 單位正規化；未知單位返回小寫去空白的原文
func NormalizeUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	u = strings.TrimRight(u, ".")
	u = strings.Join(strings.Fields(strings.ReplaceAll(u, ".", " ")), " ")
	if canonical, ok := unitSynonyms[u]; ok {
		return canonical
	}
	return u
}

// IsUnit 檢查是否為已知單位
func IsUnit(word string) bool {
	_, ok := unitSynonyms[NormalizeUnit(word)]
	return ok
}

// consumeUnit 比對開頭的單位，須在字詞邊界結束；縮寫後的句點一併移除
func consumeUnit(s string) (unit, rest string, ok bool) {
	for _, syn := range synonymsByLength {
		if len(s) < len(syn) || !strings.EqualFold(s[:len(syn)], syn) {
			continue
		}
		tail := s[len(syn):]
		if tail != "" && isWordByte(tail[0]) {
			continue
		}
		tail = strings.TrimPrefix(tail, ".")
		return unitSynonyms[syn], strings.TrimSpace(tail), true
	}
	return "", s, false
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_' || b >= 0x80
}
