// Package grocery 由食譜產生購物清單
package grocery

import (
	"sort"

	"dinner-menu/internal/core/ingredient"
	"dinner-menu/internal/pkg/common"
)

// Aggregate 依正規化名稱分組並計算出現次數。
// 分組為完全比對：「onion」與「yellow onion」是不同的行。排除佔位文字，依名稱排序
func Aggregate(recipes []common.Recipe) []common.GroceryLine {
	counts := make(map[string]int)
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			key := ingredient.Key(ing)
			if key == "" || ingredient.IsPlaceholder(key) {
				continue
			}
			counts[key]++
		}
	}

	lines := make([]common.GroceryLine, 0, len(counts))
	for name, n := range counts {
		lines = append(lines, common.GroceryLine{Ingredient: name, Count: n})
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Ingredient < lines[j].Ingredient
	})
	return lines
}
