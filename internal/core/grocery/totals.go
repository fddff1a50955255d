package grocery

import (
	"sort"

	"dinner-menu/internal/core/ingredient"
	"dinner-menu/internal/pkg/common"
)

type totalKey struct {
	item string
	unit string
}

type totalAcc struct {
	sum     float64
	summed  bool
	count   int
	recipes map[string]struct{}
}

// Totals 依名稱與單位分組並加總數量。
// 範圍取下限；無法解析的數量不計入，整組都無法解析時 Quantity 為 nil。
// 不做單位換算，「1 cup flour」與「100 gram flour」分開列出
func Totals(recipes []common.Recipe) []common.GroceryTotal {
	groups := make(map[totalKey]*totalAcc)
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			item := ingredient.Key(ing)
			if item == "" || ingredient.IsPlaceholder(item) {
				continue
			}
			k := totalKey{item: item}
			if ing.Unit != "" {
				k.unit = ingredient.NormalizeUnit(ing.Unit)
			}

			acc, ok := groups[k]
			if !ok {
				acc = &totalAcc{recipes: make(map[string]struct{})}
				groups[k] = acc
			}
			acc.count++
			if r.Title != "" {
				acc.recipes[r.Title] = struct{}{}
			}
			if v, ok := ingredient.ParseQuantity(ing.Quantity); ok {
				acc.sum += v
				acc.summed = true
			}
		}
	}

	out := make([]common.GroceryTotal, 0, len(groups))
	for k, acc := range groups {
		total := common.GroceryTotal{
			Item:    k.item,
			Unit:    k.unit,
			Count:   acc.count,
			Recipes: make([]string, 0, len(acc.recipes)),
		}
		for title := range acc.recipes {
			total.Recipes = append(total.Recipes, title)
		}
		sort.Strings(total.Recipes)

		if acc.summed {
			q := acc.sum
			total.Quantity = &q
			total.Display = common.JoinNonEmpty(ingredient.FormatQuantity(q), k.unit, k.item)
		} else {
			total.Display = common.JoinNonEmpty(k.unit, k.item)
		}
		out = append(out, total)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Item != out[j].Item {
			return out[i].Item < out[j].Item
		}
		return out[i].Unit < out[j].Unit
	})
	return out
}
