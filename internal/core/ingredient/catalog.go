package ingredient

import (
	"sort"

	"dinner-menu/internal/pkg/common"
)

// BuildCatalog 從所有食譜收集不重複的正規化食材名稱（已排序，排除佔位文字）
func BuildCatalog(recipes []common.Recipe) []string {
	seen := make(map[string]struct{})
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			key := Key(ing)
			if key == "" || IsPlaceholder(key) {
				continue
			}
			seen[key] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
