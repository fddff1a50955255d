// Package menu 晚餐菜單選擇
package menu

import (
	"math/rand/v2"
	"sort"

	"dinner-menu/internal/pkg/common"
)

// Environment 選菜時的環境限制
type Environment struct {
	ExcludeOven bool `json:"exclude_oven"`
}

// Request 選菜請求；Kept 依位置保留既有的食譜
type Request struct {
	Days        int
	Environment Environment
	Kept        map[int]common.Recipe
}

// Result 選菜結果；食譜不足時 Short 為 true
type Result struct {
	Recipes []common.Recipe
	Short   bool
}

// Random 亂數來源
type Random interface {
	Shuffle(n int, swap func(i, j int))
	IntN(n int) int
}

// globalRandom 使用 math/rand/v2 的全域函式，可併發使用
type globalRandom struct{}

func (globalRandom) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }
func (globalRandom) IntN(n int) int                     { return rand.IntN(n) }

// Selector 晚餐食譜選擇器，本身無狀態
type Selector struct {
	rnd Random
}

// Option 選擇器設定
type Option func(*Selector)

// WithRand 指定亂數來源（測試用）；*rand.Rand 不可併發使用
func WithRand(r Random) Option {
	return func(s *Selector) {
		if r != nil {
			s.rnd = r
		}
	}
}

// NewSelector 創建選擇器
func NewSelector(opts ...Option) *Selector {
	s := &Selector{rnd: globalRandom{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Filter 依環境過濾並去除重複的食譜，保持原順序
func Filter(catalog []common.Recipe, env Environment) []common.Recipe {
	out := make([]common.Recipe, 0, len(catalog))
	seen := make(map[string]struct{}, len(catalog))
	for _, r := range catalog {
		if env.ExcludeOven && r.Oven {
			continue
		}
		key := r.IdentityKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Select 從 catalog 隨機選出 Days 道不重複的食譜。
// Kept 中的食譜固定在原位置（超出範圍的位置忽略），其餘空位由洗牌後的食譜依序填入。
// 食譜不足時保留已填入的部分並設定 Short。
func (s *Selector) Select(catalog []common.Recipe, req Request) Result {
	if req.Days <= 0 {
		return Result{Recipes: []common.Recipe{}}
	}

	slots := make([]*common.Recipe, req.Days)
	used := make(map[string]struct{}, req.Days)

	indices := make([]int, 0, len(req.Kept))
	for i := range req.Kept {
		if i >= 0 && i < req.Days {
			indices = append(indices, i)
		}
	}
	sort.Ints(indices)
	for _, i := range indices {
		r := req.Kept[i]
		key := r.IdentityKey()
		if _, dup := used[key]; dup {
			continue
		}
		used[key] = struct{}{}
		slots[i] = &r
	}

	pool := make([]common.Recipe, 0, len(catalog))
	for _, r := range Filter(catalog, req.Environment) {
		if _, dup := used[r.IdentityKey()]; !dup {
			pool = append(pool, r)
		}
	}
	s.rnd.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	next := 0
	for i := range slots {
		if slots[i] != nil || next >= len(pool) {
			continue
		}
		slots[i] = &pool[next]
		next++
	}

	res := Result{Recipes: make([]common.Recipe, 0, req.Days)}
	for _, r := range slots {
		if r != nil {
			res.Recipes = append(res.Recipes, *r)
		}
	}
	res.Short = len(res.Recipes) < req.Days
	return res
}

// Reroll 只替換 current[index]，新食譜不會與 current 中任何食譜重複。
// 沒有可用的食譜時原樣返回並設定 Short。
func (s *Selector) Reroll(catalog, current []common.Recipe, index int, env Environment) (Result, error) {
	if index < 0 || index >= len(current) {
		return Result{}, common.ErrInvalidRerollIndex
	}

	used := make(map[string]struct{}, len(current))
	for _, r := range current {
		used[r.IdentityKey()] = struct{}{}
	}

	candidates := make([]common.Recipe, 0, len(catalog))
	for _, r := range Filter(catalog, env) {
		if _, dup := used[r.IdentityKey()]; !dup {
			candidates = append(candidates, r)
		}
	}

	out := make([]common.Recipe, len(current))
	copy(out, current)
	if len(candidates) == 0 {
		return Result{Recipes: out, Short: true}, nil
	}

	out[index] = candidates[s.rnd.IntN(len(candidates))]
	return Result{Recipes: out}, nil
}
