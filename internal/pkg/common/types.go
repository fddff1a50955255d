package common

import (
	"strings"
	"time"
)

// Ingredient 食材（由一行食譜文字解析而來）
type Ingredient struct {
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Item     string `json:"item"`
	Original string `json:"original"`
}

// NewIngredient 建立食材；original 為空時由 quantity、unit、item 組合
func NewIngredient(quantity, unit, item, original string) Ingredient {
	ing := Ingredient{
		Quantity: strings.TrimSpace(quantity),
		Unit:     strings.TrimSpace(unit),
		Item:     strings.TrimSpace(item),
		Original: original,
	}
	if strings.TrimSpace(ing.Original) == "" {
		ing.Original = JoinNonEmpty(ing.Quantity, ing.Unit, ing.Item)
	}
	return ing
}

// String 返回食材的顯示文字
func (i Ingredient) String() string {
	if i.Original != "" {
		return i.Original
	}
	return JoinNonEmpty(i.Quantity, i.Unit, i.Item)
}

// Recipe 食譜
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Date        string       `json:"date"`
	Ingredients []Ingredient `json:"ingredients"`
	Oven        bool         `json:"oven"`
	Stove       bool         `json:"stove"`
	Portions    int          `json:"portions"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// IdentityKey 食譜識別鍵：優先使用 ID，否則使用小寫標題
func (r Recipe) IdentityKey() string {
	if r.ID != "" {
		return "id:" + r.ID
	}
	return "title:" + strings.ToLower(strings.TrimSpace(r.Title))
}

// PortionCount 返回份數，至少為 1
func (r Recipe) PortionCount() int {
	if r.Portions < 1 {
		return 1
	}
	return r.Portions
}

// GroceryLine 購物清單的一行
type GroceryLine struct {
	Ingredient string `json:"ingredient"`
	Count      int    `json:"count"`
}

// GroceryTotal 依數量加總的購物清單行
type GroceryTotal struct {
	Display  string   `json:"ingredient"`
	Item     string   `json:"item"`
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
	Count    int      `json:"count"`
	Recipes  []string `json:"recipes"`
}

// JoinNonEmpty 以單一空格連接非空字串
func JoinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
