package recipe

import (
	"dinner-menu/internal/core/ingredient"
	"dinner-menu/internal/core/match"
)

// RecipeInput 建立或更新食譜的輸入
// Ingredients 可混用字串與物件；IngredientsText 為整段貼上的食材文字
type RecipeInput struct {
	Title           string           `json:"title"`
	Date            string           `json:"date"`
	Ingredients     []ingredient.Raw `json:"ingredients"`
	IngredientsText string           `json:"ingredients_text"`
	Oven            bool             `json:"oven"`
	Stove           bool             `json:"stove"`
	Portions        int              `json:"portions"`
}

// ParseRequest 批次解析食材的請求；Lines 與 Text 擇一或併用
type ParseRequest struct {
	Lines []string `json:"lines"`
	Text  string   `json:"text"`
}

// SuggestOptions 自動完成參數；零值使用設定檔預設
type SuggestOptions struct {
	Threshold *float64
	Limit     int
}

// Suggestion 自動完成建議
type Suggestion = match.Match
