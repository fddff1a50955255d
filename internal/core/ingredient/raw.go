package ingredient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"dinner-menu/internal/pkg/common"
)

// Raw 來自儲存層或客戶端的原始食材：純文字或已結構化的資料
type Raw struct {
	text       string
	structured *common.Ingredient
}

// FromText 包裝純文字食材
func FromText(line string) Raw {
	return Raw{text: line}
}

// FromStructured 包裝結構化食材
func FromStructured(ing common.Ingredient) Raw {
	return Raw{structured: &ing}
}

// IsStructured 是否為結構化食材
func (r Raw) IsStructured() bool {
	return r.structured != nil
}

// IsBlank 是否為空白食材
func (r Raw) IsBlank() bool {
	if r.structured == nil {
		return strings.TrimSpace(r.text) == ""
	}
	s := r.structured
	return strings.TrimSpace(s.Item) == "" && strings.TrimSpace(s.Original) == ""
}

// Resolve 轉為結構化食材。
// 純文字經 Parse 解析；結構化資料保留欄位並正規化單位，只有 original 時重新解析
func (r Raw) Resolve() common.Ingredient {
	if r.structured == nil {
		return Parse(r.text)
	}
	s := *r.structured
	if strings.TrimSpace(s.Item) == "" && strings.TrimSpace(s.Original) != "" {
		return Parse(s.Original)
	}
	unit := ""
	if strings.TrimSpace(s.Unit) != "" {
		unit = NormalizeUnit(s.Unit)
	}
	return common.NewIngredient(s.Quantity, unit, s.Item, s.Original)
}

// ResolveAll 逐一轉換，保持順序與數量
func ResolveAll(raws []Raw) []common.Ingredient {
	out := make([]common.Ingredient, 0, len(raws))
	for _, r := range raws {
		out = append(out, r.Resolve())
	}
	return out
}

// MarshalJSON 純文字輸出為字串，結構化輸出為物件
func (r Raw) MarshalJSON() ([]byte, error) {
	if r.structured != nil {
		return json.Marshal(r.structured)
	}
	return json.Marshal(r.text)
}

// UnmarshalJSON 接受字串、物件或 null
func (r *Raw) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*r = Raw{}
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = FromText(s)
		return nil
	case data[0] == '{':
		var ing common.Ingredient
		if err := json.Unmarshal(data, &ing); err != nil {
			return err
		}
		*r = FromStructured(ing)
		return nil
	default:
		return fmt.Errorf("ingredient must be a string or an object, got %s", data)
	}
}
