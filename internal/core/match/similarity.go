// Package match 食材名稱相似度評分與自動完成排序
package match

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

const (
	// DefaultThreshold 新增食材自動完成的最低分數
	DefaultThreshold = 0.4
	// DefaultLimit 建議數量上限
	DefaultLimit = 8

	minQueryRunes = 2
)

// Match 候選名稱與分數
type Match struct {
	Candidate string  `json:"candidate"`
	Score     float64 `json:"score"`
}

// Score 計算相似度 [0, 1]。
// 候選包含查詢字串時為 1.0，否則為 1 - 編輯距離/較長字串長度（不分大小寫）
func Score(query, candidate string) float64 {
	q := strings.ToLower(query)
	c := strings.ToLower(candidate)
	if strings.Contains(c, q) {
		return 1.0
	}

	maxLen := utf8.RuneCountInString(q)
	if l := utf8.RuneCountInString(c); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}

	dist := levenshtein.ComputeDistance(q, c)
	score := 1.0 - float64(dist)/float64(maxLen)
	if score < 0 {
		return 0
	}
	return score
}

// Rank 篩選分數 >= threshold 的候選，依分數遞減排序（同分依字典序），最多 limit 筆。
// 查詢字串少於兩個字元時返回空結果
func Rank(query string, candidates []string, threshold float64, limit int) []Match {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryRunes || len(candidates) == 0 || limit <= 0 {
		return []Match{}
	}

	matches := make([]Match, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}

		if s := Score(query, c); s >= threshold {
			matches = append(matches, Match{Candidate: c, Score: s})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Candidate < matches[j].Candidate
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// RankMatches 只返回候選名稱
func RankMatches(query string, candidates []string, threshold float64, limit int) []string {
	ranked := Rank(query, candidates, threshold, limit)
	out := make([]string, len(ranked))
	for i, m := range ranked {
		out[i] = m.Candidate
	}
	return out
}
