package services

import (
	"strings"

	"person_search/models"
)

// Category 搜索结果分类
type Category int

const (
	CategoryPersonal Category = iota
	CategoryProfessional
	CategoryEducation
	CategoryOther
)

// ClassifiedResults 四个互斥分类，顺序与输入一致
type ClassifiedResults struct {
	Personal     []models.SearchResult
	Professional []models.SearchResult
	Education    []models.SearchResult
	Other        []models.SearchResult
}

// Total 所有分类中的结果总数
func (c ClassifiedResults) Total() int {
	return len(c.Personal) + len(c.Professional) + len(c.Education) + len(c.Other)
}

func (c *ClassifiedResults) add(category Category, result models.SearchResult) {
	switch category {
	case CategoryPersonal:
		c.Personal = append(c.Personal, result)
	case CategoryProfessional:
		c.Professional = append(c.Professional, result)
	case CategoryEducation:
		c.Education = append(c.Education, result)
	default:
		c.Other = append(c.Other, result)
	}
}

// ClassifyRule 分类规则，Match 接收小写的 "<title>: <snippet>"
type ClassifyRule struct {
	Category Category
	Match    func(text string) bool
}

// KeywordRule 文本包含任一关键词即命中
func KeywordRule(category Category, keywords ...string) ClassifyRule {
	return ClassifyRule{
		Category: category,
		Match: func(text string) bool {
			for _, kw := range keywords {
				if strings.Contains(text, kw) {
					return true
				}
			}
			return false
		},
	}
}

// DefaultRules 按优先级排列，先命中者生效
var DefaultRules = []ClassifyRule{
	KeywordRule(CategoryEducation, "education", "university", "college", "school"),
	KeywordRule(CategoryProfessional, "job", "work", "career", "company", "position"),
	KeywordRule(CategoryPersonal, "born", "age", "birth", "location", "city"),
}

// Classify 使用默认规则分类
func Classify(results []models.SearchResult) ClassifiedResults {
	return ClassifyWithRules(results, DefaultRules)
}

// ClassifyWithRules 每条结果恰好进入一个分类，没有规则命中时归入 Other
func ClassifyWithRules(results []models.SearchResult, rules []ClassifyRule) ClassifiedResults {
	var classified ClassifiedResults
	for _, result := range results {
		classified.add(categorize(result, rules), result)
	}
	return classified
}

func categorize(result models.SearchResult, rules []ClassifyRule) Category {
	text := strings.ToLower(CombineText(result))
	for _, rule := range rules {
		if rule.Match(text) {
			return rule.Category
		}
	}
	return CategoryOther
}

// CombineText 返回 "<title>: <snippet>"
func CombineText(result models.SearchResult) string {
	return result.Title + ": " + result.Snippet
}
