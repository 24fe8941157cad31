package services

import (
	"strings"

	"person_search/models"
)

const summaryTitle = "AI Summary"

type bucketSection struct {
	sectionType string
	title       string
	results     func(ClassifiedResults) []models.SearchResult
}

// 分区输出顺序
var bucketSections = []bucketSection{
	{models.SectionPersonal, "Personal Information", func(c ClassifiedResults) []models.SearchResult { return c.Personal }},
	{models.SectionProfessional, "Professional Background", func(c ClassifiedResults) []models.SearchResult { return c.Professional }},
	{models.SectionEducation, "Education", func(c ClassifiedResults) []models.SearchResult { return c.Education }},
	{models.SectionOther, "Additional Information", func(c ClassifiedResults) []models.SearchResult { return c.Other }},
}

// FormatSections 摘要分区总在第一位，空分类不输出分区
func FormatSections(summary string, classified ClassifiedResults) []models.Section {
	sections := make([]models.Section, 0, 1+len(bucketSections))
	sections = append(sections, models.Section{
		Type:    models.SectionSummary,
		Title:   summaryTitle,
		Content: summary,
	})

	for _, b := range bucketSections {
		results := b.results(classified)
		if len(results) == 0 {
			continue
		}

		snippets := make([]string, 0, len(results))
		sources := make([]models.Source, 0, len(results))
		for _, r := range results {
			snippets = append(snippets, r.Snippet)
			sources = append(sources, models.Source{Title: r.Title, Link: r.Link})
		}

		sections = append(sections, models.Section{
			Type:    b.sectionType,
			Title:   b.title,
			Content: strings.Join(snippets, "\n"),
			Sources: sources,
		})
	}

	return sections
}
