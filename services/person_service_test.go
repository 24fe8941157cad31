package services

import (
	"context"
	"testing"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"

	"person_search/models"
)

type fakeSearch struct {
	results []models.SearchResult
	err     error
	calls   int
	queries []string
}

func (f *fakeSearch) Search(_ context.Context, query string) ([]models.SearchResult, error) {
	f.calls++
	f.queries = append(f.queries, query)
	return f.results, f.err
}

type fakeSummarizer struct {
	summary string
	found   bool
	err     error
	calls   int
	inputs  []string
}

func (f *fakeSummarizer) Summarize(_ context.Context, text string) (string, bool, error) {
	f.calls++
	f.inputs = append(f.inputs, text)
	return f.summary, f.found, f.err
}

func newTestService(search *fakeSearch, sum *fakeSummarizer) *PersonService {
	svc := NewPersonService(search, sum)
	svc.now = func() time.Time { return time.Date(2024, 3, 5, 7, 8, 9, 123000000, time.FixedZone("X", 3600)) }
	return svc
}

func TestSearchNoResultsSkipsSummarizer(t *testing.T) {
	search := &fakeSearch{}
	sum := &fakeSummarizer{}

	resp, err := newTestService(search, sum).Search(context.Background(), "Nobody", "")
	require.NoError(t, err)
	require.Equal(t, models.NewNoResultsResponse(), *resp)
	require.False(t, resp.Success)
	require.Equal(t, "No search results found.", resp.Message)
	require.Empty(t, resp.Sections)
	require.NotNil(t, resp.Sections)
	require.Nil(t, resp.Metadata)
	require.Equal(t, 1, search.calls)
	require.Zero(t, sum.calls)
}

func TestSearchEndToEndEducation(t *testing.T) {
	search := &fakeSearch{results: []models.SearchResult{
		{Title: "Jane Doe - University X", Snippet: "Jane attended University X", Link: "http://x"},
	}}
	sum := &fakeSummarizer{summary: "Jane is an alumna of University X.", found: true}

	resp, err := newTestService(search, sum).Search(context.Background(), "Jane Doe", "teacher")
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, []string{"Jane Doe teacher"}, search.queries)
	require.Equal(t, []string{"Jane Doe - University X: Jane attended University X"}, sum.inputs)

	require.Len(t, resp.Sections, 2)
	require.Equal(t, models.Section{Type: "summary", Title: "AI Summary", Content: "Jane is an alumna of University X."}, resp.Sections[0])
	require.Equal(t, "education", resp.Sections[1].Type)
	require.Equal(t, "Education", resp.Sections[1].Title)
	require.Equal(t, "Jane attended University X", resp.Sections[1].Content)
	require.Equal(t, []models.Source{{Title: "Jane Doe - University X", Link: "http://x"}}, resp.Sections[1].Sources)

	require.Equal(t, &models.Metadata{
		SearchQuery:  "Jane Doe teacher",
		TotalSources: 1,
		Timestamp:    "2024-03-05T06:08:09.123Z",
	}, resp.Metadata)
}

func TestSearchMissingSummaryUsesFallback(t *testing.T) {
	search := &fakeSearch{results: []models.SearchResult{{Title: "t", Snippet: "s", Link: "l"}}}
	sum := &fakeSummarizer{found: false}

	resp, err := newTestService(search, sum).Search(context.Background(), "Jane", "")
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, "Summary not available", resp.Sections[0].Content)
}

func TestSearchTotalSourcesIsRawCount(t *testing.T) {
	search := &fakeSearch{results: []models.SearchResult{
		{Title: "a", Snippet: "same"},
		{Title: "a", Snippet: "same"},
		{Title: "b", Snippet: "job"},
	}}
	sum := &fakeSummarizer{summary: "x", found: true}

	resp, err := newTestService(search, sum).Search(context.Background(), "  Jane  ", "")
	require.NoError(t, err)
	require.Equal(t, 3, resp.Metadata.TotalSources)
	require.Equal(t, "Jane", resp.Metadata.SearchQuery)
	require.Equal(t, []string{"a: same\n\na: same\n\nb: job"}, sum.inputs)
}

func TestSearchUpstreamFailures(t *testing.T) {
	searchErr := &UpstreamError{Provider: "serpapi", StatusCode: 502}
	search := &fakeSearch{err: searchErr}
	sum := &fakeSummarizer{}

	resp, err := newTestService(search, sum).Search(context.Background(), "Jane", "")
	require.Error(t, err)
	require.Nil(t, resp)
	require.Zero(t, sum.calls)
	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	require.Equal(t, 502, upstream.StatusCode)

	search = &fakeSearch{results: []models.SearchResult{{Title: "t", Snippet: "s"}}}
	sum = &fakeSummarizer{err: errors.New("connection reset")}
	resp, err = newTestService(search, sum).Search(context.Background(), "Jane", "")
	require.Error(t, err)
	require.Nil(t, resp)
	require.Contains(t, err.Error(), "connection reset")
}

func TestBuildQuery(t *testing.T) {
	require.Equal(t, "Jane Doe", BuildQuery("Jane Doe", ""))
	require.Equal(t, "Jane Doe teacher", BuildQuery("Jane Doe", "teacher"))
	require.Equal(t, "", BuildQuery("", ""))
}
