package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoResultsResponseJSON(t *testing.T) {
	b, err := json.Marshal(NewNoResultsResponse())
	require.NoError(t, err)
	require.JSONEq(t, `{"success":false,"message":"No search results found.","sections":[]}`, string(b))
}

func TestErrorResponseOmitsEmptyDetail(t *testing.T) {
	b, err := json.Marshal(NewErrorResponse(MessageServerError, ""))
	require.NoError(t, err)
	require.JSONEq(t, `{"success":false,"message":"Something went wrong. Please try again later."}`, string(b))

	b, err = json.Marshal(NewErrorResponse(MessageServerError, "boom"))
	require.NoError(t, err)
	require.Contains(t, string(b), `"error":"boom"`)
	require.NotContains(t, string(b), `"sections"`)
}

func TestSummarySectionHasNoSources(t *testing.T) {
	b, err := json.Marshal(Section{Type: SectionSummary, Title: "AI Summary", Content: "x"})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"summary","title":"AI Summary","content":"x"}`, string(b))
}

func TestSuccessResponseNeverNullSections(t *testing.T) {
	b, err := json.Marshal(NewSuccessResponse(nil, &Metadata{SearchQuery: "a", TotalSources: 2, Timestamp: "t"}))
	require.NoError(t, err)
	require.JSONEq(t, `{"success":true,"sections":[],"metadata":{"searchQuery":"a","totalSources":2,"timestamp":"t"}}`, string(b))
}
