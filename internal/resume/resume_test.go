package resume

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghugg/job-hunter/internal/llm"
)

const sampleResume = `Jane Doe
https://github.com/janedoe
https://janedoe.dev

Software Engineer, Acme Corp
- Built a billing pipeline that reduced invoice errors by 40%
- Responsible for maintaining internal dashboards
- Led migration to Kubernetes across 12 services
`

func TestRunLint(t *testing.T) {
	lint := RunLint(sampleResume)

	assert.Len(t, lint.Links, 2)
	assert.True(t, lint.HasGithub)
	assert.True(t, lint.HasPortfolio, "janedoe.dev counts as a portfolio link")

	assert.Equal(t, 3, lint.BulletCount)
	assert.Equal(t, 2, lint.BulletsWithMetricsCount)
	require.Len(t, lint.BulletsNeedingVerb, 1)
	assert.Contains(t, lint.BulletsNeedingVerb[0], "Responsible for")
}

func TestRunLintNoLinks(t *testing.T) {
	lint := RunLint("Jane Doe\nSoftware Engineer")

	assert.Empty(t, lint.Links)
	assert.False(t, lint.HasGithub)
	assert.False(t, lint.HasPortfolio)
	assert.Zero(t, lint.BulletCount)
}

func TestRunLintLinkedInOnlyIsNotPortfolio(t *testing.T) {
	lint := RunLint("https://linkedin.com/in/janedoe and https://leetcode.com/janedoe")

	assert.Len(t, lint.Links, 2)
	assert.False(t, lint.HasPortfolio)
}

func TestMatchKeywords(t *testing.T) {
	cov := MatchKeywords(sampleResume, []string{"Kubernetes", "Go", "billing", "Terraform"})

	assert.Equal(t, []string{"Kubernetes", "billing"}, cov.Matched)
	assert.Equal(t, []string{"Go", "Terraform"}, cov.Missing)
	assert.Equal(t, 4, cov.Total)
	assert.Equal(t, 50, cov.Percent)
}

func TestMatchKeywordsEmpty(t *testing.T) {
	cov := MatchKeywords(sampleResume, nil)
	assert.Zero(t, cov.Total)
	assert.Zero(t, cov.Percent)
}

func TestNormalizeKeywords(t *testing.T) {
	raw := json.RawMessage(`["Go, Python", "Go", "Kubernetes; Docker", " "]`)
	got := normalizeKeywords(raw)
	assert.Equal(t, []string{"Go", "Python", "Kubernetes", "Docker"}, got)

	raw = json.RawMessage(`"Go, Python\nRust"`)
	got = normalizeKeywords(raw)
	assert.Equal(t, []string{"Go", "Python", "Rust"}, got)
}

// scriptedClient answers each prompt by matching a substring.
type scriptedClient struct {
	keywordReply string
	titleReply   string
	err          error
}

func (s scriptedClient) Generate(_ context.Context, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if strings.Contains(prompt, "SKILLS or KEYWORDS") {
		return s.keywordReply, nil
	}
	return s.titleReply, nil
}

func TestAnalyzeWithModel(t *testing.T) {
	client := scriptedClient{
		keywordReply: "```json\n{\"keywords\": [\"Kubernetes\", \"Terraform\"]}\n```",
		titleReply:   `{"titles": [{"original": "Research Aide II", "suggested": "Research Assistant"}]}`,
	}

	rep := NewAnalyzer(client).Analyze(context.Background(), sampleResume, "We need Kubernetes and Terraform.")

	require.NotNil(t, rep.KeywordCoverage)
	assert.Equal(t, []string{"Kubernetes"}, rep.KeywordCoverage.Matched)
	assert.Equal(t, 50, rep.KeywordCoverage.Percent)

	require.Len(t, rep.TitleSuggestions, 1)
	assert.Equal(t, "Research Assistant", rep.TitleSuggestions[0].Suggested)
}

func TestAnalyzeWithoutClient(t *testing.T) {
	rep := NewAnalyzer(nil).Analyze(context.Background(), sampleResume, "job text")

	assert.Nil(t, rep.KeywordCoverage)
	assert.NotEmpty(t, rep.KeywordMessage)
	assert.NotEmpty(t, rep.TitleMessage)
	assert.Equal(t, 3, rep.Lint.BulletCount, "lint still runs without a client")
}

func TestAnalyzeModelFailureIsAdvisory(t *testing.T) {
	client := scriptedClient{err: errors.New("quota exceeded")}

	rep := NewAnalyzer(client).Analyze(context.Background(), sampleResume, "job text")

	assert.Nil(t, rep.KeywordCoverage)
	assert.Contains(t, rep.KeywordMessage, "failed")
	assert.Contains(t, rep.TitleMessage, "failed")
	assert.Equal(t, 3, rep.Lint.BulletCount)
}

func TestAnalyzeEmptyJobText(t *testing.T) {
	client := scriptedClient{titleReply: `{"titles": []}`}

	rep := NewAnalyzer(client).Analyze(context.Background(), sampleResume, "   ")

	assert.Nil(t, rep.KeywordCoverage)
	assert.Contains(t, rep.KeywordMessage, "job description")
	assert.NotEmpty(t, rep.TitleMessage)
}

func TestHTTPAnalyze(t *testing.T) {
	factory := func(model, apiKey string) (llm.Client, error) {
		return scriptedClient{
			keywordReply: `{"keywords": ["Kubernetes"]}`,
			titleReply:   `{"titles": []}`,
		}, nil
	}
	h := NewHandler(factory)

	body := `{"resumeText": ` + jsonString(sampleResume) + `, "jobText": "Kubernetes role", "apiKey": "k", "model": "gemini-2.0-flash"}`
	req := httptest.NewRequest(http.MethodPost, "/api/resume/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var rep Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	require.NotNil(t, rep.KeywordCoverage)
	assert.Equal(t, 100, rep.KeywordCoverage.Percent)
}

func TestHTTPAnalyzeRequiresResume(t *testing.T) {
	h := NewHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/resume/analyze", strings.NewReader(`{"resumeText": "  "}`))
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTPAnalyzeWithoutKeyStillLints(t *testing.T) {
	h := NewHandler(nil)

	body := `{"resumeText": "- Built a thing"}`
	req := httptest.NewRequest(http.MethodPost, "/api/resume/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Analyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var rep Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, 1, rep.Lint.BulletCount)
	assert.NotEmpty(t, rep.KeywordMessage)
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
