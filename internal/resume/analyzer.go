package resume

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/raghugg/job-hunter/internal/llm"
)

// TitleSuggestion pairs a resume job title with a clearer rewrite.
type TitleSuggestion struct {
	Original  string `json:"original"`
	Suggested string `json:"suggested"`
}

// Report is the full analysis result. The model-backed sections degrade
// to advisory messages when no client is available or a call fails; the
// lint checks always run.
type Report struct {
	Lint             Lint              `json:"lint"`
	KeywordCoverage  *Coverage         `json:"keywordCoverage,omitempty"`
	TitleSuggestions []TitleSuggestion `json:"titleSuggestions"`
	KeywordMessage   string            `json:"keywordMessage,omitempty"`
	TitleMessage     string            `json:"titleMessage,omitempty"`
}

type Analyzer struct {
	client llm.Client
}

// NewAnalyzer builds an analyzer. A nil client disables the model-backed
// checks without failing the rest.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze runs the lint checks plus, when a client and job description are
// present, keyword coverage and title review. The two model calls run
// concurrently.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobText string) Report {
	rep := Report{
		Lint:             RunLint(resumeText),
		TitleSuggestions: []TitleSuggestion{},
	}

	if a.client == nil {
		rep.KeywordMessage = "Add an API key to see keyword coverage for this job description."
		rep.TitleMessage = "Add an API key to get suggestions for clearer job titles."
		return rep
	}

	p := pool.New().WithContext(ctx)

	if strings.TrimSpace(jobText) == "" {
		rep.KeywordMessage = "Paste a job description to see keyword coverage."
	} else {
		p.Go(func(ctx context.Context) error {
			keywords, err := a.extractKeywords(ctx, jobText)
			switch {
			case err != nil:
				rep.KeywordMessage = "Keyword extraction failed. Other checks still ran."
			case len(keywords) == 0:
				rep.KeywordMessage = "Keyword extraction returned no keywords. Check your key and quota."
			default:
				cov := MatchKeywords(resumeText, keywords)
				rep.KeywordCoverage = &cov
			}
			return nil
		})
	}

	p.Go(func(ctx context.Context) error {
		suggestions, err := a.suggestTitles(ctx, resumeText)
		switch {
		case err != nil:
			rep.TitleMessage = "Job title review failed. Other checks still ran."
		case len(suggestions) == 0:
			rep.TitleMessage = "No obviously confusing or overly internal job titles were detected."
		default:
			rep.TitleSuggestions = suggestions
		}
		return nil
	})

	_ = p.Wait()
	return rep
}

const maxKeywords = 40

func (a *Analyzer) extractKeywords(ctx context.Context, jobText string) ([]string, error) {
	reply, err := a.client.Generate(ctx, keywordPrompt(jobText))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Keywords json.RawMessage `json:"keywords"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSONReply(reply)), &parsed); err != nil {
		return nil, err
	}
	return normalizeKeywords(parsed.Keywords), nil
}

// normalizeKeywords accepts either a JSON array or a single delimited
// string, splits on commas, semicolons and newlines, dedupes, and caps
// the list.
func normalizeKeywords(raw json.RawMessage) []string {
	var items []string
	var asList []string
	if err := json.Unmarshal(raw, &asList); err == nil {
		items = asList
	} else {
		var asString string
		if err := json.Unmarshal(raw, &asString); err != nil {
			return nil
		}
		items = []string{asString}
	}

	seen := map[string]bool{}
	out := []string{}
	for _, item := range items {
		for _, part := range strings.FieldsFunc(item, func(r rune) bool {
			return r == ',' || r == ';' || r == '\n'
		}) {
			kw := strings.TrimSpace(part)
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true
			out = append(out, kw)
			if len(out) == maxKeywords {
				return out
			}
		}
	}
	return out
}

func (a *Analyzer) suggestTitles(ctx context.Context, resumeText string) ([]TitleSuggestion, error) {
	reply, err := a.client.Generate(ctx, titlePrompt(resumeText))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Titles []TitleSuggestion `json:"titles"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSONReply(reply)), &parsed); err != nil {
		return nil, err
	}

	out := []TitleSuggestion{}
	for _, t := range parsed.Titles {
		t.Original = strings.TrimSpace(t.Original)
		t.Suggested = strings.TrimSpace(t.Suggested)
		if t.Original != "" && t.Suggested != "" {
			out = append(out, t)
		}
	}
	return out, nil
}
