// Package resume runs local lint checks and model-assisted analysis over
// pasted resume text.
package resume

import (
	"regexp"
	"strings"
)

var (
	urlRe     = regexp.MustCompile(`(?i)https?://[^\s)]+`)
	githubRe  = regexp.MustCompile(`(?i)github\.com`)
	excludeRe = regexp.MustCompile(`(?i)(github\.com|linkedin\.com|leetcode\.com)`)
	bulletRe  = regexp.MustCompile(`^\s*[-*•]`)
	metricRe  = regexp.MustCompile(`(?i)(\d|\bpercent\b|%|increase|decrease|improved|reduced|saved|grew|boosted)`)
	prefixRe  = regexp.MustCompile(`^\s*[-*•]\s*`)
	firstWord = regexp.MustCompile(`^([A-Za-z']+)`)
)

// Bullets that open with one of these verbs read as accomplishments; the
// rest get flagged for rewording.
var actionVerbs = map[string]bool{
	"led": true, "built": true, "created": true, "implemented": true,
	"designed": true, "developed": true, "improved": true, "optimized": true,
	"managed": true, "organized": true, "increased": true, "reduced": true,
	"launched": true, "owned": true, "collaborated": true, "automated": true,
}

// Lint holds the offline checks, computed without any model call.
type Lint struct {
	Links                   []string `json:"links"`
	HasGithub               bool     `json:"hasGithub"`
	HasPortfolio            bool     `json:"hasPortfolio"`
	BulletCount             int      `json:"bulletCount"`
	BulletsWithMetricsCount int      `json:"bulletsWithMetricsCount"`
	BulletsWithMetrics      []string `json:"bulletsWithMetrics"`
	BulletsNeedingVerb      []string `json:"bulletsNeedingStrongerVerb"`
}

// RunLint scans the resume text for links, bullet quality and metric use.
func RunLint(text string) Lint {
	out := Lint{
		Links:              urlRe.FindAllString(text, -1),
		HasGithub:          githubRe.MatchString(text),
		BulletsWithMetrics: []string{},
		BulletsNeedingVerb: []string{},
	}
	if out.Links == nil {
		out.Links = []string{}
	}
	for _, link := range out.Links {
		if !excludeRe.MatchString(link) {
			out.HasPortfolio = true
			break
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if !bulletRe.MatchString(line) {
			continue
		}
		out.BulletCount++
		if metricRe.MatchString(line) {
			out.BulletsWithMetrics = append(out.BulletsWithMetrics, line)
		}

		stripped := prefixRe.ReplaceAllString(line, "")
		m := firstWord.FindStringSubmatch(stripped)
		if m == nil {
			continue
		}
		if !actionVerbs[strings.ToLower(m[1])] {
			out.BulletsNeedingVerb = append(out.BulletsNeedingVerb, strings.TrimSpace(line))
		}
	}
	out.BulletsWithMetricsCount = len(out.BulletsWithMetrics)
	return out
}

// Coverage reports how many extracted job keywords appear in the resume.
type Coverage struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Percent int      `json:"percent"`
	Total   int      `json:"total"`
}

// MatchKeywords does a case-insensitive substring match of each keyword
// against the resume text.
func MatchKeywords(resumeText string, keywords []string) Coverage {
	lower := strings.ToLower(resumeText)
	cov := Coverage{Matched: []string{}, Missing: []string{}}
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			cov.Matched = append(cov.Matched, kw)
		} else {
			cov.Missing = append(cov.Missing, kw)
		}
	}
	total := len(keywords)
	if total == 0 {
		total = 1
	}
	cov.Total = len(keywords)
	cov.Percent = int(float64(len(cov.Matched))/float64(total)*100 + 0.5)
	return cov
}
