package resume

import "fmt"

func keywordPrompt(jobText string) string {
	return fmt.Sprintf(`Read the following software job description and extract 10 to 30 of the most
important SKILLS or KEYWORDS.

Return ONLY valid JSON in this exact shape:

{
  "keywords": ["keyword1", "keyword2", "keyword3", ...]
}

Rules:
- Each keyword must be short (1-3 words).
- DO NOT group multiple keywords into one string.
- DO NOT add any explanation text, only JSON.

Job description:
---
%s
---
`, jobText)
}

func titlePrompt(resumeText string) string {
	return fmt.Sprintf(`Extract job titles from the resume text below.

Identify any titles that:
- are overly internal (e.g., "DOE-SULI Intern", "Research Aide II")
- are unclear to a typical tech recruiter
- do not use standard industry phrasing

For each unclear title, suggest a clearer, more standard job title.

Return ONLY valid JSON in this exact format:

{
  "titles": [
    {
      "original": "Original title exactly as written",
      "suggested": "Clearer, more standard title"
    }
  ]
}

If all titles are fine, return:

{ "titles": [] }

Resume:
---
%s
---
`, resumeText)
}
