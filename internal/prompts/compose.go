package prompts

// coverLetterFile holds the single canonical cover letter template.
const (
	coverLetterFile = "cover_letter.json"
	coverLetterKey  = "outline"
)

// Compose renders the cover letter prompt from the fixed template, embedding
// both bounded inputs verbatim. It is pure and total: any pair of strings,
// including empty ones, yields a prompt. Truncation is the extractor's
// responsibility; no length check happens here.
func Compose(candidateText, targetText string) string {
	template := MustGet(coverLetterFile, coverLetterKey)
	return Format(template, map[string]string{
		"Resume":     candidateText,
		"JobPosting": targetText,
	})
}
