package ai

import (
	"fmt"
	"strings"
)

func searchTermsPrompt(query string) string {
	return fmt.Sprintf(`You convert a reader's natural-language book request into
a short search query for a book catalog API.
Return ONLY the keywords, no quotes, no explanations.

Request: %s`, query)
}

func recommendationPrompt(purchasedTitles []string, wish string) string {
	var b strings.Builder
	b.WriteString("You are the BookHaven recommendation assistant.\n")
	b.WriteString("Suggest 3 to 5 books the reader might enjoy next, one line each, with a short reason.\n")

	if len(purchasedTitles) > 0 {
		b.WriteString("\nThe reader previously bought:\n")
		for _, title := range purchasedTitles {
			fmt.Fprintf(&b, "- %s\n", title)
		}
	} else {
		b.WriteString("\nThe reader has no purchase history yet; suggest broadly appealing books.\n")
	}

	if strings.TrimSpace(wish) != "" {
		fmt.Fprintf(&b, "\nThe reader says: %s\n", wish)
	}

	return b.String()
}

func summaryPrompt(title string, authors []string, description string) string {
	byline := "unknown author"
	if len(authors) > 0 {
		byline = strings.Join(authors, ", ")
	}
	return fmt.Sprintf(`Summarize the book %q by %s in at most 3 sentences.
Be concise and avoid spoilers.

Publisher description:
%s`, title, byline, description)
}
