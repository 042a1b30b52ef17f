package corpus

import (
	"strconv"
	"strings"
)

// Resolve locates the article matching a free-form numeric reference. The
// query has its "." separators stripped and is parsed as a base-10 integer;
// each article's number has every non-digit stripped before comparison, so
// "1.230", "1230", and an article numbered "1.230" all meet on the integer
// 1230 regardless of formatting. The first article in display order whose
// normalized number equals the query wins; article numbers are not guaranteed
// unique across titles, and resolution terminates on the first hit.
//
// An unparseable query resolves to nothing; it is not an error.
func Resolve(query string, doc *Document) (Article, bool) {
	wanted, ok := parseQuery(query)
	if !ok {
		return Article{}, false
	}

	var match Article
	found := false
	doc.Walk(func(article Article) bool {
		number, ok := parseArticleNumber(article.Number)
		if ok && number == wanted {
			match = article
			found = true
			return true
		}
		return false
	})
	return match, found
}

func parseQuery(query string) (int, bool) {
	stripped := strings.ReplaceAll(strings.TrimSpace(query), ".", "")
	number, err := strconv.Atoi(stripped)
	if err != nil {
		return 0, false
	}
	return number, true
}

// parseArticleNumber strips ordinal decorations and separators ("3º",
// "1.230") down to bare digits.
func parseArticleNumber(raw string) (int, bool) {
	var digits strings.Builder
	for _, ch := range raw {
		if ch >= '0' && ch <= '9' {
			digits.WriteRune(ch)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	number, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return number, true
}
