package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/skaranam/namartha"
)

// knownAuthors maps commentary section labels (lowercased) to author
// metadata. A label not found here is treated as the author name itself,
// period unknown.
var knownAuthors = map[string]namartha.Commentary{
	"bhaskararaya":       {Author: "Bhāskararāya Makhin", Period: "1690–1785 CE", Source: "Saubhāgya-bhāskara"},
	"bhāskararāya":       {Author: "Bhāskararāya Makhin", Period: "1690–1785 CE", Source: "Saubhāgya-bhāskara"},
	"v. ravi":            {Author: "V. Ravi", Period: "Contemporary", Source: "Lalitā Sahasranāma commentary"},
	"sanskrit documents": {Author: "Sanskrit Documents", Period: "Contemporary", Source: "sanskritdocuments.org"},
}

// namePrefixRe matches the leading "**name** —" prefix COMMENTARIES
// blockquotes carry before the commentary text proper.
var namePrefixRe = regexp.MustCompile(`^\*\*[^*]+\*\*\s*[—–-]+\s*`)

// parseCommentary builds one commentary record from a COMMENTARY or
// COMMENTARIES section. The text is taken from blockquote lines with the
// leading ">" stripped; stripNamePrefix removes the bold name prefix that
// COMMENTARIES sections repeat from the entry itself.
func parseCommentary(label string, lines []string, stripNamePrefix bool) (string, namartha.Commentary) {
	commentary, ok := knownAuthors[strings.ToLower(label)]
	if !ok {
		commentary = namartha.Commentary{Author: label, Period: "Unknown"}
	}

	var quoted []string
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, ">") {
			continue
		}
		line = strings.TrimPrefix(strings.TrimPrefix(line, ">"), " ")
		quoted = append(quoted, line)
	}
	if stripNamePrefix && len(quoted) > 0 {
		quoted[0] = namePrefixRe.ReplaceAllString(quoted[0], "")
	}
	commentary.Text = strings.TrimSpace(strings.Join(quoted, "\n"))

	key := slug(label)
	if key == "" {
		key = "commentary"
	}
	return key, commentary
}

// slug converts a section label to a stable commentary map key: lowercase,
// with runs of non-alphanumeric characters collapsed to single hyphens.
func slug(label string) string {
	var b strings.Builder
	prevHyphen := false
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevHyphen = false
		} else if !prevHyphen && b.Len() > 0 {
			b.WriteRune('-')
			prevHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
