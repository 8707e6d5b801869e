package importer

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// debitCardPattern matches the boilerplate KBC puts around debit card payments:
	// " OM 14.32 UUR <memo> MET KBC-DEBETKAART 5234 XXXX 1234 KAARTHOUDER: <name>"
	debitCardPattern = regexp.MustCompile(
		` OM \d\d\.\d\d UUR (?P<memo>.+) MET KBC-DEBETKAART ([X\d]+ )+` +
			`(KAARTHOUDER: (?P<cardholder>.+))?`)

	// Unicode-aware, like strings.TrimSpace: \s alone is ASCII-only.
	superfluousWhitespace = regexp.MustCompile(`[\s\v\p{Z}\x{85}]{2,}`)

	memoGroup       = debitCardPattern.SubexpIndex("memo")
	cardholderGroup = debitCardPattern.SubexpIndex("cardholder")
)

// ExtractMemo derives a transfer memo from the description and free-text
// memo fields of a row. A non-blank memo field always wins.
func ExtractMemo(description, memo string) string {
	if m := strings.TrimSpace(memo); m != "" {
		return m
	}

	match := debitCardPattern.FindStringSubmatch(description)
	if match == nil {
		// Only unmatched descriptions get whitespace collapsed.
		return superfluousWhitespace.ReplaceAllString(strings.TrimSpace(description), " ")
	}

	text := strings.TrimSpace(match[memoGroup])
	if holder := strings.TrimSpace(match[cardholderGroup]); holder != "" {
		return fmt.Sprintf("%s (CH: %s)", text, holder)
	}
	return text
}
