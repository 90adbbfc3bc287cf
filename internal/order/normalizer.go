package order

import (
	"regexp"
	"sort"
	"strings"
)

// Full-width punctuation folds to half-width before matching, so that
// 飲料（珍珠／無糖） and 飲料(無糖/珍珠) land on the same key.
var widthFolder = strings.NewReplacer("（", "(", "）", ")", "／", "/")

var customizationRe = regexp.MustCompile(`^(.*?)\((.+)\)$`)

// NormalizeItem canonicalizes an item description. A trailing
// parenthetical customization clause is split on slashes, its options
// sorted and rejoined, and the clause rewrapped in full-width parens;
// items without a clause pass through trimmed. NormalizeItem is
// idempotent.
func NormalizeItem(raw string) string {
	s := strings.TrimSpace(widthFolder.Replace(raw))

	m := customizationRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}

	base := strings.TrimSpace(m[1])

	var options []string
	for _, opt := range strings.Split(m[2], "/") {
		opt = strings.TrimSpace(opt)
		if opt != "" {
			options = append(options, opt)
		}
	}
	if len(options) == 0 {
		return base
	}

	sort.Strings(options)
	return base + "（" + strings.Join(options, "/") + "）"
}
