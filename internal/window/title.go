package window

import "strings"

// StylizedPrefixes are the title starts whose first word renders plain, with
// the rest of the title rendered in the accent style.
var StylizedPrefixes = []string{"Loading ", "Obtain ", "o pona"}

// TitleParts splits title into its plain first word and stylized remainder.
// ok is false when the title has no recognized start and renders verbatim.
func TitleParts(title string) (prefix, rest string, ok bool) {
	for _, p := range StylizedPrefixes {
		if !strings.HasPrefix(title, p) {
			continue
		}
		first, remainder, found := strings.Cut(title, " ")
		if !found || remainder == "" {
			break
		}
		return first, remainder, true
	}
	return "", title, false
}
