package docgrab

import (
	"regexp"
	"strings"
)

// urlPattern matches an http(s) URL up to the first whitespace (including
// Unicode spaces), closing paren, closing bracket or double quote.
var urlPattern = regexp.MustCompile(`https?://[^\s\v\p{Z})\]"]+`)

// IsValidURL reports whether raw has a scheme followed by "://" and a
// non-empty authority. The path, query and fragment are not inspected, so
// bad escapes, odd ports and trailing punctuation do not disqualify a URL.
func IsValidURL(raw string) bool {
	_, authority, ok := splitAuthority(raw)
	return ok && authority != ""
}

// splitAuthority splits raw into its scheme and the authority that follows
// "://", ending at the first '/', '?' or '#'. Unbalanced IPv6 brackets in
// the authority are rejected.
func splitAuthority(raw string) (scheme, authority string, ok bool) {
	scheme, rest, found := strings.Cut(raw, ":")
	if !found || !isScheme(scheme) {
		return "", "", false
	}
	rest, found = strings.CutPrefix(rest, "//")
	if !found {
		return "", "", false
	}
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	if strings.Contains(rest, "[") != strings.Contains(rest, "]") {
		return "", "", false
	}
	return strings.ToLower(scheme), rest, true
}

func isScheme(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

// ExtractURLs scans text for http(s) URLs and returns the valid ones in
// order of first occurrence, without duplicates.
//
// Matching is purely textual. Punctuation outside the exclusion set stays
// attached, so a URL that ends a sentence keeps its trailing period.
// Duplicates are detected by exact string equality.
func ExtractURLs(text string) []string {
	matches := urlPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	urls := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		if !IsValidURL(m) {
			continue
		}
		seen[m] = struct{}{}
		urls = append(urls, m)
	}
	return urls
}

// NormalizeSeedURL trims surrounding whitespace from user input and
// prepends https:// when no http(s) scheme is present.
func NormalizeSeedURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}

// Hostname returns the host of raw including any port, or "" if raw has no
// authority. User info before '@' is dropped.
func Hostname(raw string) string {
	_, authority, ok := splitAuthority(raw)
	if !ok {
		return ""
	}
	if i := strings.LastIndex(authority, "@"); i >= 0 {
		authority = authority[i+1:]
	}
	return authority
}
