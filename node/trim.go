package node

import "strings"

// TrimNode runs its children into a local buffer, then strips at most
// one leading override and one trailing override before optionally
// wrapping the result in prefix/suffix (§4.5). Override matching skips
// past any leading/trailing whitespace first and leaves that whitespace
// untouched — only the matched override token itself is removed, which
// is why e.g. stripping "and " from " and id = ?" (one leading space
// already present from the authored template) leaves " id = ?" rather
// than "id = ?".
type TrimNode struct {
	Nodes           NodeGroup
	Prefix, Suffix  string
	PrefixOverrides []string
	SuffixOverrides []string
}

func (t *TrimNode) Accept(ctx *Context) (query string, args []any, err error) {
	buf, args, err := t.Nodes.Accept(ctx)
	if err != nil {
		return "", nil, err
	}
	if buf == "" {
		return "", nil, nil
	}

	buf = stripOnePrefix(buf, t.PrefixOverrides)
	buf = stripOneSuffix(buf, t.SuffixOverrides)

	if buf == "" {
		return "", args, nil
	}
	return t.Prefix + buf + t.Suffix, args, nil
}

// stripOnePrefix removes, at most once, the longest matching override
// found immediately after buf's leading whitespace run.
func stripOnePrefix(buf string, overrides []string) string {
	if len(overrides) == 0 {
		return buf
	}
	lead := leadingWhitespaceLen(buf)
	body := buf[lead:]
	match := longestPrefixMatch(body, overrides)
	if match == "" {
		return buf
	}
	return buf[:lead] + body[len(match):]
}

// stripOneSuffix removes, at most once, the longest matching override
// found immediately before buf's trailing whitespace run.
func stripOneSuffix(buf string, overrides []string) string {
	if len(overrides) == 0 {
		return buf
	}
	trail := trailingWhitespaceLen(buf)
	body := buf[:len(buf)-trail]
	match := longestSuffixMatch(body, overrides)
	if match == "" {
		return buf
	}
	return body[:len(body)-len(match)] + buf[len(buf)-trail:]
}

func leadingWhitespaceLen(s string) int {
	i := 0
	for i < len(s) && isSpaceByte(s[i]) {
		i++
	}
	return i
}

func trailingWhitespaceLen(s string) int {
	i := len(s)
	for i > 0 && isSpaceByte(s[i-1]) {
		i--
	}
	return len(s) - i
}

func isSpaceByte(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

// longestPrefixMatch returns the longest override that is a prefix of s,
// per §4.5's "matching is longest-first".
func longestPrefixMatch(s string, overrides []string) string {
	best := ""
	for _, o := range overrides {
		if o == "" {
			continue
		}
		if strings.HasPrefix(s, o) && len(o) > len(best) {
			best = o
		}
	}
	return best
}

func longestSuffixMatch(s string, overrides []string) string {
	best := ""
	for _, o := range overrides {
		if o == "" {
			continue
		}
		if strings.HasSuffix(s, o) && len(o) > len(best) {
			best = o
		}
	}
	return best
}
