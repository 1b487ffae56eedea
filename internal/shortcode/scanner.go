package shortcode

import "strings"

// Delimiters of a shortcode token.
const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// MaxTokenLength caps how far the scanner looks for the end of a token.
// A `{{` with no well-formed end within this many bytes is literal text,
// which keeps scanning linear on adversarial input.
const MaxTokenLength = 4096

// Attrs maps attribute names to their raw string values.
// Values are never coerced; consumers parse them as needed.
type Attrs map[string]string

// Get returns the value for key, or def when the key is missing or empty.
func (a Attrs) Get(key, def string) string {
	if v, ok := a[key]; ok && v != "" {
		return v
	}
	return def
}

// Token is one shortcode invocation found in the source text.
type Token struct {
	Name  string // identifier after the opening delimiter
	Attrs Attrs  // key="value" pairs, last duplicate wins
	Raw   string // exact source text, delimiters included
	Start int    // byte offset of the opening delimiter
	End   int    // byte offset just past the closing delimiter
}

// Segment is either a run of literal text or a single token.
type Segment struct {
	Text  string // literal text when Token is nil
	Token *Token
}

// Scan splits text into literal segments and shortcode tokens.
// Malformed tokens stay in the literal text. Concatenating the Text of
// literal segments and the Raw of tokens reproduces the input exactly.
func Scan(text string) []Segment {
	var segments []Segment
	literalStart := 0
	idx := 0

	for idx < len(text) {
		next := strings.Index(text[idx:], openDelim)
		if next == -1 {
			break
		}
		next += idx

		tok, ok := parseToken(text, next)
		if !ok {
			// Advance by one so "{{{badge}}" still finds the inner token.
			idx = next + 1
			continue
		}

		if next > literalStart {
			segments = append(segments, Segment{Text: text[literalStart:next]})
		}
		segments = append(segments, Segment{Token: &tok})
		idx = tok.End
		literalStart = tok.End
	}

	if literalStart < len(text) {
		segments = append(segments, Segment{Text: text[literalStart:]})
	}
	return segments
}

// Tokens returns only the tokens found in text.
func Tokens(text string) []Token {
	var tokens []Token
	for _, seg := range Scan(text) {
		if seg.Token != nil {
			tokens = append(tokens, *seg.Token)
		}
	}
	return tokens
}

// parseToken reads a token starting at the opening delimiter at start.
//
// Grammar:
//
//	token  = "{{" name { ws+ pair } ws* "}}"
//	name   = [A-Za-z0-9_-]+
//	pair   = key "=" '"' value '"'
//	key    = [A-Za-z0-9_]+
//	value  = any bytes except '"'
//
// There is no escape for '"' inside a value.
func parseToken(text string, start int) (Token, bool) {
	limit := len(text)
	if start+MaxTokenLength < limit {
		limit = start + MaxTokenLength
	}
	s := text[:limit]

	idx := start + len(openDelim)
	nameStart := idx
	for idx < len(s) && isNameChar(s[idx]) {
		idx++
	}
	if idx == nameStart {
		return Token{}, false
	}
	tok := Token{Name: s[nameStart:idx], Attrs: Attrs{}, Start: start}

	for {
		wsStart := idx
		idx = skipSpaces(s, idx)
		if idx >= len(s) {
			return Token{}, false
		}
		if strings.HasPrefix(s[idx:], closeDelim) {
			tok.End = idx + len(closeDelim)
			tok.Raw = text[start:tok.End]
			return tok, true
		}
		// Pairs must be separated from the name and from each other.
		if idx == wsStart {
			return Token{}, false
		}

		keyStart := idx
		for idx < len(s) && isKeyChar(s[idx]) {
			idx++
		}
		if idx == keyStart {
			return Token{}, false
		}
		key := s[keyStart:idx]

		if idx+1 >= len(s) || s[idx] != '=' || s[idx+1] != '"' {
			return Token{}, false
		}
		idx += 2

		valueEnd := strings.IndexByte(s[idx:], '"')
		if valueEnd == -1 {
			return Token{}, false
		}
		tok.Attrs[key] = s[idx : idx+valueEnd]
		idx += valueEnd + 1
	}
}

func skipSpaces(s string, idx int) int {
	for idx < len(s) {
		switch s[idx] {
		case ' ', '\t', '\n', '\r':
			idx++
		default:
			return idx
		}
	}
	return idx
}

func isKeyChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

func isNameChar(c byte) bool {
	return isKeyChar(c) || c == '-'
}
