package lisp

// Token is an opaque slice of source text, classified by its first
// character at consumption time.
type Token = string

// Tokenize splits a line of source into tokens. It is total: malformed
// input still yields tokens, which the reader rejects. Whitespace and
// commas separate tokens and are dropped; so are ; comments.
func Tokenize(input string) []Token {
	tokens := []Token{}
	for pos := 0; pos < len(input); {
		c := input[pos]
		switch c {
		case ' ', '\t', '\r', '\n', ',':
			pos++
		case '~':
			// ~@ is a single token, distinct from ~
			if pos+1 < len(input) && input[pos+1] == '@' {
				tokens = append(tokens, input[pos:pos+2])
				pos += 2
				continue
			}
			tokens = append(tokens, input[pos:pos+1])
			pos++
		case '(', ')', '[', ']', '{', '}', '\'', '`', '^', '@':
			tokens = append(tokens, input[pos:pos+1])
			pos++
		case '"':
			// a quoted string is one token, closing quote included;
			// an unterminated string yields a token without one
			end := pos + 1
			for end < len(input) && input[end] != '"' {
				if input[end] == '\\' && end+1 < len(input) {
					end++
				}
				end++
			}
			if end < len(input) {
				end++
			}
			tokens = append(tokens, input[pos:end])
			pos = end
		case ';':
			// comment to end of line, never emitted
			for pos < len(input) && input[pos] != '\n' {
				pos++
			}
		default:
			end := pos + 1
			for end < len(input) && !isSeparator(input[end]) {
				end++
			}
			tokens = append(tokens, input[pos:end])
			pos = end
		}
	}
	return tokens
}

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ',',
		'(', ')', '[', ']', '{', '}',
		'~', '@', '^', '\'', '`', '"', ';':
		return true
	}
	return false
}
