package selector

import "go.ypath.dev/ypath/token"

// startTokens are the tokens that may legally open a new selector.
var startTokens = token.SetOf(
	token.FetchArg,
	token.None,
	token.OpenBracket,
	token.OpenBrace,
	token.QuotedIdentifier,
	token.UnquotedIdentifier,
)

// Parser consumes a [token.Scanner]'s output and produces [Selector]
// values. Create one with [NewParser] and call [Parser.Next] until it
// returns a KindNone selector or a non-nil error.
type Parser struct {
	scan *token.Scanner
	args []Arg

	argIdx  int
	pending bool
	cur     token.Token

	// tokOffset is the byte offset at which cur starts.
	tokOffset int

	periodAllowed    bool
	selectorRequired bool

	boundArg *int
	err      *ParseError
}

// NewParser creates a Parser over path with the given bound arguments,
// consumed positionally as `%` tokens are encountered.
func NewParser(path string, args ...Arg) *Parser {
	return &Parser{scan: token.NewScanner(path), args: args}
}

// Remaining returns the unconsumed suffix of the path as of the last
// selector boundary: the start of the selector that [Parser.Next] is about
// to parse (or just parsed, on success). Callers that snapshot this value
// immediately before calling Next obtain the resolver's cursor semantics.
func (p *Parser) Remaining() string {
	if p.periodAllowed && !p.pending {
		peek := *p.scan
		if peek.Next().Kind == token.Period {
			return peek.Rest()
		}
	}

	return p.scan.Rest()
}

// Offset returns the byte offset into the original path just past the last
// parsed selector. Unlike [Parser.Remaining], it does not skip a separating
// period that follows that selector.
func (p *Parser) Offset() int {
	return p.scan.Offset()
}

// Err returns the sticky parse error, once the parser has failed.
func (p *Parser) Err() *ParseError {
	return p.err
}

func (p *Parser) fail(kind ErrorKind, expected token.Set, found token.Kind) {
	p.err = &ParseError{
		Kind:     kind,
		Offset:   p.tokOffset,
		Expected: expected,
		Found:    found,
		BoundArg: p.boundArg,
	}
}

func (p *Parser) nextRaw() token.Token {
	if p.pending {
		p.pending = false
		return p.cur
	}

	p.tokOffset = p.scan.Offset()
	p.cur = p.scan.Next()

	return p.cur
}

func (p *Parser) pushBack() {
	p.pending = true
}

func asIndex(v string) (value uint64, ok, overflow bool) {
	if v == "" {
		return 0, false, false
	}

	var val uint64

	for i := 0; i < len(v); i++ {
		c := v[i]
		if c < '0' || c > '9' {
			return 0, false, false
		}

		prev := val
		val = val*10 + uint64(c-'0')

		if val < prev {
			return 0, false, true
		}
	}

	return val, true, false
}

// nextSelectorToken fetches (or reuses a pushed-back) token, resolves
// FetchArg substitution and UnquotedIdentifier-to-Index coercion, then
// checks membership in valid. On failure it sets the sticky error using
// onFail (or ErrUnexpectedEnd if the token was None).
func (p *Parser) nextSelectorToken(valid token.Set, onFail ErrorKind) bool {
	tok := p.nextRaw()

	if tok.Kind == token.FetchArg {
		if p.argIdx >= len(p.args) {
			p.fail(ErrInternal, valid, tok.Kind)
			return false
		}

		arg := p.args[p.argIdx]
		idx := p.argIdx
		p.boundArg = &idx
		p.argIdx++

		if arg.isNum {
			tok = token.Token{Kind: token.Index, Num: arg.num}
		} else {
			tok = token.Token{Kind: token.QuotedIdentifier, Value: arg.str}
		}

		p.cur = tok
	}

	if tok.Kind == token.UnquotedIdentifier && valid.Contains(token.Index) {
		n, ok, overflow := asIndex(tok.Value)

		switch {
		case overflow:
			p.fail(ErrInvalidIndex, valid, tok.Kind)
			return false
		case ok:
			tok = token.Token{Kind: token.Index, Num: n}
			p.cur = tok
		}
	}

	if valid.Contains(tok.Kind) {
		return true
	}

	fail := onFail
	if tok.Kind == token.None {
		fail = ErrUnexpectedEnd
	}

	p.fail(fail, valid, tok.Kind)

	return false
}

// peekSelectorToken fetches a token and reports whether it is in valid,
// without translating FetchArg or Index. On a mismatch the token is
// pushed back for the next call to consume.
func (p *Parser) peekSelectorToken(valid token.Set) bool {
	tok := p.nextRaw()
	if valid.Contains(tok.Kind) {
		return true
	}

	p.pushBack()

	return false
}

// readKVToken parses a single `!? ^? (name|%) *?` or bare `*` fragment,
// stopping at (and pushing back) the first token in endTokens.
func (p *Parser) readKVToken(endTokens token.Set) (KVToken, bool) {
	var kv KVToken

	nameTokens := token.SetOf(token.FetchArg, token.QuotedIdentifier, token.UnquotedIdentifier)
	valid := token.SetOf(token.Exclamation, token.Caret, token.Asterisk) | nameTokens

	for {
		if !p.nextSelectorToken(valid, ErrInvalidToken) {
			return KVToken{}, false
		}

		switch p.cur.Kind {
		case token.Exclamation:
			valid = valid.Without(token.Exclamation)
			kv.Required = true

		case token.Caret:
			valid = valid.Without(token.Caret)
			kv.NoCase = true

		case token.QuotedIdentifier, token.UnquotedIdentifier:
			valid = (valid &^ nameTokens).Without(token.Caret).Without(token.Exclamation) | endTokens
			kv.Token = p.cur.Value

		case token.Asterisk:
			valid = endTokens
			kv.Starry = true

		default:
			p.pushBack()

			if endTokens.Contains(p.cur.Kind) {
				return kv, true
			}

			p.fail(ErrInternal, endTokens, p.cur.Kind)

			return KVToken{}, false
		}
	}
}

// readMapFilter parses the body of a `{...}` selector, after the opening
// brace has already been consumed.
func (p *Parser) readMapFilter() ([]KVPair, bool) {
	var parts []KVPair

	endSet := token.SetOf(token.Tilde, token.Equal, token.Comma, token.CloseBrace)

	for {
		key, ok := p.readKVToken(endSet)
		if !ok {
			return nil, false
		}

		kvp := KVPair{Key: key}

		if !p.nextSelectorToken(endSet, ErrInvalidToken) {
			return nil, false
		}

		atEnd := false

		switch p.cur.Kind {
		case token.Tilde:
			if !p.nextSelectorToken(token.SetOf(token.Equal), ErrInvalidToken) {
				return nil, false
			}

			kvp.Op = OpNotEqual

		case token.Equal:
			kvp.Op = OpEqual

		case token.Comma:
			kvp.Op = OpSelect
			parts = append(parts, kvp)

			continue

		case token.CloseBrace:
			kvp.Op = OpSelect
			parts = append(parts, kvp)
			atEnd = true
		}

		if atEnd {
			break
		}

		if p.peekSelectorToken(token.SetOf(token.CloseBrace, token.Comma)) {
			p.pushBack()

			switch kvp.Op {
			case OpEqual:
				kvp.Op = OpExists
			case OpNotEqual:
				p.fail(ErrInvalidToken, token.Set(0), p.cur.Kind)
				return nil, false
			default:
				p.fail(ErrInternal, token.Set(0), p.cur.Kind)
				return nil, false
			}
		} else {
			value, ok := p.readKVToken(token.SetOf(token.Comma, token.CloseBrace))
			if !ok {
				return nil, false
			}

			kvp.Value = value
		}

		if !p.nextSelectorToken(token.SetOf(token.Comma, token.CloseBrace), ErrInvalidToken) {
			return nil, false
		}

		parts = append(parts, kvp)

		if p.cur.Kind == token.Comma {
			continue
		}

		break
	}

	partitionConditionsFirst(parts)

	return parts, true
}

// partitionConditionsFirst stably reorders parts so that every
// op != OpSelect entry precedes every op == OpSelect entry.
func partitionConditionsFirst(parts []KVPair) {
	out := make([]KVPair, 0, len(parts))

	for _, p := range parts {
		if p.Op != OpSelect {
			out = append(out, p)
		}
	}

	for _, p := range parts {
		if p.Op == OpSelect {
			out = append(out, p)
		}
	}

	copy(parts, out)
}

// Next parses and returns the next selector. It returns a KindNone
// selector at a clean end of path, and a non-nil error (also retrievable
// via [Parser.Err]) once the grammar is violated; the parser is sticky
// after that point.
func (p *Parser) Next() (Selector, error) {
	if p.err != nil {
		return Selector{Kind: KindInvalid}, p.err
	}

	if p.periodAllowed {
		if !p.nextSelectorToken(startTokens.With(token.Period), ErrInvalidToken) {
			return Selector{Kind: KindInvalid}, p.err
		}

		p.periodAllowed = false

		if p.cur.Kind == token.Period {
			p.selectorRequired = true
		} else {
			p.pushBack()
		}
	}

	if !p.nextSelectorToken(startTokens, ErrInvalidToken) {
		return Selector{Kind: KindInvalid}, p.err
	}

	switch p.cur.Kind {
	case token.None:
		if p.selectorRequired {
			p.fail(ErrUnexpectedEnd, startTokens, token.None)
			return Selector{Kind: KindInvalid}, p.err
		}

		return Selector{Kind: KindNone}, nil

	case token.QuotedIdentifier, token.UnquotedIdentifier:
		p.periodAllowed = true
		p.selectorRequired = false

		return Selector{Kind: KindKey, Key: p.cur.Value}, nil

	case token.OpenBracket:
		if !p.nextSelectorToken(token.SetOf(token.Index), ErrInvalidIndex) {
			return Selector{Kind: KindInvalid}, p.err
		}

		idx := p.cur.Num

		if !p.nextSelectorToken(token.SetOf(token.CloseBracket), ErrInvalidToken) {
			return Selector{Kind: KindInvalid}, p.err
		}

		p.periodAllowed = true
		p.selectorRequired = false

		return Selector{Kind: KindIndex, Index: idx}, nil

	case token.OpenBrace:
		parts, ok := p.readMapFilter()
		if !ok {
			return Selector{Kind: KindInvalid}, p.err
		}

		p.periodAllowed = true
		p.selectorRequired = false

		return Selector{Kind: KindMapFilter, MapFilter: parts}, nil
	}

	p.fail(ErrInternal, startTokens, p.cur.Kind)

	return Selector{Kind: KindInvalid}, p.err
}
