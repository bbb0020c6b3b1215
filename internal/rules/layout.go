package rules

import (
	"stylint/internal/token"
)

// LineKind classifies a physical source line by its first significant token.
type LineKind uint8

const (
	// LineBlank has no significant tokens.
	LineBlank LineKind = iota
	// LineStatement is a plain statement line.
	LineStatement
	// LineControlHeader starts with if/else/for/while/switch/do/case/default.
	LineControlHeader
	// LineDeclaration starts with a declaration keyword or modifier.
	LineDeclaration
	// LineBlockClose starts with '}'.
	LineBlockClose
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineStatement:
		return "statement"
	case LineControlHeader:
		return "control-header"
	case LineDeclaration:
		return "declaration"
	case LineBlockClose:
		return "block-close"
	}
	return "unknown"
}

// Line summarises one physical line of the token stream.
type Line struct {
	Num   uint32 // 1-based
	First int    // index of first significant token, -1 when blank
	Last  int    // index of last significant token, -1 when blank
	Kind  LineKind
	// EndGroupDepth is the ()/[] nesting depth after the line; a non-zero
	// value means the next line continues an open group.
	EndGroupDepth int
}

// Layout is the derived structural view rules share: bracket pairing, nesting
// depths and a per-line classification. It is built once per file in a single
// pass and never mutated afterwards, so parallel rules can read it freely.
type Layout struct {
	Tokens []token.Token
	// Pair maps an opening bracket to its closer and vice versa, -1 if unmatched.
	Pair []int
	// BraceDepth is the {} nesting level a token lives at; a brace pair itself
	// sits at the outer level.
	BraceDepth []int
	// GroupDepth is the ()/[] nesting level a token lives at.
	GroupDepth []int
	Lines      []Line
	// LineOf maps a token index to its index in Lines.
	LineOf []int
}

// BuildLayout derives the structural view from a lossless token stream.
func BuildLayout(tokens []token.Token) *Layout {
	n := len(tokens)
	l := &Layout{
		Tokens:     tokens,
		Pair:       make([]int, n),
		BraceDepth: make([]int, n),
		GroupDepth: make([]int, n),
		LineOf:     make([]int, n),
	}

	var braceStack, groupStack []int
	braceDepth, groupDepth := 0, 0

	line := Line{Num: 1, First: -1, Last: -1}
	flushLine := func() {
		line.Kind = classifyLine(tokens, line.First)
		line.EndGroupDepth = groupDepth
		l.Lines = append(l.Lines, line)
		line = Line{Num: line.Num + 1, First: -1, Last: -1}
	}

	for i, t := range tokens {
		l.Pair[i] = -1
		l.LineOf[i] = len(l.Lines)

		switch t.Kind {
		case token.LBrace:
			l.BraceDepth[i] = braceDepth
			l.GroupDepth[i] = groupDepth
			braceStack = append(braceStack, i)
			braceDepth++
		case token.RBrace:
			if braceDepth > 0 {
				braceDepth--
			}
			l.BraceDepth[i] = braceDepth
			l.GroupDepth[i] = groupDepth
			if len(braceStack) > 0 {
				open := braceStack[len(braceStack)-1]
				braceStack = braceStack[:len(braceStack)-1]
				l.Pair[open] = i
				l.Pair[i] = open
			}
		case token.LParen, token.LBracket:
			l.BraceDepth[i] = braceDepth
			l.GroupDepth[i] = groupDepth
			groupStack = append(groupStack, i)
			groupDepth++
		case token.RParen, token.RBracket:
			if groupDepth > 0 {
				groupDepth--
			}
			l.BraceDepth[i] = braceDepth
			l.GroupDepth[i] = groupDepth
			if len(groupStack) > 0 {
				open := groupStack[len(groupStack)-1]
				if matchingGroup(tokens[open].Kind, t.Kind) {
					groupStack = groupStack[:len(groupStack)-1]
					l.Pair[open] = i
					l.Pair[i] = open
				}
			}
		default:
			l.BraceDepth[i] = braceDepth
			l.GroupDepth[i] = groupDepth
		}

		if isSignificant(t) {
			if line.First < 0 {
				line.First = i
			}
			line.Last = i
		}
		if t.Kind == token.Newline {
			flushLine()
		}
	}
	flushLine()

	return l
}

func matchingGroup(open, close token.Kind) bool {
	return (open == token.LParen && close == token.RParen) ||
		(open == token.LBracket && close == token.RBracket)
}

func isSignificant(t token.Token) bool {
	return !t.IsTrivia() && t.Kind != token.EOF
}

func classifyLine(tokens []token.Token, first int) LineKind {
	if first < 0 {
		return LineBlank
	}
	switch tokens[first].Kind {
	case token.KwIf, token.KwElse, token.KwFor, token.KwWhile, token.KwSwitch,
		token.KwDo, token.KwCase, token.KwDefault:
		return LineControlHeader
	case token.KwVar, token.KwLet, token.KwConst, token.KwFunction,
		token.KwClass, token.KwStruct, token.KwEnum, token.KwInterface,
		token.KwImport, token.KwPublic, token.KwPrivate, token.KwStatic,
		token.KwInline, token.KwOverride:
		return LineDeclaration
	case token.RBrace:
		return LineBlockClose
	}
	return LineStatement
}

// NextSig returns the index of the next significant token after i, or -1.
func (l *Layout) NextSig(i int) int {
	for j := i + 1; j < len(l.Tokens); j++ {
		if isSignificant(l.Tokens[j]) {
			return j
		}
	}
	return -1
}

// PrevSig returns the index of the previous significant token before i, or -1.
func (l *Layout) PrevSig(i int) int {
	for j := i - 1; j >= 0; j-- {
		if isSignificant(l.Tokens[j]) {
			return j
		}
	}
	return -1
}

// typeBody is the brace-delimited body of a class or struct declaration.
type typeBody struct {
	open, close int
	// bodyDepth is the BraceDepth of the members directly inside the body.
	bodyDepth int
}

// typeBodies locates class/struct bodies. Bodies never overlap at the same
// depth, so iterating members of each stays linear over the file.
func (l *Layout) typeBodies() []typeBody {
	var bodies []typeBody
	for i, t := range l.Tokens {
		if t.Kind != token.KwClass && t.Kind != token.KwStruct {
			continue
		}
		// the body opens at the next '{' on this nesting level
		open := -1
		for j := l.NextSig(i); j >= 0; j = l.NextSig(j) {
			if l.Tokens[j].Kind == token.LBrace && l.BraceDepth[j] == l.BraceDepth[i] {
				open = j
				break
			}
			if l.Tokens[j].Kind == token.Semicolon || l.Tokens[j].Kind == token.RBrace {
				break
			}
		}
		if open < 0 || l.Pair[open] < 0 {
			continue
		}
		bodies = append(bodies, typeBody{
			open:      open,
			close:     l.Pair[open],
			bodyDepth: l.BraceDepth[open] + 1,
		})
	}
	return bodies
}
