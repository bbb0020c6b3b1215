package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwSelf represents the 'self' keyword.
	KwSelf // self
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwPublic represents the 'public' keyword.
	KwPublic // public
	// KwPrivate represents the 'private' keyword.
	KwPrivate // private
	// KwInline represents the 'inline' keyword.
	KwInline // inline
	// KwOverride represents the 'override' keyword.
	KwOverride // override
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a string literal token.
	StringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// PlusPlus represents the increment operator token.
	PlusPlus // ++
	// MinusMinus represents the decrement operator token.
	MinusMinus // --
	// EqEq represents the equality operator token.
	EqEq // ==
	// Bang represents the bang operator token.
	Bang // !
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Shl represents the shift-left operator token.
	Shl // <<
	// Shr represents the shift-right operator token.
	Shr // >>
	// Amp represents the ampersand operator token.
	Amp // &
	// Pipe represents the pipe operator token.
	Pipe // |
	// Caret represents the caret operator token.
	Caret // ^
	// AndAnd represents the logical-and operator token.
	AndAnd // &&
	// OrOr represents the logical-or operator token.
	OrOr // ||
	// Question represents the question operator token.
	Question // ?
	// QuestionQuestion represents the null-coalescing operator token.
	QuestionQuestion // ??
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// DotDot represents the range operator token.
	DotDot // ..
	// Arrow represents the arrow token.
	Arrow // ->
	// FatArrow represents the fat arrow token.
	FatArrow // =>
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// At represents the at token.
	At // @
	// Underscore represents the underscore token.
	Underscore // _

	// Whitespace represents a run of spaces and tabs.
	Whitespace
	// Newline represents a single '\n'.
	Newline
	// LineComment represents a '//' comment up to end of line.
	LineComment
	// BlockComment represents a '/* ... */' comment.
	BlockComment
)

var kindNames = map[Kind]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Ident:            "Ident",
	KwVar:            "KwVar",
	KwLet:            "KwLet",
	KwConst:          "KwConst",
	KwFunction:       "KwFunction",
	KwIf:             "KwIf",
	KwElse:           "KwElse",
	KwFor:            "KwFor",
	KwIn:             "KwIn",
	KwWhile:          "KwWhile",
	KwDo:             "KwDo",
	KwReturn:         "KwReturn",
	KwBreak:          "KwBreak",
	KwContinue:       "KwContinue",
	KwSwitch:         "KwSwitch",
	KwCase:           "KwCase",
	KwDefault:        "KwDefault",
	KwClass:          "KwClass",
	KwStruct:         "KwStruct",
	KwEnum:           "KwEnum",
	KwInterface:      "KwInterface",
	KwExtends:        "KwExtends",
	KwImport:         "KwImport",
	KwAs:             "KwAs",
	KwNew:            "KwNew",
	KwSelf:           "KwSelf",
	KwStatic:         "KwStatic",
	KwPublic:         "KwPublic",
	KwPrivate:        "KwPrivate",
	KwInline:         "KwInline",
	KwOverride:       "KwOverride",
	KwTrue:           "KwTrue",
	KwFalse:          "KwFalse",
	KwNull:           "KwNull",
	IntLit:           "IntLit",
	FloatLit:         "FloatLit",
	StringLit:        "StringLit",
	Plus:             "Plus",
	Minus:            "Minus",
	Star:             "Star",
	Slash:            "Slash",
	Percent:          "Percent",
	Assign:           "Assign",
	PlusAssign:       "PlusAssign",
	MinusAssign:      "MinusAssign",
	StarAssign:       "StarAssign",
	SlashAssign:      "SlashAssign",
	PlusPlus:         "PlusPlus",
	MinusMinus:       "MinusMinus",
	EqEq:             "EqEq",
	Bang:             "Bang",
	BangEq:           "BangEq",
	Lt:               "Lt",
	LtEq:             "LtEq",
	Gt:               "Gt",
	GtEq:             "GtEq",
	Shl:              "Shl",
	Shr:              "Shr",
	Amp:              "Amp",
	Pipe:             "Pipe",
	Caret:            "Caret",
	AndAnd:           "AndAnd",
	OrOr:             "OrOr",
	Question:         "Question",
	QuestionQuestion: "QuestionQuestion",
	Colon:            "Colon",
	Semicolon:        "Semicolon",
	Comma:            "Comma",
	Dot:              "Dot",
	DotDot:           "DotDot",
	Arrow:            "Arrow",
	FatArrow:         "FatArrow",
	LParen:           "LParen",
	RParen:           "RParen",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
	At:               "At",
	Underscore:       "Underscore",
	Whitespace:       "Whitespace",
	Newline:          "Newline",
	LineComment:      "LineComment",
	BlockComment:     "BlockComment",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(?)"
}
