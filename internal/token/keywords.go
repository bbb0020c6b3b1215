package token

var keywords = map[string]Kind{
	"var":       KwVar,
	"let":       KwLet,
	"const":     KwConst,
	"function":  KwFunction,
	"if":        KwIf,
	"else":      KwElse,
	"for":       KwFor,
	"in":        KwIn,
	"while":     KwWhile,
	"do":        KwDo,
	"return":    KwReturn,
	"break":     KwBreak,
	"continue":  KwContinue,
	"switch":    KwSwitch,
	"case":      KwCase,
	"default":   KwDefault,
	"class":     KwClass,
	"struct":    KwStruct,
	"enum":      KwEnum,
	"interface": KwInterface,
	"extends":   KwExtends,
	"import":    KwImport,
	"as":        KwAs,
	"new":       KwNew,
	"self":      KwSelf,
	"static":    KwStatic,
	"public":    KwPublic,
	"private":   KwPrivate,
	"inline":    KwInline,
	"override":  KwOverride,
	"true":      KwTrue,
	"false":     KwFalse,
	"null":      KwNull,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
