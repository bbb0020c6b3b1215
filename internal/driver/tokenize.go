package driver

import (
	"stylint/internal/diag"
	"stylint/internal/lexer"
	"stylint/internal/source"
	"stylint/internal/token"
)

// TokenizeResult carries one file's token stream and the lexical findings
// produced while scanning it.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads a file from disk and scans it to EOF.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fs.Get(fileID), maxDiagnostics), nil
}

// TokenizeBytes scans an in-memory buffer under a virtual file name.
func TokenizeBytes(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return tokenizeFile(fs, fs.Get(id), maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, file *source.File, maxDiagnostics int) *TokenizeResult {
	bag := diag.NewBag(maxDiagnostics)
	if len(file.Content) == 0 {
		bag.Add(diag.NewError(diag.IOEmptyInput, source.Span{File: file.ID}, "input is empty"))
	}
	tokens := lexer.Tokenize(file, lexer.Options{Reporter: &lexer.BagAdapter{Bag: bag}})
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
