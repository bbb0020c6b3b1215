package driver

import (
	"stylint/internal/diag"
	"stylint/internal/rules"
	"stylint/internal/source"
	"stylint/internal/token"
)

// CheckResult carries one file's token stream and the merged, sorted
// findings (lexical plus style).
type CheckResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Check loads a file from disk and runs the full lint pipeline over it.
func Check(path string, st rules.Settings, maxDiagnostics int) (*CheckResult, error) {
	tr, err := Tokenize(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return checkTokens(tr, st, maxDiagnostics), nil
}

// CheckBytes lints an in-memory buffer under a virtual file name.
func CheckBytes(name string, content []byte, st rules.Settings, maxDiagnostics int) *CheckResult {
	return checkTokens(TokenizeBytes(name, content, maxDiagnostics), st, maxDiagnostics)
}

func checkTokens(tr *TokenizeResult, st rules.Settings, maxDiagnostics int) *CheckResult {
	bag := tr.Bag
	bag.Merge(rules.Evaluate(tr.File, tr.Tokens, st, maxDiagnostics))
	bag.Sort()
	return &CheckResult{
		FileSet: tr.FileSet,
		File:    tr.File,
		Tokens:  tr.Tokens,
		Bag:     bag,
	}
}
