package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"stylint/internal/diag"
	"stylint/internal/fix"
	"stylint/internal/rules"
	"stylint/internal/source"
	"stylint/internal/token"
)

// CheckDirResult is one file's outcome inside a batch run.
type CheckDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// FixDirResult is one file's outcome inside a batch fix run.
type FixDirResult struct {
	Path    string
	FileID  source.FileID
	Bag     *diag.Bag
	Applied int
	Skipped int
	Changed bool
}

// listSourceFiles returns the sorted list of files under dir with one of
// the given extensions.
func listSourceFiles(dir string, exts []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range exts {
			if strings.HasSuffix(path, ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// deterministic order regardless of walk internals
	sort.Strings(files)
	return files, nil
}

// ExpandPaths resolves a mix of files and directories into a sorted,
// deduplicated file list. Directories are walked for matching extensions;
// explicitly named files are taken as-is.
func ExpandPaths(paths []string, exts []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot stat %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		listed, err := listSourceFiles(path, exts)
		if err != nil {
			return nil, err
		}
		for _, f := range listed {
			add(f)
		}
	}

	sort.Strings(files)
	return files, nil
}

// CheckDir lints every matching file under dir in parallel.
func CheckDir(ctx context.Context, dir string, exts []string, st rules.Settings, maxDiagnostics, jobs int) (*source.FileSet, []CheckDirResult, error) {
	files, err := listSourceFiles(dir, exts)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	results, err := checkFiles(ctx, fileSet, files, st, maxDiagnostics, jobs)
	return fileSet, results, err
}

// CheckPaths lints an arbitrary mix of files and directories through one
// shared file set, so the results can be merged and rendered together.
func CheckPaths(ctx context.Context, paths []string, exts []string, st rules.Settings, maxDiagnostics, jobs int) (*source.FileSet, []CheckDirResult, error) {
	files, err := ExpandPaths(paths, exts)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSet()
	results, err := checkFiles(ctx, fileSet, files, st, maxDiagnostics, jobs)
	return fileSet, results, err
}

// FixDir lints and fixes every matching file under dir in parallel. Each
// worker rewrites its own file, so writes never race.
func FixDir(ctx context.Context, dir string, exts []string, st rules.Settings, maxDiagnostics, jobs int, dryRun bool) (*source.FileSet, []FixDirResult, error) {
	files, err := listSourceFiles(dir, exts)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	results, err := fixFiles(ctx, fileSet, files, st, maxDiagnostics, jobs, dryRun)
	return fileSet, results, err
}

// FixPaths is CheckPaths with fixes applied.
func FixPaths(ctx context.Context, paths []string, exts []string, st rules.Settings, maxDiagnostics, jobs int, dryRun bool) (*source.FileSet, []FixDirResult, error) {
	files, err := ExpandPaths(paths, exts)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSet()
	results, err := fixFiles(ctx, fileSet, files, st, maxDiagnostics, jobs, dryRun)
	return fileSet, results, err
}

// preload brings every file into the set up front; later lookups by path
// are then race-free inside the workers.
func preload(fileSet *source.FileSet, files []string) (map[string]source.FileID, map[string]error) {
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}
	return fileIDs, loadErrors
}

// checkFiles lints the given files in parallel. A file that fails to load
// contributes an IO finding to its own result and never aborts the batch.
// Results follow the input file order.
func checkFiles(ctx context.Context, fileSet *source.FileSet, files []string, st rules.Settings, maxDiagnostics, jobs int) ([]CheckDirResult, error) {
	if len(files) == 0 {
		return nil, nil
	}
	fileIDs, loadErrors := preload(fileSet, files)

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// indexes are unique per goroutine, no mutex needed
	results := make([]CheckDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(maxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = CheckDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			cr := checkTokens(tokenizeLoaded(fileSet, fileID, maxDiagnostics), st, maxDiagnostics)
			results[i] = CheckDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: cr.Tokens,
				Bag:    cr.Bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func fixFiles(ctx context.Context, fileSet *source.FileSet, files []string, st rules.Settings, maxDiagnostics, jobs int, dryRun bool) ([]FixDirResult, error) {
	if len(files) == 0 {
		return nil, nil
	}
	fileIDs, loadErrors := preload(fileSet, files)

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FixDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(maxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = FixDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			cr := checkTokens(tokenizeLoaded(fileSet, fileID, maxDiagnostics), st, maxDiagnostics)
			ar, err := fix.Apply(fileSet, cr.Bag.Items(), dryRun)
			if err != nil && !errors.Is(err, fix.ErrNoFixes) {
				return err
			}
			for _, d := range ar.Skipped {
				cr.Bag.Add(d)
			}
			cr.Bag.Sort()
			results[i] = FixDirResult{
				Path:    path,
				FileID:  fileID,
				Bag:     cr.Bag,
				Applied: len(ar.Applied),
				Skipped: len(ar.Skipped),
				Changed: len(ar.FileChanges) > 0,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func tokenizeLoaded(fileSet *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	return tokenizeFile(fileSet, fileSet.Get(fileID), maxDiagnostics)
}
