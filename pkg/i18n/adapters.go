package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
)

// TranslationAdapter loads translations keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads translations from a single file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// NewFileAdapterFor picks the parser from the file extension of path.
func NewFileAdapterFor(path string) (*FileAdapter, error) {
	parser := NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileType, path)
	}
	return NewFileAdapter(parser, path), nil
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("translation file '%s' is empty", a.path)
	}

	translations, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return translations, nil
}

// EmbeddedFsAdapter loads every file of dir in an embedded file system that
// the parser supports. Files are merged in name order. A file that fails to
// parse fails the whole load.
type EmbeddedFsAdapter struct {
	parser Parser
	fs     fs.ReadDirFS
	dir    string
}

// NewEmbeddedFsAdapter returns nil if parser is nil, fsys is nil or dir is
// empty.
func NewEmbeddedFsAdapter(parser Parser, fsys fs.ReadDirFS, dir string) *EmbeddedFsAdapter {
	if parser == nil || fsys == nil || dir == "" {
		return nil
	}
	return &EmbeddedFsAdapter{parser: parser, fs: fsys, dir: dir}
}

func (a *EmbeddedFsAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
	}

	entries, err := a.fs.ReadDir(a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadEmbeddedDirectory, err)
	}

	all := make(map[string]map[string]any)
	processed := 0
	for _, entry := range entries {
		ext := path.Ext(entry.Name())
		if entry.IsDir() || ext == "" || !a.parser.SupportsFileExtension(ext) {
			continue
		}
		if err := a.processFile(ctx, path.Join(a.dir, entry.Name()), all); err != nil {
			return nil, err
		}
		processed++
	}

	if processed == 0 {
		return nil, fmt.Errorf("no valid translation files found in embedded directory '%s'", a.dir)
	}
	return all, nil
}

func (a *EmbeddedFsAdapter) processFile(ctx context.Context, filePath string, all map[string]map[string]any) error {
	content, err := fs.ReadFile(a.fs, filePath)
	if err != nil {
		return errors.Join(ErrFailedToReadEmbeddedFile, err)
	}
	if len(content) == 0 {
		return fmt.Errorf("embedded translation file '%s' is empty", filePath)
	}

	translations, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return errors.Join(ErrFailedToParseEmbeddedFile, fmt.Errorf("%s: %w", filePath, err))
	}
	merge(all, translations)
	return nil
}

// ChainAdapter loads every adapter in order and merges the results, so
// translations of later adapters override those of earlier ones. Nested
// keys are merged recursively.
type ChainAdapter []TranslationAdapter

func (c ChainAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	for i, a := range c {
		if a == nil {
			continue
		}
		translations, err := a.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("adapter %d: %w", i, err)
		}
		merge(all, translations)
	}
	return all, nil
}

func merge(dst, src map[string]map[string]any) {
	for lang, translations := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(translations))
		}
		mergeTree(dst[lang], translations)
	}
}

func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcOK := v.(map[string]any)
		dstMap, dstOK := dst[k].(map[string]any)
		if srcOK && dstOK {
			merged := maps.Clone(dstMap)
			mergeTree(merged, srcMap)
			dst[k] = merged
			continue
		}
		dst[k] = v
	}
}
