package loader

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/san-kum/cascii/internal/cframe"
)

// DirProvider serves frames from a directory of NAME.txt files with
// optional NAME.cframe color siblings, ordered by the index extracted
// from the filename stem.
type DirProvider struct{}

func (DirProvider) FrameFiles(ctx context.Context, dir string) ([]cframe.FrameFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []cframe.FrameFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), ".txt")
		files = append(files, cframe.FrameFile{
			Path:  filepath.Join(dir, e.Name()),
			Name:  e.Name(),
			Index: cframe.ExtractIndex(stem, uint32(len(files))),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Index < files[j].Index })
	return files, nil
}

func (DirProvider) FrameText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (DirProvider) CFrameBytes(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(strings.TrimSuffix(path, ".txt") + ".cframe")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
