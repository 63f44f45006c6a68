// Package content loads topic corpora from YAML or JSON files, a directory
// of such files, or the corpus embedded in the binary.
package content

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/errors"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// maxParallelLoads bounds concurrent file reads in LoadDir.
const maxParallelLoads = 8

// IsTopicFile returns true for file names the loader understands.
func IsTopicFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

// Decode parses topics from data. The format is chosen by name's
// extension. A file may hold a single topic or a list of topics.
func Decode(name string, data []byte) ([]core.Topic, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return decodeJSON(data)
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q", errors.ErrContentInvalid, filepath.Ext(name))
	}
}

func decodeYAML(data []byte) ([]core.Topic, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var topics []core.Topic
		if err := root.Decode(&topics); err != nil {
			return nil, err
		}
		return topics, nil
	case yaml.MappingNode:
		var t core.Topic
		if err := root.Decode(&t); err != nil {
			return nil, err
		}
		return []core.Topic{t}, nil
	default:
		return nil, fmt.Errorf("%w: expected a topic or a list of topics", errors.ErrContentInvalid)
	}
}

func decodeJSON(data []byte) ([]core.Topic, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var topics []core.Topic
		if err := json.Unmarshal(trimmed, &topics); err != nil {
			return nil, err
		}
		return topics, nil
	}
	var t core.Topic
	if err := json.Unmarshal(trimmed, &t); err != nil {
		return nil, err
	}
	return []core.Topic{t}, nil
}

// LoadFile reads and decodes one topic file.
func LoadFile(file string) ([]core.Topic, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	topics, err := Decode(file, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(file), err)
	}
	return topics, nil
}

// LoadDir decodes every topic file directly inside dir. Files are read
// concurrently; topics keep file-name order. A file that fails to decode
// is reported in the result's Errors and skipped.
func LoadDir(ctx context.Context, dir string) (*errors.PartialResult[[]core.Topic], error) {
	return loadFS(ctx, os.DirFS(dir), ".")
}

// Builtin returns the topics embedded in the binary.
func Builtin() ([]core.Topic, error) {
	res, err := loadFS(context.Background(), builtinFS, "builtin")
	if err != nil {
		return nil, err
	}
	return res.Data, res.Err()
}

func loadFS(ctx context.Context, fsys fs.FS, dir string) (*errors.PartialResult[[]core.Topic], error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && IsTopicFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	perFile := make([][]core.Topic, len(names))
	fileErrs := make([]error, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := fs.ReadFile(fsys, path.Join(dir, name))
			if err != nil {
				fileErrs[i] = fmt.Errorf("%s: %w", name, err)
				return nil
			}
			topics, err := Decode(name, data)
			if err != nil {
				fileErrs[i] = fmt.Errorf("%s: %w", name, err)
				return nil
			}
			perFile[i] = topics
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &errors.PartialResult[[]core.Topic]{}
	for i := range names {
		res.AddError(fileErrs[i])
		res.Data = append(res.Data, perFile[i]...)
	}
	return res, nil
}

// Load builds a corpus from src: a directory, a single file, or the
// embedded corpus when src is empty. The corpus holds every topic that
// decoded and validated; the returned error describes the rest. The corpus
// is nil only if src could not be read at all.
func Load(ctx context.Context, src string) (*core.Corpus, error) {
	var (
		topics  []core.Topic
		loadErr error
	)

	switch {
	case src == "":
		topics, loadErr = Builtin()
	default:
		info, err := os.Stat(src)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			res, err := LoadDir(ctx, src)
			if err != nil {
				return nil, err
			}
			topics, loadErr = res.Data, res.Err()
		} else {
			topics, err = LoadFile(src)
			if err != nil {
				return nil, err
			}
		}
	}

	valid, verr := Validate(topics)
	return core.NewCorpus(valid), joinErrors([]error{loadErr, verr})
}
