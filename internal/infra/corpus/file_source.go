package corpus

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/faq-match/internal/domain/match"
	apperrors "github.com/yanqian/faq-match/pkg/errors"
)

// ErrNoCorpus signals that none of the configured corpus paths exist. The
// provider treats it as "run with an empty corpus", not a fatal error.
var ErrNoCorpus = errors.New("no corpus file found")

// Source loads the FAQ corpus once at startup.
type Source interface {
	Load(ctx context.Context) ([]match.Entry, error)
}

// FileSource reads the corpus from the first existing YAML file in a fixed
// list of probe paths.
type FileSource struct {
	paths  []string
	loader *Loader
	logger *slog.Logger
}

// NewFileSource constructs a file-backed source probing paths in order.
func NewFileSource(paths []string, loader *Loader, logger *slog.Logger) *FileSource {
	return &FileSource{
		paths:  paths,
		loader: loader,
		logger: logger.With("component", "corpus.file"),
	}
}

// Load implements Source.
func (s *FileSource) Load(_ context.Context) ([]match.Entry, error) {
	for _, path := range s.paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, apperrors.Wrap("corpus_error", "read corpus "+path, err)
		}
		var doc corpusFile
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, apperrors.Wrap("corpus_error", "parse corpus "+path, err)
		}
		entries := s.loader.resolveEntries(doc.Entries)
		s.logger.Info("faq corpus loaded", "path", path, "entries", len(entries))
		return entries, nil
	}
	return nil, ErrNoCorpus
}

var _ Source = (*FileSource)(nil)
