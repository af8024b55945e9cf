package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/eslsoft/flash/internal/entity"
	"github.com/eslsoft/flash/internal/repository"
)

// deckEntry is the YAML shape of one card record.
type deckEntry struct {
	Subject  string `yaml:"subject"`
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
	Priority *int   `yaml:"priority"`
}

// FileDeckRepository reads YAML decks from a directory on disk.
type FileDeckRepository struct {
	dir    string
	logger *logrus.Logger
}

// NewFileDeckRepository builds a repository rooted at dir, creating the
// directory when it does not exist yet.
func NewFileDeckRepository(dir string, logger *logrus.Logger) (*FileDeckRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create deck directory %s: %w", dir, err)
	}
	return &FileDeckRepository{dir: dir, logger: logger}, nil
}

// Dir returns the deck directory the repository scans.
func (r *FileDeckRepository) Dir() string { return r.dir }

func (r *FileDeckRepository) List(ctx context.Context) ([]repository.DeckInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matches, err := filepath.Glob(filepath.Join(r.dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("scan deck directory: %w", err)
	}
	infos := lo.Map(matches, func(path string, _ int) repository.DeckInfo {
		return repository.DeckInfo{Name: deckName(path), Path: path}
	})
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (r *FileDeckRepository) Load(ctx context.Context, ref string) (*entity.Deck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := r.resolve(ref)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read deck %s: %w", path, err)
	}
	var entries []deckEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", entity.ErrMalformedDeck, deckName(path), err)
	}
	inputs := lo.Map(entries, func(e deckEntry, _ int) entity.CardInput {
		return entity.CardInput{
			Subject:  e.Subject,
			Question: e.Question,
			Answer:   e.Answer,
			Priority: e.Priority,
		}
	})
	deck, err := entity.LoadDeck(deckName(path), inputs)
	if err != nil {
		return nil, err
	}
	r.logger.WithFields(logrus.Fields{"deck": deck.Name(), "cards": deck.Size()}).Debug("deck loaded")
	return deck, nil
}

// resolve turns a bare name or a path into the deck file to read. An
// existing path wins; otherwise the ref is looked up in the deck
// directory, with the .yaml extension optional.
func (r *FileDeckRepository) resolve(ref string) (string, error) {
	if abs, err := filepath.Abs(ref); err == nil && fileExists(abs) {
		return abs, nil
	}
	name := strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
	path := filepath.Join(r.dir, name+".yaml")
	if fileExists(path) {
		return path, nil
	}
	return "", fmt.Errorf("%w: %s", entity.ErrDeckNotFound, ref)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func deckName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
