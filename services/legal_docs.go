package services

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"
)

// ErrLegalDocNotFound is returned for unknown or missing documents
var ErrLegalDocNotFound = errors.New("legal document not found")

// LegalSlugs lists the documents the site links to from region content.
var LegalSlugs = []string{
	"terms", "privacy",
	"terms-uk", "privacy-uk",
	"terms-iom", "privacy-iom",
	"terms-jersey", "privacy-jersey",
}

var legalSlugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// LegalDoc is a rendered legal document
type LegalDoc struct {
	Slug      string
	Lang      string
	Title     string
	Summary   string
	Region    string
	UpdatedAt time.Time
	// HTML is sanitized and safe to emit unescaped
	HTML string
}

type legalFrontMatter struct {
	Title     string `yaml:"title"`
	Summary   string `yaml:"summary"`
	Region    string `yaml:"region"`
	UpdatedAt string `yaml:"updated_at"`
}

// LegalLibrary loads markdown documents named <slug>.md or <slug>_<lang>.md
// and caches the rendered result.
type LegalLibrary struct {
	fsys     fs.FS
	md       goldmark.Markdown
	policy   *bluemonday.Policy
	mu       sync.RWMutex
	cache    map[string]LegalDoc
	useCache bool
}

// NewLegalLibrary renders documents from fsys. Caching is disabled in development
// so edits show up without a restart.
func NewLegalLibrary(fsys fs.FS, cache bool) *LegalLibrary {
	return &LegalLibrary{
		fsys: fsys,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		policy:   bluemonday.UGCPolicy(),
		cache:    make(map[string]LegalDoc),
		useCache: cache,
	}
}

// Get returns the document in lang, falling back to the untranslated file
func (l *LegalLibrary) Get(slug, lang string) (LegalDoc, error) {
	if !legalSlugPattern.MatchString(slug) {
		return LegalDoc{}, ErrLegalDocNotFound
	}

	cacheKey := slug + "|" + lang
	if l.useCache {
		l.mu.RLock()
		doc, ok := l.cache[cacheKey]
		l.mu.RUnlock()
		if ok {
			return doc, nil
		}
	}

	doc, err := l.load(slug, lang)
	if err != nil {
		return LegalDoc{}, err
	}

	if l.useCache {
		l.mu.Lock()
		l.cache[cacheKey] = doc
		l.mu.Unlock()
	}
	return doc, nil
}

func (l *LegalLibrary) load(slug, lang string) (LegalDoc, error) {
	candidates := []string{slug + ".md"}
	if lang != "" && lang != "en" {
		candidates = append([]string{fmt.Sprintf("%s_%s.md", slug, lang)}, candidates...)
	}

	var (
		data []byte
		err  error
		used string
	)
	for _, name := range candidates {
		data, err = fs.ReadFile(l.fsys, name)
		if err == nil {
			used = name
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return LegalDoc{}, fmt.Errorf("failed to read legal document %s: %w", name, err)
		}
	}
	if used == "" {
		return LegalDoc{}, ErrLegalDocNotFound
	}

	fm, body := splitFrontMatter(string(data))
	var front legalFrontMatter
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return LegalDoc{}, fmt.Errorf("failed to parse front matter %s: %w", used, err)
		}
	}

	var buf bytes.Buffer
	if err := l.md.Convert([]byte(body), &buf); err != nil {
		return LegalDoc{}, fmt.Errorf("failed to render %s: %w", used, err)
	}

	docLang := "en"
	if strings.Contains(path.Base(used), "_") {
		docLang = lang
	}

	doc := LegalDoc{
		Slug:      slug,
		Lang:      docLang,
		Title:     strings.TrimSpace(front.Title),
		Summary:   strings.TrimSpace(front.Summary),
		Region:    strings.TrimSpace(front.Region),
		UpdatedAt: parseDocDate(front.UpdatedAt),
		HTML:      l.policy.Sanitize(buf.String()),
	}
	if doc.Title == "" {
		doc.Title = titleFromSlug(slug)
	}
	return doc, nil
}

// splitFrontMatter separates a leading "---" delimited YAML block from the body
func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseDocDate(v string) time.Time {
	v = strings.TrimSpace(v)
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

// titleFromSlug turns "privacy-uk" into "Privacy UK"
func titleFromSlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, p := range parts {
		switch p {
		case "uk", "iom":
			parts[i] = strings.ToUpper(p)
		default:
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
