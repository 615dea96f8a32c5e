package bank

import (
	"context"
	_ "embed"
	"fmt"
	"os"
)

//go:embed questions.csv
var embeddedCSV string

// EmbeddedCSV returns the raw CSV text of the compiled-in dataset.
func EmbeddedCSV() string {
	return embeddedCSV
}

// Source identifies which load path actually produced a Model. Failover
// is deliberate and quiet for the end user, but callers and tests can
// always see which path was taken.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFile     Source = "file"
	SourceEmbedded Source = "embedded"
)

// LoadResult bundles a loaded Model with the source that served it.
type LoadResult struct {
	Model  *Model
	Source Source
}

// Logger is the subset of logging the loader needs. A nil Logger
// disables load logging.
type Logger interface {
	LogInfo(message string)
	LogWarn(message string)
}

// Loader loads question banks with embedded-dataset failover. The
// preferred source (remote document or CSV file) is tried first; any
// fetch or parse failure degrades to the embedded dataset through the
// same parse path. Only ErrNoQuestions aborts a load.
type Loader struct {
	log Logger
}

// NewLoader returns a Loader that reports failovers to log. log may be nil.
func NewLoader(log Logger) *Loader {
	return &Loader{log: log}
}

// LoadEmbedded parses the dataset compiled into the binary. An error here
// means the binary itself is broken, not the environment.
func (l *Loader) LoadEmbedded() (*LoadResult, error) {
	m, err := parseToModel(embeddedCSV)
	if err != nil {
		return nil, fmt.Errorf("embedded dataset: %w", err)
	}
	l.warnAll(m.Warnings)
	return &LoadResult{Model: m, Source: SourceEmbedded}, nil
}

// LoadFile loads a question bank from a CSV file, failing over to the
// embedded dataset when the file cannot be read or parsed.
func (l *Loader) LoadFile(path string) (*LoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		l.warnf("cannot read %s: %v, using embedded dataset", path, err)
		return l.LoadEmbedded()
	}

	m, err := parseToModel(string(data))
	if err != nil {
		l.warnf("cannot parse %s: %v, using embedded dataset", path, err)
		return l.LoadEmbedded()
	}

	l.warnAll(m.Warnings)
	l.infof("loaded %d questions from %s", m.TotalQuestions(), path)
	return &LoadResult{Model: m, Source: SourceFile}, nil
}

// LoadRemote loads the question bank from the shared store via fetch,
// failing over to the embedded dataset when the store is unreachable or
// the document fails validation.
func (l *Loader) LoadRemote(ctx context.Context, fetch DocumentFetcher) (*LoadResult, error) {
	doc, err := fetch.FetchLatest(ctx)
	if err != nil {
		l.warnf("remote store unavailable: %v, using embedded dataset", err)
		return l.LoadEmbedded()
	}

	if err := ValidateDocument(doc); err != nil {
		l.warnf("remote document invalid: %v, using embedded dataset", err)
		return l.LoadEmbedded()
	}

	b := FromDocument(doc)
	m, err := Flatten(b)
	if err != nil {
		l.warnf("remote document unusable: %v, using embedded dataset", err)
		return l.LoadEmbedded()
	}

	l.warnAll(m.Warnings)
	l.infof("loaded %d questions from remote store (v%s)", m.TotalQuestions(), doc.Config.Version)
	return &LoadResult{Model: m, Source: SourceRemote}, nil
}

// parseToModel runs the full parse-then-flatten path shared by every source.
func parseToModel(text string) (*Model, error) {
	b, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return Flatten(b)
}

func (l *Loader) infof(format string, args ...any) {
	if l.log != nil {
		l.log.LogInfo(fmt.Sprintf(format, args...))
	}
}

func (l *Loader) warnf(format string, args ...any) {
	if l.log != nil {
		l.log.LogWarn(fmt.Sprintf(format, args...))
	}
}

func (l *Loader) warnAll(warnings []string) {
	for _, w := range warnings {
		l.warnf("%s", w)
	}
}
