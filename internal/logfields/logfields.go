package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyPath       = "path"
	KeyURI        = "uri"
	KeyTitle      = "title"
	KeyRule       = "rule"
	KeyRules      = "rules"
	KeyLinks      = "links"
	KeyDocs       = "docs"
	KeyDocsDir    = "docs_dir"
	KeyConfig     = "config"
	KeyFormat     = "format"
	KeyOutput     = "output"
	KeyEvent      = "event"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr       { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr       { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr   { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr           { return slog.String(KeyPath, p) }
func URI(u string) slog.Attr            { return slog.String(KeyURI, u) }
func Title(t string) slog.Attr          { return slog.String(KeyTitle, t) }
func Rule(kind string) slog.Attr        { return slog.String(KeyRule, kind) }
func Rules(n int) slog.Attr             { return slog.Int(KeyRules, n) }
func Links(n int) slog.Attr             { return slog.Int(KeyLinks, n) }
func Docs(n int) slog.Attr              { return slog.Int(KeyDocs, n) }
func DocsDir(dir string) slog.Attr      { return slog.String(KeyDocsDir, dir) }
func Config(path string) slog.Attr      { return slog.String(KeyConfig, path) }
func Format(f string) slog.Attr         { return slog.String(KeyFormat, f) }
func Output(path string) slog.Attr      { return slog.String(KeyOutput, path) }
func Event(e string) slog.Attr          { return slog.String(KeyEvent, e) }
func Elapsed(d time.Duration) slog.Attr { return DurationMS(float64(d.Microseconds()) / 1000) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
