// Package sanitize strips main-bot contact lines from buyer-facing text so
// that messages relayed through child agent bots never leak the main bot's
// support, channel, restock-group, or tutorial info.
package sanitize

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// Mode selects how aggressively contact-marker lines are matched.
type Mode string

const (
	// ModeStrict removes lines that lead with a known contact label,
	// optionally emoji-prefixed or bold-wrapped.
	ModeStrict Mode = "strict"
	// ModeBroad removes any line carrying a known contact keyword followed
	// by a colon, wherever it sits in the line.
	ModeBroad Mode = "broad"
)

// Config controls filter construction.
type Config struct {
	Mode  Mode       // empty means ModeStrict
	Extra []Category // appended to the built-in catalog
}

// Filter removes contact-marker lines from message text. Construct with New;
// a Filter is immutable after construction and safe for concurrent use.
type Filter struct {
	mode   Mode
	rules  []*regexp.Regexp
	logger *slog.Logger
}

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// New compiles the contact-marker catalog for the given mode.
func New(cfg Config, logger *slog.Logger) (*Filter, error) {
	mode := cfg.Mode
	if mode == "" {
		mode = ModeStrict
	}
	switch mode {
	case ModeStrict, ModeBroad:
	default:
		return nil, fmt.Errorf("unknown sanitize mode %q", cfg.Mode)
	}

	catalog := make([]Category, 0, len(defaultCatalog)+len(cfg.Extra))
	catalog = append(catalog, defaultCatalog...)
	catalog = append(catalog, cfg.Extra...)

	rules := make([]*regexp.Regexp, 0, len(catalog)+1)
	for _, cat := range catalog {
		if len(cat.Keywords) == 0 {
			return nil, fmt.Errorf("category %q has no keywords", cat.Name)
		}
		pat := cat.strictPattern()
		if mode == ModeBroad {
			pat = cat.broadPattern()
		}
		// Case-insensitivity only affects the English keyword forms.
		re, err := regexp.Compile(`(?im)` + pat)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", cat.Name, err)
		}
		rules = append(rules, re)
	}
	rules = append(rules, regexp.MustCompile(`(?m)`+separatorPattern))

	return &Filter{mode: mode, rules: rules, logger: logger}, nil
}

// Clean removes every line matching the catalog, collapses the blank runs
// the removals leave behind, and trims the result. Empty input is returned
// unchanged. Clean never fails; text matching nothing passes through intact.
func (f *Filter) Clean(text string) string {
	if text == "" {
		return text
	}

	out := text
	removed := 0
	for _, re := range f.rules {
		removed += len(re.FindAllStringIndex(out, -1))
		out = re.ReplaceAllString(out, "")
	}

	// A deleted line leaves its newline behind; cap the gaps at one blank line.
	out = blankRunRe.ReplaceAllString(out, "\n\n")
	out = strings.TrimSpace(out)

	if removed > 0 {
		f.logger.Debug("removed contact lines from buyer message",
			"lines", removed,
			"mode", string(f.mode),
		)
	}
	return out
}
