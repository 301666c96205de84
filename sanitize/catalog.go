package sanitize

import (
	"regexp"
	"strings"
)

// Category describes one family of contact-marker lines: the localized
// keywords that label the channel and the emoji glyphs that commonly
// prefix them in templates.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Emoji    []string `yaml:"emoji,omitempty"`
}

// defaultCatalog covers the contact channels the main bot advertises in its
// own templates. Keywords carry both the Chinese and English forms.
var defaultCatalog = []Category{
	{Name: "support", Keywords: []string{"客服", "Support"}, Emoji: []string{"☎", "📞"}},
	{Name: "channel", Keywords: []string{"频道", "官方频道", "Channel", "Official Channel"}, Emoji: []string{"📣", "📢"}},
	{Name: "restock", Keywords: []string{"补货通知群", "Restock Group"}, Emoji: []string{"🔔", "💬"}},
	{Name: "tutorial", Keywords: []string{"教程", "Tutorial"}, Emoji: []string{"📖", "📚"}},
}

// separatorPattern matches divider lines of 8+ dash glyphs that typically
// frame a contact block and must go with it.
const separatorPattern = `^[-➖─]{8,}$`

// keywordAlt renders the category's keywords as a regex alternation.
// Whitespace inside multi-word keywords matches any whitespace run.
func (c Category) keywordAlt() string {
	alts := make([]string, 0, len(c.Keywords))
	for _, kw := range c.Keywords {
		words := strings.Fields(kw)
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		alts = append(alts, strings.Join(words, `\s+`))
	}
	return "(?:" + strings.Join(alts, "|") + ")"
}

// emojiAlt renders the category's emoji prefixes as a regex alternation.
// Aliases are normalized without the variation selector, which is then
// accepted optionally so both ☎ and ☎️ forms match.
func (c Category) emojiAlt() string {
	if len(c.Emoji) == 0 {
		return ""
	}
	alts := make([]string, 0, len(c.Emoji))
	for _, e := range c.Emoji {
		alts = append(alts, regexp.QuoteMeta(strings.TrimSuffix(e, "️")))
	}
	return "(?:" + strings.Join(alts, "|") + ")" + `\x{FE0F}?`
}

// strictPattern anchors the category at line start: optional bold wrapper,
// optional emoji prefix, keyword, colon, trailing content.
func (c Category) strictPattern() string {
	var b strings.Builder
	b.WriteString(`^(?:<b>\s*)?`)
	if alt := c.emojiAlt(); alt != "" {
		b.WriteString("(?:" + alt + `\s*)?`)
	}
	b.WriteString(c.keywordAlt())
	b.WriteString(`[：:].+$`)
	return b.String()
}

// broadPattern matches the keyword-then-colon anywhere in the line.
func (c Category) broadPattern() string {
	return `^.*` + c.keywordAlt() + `\s*[：:].*$`
}
