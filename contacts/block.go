// Package contacts renders a child agent's public contact block for
// substitution into buyer-facing message templates.
package contacts

import "strings"

// Placeholder is the template slot the rendered block conventionally fills.
// Substitution itself belongs to the template system, not this package.
const Placeholder = "{contacts_block_agent}"

// Lang selects the label language for the rendered block.
type Lang string

const (
	LangZH Lang = "zh"
	LangEN Lang = "en"
)

// AgentSettings is one sub-agent's public contact configuration. Field
// values are embedded verbatim; the configuration owner is responsible for
// producing safe markup.
type AgentSettings struct {
	CustomerService string `json:"customer_service"`
	OfficialChannel string `json:"official_channel"`
	RestockGroup    string `json:"restock_group"`
	TutorialLink    string `json:"tutorial_link"`
}

// SettingsFromMap builds AgentSettings from a generic key/value map.
// Unrecognized keys are ignored.
func SettingsFromMap(m map[string]string) AgentSettings {
	return AgentSettings{
		CustomerService: m["customer_service"],
		OfficialChannel: m["official_channel"],
		RestockGroup:    m["restock_group"],
		TutorialLink:    m["tutorial_link"],
	}
}

// fields fixes the output order of the rendered block.
var fields = []struct {
	value  func(AgentSettings) string
	zh, en string
}{
	{func(s AgentSettings) string { return s.CustomerService }, "客服", "Support"},
	{func(s AgentSettings) string { return s.OfficialChannel }, "官方频道", "Official Channel"},
	{func(s AgentSettings) string { return s.RestockGroup }, "补货通知群", "Restock Group"},
	{func(s AgentSettings) string { return s.TutorialLink }, "教程", "Tutorial"},
}

// Build renders one line per populated field, in fixed field order, each as
// a bold label, full-width colon, then the raw value. An empty lang defaults
// to zh; any other non-zh value selects the English labels. Returns "" when
// no field is set.
func Build(s AgentSettings, lang Lang) string {
	if lang == "" {
		lang = LangZH
	}

	var parts []string
	for _, f := range fields {
		v := f.value(s)
		if v == "" {
			continue
		}
		label := f.en
		if lang == LangZH {
			label = f.zh
		}
		parts = append(parts, "<b>"+label+"：</b>"+v)
	}
	return strings.Join(parts, "\n")
}
