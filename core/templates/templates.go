package templates

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"text/template"
)

// Kind selects one of the fixed HTML layout styles.
type Kind string

const (
	KindNotification Kind = "notification"
	KindWelcome      Kind = "welcome"
	KindAlert        Kind = "alert"
	KindReport       Kind = "report"
)

// Kinds returns the supported template kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindNotification, KindWelcome, KindAlert, KindReport}
}

// Data carries the caller-supplied substitution fields for a layout.
// Values may be strings, []string (welcome features), map[string]string
// (alert details), or []Stat (report stats).
type Data map[string]any

// Stat is a single report statistic rendered as a card.
type Stat struct {
	Label string
	Value string
}

// Default values for placeholders the caller may omit.
const (
	defaultAlertTitle   = "Important notice"
	defaultSummaryTitle = "Summary"
	defaultFooter       = "This email was sent automatically, please do not reply."
)

var layouts = map[Kind]*template.Template{
	KindNotification: parseLayout(KindNotification, notificationLayout),
	KindWelcome:      parseLayout(KindWelcome, welcomeLayout),
	KindAlert:        parseLayout(KindAlert, alertLayout),
	KindReport:       parseLayout(KindReport, reportLayout),
}

func parseLayout(kind Kind, source string) *template.Template {
	return template.Must(template.New(string(kind)).Option("missingkey=error").Parse(source))
}

// Render fills the layout selected by kind with data and returns the HTML.
// Rendering is pure: identical input produces byte-identical output.
//
// Caller-supplied values are interpolated without HTML escaping; supplying
// markup-safe text is a caller responsibility.
func Render(kind Kind, data Data) (string, error) {
	layout, ok := layouts[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s (supported: %s)", ErrUnknownKind, kind, supportedKinds())
	}
	if len(data) == 0 {
		return "", ErrEmptyData
	}

	var buf bytes.Buffer
	if err := layout.Execute(&buf, buildVars(kind, data)); err != nil {
		if key, ok := missingKey(err); ok {
			return "", MissingFieldError{Key: key}
		}
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), nil
}

func supportedKinds() string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// buildVars assembles the full substitution set for a layout: plain string
// fields with kind-specific defaults plus pre-rendered optional fragments.
// Absent optional fields become empty fragments, never placeholder text.
func buildVars(kind Kind, data Data) map[string]any {
	vars := map[string]any{
		"title":         stringField(data, "title", ""),
		"heading":       stringField(data, "heading", ""),
		"message":       stringField(data, "message", ""),
		"alert_title":   stringField(data, "alert_title", defaultAlertTitle),
		"summary_title": stringField(data, "summary_title", defaultSummaryTitle),
		"extra_content": stringField(data, "extra_content", ""),
		"footer":        stringField(data, "footer", defaultFooter),
	}

	vars["button_html"] = buttonFragment(data)

	vars["features_html"] = ""
	if kind == KindWelcome {
		vars["features_html"] = featuresFragment(data["features"])
	}

	vars["details_html"] = ""
	if kind == KindAlert {
		vars["details_html"] = detailsFragment(data["details"])
	}

	vars["stats_html"] = ""
	if kind == KindReport {
		vars["stats_html"] = statsFragment(data["stats"])
	}

	return vars
}

// buttonFragment renders the call-to-action link only when both the text and
// the URL are present.
func buttonFragment(data Data) string {
	text := stringField(data, "button_text", "")
	url := stringField(data, "button_url", "")
	if text == "" || url == "" {
		return ""
	}
	return fmt.Sprintf(`<a href="%s" class="button">%s</a>`, url, text)
}

func featuresFragment(v any) string {
	features := stringList(v)
	if len(features) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="features">`)
	for _, f := range features {
		b.WriteString(`<div class="feature-item">`)
		b.WriteString(f)
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// detailsFragment renders key/value rows in sorted key order so repeat
// renders of the same data are byte-identical.
func detailsFragment(v any) string {
	details := stringMap(v)
	if len(details) == 0 {
		return ""
	}
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(`<div class="details">`)
	for _, k := range keys {
		fmt.Fprintf(&b, `<div><strong>%s:</strong> %s</div>`, k, details[k])
	}
	b.WriteString(`</div>`)
	return b.String()
}

func statsFragment(v any) string {
	stats := statList(v)
	if len(stats) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="stats">`)
	for _, s := range stats {
		fmt.Fprintf(&b, `<div class="stat-card"><div class="stat-value">%s</div><div class="stat-label">%s</div></div>`, s.Value, s.Label)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// stringField returns data[key] coerced to a string. The default applies only
// when the key is absent: a present empty value is interpolated as-is.
func stringField(data Data, key, def string) string {
	v, ok := data[key]
	if !ok {
		return def
	}
	return stringValue(v)
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func stringList(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, stringValue(item))
		}
		return out
	default:
		return nil
	}
}

func stringMap(v any) map[string]string {
	switch t := v.(type) {
	case map[string]string:
		return t
	case map[string]any:
		out := make(map[string]string, len(t))
		for k, item := range t {
			out[k] = stringValue(item)
		}
		return out
	default:
		return nil
	}
}

func statList(v any) []Stat {
	switch t := v.(type) {
	case []Stat:
		return t
	case []map[string]string:
		out := make([]Stat, 0, len(t))
		for _, m := range t {
			out = append(out, statFromMap(m))
		}
		return out
	case []any:
		out := make([]Stat, 0, len(t))
		for _, item := range t {
			switch m := item.(type) {
			case Stat:
				out = append(out, m)
			case map[string]string:
				out = append(out, statFromMap(m))
			case map[string]any:
				sm := make(map[string]string, len(m))
				for k, mv := range m {
					sm[k] = stringValue(mv)
				}
				out = append(out, statFromMap(sm))
			}
		}
		return out
	default:
		return nil
	}
}

func statFromMap(m map[string]string) Stat {
	s := Stat{Label: m["label"], Value: "N/A"}
	if v, ok := m["value"]; ok {
		s.Value = v
	}
	return s
}

// missingKeyRegex matches text/template's missingkey=error message.
var missingKeyRegex = regexp.MustCompile(`map has no entry for key "([^"]+)"`)

func missingKey(err error) (string, bool) {
	m := missingKeyRegex.FindStringSubmatch(err.Error())
	if m == nil {
		return "", false
	}
	return m[1], true
}
