package render

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resume-builder/internal/model"
)

const Present = "Present"

// monthYear renders a date as "Jan 2006". Month names are always English.
func monthYear(d *model.Date) string {
	if !d.Valid() {
		return ""
	}
	return d.Format("Jan 2006")
}

// dateRange renders "{start} - {end}". The end bound reads Present when the
// entry is current or has no end date, whatever end holds otherwise.
func dateRange(start, end *model.Date, current bool) string {
	s := monthYear(start)
	e := monthYear(end)
	if current || e == "" {
		if s == "" && !current {
			return ""
		}
		e = Present
	}
	if s == "" {
		return e
	}
	return s + " - " + e
}

// title upper-cases the first letter of every word; hyphens become spaces.
func title(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "-", " "))
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(s)
}

// formatGPA skips a missing or zero GPA; zero is what unset legacy records
// hold.
func formatGPA(g *float64) string {
	if g == nil || *g <= 0 {
		return ""
	}
	return "GPA: " + strconv.FormatFloat(*g, 'f', -1, 64)
}

// linkLabel turns a URL into a short display label. The scheme and a
// trailing slash are dropped, and a leading "www." only when the rest is
// still a registrable domain. The host is otherwise kept whole.
func linkLabel(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	candidate := s
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}
	u, err := url.Parse(candidate)
	if err != nil || u.Hostname() == "" {
		return s
	}
	host := strings.ToLower(u.Hostname())
	if rest, ok := strings.CutPrefix(host, "www."); ok {
		if _, err := publicsuffix.EffectiveTLDPlusOne(rest); err == nil {
			host = rest
		}
	}
	return host + strings.TrimRight(u.Path, "/")
}

// joinNonEmpty joins the non-blank parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func trimmed(items []string) []string {
	var out []string
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
