package widgets

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-formhelper/pkg/attrs"
	"github.com/goliatone/go-formhelper/pkg/templates"
)

// Date part names accepted in DatePart.Name.
const (
	PartYear     = "year"
	PartMonth    = "month"
	PartDay      = "day"
	PartHour     = "hour"
	PartMinute   = "minute"
	PartSecond   = "second"
	PartMeridian = "meridian"
)

// DatePart describes one select of a date or time rendered as parts.
// Choices override the generated range. Min and Max bound the year part.
type DatePart struct {
	Name         string            `json:"name" yaml:"name"`
	Attrs        *attrs.Attrs      `json:"-" yaml:"-"`
	Choices      []Choice          `json:"choices,omitempty" yaml:"choices,omitempty"`
	Min          int               `json:"min,omitempty" yaml:"min,omitempty"`
	Max          int               `json:"max,omitempty" yaml:"max,omitempty"`
	TemplateVars map[string]string `json:"templateVars,omitempty" yaml:"templateVars,omitempty"`
}

// NativeType maps a requested datetime type to the HTML input type.
func NativeType(t string) string {
	if t == "datetime" {
		return "datetime-local"
	}
	return t
}

var valueLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
	"15:04:05",
	"15:04",
}

// ParseValue parses a datetime value in any of the accepted layouts.
func ParseValue(value string) (time.Time, bool) {
	for _, layout := range valueLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func renderDatetime(d Data, f Formatter) (string, error) {
	if len(d.Parts) == 0 {
		d.Type = NativeType(d.Type)
		return renderBasic(d, f)
	}

	current, hasValue := ParseValue(d.Value)
	twelveHour := false
	for _, part := range d.Parts {
		if part.Name == PartMeridian {
			twelveHour = true
		}
	}

	baseID := d.Attrs.Value("id")
	slots := templates.Slots{}
	for _, part := range d.Parts {
		choices := part.Choices
		if len(choices) == 0 {
			generated, err := partChoices(part, twelveHour)
			if err != nil {
				return "", fmt.Errorf("widgets: %s: %w", d.Name, err)
			}
			choices = generated
		}

		selected := ""
		if hasValue {
			selected = partValue(part.Name, current, twelveHour)
		}

		a := d.Attrs.Without("id", "value")
		if baseID != "" {
			a.Set("id", baseID+"-"+part.Name)
		}
		a.Merge(part.Attrs)
		if d.InjectFormControl {
			attrs.InjectClasses(a, "form-control")
		}

		var content strings.Builder
		if d.ShowEmpty {
			content.WriteString(f.Format("option", templates.Slots{"value": "", "text": d.escape(d.Empty)}))
		}
		writeOptions(&content, d, f, choices, []string{selected})

		slots[part.Name] = f.Format("select", templates.Slots{
			"name":    html.EscapeString(d.Name + "[" + part.Name + "]"),
			"part":    part.Name,
			"attrs":   a.Format(),
			"content": content.String(),
		}.With(d.TemplateVars).With(part.TemplateVars))
	}
	return f.Format("dateWidget", slots), nil
}

func partChoices(part DatePart, twelveHour bool) ([]Choice, error) {
	switch part.Name {
	case PartYear:
		if part.Min == 0 || part.Max == 0 || part.Min > part.Max {
			return nil, fmt.Errorf("year part needs a min and max range, got %d..%d", part.Min, part.Max)
		}
		out := make([]Choice, 0, part.Max-part.Min+1)
		for y := part.Max; y >= part.Min; y-- {
			value := strconv.Itoa(y)
			out = append(out, Choice{Value: value, Text: value})
		}
		return out, nil
	case PartMonth:
		out := make([]Choice, 0, 12)
		for m := 1; m <= 12; m++ {
			out = append(out, Choice{Value: pad(m), Text: time.Month(m).String()})
		}
		return out, nil
	case PartDay:
		return numberRange(1, 31), nil
	case PartHour:
		if twelveHour {
			return numberRange(1, 12), nil
		}
		return numberRange(0, 23), nil
	case PartMinute, PartSecond:
		return numberRange(0, 59), nil
	case PartMeridian:
		return Choices("am", "am", "pm", "pm"), nil
	}
	return nil, fmt.Errorf("unknown date part %q", part.Name)
}

func partValue(name string, t time.Time, twelveHour bool) string {
	switch name {
	case PartYear:
		return strconv.Itoa(t.Year())
	case PartMonth:
		return pad(int(t.Month()))
	case PartDay:
		return pad(t.Day())
	case PartHour:
		if twelveHour {
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			return pad(h)
		}
		return pad(t.Hour())
	case PartMinute:
		return pad(t.Minute())
	case PartSecond:
		return pad(t.Second())
	case PartMeridian:
		if t.Hour() >= 12 {
			return "pm"
		}
		return "am"
	}
	return ""
}

func numberRange(from, to int) []Choice {
	out := make([]Choice, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, Choice{Value: pad(i), Text: pad(i)})
	}
	return out
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
