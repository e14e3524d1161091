package notifications

import (
	"embed"
	"fmt"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/calendar"
	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/SergeyKozhin/student-planner-backend/internal/reminder"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

const dueFormat = "2006-01-02 15:04"

// Messages renders push texts in the user's language.
type Messages struct {
	bundle   *i18n.Bundle
	tags     []language.Tag
	matcher  language.Matcher
	fallback language.Tag
}

// NewMessages loads the embedded locales. Users whose locale is not
// supported get defaultLocale.
func NewMessages(defaultLocale string) (*Messages, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+e.Name()); err != nil {
			return nil, fmt.Errorf("load %s: %w", e.Name(), err)
		}
	}

	def, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parse default locale: %w", err)
	}

	tags := bundle.LanguageTags()
	matcher := language.NewMatcher(tags)

	_, idx, conf := matcher.Match(def)
	if conf == language.No {
		return nil, fmt.Errorf("unsupported default locale %q", defaultLocale)
	}

	return &Messages{
		bundle:   bundle,
		tags:     tags,
		matcher:  matcher,
		fallback: tags[idx],
	}, nil
}

func (m *Messages) localizer(locale string) (*i18n.Localizer, string) {
	tag := m.fallback
	if t, err := language.Parse(locale); err == nil {
		if _, idx, conf := m.matcher.Match(t); conf != language.No {
			tag = m.tags[idx]
		}
	}

	base, _ := tag.Base()
	return i18n.NewLocalizer(m.bundle, tag.String(), m.fallback.String()), base.String()
}

func localize(l *i18n.Localizer, id string, data map[string]interface{}, count interface{}) string {
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
		PluralCount:  count,
	})
	if msg == "" && err != nil {
		return id
	}

	return msg
}

// ClassReminder returns the title and body for a class reminder.
func (m *Messages) ClassReminder(locale string, r *reminder.Reminder) (string, string) {
	l, lang := m.localizer(locale)

	clock := r.ClassStart.Format(calendar.ClockFormat)
	if lang == "en" {
		clock = calendar.FormatClock12(r.ClassStart.Hour(), r.ClassStart.Minute())
	}

	title := localize(l, "ClassReminderTitle", map[string]interface{}{"Subject": r.Class.Name}, nil)

	var body string
	switch lead := r.LeadMinutes; {
	case lead == 0:
		body = localize(l, "ClassStartingBody", nil, nil)
	case lead%60 == 0:
		body = localize(l, "ClassReminderHoursBody", map[string]interface{}{"Count": lead / 60, "Time": clock}, lead/60)
	default:
		body = localize(l, "ClassReminderBody", map[string]interface{}{"Count": lead, "Time": clock}, lead)
	}

	if r.Class.Location != "" {
		body = localize(l, "ClassLocationSuffix", map[string]interface{}{"Body": body, "Location": r.Class.Location}, nil)
	}

	return title, body
}

// TaskDeadline returns the title and body for an approaching task deadline.
func (m *Messages) TaskDeadline(locale string, t *model.Task, loc *time.Location) (string, string) {
	l, _ := m.localizer(locale)

	title := localize(l, "TaskDeadlineTitle", map[string]interface{}{"Title": t.Title}, nil)
	body := localize(l, "TaskDeadlineBody", map[string]interface{}{"Due": t.DueDate.In(loc).Format(dueFormat)}, nil)

	return title, body
}
