package service

import (
	"strings"
	"unicode"

	"github.com/Roma7-7-7/funnel-bot/internal/dal"
)

const eventDateFormat = "02. 01. 2006, 15:04"

// Render substitutes subscriber and bot variables into template or campaign
// text. Unknown placeholders are left untouched; "<br>" becomes a newline so
// single-line stored texts can span paragraphs.
func Render(bot dal.Bot, sub dal.Subscriber, text string) string {
	name := capitalize(strings.TrimSpace(sub.Name))
	if name == "" {
		name = "friend"
	}

	botName := bot.Name
	if botName == "" {
		botName = "your bot"
	}

	support := bot.SupportContact
	if support == "" {
		support = "support"
	}

	eventDate := ""
	if bot.EventDate != nil {
		eventDate = bot.EventDate.Format(eventDateFormat)
	}

	r := strings.NewReplacer(
		"{name}", name,
		"{botName}", botName,
		"{supportContact}", support,
		"{academyLink}", sub.AssignedResource,
		"{userId}", sub.ID,
		"{eventName}", bot.EventName,
		"{eventDate}", eventDate,
		"<br>", "\n",
	)

	return r.Replace(text)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
