package templates

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoTemplates indicates that no template file exists for the requested
// (level, language, event) combination. This is a misconfiguration and is
// surfaced to the caller rather than swallowed.
var ErrNoTemplates = errors.New("no templates configured")

// Terminal marks a message with no successor.
const Terminal = -1

type (
	// Message is a single funnel template. Scheduling of the successor is
	// data-driven: either a relative delay or an anchor to a named calendar event.
	Message struct {
		ID             int    `json:"id"`
		Text           string `json:"text"`
		NextID         int    `json:"next_id"`
		DelayMinutes   *int   `json:"delay_minutes,omitempty"`
		AnchorEvent    string `json:"anchor_event,omitempty"`
		AnchorLeadDays int    `json:"anchor_lead_days,omitempty"`
		LevelUpPrompt  bool   `json:"level_up_prompt,omitempty"`
		RatingPrompt   bool   `json:"rating_prompt,omitempty"`
	}

	levelFile struct {
		Messages []Message `json:"messages"`
	}
)

// ByID returns the message with the given ID from the resolved list.
func ByID(messages []Message, id int) (Message, bool) {
	for _, m := range messages {
		if m.ID == id {
			return m, true
		}
	}
	return Message{}, false
}

// candidatePaths returns lookup locations in precedence order:
// bot-specific override, language event variant (event bots only), language default.
func candidatePaths(dir string, level int, language string, isEvent bool, botID string) []string {
	file := fmt.Sprintf("level-%d.json", level)

	paths := make([]string, 0, 3)
	if botID != "" {
		paths = append(paths, filepath.Join(dir, "bots", botID, file))
	}
	if isEvent {
		paths = append(paths, filepath.Join(dir, language, "event", file))
	}
	paths = append(paths, filepath.Join(dir, language, file))

	return paths
}

func loadLevelFile(path string) ([]Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var res levelFile
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return res.Messages, nil
}
