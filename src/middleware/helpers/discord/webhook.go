package discord

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	helpers "superbox/src/middleware/helpers"
	superbox "superbox/src/middleware/modules/superbox"

	discordwebhook "github.com/bensch777/discord-webhook-golang"
)

const (
	username      = "Superbox Helper"
	embedColor    = 5662170
	maxEmbeds     = 10
	maxFieldValue = 1024
)

var ErrNoWebhook = errors.New("no webhook url configured")

func footer() discordwebhook.Footer {
	return discordwebhook.Footer{Text: fmt.Sprintf("Superbox Helper v%s", helpers.Version)}
}

func truncate(value string) string {
	if value == "" {
		return "-"
	}
	if len(value) > maxFieldValue {
		return value[:maxFieldValue-3] + "..."
	}
	return value
}

// BuildHooks renders messages as embeds, ten per webhook call.
func BuildHooks(routerIP string, messages []superbox.Message) ([]discordwebhook.Hook, error) {
	var hooks []discordwebhook.Hook
	var embeds []discordwebhook.Embed

	for _, message := range messages {
		summary, err := message.Summary()
		if err != nil {
			return nil, err
		}

		embeds = append(embeds, discordwebhook.Embed{
			Title:     fmt.Sprintf("SMS #%s", summary.ID),
			Color:     embedColor,
			Timestamp: time.Now(),
			Fields: []discordwebhook.Field{
				{Name: "**Router**", Value: routerIP, Inline: true},
				{Name: "**Number**", Value: truncate(summary.Number), Inline: true},
				{Name: "**Type**", Value: truncate(summary.TypeName()), Inline: true},
				{Name: "**Date**", Value: truncate(summary.Date), Inline: false},
				{Name: "**Content (Encoded)**", Value: truncate(summary.Content), Inline: false},
			},
			Footer: footer(),
		})

		if len(embeds) == maxEmbeds {
			hooks = append(hooks, discordwebhook.Hook{Username: username, Embeds: embeds})
			embeds = nil
		}
	}

	if len(embeds) > 0 {
		hooks = append(hooks, discordwebhook.Hook{Username: username, Embeds: embeds})
	}
	return hooks, nil
}

func SendMessages(logger *helpers.ColorizedLogger, webhookURL, routerIP string, messages []superbox.Message) error {
	if webhookURL == "" {
		return ErrNoWebhook
	}

	hooks, err := BuildHooks(routerIP, messages)
	if err != nil {
		return err
	}

	for i, hook := range hooks {
		payload, err := json.Marshal(hook)
		if err != nil {
			return err
		}

		if err := discordwebhook.ExecuteWebhook(webhookURL, payload); err != nil {
			return fmt.Errorf("failed to send webhook %d/%d: %w", i+1, len(hooks), err)
		}
		logger.Verbose(fmt.Sprintf("Sent Webhook %d/%d", i+1, len(hooks)))
	}
	return nil
}

func SendTest(webhookURL string) error {
	if webhookURL == "" {
		return ErrNoWebhook
	}

	hook := discordwebhook.Hook{
		Username: username,
		Embeds: []discordwebhook.Embed{
			{
				Title:     "Webhook Test 📨",
				Color:     embedColor,
				Timestamp: time.Now(),
				Footer:    footer(),
			},
		},
	}

	payload, err := json.Marshal(hook)
	if err != nil {
		return err
	}
	return discordwebhook.ExecuteWebhook(webhookURL, payload)
}
