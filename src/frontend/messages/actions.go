package messages

import (
	"errors"
	"fmt"
	"strings"

	backend "superbox/src/backend"
	config "superbox/src/backend/config"
	exports "superbox/src/backend/messages"
	helpers "superbox/src/middleware/helpers"
	discord "superbox/src/middleware/helpers/discord"
	superbox "superbox/src/middleware/modules/superbox"
)

func PrintMessages(logger *helpers.ColorizedLogger, messages []superbox.Message) {
	for _, message := range messages {
		logger.Info(exports.Label(message))
	}
	logger.Silly(fmt.Sprintf("Fetched %d Message(s)", len(messages)))
}

func Delete(logger *helpers.ColorizedLogger, session *superbox.Session, ids []string) error {
	logger.Info(fmt.Sprintf("Deleting Message(s) %s", strings.Join(ids, ", ")))

	result, err := session.DeleteMessages(ids)
	switch {
	case result == superbox.DeleteSuccess:
		logger.Silly("Successfully Deleted Message(s) ✅")
		return nil
	case result == superbox.DeleteFailure:
		logger.Error("Router Refused To Delete Message(s)")
		return errors.New("delete failed")
	case err != nil:
		logger.Error("Failed To Delete Message(s): " + err.Error())
		return err
	default:
		logger.Warn("Delete Result Is Unknown, Check The Inbox")
		return errors.New("delete result unknown")
	}
}

func Export(logger *helpers.ColorizedLogger, tags superbox.SMSType, messages []superbox.Message) (string, error) {
	dir, err := backend.ExportsDir()
	if err != nil {
		logger.Error("Failed To Resolve Exports Directory: " + err.Error())
		return "", err
	}

	path, err := exports.ExportCSV(dir, tags, messages)
	if err != nil {
		logger.Error("Failed To Export Messages: " + err.Error())
		return "", err
	}

	logger.Silly(fmt.Sprintf("Exported %d Message(s) To %s", len(messages), path))
	return path, nil
}

func Forward(logger *helpers.ColorizedLogger, session *superbox.Session, webhookURL string, messages []superbox.Message) error {
	if err := discord.SendMessages(logger, webhookURL, session.BaseURL(), messages); err != nil {
		logger.Error("Failed To Forward Messages: " + err.Error())
		return err
	}
	logger.Silly(fmt.Sprintf("Forwarded %d Message(s) To Discord ✅", len(messages)))
	return nil
}

// RunAction performs a one-shot action from the command line instead of
// opening the menu.
func RunAction(logger *helpers.ColorizedLogger, session *superbox.Session, cfg *config.AppConfig) error {
	if cfg.Action == "delete" {
		return Delete(logger, session, cfg.IDs)
	}

	tags, err := superbox.ParseSMSType(cfg.Tags)
	if err != nil {
		logger.Error(err.Error())
		return err
	}

	messages, err := session.ListMessages(cfg.Amount, tags)
	if err != nil {
		logger.Error("Failed To Fetch Messages: " + err.Error())
		return err
	}

	switch cfg.Action {
	case "list":
		PrintMessages(logger, messages)
		return nil
	case "export":
		_, err := Export(logger, tags, messages)
		return err
	case "forward":
		if cfg.WebhookURL == "" {
			logger.Warn("No Webhook URL Was Found In Settings File")
			return discord.ErrNoWebhook
		}
		return Forward(logger, session, cfg.WebhookURL, messages)
	default:
		return fmt.Errorf("unsupported action %q", cfg.Action)
	}
}
