package messages

import (
	"fmt"

	backend "superbox/src/backend"
	exports "superbox/src/backend/messages"
	helpers "superbox/src/middleware/helpers"
	superbox "superbox/src/middleware/modules/superbox"

	"github.com/AlecAivazis/survey/v2"
)

func askType() (superbox.SMSType, error) {
	var name string
	prompt := &survey.Select{
		Message: "Select Message Type:",
		Options: superbox.SMSTypeNames(),
		Default: "all",
	}
	if err := survey.AskOne(prompt, &name); err != nil {
		return "", err
	}
	return superbox.ParseSMSType(name)
}

func fetch(logger *helpers.ColorizedLogger, session *superbox.Session, amount string) (superbox.SMSType, []superbox.Message, bool) {
	tags, err := askType()
	if err != nil {
		logger.Error("Prompt Has Failed Or Been Cancelled: " + err.Error())
		return "", nil, false
	}

	messages, err := session.ListMessages(amount, tags)
	if err != nil {
		logger.Error("Failed To Fetch Messages: " + err.Error())
		return "", nil, false
	}

	if len(messages) == 0 {
		logger.Warn(fmt.Sprintf("No %s Messages Found", tags.Name()))
		return tags, nil, false
	}
	return tags, messages, true
}

func MessagesMenu(logger *helpers.ColorizedLogger, session *superbox.Session, amount string) {
	for {
		var result string
		options := []string{
			"List Messages",
			"Delete Messages",
			"Export Messages",
			"Forward To Discord",
			"Back",
		}

		prompt := &survey.Select{
			Message: "Messages Menu:",
			Options: options,
		}

		err := survey.AskOne(prompt, &result)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed To Prompt Messages Menu: %v", err))
			return
		}

		switch result {
		case "List Messages":
			_, messages, ok := fetch(logger, session, amount)
			if !ok {
				continue
			}
			PrintMessages(logger, messages)

		case "Delete Messages":
			_, messages, ok := fetch(logger, session, amount)
			if !ok {
				continue
			}

			labels := make([]string, 0, len(messages))
			byLabel := make(map[string]string, len(messages))
			for _, message := range messages {
				label := exports.Label(message)
				labels = append(labels, label)
				byLabel[label] = message.ID()
			}

			var selected []string
			selectPrompt := &survey.MultiSelect{
				Message: "Select Messages To Delete:",
				Options: labels,
			}
			if err := survey.AskOne(selectPrompt, &selected); err != nil {
				logger.Error("Prompt Has Failed Or Been Cancelled: " + err.Error())
				continue
			}
			if len(selected) == 0 {
				logger.Warn("No Messages Selected")
				continue
			}

			confirmed := false
			confirmPrompt := &survey.Confirm{
				Message: fmt.Sprintf("Delete %d Message(s)?", len(selected)),
			}
			if err := survey.AskOne(confirmPrompt, &confirmed); err != nil || !confirmed {
				continue
			}

			ids := make([]string, 0, len(selected))
			for _, label := range selected {
				ids = append(ids, byLabel[label])
			}
			Delete(logger, session, ids)

		case "Export Messages":
			tags, messages, ok := fetch(logger, session, amount)
			if !ok {
				continue
			}

			path, err := Export(logger, tags, messages)
			if err != nil {
				continue
			}

			open := false
			openPrompt := &survey.Confirm{Message: "Open Export?"}
			if err := survey.AskOne(openPrompt, &open); err == nil && open {
				if err := backend.OpenInEditor(path); err != nil {
					logger.Error("Failed To Open Export: " + err.Error())
				}
			}

		case "Forward To Discord":
			settings, err := backend.LoadSettings()
			if err != nil {
				logger.Error("Failed To Load Settings: " + err.Error())
				continue
			}
			if settings.WebhookUrl == "" {
				logger.Warn("No Webhook URL Was Found In Settings File")
				continue
			}

			_, messages, ok := fetch(logger, session, amount)
			if !ok {
				continue
			}
			Forward(logger, session, settings.WebhookUrl, messages)

		case "Back":
			return

		default:
			logger.Warn("Invalid option selected")
		}
	}
}
