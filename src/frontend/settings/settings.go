package settings

import (
	"fmt"

	backend "superbox/src/backend"
	setting "superbox/src/backend/settings"
	helpers "superbox/src/middleware/helpers"

	"github.com/AlecAivazis/survey/v2"
)

func SettingsMenu(logger *helpers.ColorizedLogger) {
	for {
		var result string
		options := []string{
			"Set Router",
			"Add Webhook",
			"Test Webhook",
			"Back",
		}

		prompt := &survey.Select{
			Message: "Settings Menu:",
			Options: options,
		}

		err := survey.AskOne(prompt, &result)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed To Prompt Settings Menu: %v", err))
			return
		}

		switch result {
		case "Set Router":
			var routerIP, username string
			ipPrompt := &survey.Input{
				Message: "Enter Router IP:",
				Default: helpers.DefaultRouterIP,
			}

			if err := survey.AskOne(ipPrompt, &routerIP); err != nil {
				logger.Error("Prompt Has Failed Or Been Cancelled: " + err.Error())
				continue
			}

			userPrompt := &survey.Input{
				Message: "Enter Username:",
				Default: helpers.DefaultUsername,
			}

			if err := survey.AskOne(userPrompt, &username); err != nil {
				logger.Error("Prompt Has Failed Or Been Cancelled: " + err.Error())
				continue
			}

			if err := setting.UpdateRouter(logger, routerIP, username); err != nil {
				logger.Error("Failed To Save Router Settings: " + err.Error())
				continue
			}
			logger.Silly("Successfully Saved Router Settings, Used On Next Start")

		case "Add Webhook":
			var url string
			input := &survey.Input{
				Message: "Enter Discord Webhook URL:",
			}
			if err := survey.AskOne(input, &url); err != nil {
				logger.Error("Prompt Has Failed Or Been Cancelled: " + err.Error())
				continue
			}

			if err := setting.UpdateWebhookURL(logger, url); err != nil {
				logger.Error("Failed To Update Discord Webhook: " + err.Error())
				continue
			}
			logger.Silly("Successfully Saved Discord Webhook Settings")

		case "Test Webhook":
			settings, err := backend.LoadSettings()
			if err != nil {
				logger.Error("Failed To Load Settings: " + err.Error())
				continue
			}

			if settings.WebhookUrl == "" {
				logger.Warn("No Webhook URL Was Found In Settings File")
				continue
			}

			if err := setting.SendTestWebhook(settings); err != nil {
				logger.Error("Failed To Send Test Webhook: " + err.Error())
				continue
			}
			logger.Silly("Webhook Test Successfully Sent ✅")

		case "Back":
			return

		default:
			logger.Warn("Invalid option selected")
		}
	}
}
