package settings

import (
	"encoding/json"
	"os"

	backend "superbox/src/backend"
	helpers "superbox/src/middleware/helpers"
	discord "superbox/src/middleware/helpers/discord"
)

// updateSettings rewrites settings.json as a plain map so keys this build
// does not know about survive.
func updateSettings(logger *helpers.ColorizedLogger, changes map[string]string) error {
	settingsPath, err := backend.SettingsPath()
	if err != nil {
		logger.Error("Failed To Get Home Directory")
		return err
	}

	settings := map[string]any{}
	fileData, err := os.ReadFile(settingsPath)
	if err != nil && !os.IsNotExist(err) {
		logger.Error("Failed To Read Settings File")
		return err
	}

	if len(fileData) > 0 {
		if err := json.Unmarshal(fileData, &settings); err != nil {
			logger.Error("Failed To Unmarshal Settings File")
			return err
		}
	}

	for key, value := range changes {
		settings[key] = value
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		logger.Error("Failed To Marshal Updated Settings")
		return err
	}

	err = os.WriteFile(settingsPath, data, 0644)
	if err != nil {
		logger.Error("Failed To Update Settings File")
		return err
	}

	return nil
}

func UpdateWebhookURL(logger *helpers.ColorizedLogger, webhook string) error {
	return updateSettings(logger, map[string]string{"webhook_url": webhook})
}

func UpdateRouter(logger *helpers.ColorizedLogger, routerIP, username string) error {
	changes := map[string]string{}
	if routerIP != "" {
		changes["router_ip"] = routerIP
	}
	if username != "" {
		changes["username"] = username
	}
	return updateSettings(logger, changes)
}

func SendTestWebhook(settings backend.Settings) error {
	return discord.SendTest(settings.WebhookUrl)
}
