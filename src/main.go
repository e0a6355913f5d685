package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	config "superbox/src/backend/config"
	messages "superbox/src/frontend/messages"
	router "superbox/src/frontend/router"
	settings "superbox/src/frontend/settings"
	helpers "superbox/src/middleware/helpers"
	superbox "superbox/src/middleware/modules/superbox"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		helpers.NewColorizedLogger(false).Error("Invalid Arguments: " + err.Error())
		os.Exit(2)
	}

	logger := helpers.NewColorizedLogger(!cfg.NoColor)
	logger.SetVerbose(cfg.Verbose > 0)

	helpers.InitFileSystem(logger)
	helpers.SetTitle("Connecting")

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("Exiting Superbox Helper 👋")
		os.Exit(0)
	}()

	if cfg.Password == "" {
		if cfg.Action != "menu" {
			logger.Error("A Password Is Required, Pass It As An Argument Or SUPERBOX_PASSWORD")
			os.Exit(2)
		}

		prompt := &survey.Password{
			Message: fmt.Sprintf("Enter Password For %s@%s:", cfg.Username, cfg.RouterIP),
		}
		if err := survey.AskOne(prompt, &cfg.Password); err != nil {
			logger.Error("Prompt Has Failed Or Been Cancelled: " + err.Error())
			os.Exit(1)
		}
	}

	if logger.IsVerbose() {
		helpers.PrintBanner()
		logger.Verbose("Input Arguments")
		logger.Verbose(fmt.Sprintf("\tRouter IP: %s", cfg.RouterIP))
		logger.Verbose(fmt.Sprintf("\tUsername: %s", cfg.Username))
		logger.Verbose(fmt.Sprintf("\tPassword: %s", helpers.MaskSecret(cfg.Password)))
		if cfg.File != "" {
			logger.Verbose(fmt.Sprintf("\tSettings: %s", cfg.File))
		}
	}

	session := superbox.NewSession(logger, superbox.Credentials{
		IP:       cfg.RouterIP,
		Username: cfg.Username,
		Password: cfg.Password,
	}, nil)

	if err := session.Connect(); err != nil {
		logger.Error(fmt.Sprintf("Could Not Connect To Router: %v", err))
		os.Exit(1)
	}

	loggedIn, err := session.Login()
	if !loggedIn {
		logger.Error(fmt.Sprintf("Could Not Log In: %v", err))
		os.Exit(1)
	}

	logger.Info("Successfully Logged In")
	helpers.SetTitle(fmt.Sprintf("%s | Logged In", cfg.RouterIP))

	if cfg.Action != "menu" {
		if err := messages.RunAction(logger, session, cfg); err != nil {
			os.Exit(1)
		}
		return
	}

	for {
		options := []string{
			"Messages",
			"Router Info",
			"Settings",
			"Exit",
		}

		var result string
		prompt := &survey.Select{
			Message: "Select an Option:",
			Options: options,
		}

		err := survey.AskOne(prompt, &result)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed To Prompt CLI Menu: %v", err))
			return
		}

		switch result {
		case "Messages":
			messages.MessagesMenu(logger, session, cfg.Amount)
		case "Router Info":
			router.RouterInfo(logger, session)
		case "Settings":
			settings.SettingsMenu(logger)
		case "Exit":
			fmt.Println("Exiting Superbox Helper 👋")
			return
		default:
			logger.Warn("Unknown selection.")
		}
	}
}
