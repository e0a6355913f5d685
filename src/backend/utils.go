package backend

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	helpers "superbox/src/middleware/helpers"
)

// --------------- UTILITY FUNCTIONS --------------- \\
func OpenInEditor(filename string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", filename)
	case "windows":
		cmd = exec.Command("cmd", "/C", "start", "", filename)
	default:
		cmd = exec.Command("xdg-open", filename)
	}

	return cmd.Run()
}

// --------------- SETTINGS FUNCTIONS --------------- \\
func SettingsPath() (string, error) {
	baseDir, err := helpers.BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, helpers.SettingsFileName), nil
}

func ExportsDir() (string, error) {
	baseDir, err := helpers.BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, helpers.ExportsDirName), nil
}

func LoadSettings() (Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return Settings{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	var settings Settings
	err = json.Unmarshal(data, &settings)
	if err != nil {
		return Settings{}, err
	}
	return settings, nil
}
