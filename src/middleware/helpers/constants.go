package helpers

const Version = "0.1.0"

const (
	AppDirName       = "Superbox CLI"
	SettingsFileName = "settings.json"
	ExportsDirName   = "exports"

	DefaultRouterIP = "192.168.1.1"
	DefaultUsername = "admin"
	DefaultAmount   = "500"
)

var (
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36"
	Accept    = "application/json, text/javascript, */*; q=0.01"
)

// https://patorjk.com/software/taag/#p=display&h=3&v=3&f=Slant
const Banner = `
   _____                       __
  / ___/__  ______  ___  _____/ /_  ____  _  __
  \__ \/ / / / __ \/ _ \/ ___/ __ \/ __ \| |/_/
 ___/ / /_/ / /_/ /  __/ /  / /_/ / /_/ _>  <
/_____\____/ .___/\___/_/  /_.___/\____/_/|_|
   / / / _/_/ / /___  ___  _____
  / /_/ / _ \/ / __ \/ _ \/ ___/
 / __  /  __/ / /_/ /  __/ /
/_/ /_/\___/_/ .___/\___/_/
            /_/
`
