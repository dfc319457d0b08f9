package config

import "strings"

// AppVersion is the version of the application, set at build time with -ldflags.
var AppVersion = "dev"

// AppName is the name of the application.
const AppName = "Cookprefs"

// AppID is the unique fyne application id. Fyne keys the preferences store by it.
const AppID = "io.cooklang.cookprefs"

// SettingsPrefKey is the preference key holding the recipe display settings blob.
const SettingsPrefKey = "recipe_display_settings"

// SettingsFileName is the file name used when settings are stored outside fyne preferences.
const SettingsFileName = "settings.json"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// Log rotation limits for release builds.
const (
	LogMaxSizeMB  = 5
	LogMaxBackups = 2
	LogMaxAgeDays = 14
	LogCompress   = true
)
