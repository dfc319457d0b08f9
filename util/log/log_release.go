//go:build release

package log

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/cooklang/cookprefs/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Release builds log to a rotating file sized by the config package.
func init() {
	logFile, err := config.GetLogFilename()
	if err != nil {
		log.Fatalf("Failed to resolve log file: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    config.LogMaxSizeMB,
		MaxBackups: config.LogMaxBackups,
		MaxAge:     config.LogMaxAgeDays,
		Compress:   config.LogCompress,
	})
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}

// Print writes to the rotating log file.
func Print(v ...interface{}) {
	log.Output(2, fmt.Sprint(v...))
}

// Printf writes a formatted line to the rotating log file.
func Printf(format string, v ...interface{}) {
	log.Output(2, fmt.Sprintf(format, v...))
}

// Println writes to the rotating log file.
func Println(v ...interface{}) {
	log.Output(2, fmt.Sprintln(v...))
}

// Fatal logs and exits with status 1.
func Fatal(v ...interface{}) {
	log.Output(2, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf logs a formatted line and exits with status 1.
func Fatalf(format string, v ...interface{}) {
	log.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Debug is a no-op in release builds.
func Debug(v ...interface{}) {}

// Debugf is a no-op in release builds.
func Debugf(format string, v ...interface{}) {}
