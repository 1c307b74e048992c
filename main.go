package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/hako/durafmt"
)

var baseDir string

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

func main() {
	configPath := flag.String("config", "chrome.yaml", "settings file")
	backend := flag.String("backend", "", "window backend: ebiten, x11 or win32")
	iconPath := flag.String("icon", "", "caption icon; comma-separate several sizes of one icon")
	pickIcon := flag.Bool("pick-icon", false, "choose the caption icon with a file dialog")
	saveConfig := flag.Bool("save-config", false, "write the effective settings to -config and exit")
	debugFlag := flag.Bool("debug", false, "verbose/debug logging")
	flag.Parse()

	baseDir = os.Getenv("PWD")
	if baseDir == "" {
		var err error
		if baseDir, err = os.Getwd(); err != nil {
			log.Fatalf("get working directory: %v", err)
		}
	}

	s, err := loadSettings(*configPath)
	setupLogging(*debugFlag || s.Debug)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}
	if *backend != "" {
		s.Backend = *backend
	}
	if *iconPath != "" {
		s.Icon = *iconPath
	}
	if *pickIcon {
		path, err := pickIconFile()
		if err != nil {
			logError("%v", err)
		} else if path != "" {
			s.Icon = path
		}
	}
	if *saveConfig {
		if err := saveSettings(*configPath, s); err != nil {
			logError("%v", err)
			os.Exit(1)
		}
		return
	}

	if err := run(s); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

func run(s Settings) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logError("panic: %v\n%s", r, debug.Stack())
			err = fmt.Errorf("panic: %v", r)
		}
		logDebug("window closed after %s", durafmt.Parse(time.Since(start)).LimitFirstN(2).Format(shortUnits))
	}()
	return runApp(s)
}
