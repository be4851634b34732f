// The browser setup tool for the BigLinux welcome application.
//
// It installs a user-selected browser through the system package manager
// while streaming progress to the welcome app and to a log file, and it
// reads or changes the default browser for the desktop.
package main

import (
	"os"

	"github.com/biglinux/browser-setup/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
