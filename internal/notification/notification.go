// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/hopper/internal/logger"
)

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)

	// Empty icon - beeep handles platform defaults
	err := beeep.Notify(title, message, "")
	if err != nil {
		log.Debug("failed to send notification", "error", err)
	}
	return err
}

// LaunchFailed notifies that launching a project failed. Used by the GUI
// flow, where there is no terminal to read stderr from.
func LaunchFailed(path string, err error) error {
	return Send("hopper", "failed to open "+path+": "+err.Error())
}
