package notify

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Message is one notification: a reminder fire or a tray notice.
type Message struct {
	Title string
	Body  string
}

// Notifier delivers a message over the primary OS channel.
type Notifier interface {
	Send(Message) error
}

// NoopNotifier accepts everything without delivering anywhere.
type NoopNotifier struct{}

func (NoopNotifier) Send(Message) error { return nil }

// ErrUnavailable marks a primary channel that cannot deliver at all,
// e.g. desktop notifications switched off. The dispatcher treats it
// like any other failure and falls back to the tray balloon.
var ErrUnavailable = errors.New("notify: primary channel unavailable")

// UnavailableNotifier fails every send so the dispatcher degrades to
// the tray balloon. Used when desktop notifications are disabled.
type UnavailableNotifier struct{}

func (UnavailableNotifier) Send(Message) error { return ErrUnavailable }

// ExecNotifier shells out to the platform notification command.
type ExecNotifier struct{}

func (ExecNotifier) Send(n Message) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return fmt.Errorf("notify: no toast command for %s", runtime.GOOS)
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
