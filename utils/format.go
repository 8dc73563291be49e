package utils

import (
	"fmt"
	"os"
	"time"
)

// MessageType selects the color of a message printed on stderr.
type MessageType int

// The message types printed by the facedetect commands.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
	DebugMessage
)

// Terminal colors of the message types.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
	DebugColor   = "\x1b[90m"
)

// NoColor disables the escape sequences added by DecorateText.
// It is enabled when the NO_COLOR environment variable is set.
var NoColor = os.Getenv("NO_COLOR") != ""

var colors = map[MessageType]string{
	DefaultMessage: DefaultColor,
	StatusMessage:  StatusColor,
	SuccessMessage: SuccessColor,
	ErrorMessage:   ErrorColor,
	DebugMessage:   DebugColor,
}

// DecorateText wraps s in the color of its message type.
// Unknown message types are returned as is.
func DecorateText(s string, msgType MessageType) string {
	color, ok := colors[msgType]
	if !ok || NoColor {
		return s
	}
	return color + s + DefaultColor
}

// Debugf formats a DEBUG trace line.
func Debugf(format string, args ...any) string {
	return DecorateText("DEBUG: "+fmt.Sprintf(format, args...), DebugMessage)
}

// FormatTime formats the duration of a detection run: milliseconds below
// one second, seconds below one minute and minutes with seconds above.
func FormatTime(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	default:
		return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), (d % time.Minute).Seconds())
	}
}
