package installer

import (
	"fmt"
)

// Kind discriminates the notification variants.
type Kind int

const (
	// KindProgress reports a step starting
	KindProgress Kind = iota
	// KindFailure ends an install unsuccessfully
	KindFailure
	// KindComplete ends an install successfully
	KindComplete
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindProgress:
		return "progress"
	case KindFailure:
		return "failure"
	case KindComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Notification is a status message emitted by an install.
type Notification struct {
	Kind Kind
	// Text is the progress text or the failure message
	Text string
	// Err is the underlying cause of a failure (may be nil)
	Err error
}

// Progress creates a progress notification.
func Progress(text string) Notification {
	return Notification{Kind: KindProgress, Text: text}
}

// Failure creates a failure notification.
func Failure(message string, cause error) Notification {
	return Notification{Kind: KindFailure, Text: message, Err: cause}
}

// Complete creates a completion notification.
func Complete() Notification {
	return Notification{Kind: KindComplete}
}

// Terminal reports whether n ends an install.
func (n Notification) Terminal() bool {
	return n.Kind == KindFailure || n.Kind == KindComplete
}

func (n Notification) String() string {
	switch n.Kind {
	case KindProgress:
		return n.Text
	case KindFailure:
		if n.Err != nil {
			return fmt.Sprintf("%s: %v", n.Text, n.Err)
		}
		return n.Text
	case KindComplete:
		return "Install complete"
	default:
		return n.Text
	}
}

// Sink receives notifications in emission order.
type Sink func(Notification)

// Request describes a single install.
type Request struct {
	// TargetDir is the directory the archives are extracted into.
	// It is created if missing.
	TargetDir string
}

// Progress and failure texts emitted by the install steps.
const (
	MsgUnarchivingTor   = "Unarchiving tor"
	MsgTorArchiveFailed = "Failed to unzip tor archive"
	MsgDataFailed       = "Failed to unzip tor data"
	MsgPermsFailed      = "Failed to set permissions on tor"
	MsgCancelled        = "Install cancelled"
)
