package installer

import (
	"errors"
	"testing"
)

func TestNotificationString(t *testing.T) {
	tests := []struct {
		name string
		n    Notification
		want string
	}{
		{"progress", Progress(MsgUnarchivingTor), "Unarchiving tor"},
		{"failure_with_cause", Failure(MsgDataFailed, errors.New("boom")), "Failed to unzip tor data: boom"},
		{"failure_without_cause", Failure(MsgPermsFailed, nil), "Failed to set permissions on tor"},
		{"complete", Complete(), "Install complete"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.n.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNotificationTerminal(t *testing.T) {
	if Progress("x").Terminal() {
		t.Error("progress should not be terminal")
	}
	if !Failure("x", nil).Terminal() {
		t.Error("failure should be terminal")
	}
	if !Complete().Terminal() {
		t.Error("complete should be terminal")
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindProgress: "progress",
		KindFailure:  "failure",
		KindComplete: "complete",
		Kind(42):     "unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
