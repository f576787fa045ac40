package cmd

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/Orkogithub/nutanix-cluster-info/models"
)

// FormatError renders err as the single line printed before exiting.
// Classified failures are prefixed with their kind, e.g.
// "Error: AuthFailed: cluster: authentication failed (HTTP 401)".
func FormatError(err error) string {
	msg := err.Error()
	if kind := models.KindOf(err); kind != models.KindUnknown {
		msg = kind.String() + ": " + msg
	}
	msg = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(msg)
	return "Error: " + msg
}

// PrintError writes FormatError(err) to w in red.
func PrintError(w io.Writer, err error) {
	color.New(color.FgRed).Fprintln(w, FormatError(err))
}
