package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/stepwise/pkg/domain"
	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{` ___ _                   _        `, "#818cf8"},
	{`/ __| |_ ___ _ ____ __ _(_)___ ___`, "#a78bfa"},
	{`\__ \  _/ -_) '_ \ V  V / (_-</ -_)`, "#c084fc"},
	{`|___/\__\___| .__/\_/\_/|_/__/\___|`, "#e879f9"},
	{`             |_|                    `, "#f472b6"},
}

// PrintBanner writes the Stepwise ASCII banner to w using the detected color profile.
func PrintBanner(w io.Writer) {
	p := termenv.EnvColorProfile()
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

// StatusLine renders a one-line, colored summary of a sequence status.
func StatusLine(p termenv.Profile, status domain.Status, nodeID string, steps int) string {
	color := "#9ca3af"
	switch status {
	case domain.StatusCompleted:
		color = "#22c55e"
	case domain.StatusFailed:
		color = "#ef4444"
	case domain.StatusSuspendedInput, domain.StatusSuspendedDecision:
		color = "#eab308"
	}

	label := p.String(string(status)).Foreground(p.Color(color)).Bold()
	if nodeID == "" {
		return fmt.Sprintf("%s (%d steps)", label, steps)
	}
	return fmt.Sprintf("%s at %s (%d steps)", label, nodeID, steps)
}
