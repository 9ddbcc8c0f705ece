package ui

import (
	"github.com/atotto/clipboard"
)

// reportTail is how many log lines the clipboard report carries.
const reportTail = 40

func writeClipboard(s string) error {
	return clipboard.WriteAll(s)
}

// copyReport exports the match debug report to the system clipboard.
func (g *Game) copyReport() {
	report := g.match.DebugReport(reportTail)
	if err := g.copyToClip(report); err != nil {
		g.logger.Warn("clipboard export failed", "err", err)
		g.setStatus("clipboard unavailable")
		return
	}
	g.logger.Info("match report copied", "bytes", len(report))
	g.setStatus("report copied to clipboard")
}
