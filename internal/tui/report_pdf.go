package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/avandriel/rounds/internal/config"
	"github.com/avandriel/rounds/internal/database"
	"github.com/avandriel/rounds/internal/models"
	"github.com/avandriel/rounds/internal/util"
	"github.com/go-pdf/fpdf"
)

// GeneratePDFReport writes the full session history to a PDF in the user's
// reports directory and returns the path.
func GeneratePDFReport(db database.Repository) (string, error) {
	sessions, err := db.GetSessions(0)
	if err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Workout History")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	if len(sessions) == 0 {
		pdf.Cell(0, 8, "No workouts recorded yet.")
		pdf.Ln(8)
	}

	completed := 0
	for _, s := range sessions {
		if s.Completed {
			completed++
		}
		pdf.Cell(0, 8, reportLine(s))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Workouts completed: %d of %d", completed, len(sessions)))

	dir := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("rounds-history-%s.pdf", time.Now().Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}

func reportLine(s models.Session) string {
	name := util.Deref(s.PresetName)
	if name == "" {
		name = "custom"
	}
	status := "[x]"
	detail := ""
	if !s.Completed {
		status = "[ ]"
		detail = fmt.Sprintf(" (stopped round %d, set %d)", s.RoundsReached, s.SetsReached)
	}
	return fmt.Sprintf("%s %s  %s  %s%s",
		status,
		s.StartedAt.Format("2006-01-02 15:04"),
		name,
		describeSession(s),
		detail)
}
