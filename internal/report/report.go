package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/freqgen/internal/model"
)

const (
	terminalWidthBackup = 80
	maxRuleWidth        = 72
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#73C991"))
)

// Render writes the per-language summary of a generation run. Warnings and
// placeholder substitutions are listed in full; they are the operator's cue
// to fix the curated data, not errors.
func Render(w io.Writer, reports []model.Report) error {
	rule := strings.Repeat("=", ruleWidth())
	for _, r := range reports {
		if _, err := fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s %s", r.Lang, r.Granularity))); err != nil {
			return err
		}
		summary := fmt.Sprintf("  %d selected, weights %.2f to %.2f", r.Selected, r.FirstWeight, r.LastWeight)
		if _, err := fmt.Fprintln(w, summary); err != nil {
			return err
		}
		if len(r.TopUnits) > 0 {
			top := fmt.Sprintf("  top: %s", strings.Join(r.TopUnits, ", "))
			if _, err := fmt.Fprintln(w, mutedStyle.Render(top)); err != nil {
				return err
			}
		}
		if err := renderFailures(w, r.Failures); err != nil {
			return err
		}
		if err := renderMissing(w, r.MissingExamples); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, mutedStyle.Render(rule)); err != nil {
		return err
	}
	return renderVerdict(w, reports)
}

func renderFailures(w io.Writer, failures []model.ValidationFailure) error {
	if len(failures) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(failures))
	for _, f := range failures {
		rows = append(rows, []string{f.Pattern, f.Example})
	}
	lines := formatTable([]string{"Unit", "Failing example"}, rows, nil)
	for i, line := range lines {
		rendered := "  " + line
		if i > 0 {
			rendered = "  " + warnStyle.Render(line)
		}
		if _, err := fmt.Fprintln(w, rendered); err != nil {
			return err
		}
	}
	return nil
}

func renderMissing(w io.Writer, missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	line := fmt.Sprintf("  placeholder examples for: %s", strings.Join(missing, ", "))
	if _, err := fmt.Fprintln(w, warnStyle.Render(line)); err != nil {
		return err
	}
	return nil
}

func renderVerdict(w io.Writer, reports []model.Report) error {
	warnings := 0
	missing := 0
	for _, r := range reports {
		warnings += len(r.Failures)
		missing += len(r.MissingExamples)
	}
	if warnings == 0 && missing == 0 {
		_, err := fmt.Fprintln(w, okStyle.Render("All examples validated."))
		return err
	}
	verdict := fmt.Sprintf("%d validation warnings, %d units with placeholder examples. Fix the tables before shipping.", warnings, missing)
	_, err := fmt.Fprintln(w, warnStyle.Render(verdict))
	return err
}

func ruleWidth() int {
	width := terminalWidthBackup
	if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && w > 0 {
		width = w
	}
	if width > maxRuleWidth {
		width = maxRuleWidth
	}
	return width
}
