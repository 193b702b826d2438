package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mrskwiw/routefix/internal/model"
)

var (
	fixedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	skippedStyle = lipgloss.NewStyle().Faint(true)
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// SimpleUI implements UI using cobra Command's print helpers.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
	mode   StartMode
}

// NewSimpleUI creates a new SimpleUI. Styling is applied only when styled is
// true (i.e. stdout is a terminal).
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// Start configures the UI for the upcoming run.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var config StartConfig
	for _, option := range options {
		option(&config)
	}

	s.mode = config.mode

	return nil
}

// ReportFile prints a single file's outcome, plus its diff in plan mode and
// the error detail for failures.
func (s *SimpleUI) ReportFile(ctx context.Context, report m.FileReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("  %s - %s\n", report.Target.Path, s.label(report.Outcome))

	if report.Err != nil {
		s.printf("    %v\n", report.Err)
	}

	if s.mode == ModePlan && report.Diff != "" {
		s.printf("%s\n", report.Diff)
	}
}

// Summarize renders the run totals as a table.
func (s *SimpleUI) Summarize(ctx context.Context, run m.RunReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Param", "Outcome"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, file := range run.Files {
		table.Append([]string{string(file.Target.Path), file.Target.Param, s.outcomeText(file.Outcome)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(run.Files)),
		"",
		fmt.Sprintf("%d ok / %d flagged", run.Count(m.Skipped)+run.Count(m.Rewritten), run.Count(m.VerificationFailed)+run.Count(m.Failed)),
	})

	table.Render()

	s.printf("\n%s", tableBuffer.String())
}

// outcomeText maps an outcome to the wording for the current mode: in check
// and plan modes nothing was written, so Rewritten reads as pending work.
func (s *SimpleUI) outcomeText(outcome m.Outcome) string {
	if outcome == m.Rewritten {
		switch s.mode {
		case ModePlan:
			return "would fix"
		case ModeCheck:
			return "needs migration"
		case ModeApply:
		}
	}

	return outcome.String()
}

// label styles the outcome text for per-file lines.
func (s *SimpleUI) label(outcome m.Outcome) string {
	text := s.outcomeText(outcome)
	if !s.styled {
		return text
	}

	switch outcome {
	case m.Rewritten:
		return fixedStyle.Render(text)
	case m.Skipped:
		return skippedStyle.Render(text)
	case m.VerificationFailed, m.Failed:
		return failedStyle.Render(text)
	}

	return text
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.cmd.Printf(format, args...)
}
