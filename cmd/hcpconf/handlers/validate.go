package handlers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/hcpconf/internal/config"
)

// Factory function variables for validate - can be replaced in tests.
var (
	validateLoad = config.Load
)

// ValidationReport is the machine-readable result of a validate run.
type ValidationReport struct {
	File     string         `json:"file"`
	Valid    bool           `json:"valid"`
	Errors   int            `json:"errors"`
	Warnings int            `json:"warnings"`
	Issues   []config.Issue `json:"issues"`
}

// Validate loads the configuration at path and reports every issue found.
// It returns an error when the file cannot be loaded, when any
// error-severity issue exists, or, with strict set, when any issue exists
// at all.
func Validate(path string, strict, jsonOutput bool) error {
	cfg, err := validateLoad(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	issues := cfg.WithDefaults().Validate()

	report := ValidationReport{
		File:   path,
		Valid:  !config.HasErrors(issues),
		Issues: issues,
	}
	for _, issue := range issues {
		switch issue.Severity {
		case config.SeverityError:
			report.Errors++
		case config.SeverityWarning:
			report.Warnings++
		}
	}

	if jsonOutput {
		if err := printReportJSON(report); err != nil {
			return err
		}
	} else {
		printReport(report)
	}

	if !report.Valid {
		return fmt.Errorf("configuration is invalid: %d error(s)", report.Errors)
	}
	if strict && report.Warnings > 0 {
		return fmt.Errorf("strict mode: %d warning(s)", report.Warnings)
	}
	return nil
}

func printReportJSON(report ValidationReport) error {
	if report.Issues == nil {
		report.Issues = []config.Issue{}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func printReport(report ValidationReport) {
	styled := isInteractiveTTY()

	fmt.Printf("%s\n\n", renderTitle(fmt.Sprintf("Validating %s", report.File), styled))

	for _, issue := range report.Issues {
		fmt.Println(renderIssue(issue, styled))
	}
	if len(report.Issues) > 0 {
		fmt.Println()
	}

	switch {
	case !report.Valid:
		fmt.Println(renderMark(crossMark, errorStyle, styled) +
			fmt.Sprintf(" invalid: %d error(s), %d warning(s)", report.Errors, report.Warnings))
	case report.Warnings > 0:
		fmt.Println(renderMark(warnMark, warningStyle, styled) +
			fmt.Sprintf(" valid with %d warning(s)", report.Warnings))
	default:
		fmt.Println(renderMark(checkMark, okStyle, styled) + " configuration is valid")
	}
}

func renderTitle(s string, styled bool) string {
	if styled {
		return titleStyle.Render(s)
	}
	return s
}

func renderMark(mark string, style lipgloss.Style, styled bool) string {
	if styled {
		return style.Render(mark)
	}
	return mark
}

func renderIssue(issue config.Issue, styled bool) string {
	mark := crossMark
	style := errorStyle
	if issue.Severity == config.SeverityWarning {
		mark = warnMark
		style = warningStyle
	}
	line := fmt.Sprintf("%s: %s", issue.Field, issue.Message)
	if styled {
		return style.Render(mark) + " " + line
	}
	return mark + " " + line
}
