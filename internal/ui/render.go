package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/taskmarket/taskmarket-go/internal/lifecycle"
	"github.com/taskmarket/taskmarket-go/internal/models"
)

// Column represents a table column
type Column struct {
	Name  string
	Width int
}

var taskColumns = []Column{
	{"ID", 10},
	{"Title", 30},
	{"Status", 14},
	{"Progress", 22},
	{"Offer", 9},
	{"Actions", 24},
}

const progressBarWidth = 12

// StatusLabel renders a status with its lifecycle label and color.
func StatusLabel(status models.TaskStatus) string {
	label := lifecycle.LabelForStatus(status)
	switch status {
	case models.TaskStatusCompleted:
		return color.GreenString(label)
	case models.TaskStatusCancelled:
		return color.RedString(label)
	case models.TaskStatusInProgress, models.TaskStatusReview:
		return color.CyanString(label)
	case models.TaskStatusCreated, models.TaskStatusPending:
		return color.YellowString(label)
	default:
		return color.HiBlackString(label)
	}
}

// ProgressBar renders a progress bar for a task's derived progress. A
// cancelled task renders as a crossed-out bar rather than a percentage.
func ProgressBar(p lifecycle.Progress) string {
	switch p.Kind {
	case lifecycle.ProgressCancelled:
		return color.RedString("[%s]", strings.Repeat("x", progressBarWidth))
	case lifecycle.ProgressUnknown:
		return color.HiBlackString("[%s] ??", strings.Repeat("-", progressBarWidth))
	}

	filled := p.Percent * progressBarWidth / 100
	bar := strings.Repeat("=", filled) + strings.Repeat("-", progressBarWidth-filled)
	return fmt.Sprintf("[%s] %3d%%", bar, p.Percent)
}

// TaskTable renders tasks as a fixed-width table with a header row.
// actionsFor supplies the viewer's permitted actions per task; pass nil
// to render the column as "none" throughout.
func TaskTable(tasks []models.Task, actionsFor func(models.Task) lifecycle.ActionSet) string {
	var b strings.Builder

	bold := color.New(color.Bold)
	for _, col := range taskColumns {
		b.WriteString(bold.Sprintf("%-*s ", col.Width, col.Name))
	}
	b.WriteString("\n")
	for _, col := range taskColumns {
		b.WriteString(strings.Repeat("-", col.Width) + " ")
	}
	b.WriteString("\n")

	for _, t := range tasks {
		var actions lifecycle.ActionSet
		if actionsFor != nil {
			actions = actionsFor(t)
		}
		b.WriteString(fmt.Sprintf("%-*s ", taskColumns[0].Width, truncate(t.ID, taskColumns[0].Width)))
		b.WriteString(fmt.Sprintf("%-*s ", taskColumns[1].Width, truncate(t.Title, taskColumns[1].Width)))
		// Styled cells pad manually: color escape codes break %-*s width math.
		b.WriteString(padStyled(StatusLabel(t.Status), lifecycle.LabelForStatus(t.Status), taskColumns[2].Width))
		b.WriteString(fmt.Sprintf("%-*s ", taskColumns[3].Width, ProgressBar(lifecycle.ProgressForStatus(t.Status))))
		b.WriteString(fmt.Sprintf("%-*s ", taskColumns[4].Width, fmt.Sprintf("$%.2f", t.Offer)))
		b.WriteString(ActionList(actions))
		b.WriteString("\n")
	}
	return b.String()
}

// ActionList renders the actions available to the viewer.
func ActionList(actions lifecycle.ActionSet) string {
	ordered := []lifecycle.Action{
		lifecycle.ActionApply,
		lifecycle.ActionConfirm,
		lifecycle.ActionTrack,
		lifecycle.ActionViewApplications,
		lifecycle.ActionComplete,
		lifecycle.ActionApprove,
		lifecycle.ActionRate,
		lifecycle.ActionCancel,
	}

	var names []string
	for _, a := range ordered {
		if actions.Contains(a) {
			names = append(names, string(a))
		}
	}
	if len(names) == 0 {
		return color.HiBlackString("none")
	}
	return strings.Join(names, ", ")
}

func padStyled(styled, plain string, width int) string {
	pad := width - len(plain)
	if pad < 0 {
		pad = 0
	}
	return styled + strings.Repeat(" ", pad+1)
}

// truncate shortens a string to max runes. Slicing runs on runes so a
// multibyte title is never cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
