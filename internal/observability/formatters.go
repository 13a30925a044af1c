// Package observability renders parse results for the terminal.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 76
	// maxItemsToShow is the default number of missing skills to list per category
	maxItemsToShow = 8
	// noContent is shown for sections that were not found
	noContent = "No content found"
)

// Printer renders profile and skills reports as bordered panels
type Printer struct {
	out    io.Writer
	styles styles
}

type styles struct {
	box     lipgloss.Style
	title   lipgloss.Style
	heading lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	found   lipgloss.Style
	missing lipgloss.Style
}

// NewPrinter creates a new Printer that writes to the given writer.
// Colors are only emitted when the writer is a terminal.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out: out,
		styles: styles{
			box: r.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#45475A")).
				Padding(0, 1).
				Width(boxWidth),
			title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
			heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
			label:   r.NewStyle().Foreground(lipgloss.Color("#6C7086")),
			muted:   r.NewStyle().Italic(true).Foreground(lipgloss.Color("#6C7086")),
			found:   r.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
			missing: r.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		},
	}
}

// printBox prints a bordered panel with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	if strings.TrimSpace(content) == "" {
		content = p.styles.muted.Render(noContent)
	}
	body := p.styles.title.Render(title) + "\n\n" + strings.TrimRight(content, "\n")
	fmt.Fprintln(p.out, p.styles.box.Render(body))
}

// field writes "Label: value" and skips empty values
func (p *Printer) field(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	sb.WriteString(p.styles.label.Render(label+":") + " " + value + "\n")
}

// PrintProfile outputs every section of a profile report
func (p *Printer) PrintProfile(report *types.ProfileReport) {
	if report == nil {
		return
	}

	p.printContact(report.Contact)
	p.printBox("SUMMARY", report.Summary)
	p.printEducation(report.Education)
	p.printExperience(report.Experience)
	p.printProjects(report.Projects)
	p.printBox("CERTIFICATIONS", bulletList(report.Certifications.Items))
}

func (p *Printer) printContact(c types.ContactInfo) {
	var sb strings.Builder
	p.field(&sb, "Name", c.Name)
	p.field(&sb, "Email", c.Email)
	p.field(&sb, "Phone", c.Phone)
	p.field(&sb, "LinkedIn", c.LinkedIn)
	p.field(&sb, "GitHub", c.GitHub)
	p.field(&sb, "Links", strings.Join(c.AdditionalURLs, ", "))
	p.field(&sb, "Work authorization", c.WorkAuthorization)
	p.printBox("CONTACT", sb.String())
}

func (p *Printer) printEducation(section types.EducationSection) {
	var sb strings.Builder
	for i, entry := range section.Items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.styles.heading.Render(joinNonEmpty(", ", entry.Institution, entry.Location)) + "\n")
		degree := entry.Degree
		if entry.Emphasis != "" {
			degree = joinNonEmpty(" in ", degree, entry.Emphasis)
		}
		p.field(&sb, "Degree", degree)
		p.field(&sb, "Graduated", entry.GraduationDate)
		p.field(&sb, "GPA", entry.GPA)
		p.field(&sb, "Minors", entry.Minors)
		if entry.Details != "" {
			sb.WriteString(entry.Details + "\n")
		}
	}
	p.printBox("EDUCATION", sb.String())
}

// printExperience falls back to the raw section when no entries were parsed
func (p *Printer) printExperience(section types.ExperienceSection) {
	if len(section.Items) == 0 {
		p.printBox("EXPERIENCE", section.Section)
		return
	}

	var sb strings.Builder
	for i, entry := range section.Items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.styles.heading.Render(joinNonEmpty(" @ ", entry.JobTitle, entry.Company)) + "\n")
		p.field(&sb, "Location", entry.Location)
		p.field(&sb, "Dates", joinNonEmpty(" - ", entry.StartDate, entry.EndDate))
		if entry.Details != "" {
			sb.WriteString(entry.Details + "\n")
		}
		sb.WriteString(bulletList(entry.Bullets))
	}
	p.printBox("EXPERIENCE", sb.String())
}

func (p *Printer) printProjects(section types.ProjectSection) {
	var sb strings.Builder
	for i, entry := range section.Items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.styles.heading.Render(entry.Name) + "\n")
		p.field(&sb, "Dates", entry.Dates)
		if entry.Details != "" {
			sb.WriteString(entry.Details + "\n")
		}
		sb.WriteString(bulletList(entry.Bullets))
	}
	p.printBox("PROJECTS", sb.String())
}

// PrintSkills outputs the found and missing skills of every category and the score
func (p *Printer) PrintSkills(report *types.SkillsReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if report.Role != "" {
		p.field(&sb, "Role", report.Role)
	}
	if report.Score != nil {
		p.field(&sb, "Score", fmt.Sprintf("%.2f%%", *report.Score))
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}

	for i, category := range report.Categories {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.styles.heading.Render(fmt.Sprintf("%s (%d/%d)", category.Category, len(category.Found), category.Total())) + "\n")
		if len(category.Found) > 0 {
			sb.WriteString(p.styles.found.Render("  ✓ "+strings.Join(category.Found, ", ")) + "\n")
		}
		if len(category.Missing) > 0 {
			missing := category.Missing
			suffix := ""
			if len(missing) > maxItemsToShow {
				suffix = fmt.Sprintf(" ... and %d more", len(missing)-maxItemsToShow)
				missing = missing[:maxItemsToShow]
			}
			sb.WriteString(p.styles.missing.Render("  ✗ "+strings.Join(missing, ", ")+suffix) + "\n")
		}
	}

	title := "SKILLS"
	if report.Mode == types.SkillsModeRole {
		title = "ROLE SKILLS"
	}
	p.printBox(title, sb.String())
}

// PrintRoles lists the roles a catalog defines
func (p *Printer) PrintRoles(roles []string) {
	p.printBox("ROLES", bulletList(roles))
}

func bulletList(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("  • " + item + "\n")
	}
	return sb.String()
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
