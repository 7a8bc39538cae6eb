package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"hypotest/internal/ttest"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Output formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

const ruleWidth = 60

// Render writes the report to w in the requested format.
func Render(w io.Writer, r *Report, format string) error {
	switch format {
	case FormatText, "":
		return RenderText(w, r)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(r))
		return err
	case FormatHTML:
		_, err := w.Write(HTML(r))
		return err
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// RenderText prints the plain console report. Headings are bold when w is a terminal.
func RenderText(w io.Writer, r *Report) error {
	renderer := lipgloss.NewRenderer(w)
	heading := renderer.NewStyle().Bold(true)
	reject := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	accept := renderer.NewStyle().Foreground(lipgloss.Color("10"))

	double := strings.Repeat("=", ruleWidth)
	single := strings.Repeat("-", ruleWidth)

	var b strings.Builder
	fmt.Fprintln(&b, double)
	fmt.Fprintln(&b, heading.Render("TWO-SAMPLE T-TEST"))
	fmt.Fprintln(&b, double)
	fmt.Fprintf(&b, "Run %s, inputs %s\n", r.ID, r.Fingerprint.Short())

	fmt.Fprintf(&b, "\n%s: %s\n", r.Label1, formatSample(r.Sample1))
	fmt.Fprintf(&b, "%s: %s\n", r.Label2, formatSample(r.Sample2))
	fmt.Fprintf(&b, "\n%s mean: %.2f, std: %.2f\n", r.Label1, r.Student.Sample1.Mean, r.Student.Sample1.StdDev)
	fmt.Fprintf(&b, "%s mean: %.2f, std: %.2f\n", r.Label2, r.Student.Sample2.Mean, r.Student.Sample2.StdDev)

	fmt.Fprintf(&b, "\n%s\n%s\n%s\n", single, heading.Render("T-TESTS"), single)
	writeTest(&b, "Student's t-test (equal variances)", r.Student)
	fmt.Fprintln(&b)
	writeTest(&b, "Welch's t-test (unequal variances)", r.Welch)

	in := r.Interpretation
	fmt.Fprintf(&b, "\n%s\n%s\n%s\n", double, heading.Render("INTERPRETATION ("+methodTitle(in.Method)+")"), double)
	if in.Reject {
		fmt.Fprintf(&b, "p-value (%s) < %g\n", FormatPValue(in.PValue), in.Alpha)
		fmt.Fprintf(&b, "Result: %s\n", reject.Render(in.Result))
	} else {
		fmt.Fprintf(&b, "p-value (%s) >= %g\n", FormatPValue(in.PValue), in.Alpha)
		fmt.Fprintf(&b, "Result: %s\n", accept.Render(in.Result))
	}
	fmt.Fprintf(&b, "Conclusion: %s\n", in.Conclusion)

	fmt.Fprintf(&b, "\n%s\n%s\n%s\n", single, heading.Render("EFFECT SIZE (Cohen's d)"), single)
	fmt.Fprintf(&b, "Cohen's d: %.4f\n", r.Effect.D)
	fmt.Fprintf(&b, "Effect size interpretation: %s\n", r.Effect.Magnitude)
	fmt.Fprintf(&b, "\n%s\n", double)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTest(b *strings.Builder, title string, res *ttest.Result) {
	fmt.Fprintf(b, "%s:\n", title)
	fmt.Fprintf(b, "  t-statistic: %.4f\n", res.TStatistic)
	fmt.Fprintf(b, "  p-value: %s\n", FormatPValue(res.PValue))
	fmt.Fprintf(b, "  degrees of freedom: %s\n", FormatDF(res.DegreesOfFreedom))
}

// Markdown renders the report as a markdown document.
func Markdown(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Two-sample t-test\n\nRun `%s`, inputs `%s`\n\n", r.ID, r.Fingerprint.Short())

	fmt.Fprintf(&b, "| | %s | %s |\n|---|---|---|\n", r.Label1, r.Label2)
	fmt.Fprintf(&b, "| n | %d | %d |\n", r.Student.Sample1.Count, r.Student.Sample2.Count)
	fmt.Fprintf(&b, "| mean | %.2f | %.2f |\n", r.Student.Sample1.Mean, r.Student.Sample2.Mean)
	fmt.Fprintf(&b, "| std | %.2f | %.2f |\n\n", r.Student.Sample1.StdDev, r.Student.Sample2.StdDev)

	b.WriteString("## Tests\n\n| Test | t | df | p |\n|---|---|---|---|\n")
	for _, res := range []*ttest.Result{r.Student, r.Welch} {
		fmt.Fprintf(&b, "| %s | %.4f | %s | %s |\n", methodTitle(res.Method), res.TStatistic, FormatDF(res.DegreesOfFreedom), FormatPValue(res.PValue))
	}

	in := r.Interpretation
	comparison := ">="
	if in.Reject {
		comparison = "<"
	}
	fmt.Fprintf(&b, "\n## Interpretation\n\n%s: p-value (%s) %s %g\n\n**%s**. %s\n",
		methodTitle(in.Method), FormatPValue(in.PValue), comparison, in.Alpha, in.Result, in.Conclusion)

	fmt.Fprintf(&b, "\n## Effect size\n\nCohen's d = %.4f (%s)\n", r.Effect.D, r.Effect.Magnitude)
	return b.String()
}

// HTML renders the markdown report to an HTML fragment.
func HTML(r *Report) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(Markdown(r)), p, renderer)
}

// FormatPValue prints p with four decimals, switching to a bound below 0.0001.
func FormatPValue(p float64) string {
	if p < 0.0001 {
		return "< 0.0001"
	}
	return strconv.FormatFloat(p, 'f', 4, 64)
}

// FormatDF prints whole degrees of freedom without decimals.
func FormatDF(df float64) string {
	if df == float64(int64(df)) {
		return strconv.FormatInt(int64(df), 10)
	}
	return strconv.FormatFloat(df, 'f', 2, 64)
}

func formatSample(sample []float64) string {
	parts := make([]string, len(sample))
	for i, v := range sample {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func methodTitle(method string) string {
	switch method {
	case ttest.Pooled.Name():
		return "Student's t-test"
	case ttest.Unpooled.Name():
		return "Welch's t-test"
	default:
		return method
	}
}
