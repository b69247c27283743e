package report

import (
	"strings"
	"text/template"
	"time"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
)

// maxDensityRows bounds the keyword table in the rendered report.
const maxDensityRows = 10

// reportTemplate is the LaTeX document the analysis result is rendered
// into. Downstream tooling compiles it to PDF; this package only produces
// the source.
const reportTemplate = `\documentclass[11pt]{article}
\usepackage[margin=1in]{geometry}
\usepackage{booktabs}
\begin{document}

\begin{center}
{\LARGE Resume Analysis Report}
\end{center}

\section*{Summary}
\begin{tabular}{ll}
Resume File: & {{escape .Filename}} \\
Analysis Date: & {{.Date}} \\
Overall ATS Score: & {{printf "%.2f" .Result.Score}}\% \\
Rating: & {{escape .Result.Rating}} \\
Readiness: & {{printf "%.1f" .Result.Readiness}}\% \\
\end{tabular}

\section*{Section Scores}
\begin{tabular}{lr}
\toprule
Section & Score \\
\midrule
Skills & {{printf "%.1f" .Result.SectionScores.Skills}}\% \\
Experience & {{printf "%.1f" .Result.SectionScores.Experience}}\% \\
Education & {{printf "%.1f" .Result.SectionScores.Education}}\% \\
Formatting & {{printf "%.1f" .Result.SectionScores.Formatting}}\% \\
\bottomrule
\end{tabular}

\section*{Matched Keywords}
{{if .Result.Keywords.Matched}}{{escape (join .Result.Keywords.Matched ", ")}}{{else}}None{{end}}

\section*{Missing Keywords}
{{if .Result.Keywords.Missing}}{{escape (join .Result.Keywords.Missing ", ")}}{{else}}None{{end}}

\section*{Top Keywords in Resume}
\begin{tabular}{lr}
\toprule
Keyword & Frequency \\
\midrule
{{range .Density}}{{escape .Token}} & {{.Count}} \\
{{end}}\bottomrule
\end{tabular}

\section*{Feedback \& Suggestions}
\begin{itemize}
{{range .Result.Feedback}}\item \textbf{ {{- escape .Title}}:} {{escape .Message}}
{{end}}\end{itemize}

\end{document}
`

// templateData is the root object passed to the report template.
type templateData struct {
	Filename string
	Date     string
	Result   analyzer.Result
	Density  []analyzer.DensityEntry
}

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"escape": EscapeLaTeX,
	"join":   strings.Join,
}).Parse(reportTemplate))

// Render produces the LaTeX report for one analysis. Deterministic for a
// fixed result and timestamp.
func Render(result analyzer.Result, filename string, generatedAt time.Time) (string, error) {
	density := result.KeywordDensity
	if len(density) > maxDensityRows {
		density = density[:maxDensityRows]
	}

	data := templateData{
		Filename: filename,
		Date:     generatedAt.Format("2006-01-02 15:04:05"),
		Result:   result,
		Density:  density,
	}

	var out strings.Builder
	if err := reportTmpl.Execute(&out, data); err != nil {
		return "", &TemplateError{Message: "failed to execute report template", Cause: err}
	}
	return out.String(), nil
}
