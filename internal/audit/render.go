package audit

import (
	"html"
	"strings"
)

// RenderHTML converts a report into an embeddable HTML fragment: an issue
// table, a summary block, and the style rules applied. Free-text cells are
// escaped and wrapped in <pre> so paragraph breaks survive. Rendering is
// pure; identical reports produce byte-identical fragments.
func RenderHTML(rep Report) string {
	var b strings.Builder

	b.WriteString("<div class=\"audit-report\">\n")
	b.WriteString("<table>\n")
	b.WriteString("<thead><tr><th>#</th><th>Source</th><th>Translation</th><th>Issues</th><th>Fix</th><th>Score</th><th>Severity</th></tr></thead>\n")
	b.WriteString("<tbody>\n")
	for _, row := range rep.Rows {
		b.WriteString("<tr>")
		b.WriteString("<td>" + html.EscapeString(row.Index) + "</td>")
		writeCell(&b, row.Source)
		writeCell(&b, row.Translation)
		writeCell(&b, row.Issues)
		writeCell(&b, row.Fix)
		b.WriteString("<td>" + html.EscapeString(row.Score) + "</td>")
		b.WriteString("<td>" + html.EscapeString(row.Severity) + "</td>")
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n")
	b.WriteString("</table>\n")

	b.WriteString("<div class=\"summary\"><h3>Summary</h3><pre>" + html.EscapeString(rep.Summary) + "</pre></div>\n")

	if len(rep.Rules) > 0 {
		b.WriteString("<div class=\"style-rules\"><h3>Style rules</h3><ul>\n")
		for _, rule := range rep.Rules {
			b.WriteString("<li>" + html.EscapeString(rule) + "</li>\n")
		}
		b.WriteString("</ul></div>\n")
	}

	b.WriteString("</div>\n")
	return b.String()
}

func writeCell(b *strings.Builder, text string) {
	b.WriteString("<td><pre>" + html.EscapeString(text) + "</pre></td>")
}
