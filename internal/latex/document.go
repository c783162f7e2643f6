package latex

import "strings"

const plainPreamble = `\documentclass[11pt]{article}
\usepackage[utf8]{inputenc}
\usepackage{geometry}
\usepackage{enumitem}
\usepackage{hyperref}
\geometry{margin=1in}
\setlength{\parindent}{0pt}
\setlength{\parskip}{6pt}
\renewcommand{\familydefault}{\sfdefault}

\begin{document}

\vspace{8pt}

`

// WrapPlainDocument places escaped resume text in the minimal article
// document used for plain PDF downloads.
func WrapPlainDocument(body string) string {
	var b strings.Builder
	b.WriteString(plainPreamble)
	b.WriteString(EscapeParagraphs(body))
	b.WriteString("\n\n\\end{document}\n")
	return b.String()
}
