// Package domain contains the core route-handler migration logic.
package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/mrskwiw/routefix/internal/model"
)

const (
	// guardMarker identifies an already-migrated file. The check is purely
	// textual: an unrelated symbol with the same name leaves the file
	// unmigrated.
	guardMarker = "interface RouteParams"

	// signatureMarker is the normalized handler signature produced by
	// rewriteSignatures and consumed by the extraction scanner.
	signatureMarker = "{ params }: RouteParams"

	tryMarker = "try {"
)

// routeParamsDecl is the interface block injected after the import section.
// The field name inside the promise-wrapped record is the configured
// parameter name.
const routeParamsDecl = `interface RouteParams {
  params: Promise<{
    %s: string
  }>
}
`

// Result is the outcome of transforming a single file's text.
type Result struct {
	Outcome m.Outcome
	Text    string
}

// Transform applies the Next.js 15 async-params migration to src for a
// handler receiving the dynamic segment param. It either returns the input
// unchanged with a Skipped outcome or the fully rewritten text; it never
// produces a partial result.
func Transform(src, param string) Result {
	if strings.Contains(src, guardMarker) {
		return Result{Outcome: m.Skipped, Text: src}
	}

	text := injectInterface(src, param)
	text = rewriteSignatures(text, param)
	text = insertExtractions(text, param)
	text = rewriteReferences(text, param)

	return Result{Outcome: m.Rewritten, Text: text}
}

// injectInterface inserts the RouteParams declaration at the end of the
// import section, heuristically the first blank line in the file. Files
// without a blank line get the declaration prepended.
func injectInterface(src, param string) string {
	decl := fmt.Sprintf(routeParamsDecl, param)

	idx := strings.Index(src, "\n\n")
	if idx < 0 {
		return decl + "\n" + src
	}

	return src[:idx+1] + "\n" + decl + src[idx+1:]
}

// signaturePattern matches the inline annotation shape
// `{ params }: { params: { <param>: string } }`, whitespace-insensitive.
// Annotations for any other parameter name do not match.
func signaturePattern(param string) *regexp.Regexp {
	return regexp.MustCompile(
		`\{\s*params\s*\}\s*:\s*\{\s*params\s*:\s*\{\s*` +
			regexp.QuoteMeta(param) +
			`\s*:\s*string\s*\}\s*\}`,
	)
}

// rewriteSignatures replaces every inline params annotation with a reference
// to the injected RouteParams interface.
func rewriteSignatures(text, param string) string {
	return signaturePattern(param).ReplaceAllString(text, signatureMarker)
}

// insertExtractions adds `const { <param> } = await params` as the first
// statement of each normalized handler's try block.
//
// The scan is an explicit two-state machine: a line carrying the normalized
// signature arms the trigger, the next line containing `try {` receives the
// extraction and disarms it. A handler whose body never opens a try block
// gets no extraction; the verifier flags that case.
func insertExtractions(text, param string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines)+2)

	armed := false

	for _, line := range lines {
		out = append(out, line)

		if strings.Contains(line, signatureMarker) {
			armed = true
			continue
		}

		if armed && strings.Contains(line, tryMarker) {
			out = append(out, extractionLine(line, param))

			armed = false
		}
	}

	return strings.Join(out, "\n")
}

// extractionLine builds the await-extraction statement indented two spaces
// deeper than the try line it follows.
func extractionLine(tryLine, param string) string {
	indent := len(tryLine) - len(strings.TrimLeft(tryLine, " \t"))

	return strings.Repeat(" ", indent+2) + extractionStmt(param)
}

func extractionStmt(param string) string {
	return "const { " + param + " } = await params"
}

// referencePattern matches `params.<param>` on a word boundary so that a
// longer identifier sharing the prefix (e.g. params.usernameSuffix for
// param "username") is left alone.
func referencePattern(param string) *regexp.Regexp {
	return regexp.MustCompile(`params\.` + regexp.QuoteMeta(param) + `\b`)
}

// rewriteReferences replaces every params.<param> access with the bare
// local binding introduced by the extraction statement. The replacement has
// no scoping awareness: matches inside comments and string literals are
// rewritten too.
func rewriteReferences(text, param string) string {
	return referencePattern(param).ReplaceAllString(text, param)
}
