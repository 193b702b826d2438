package domain

import (
	"fmt"
	"strings"
)

// Verify checks that migrated text is internally consistent: the RouteParams
// interface exists, every normalized signature is followed by its await
// extraction before the next signature starts, and no params.<param>
// reference survives. It returns nil when the text passes all checks.
//
// The transformer itself cannot detect a shape mismatch (a handler without a
// try block, non-standard formatting); this pass is what surfaces those
// cases instead of leaving a silently broken file behind.
func Verify(text, param string) error {
	if !strings.Contains(text, guardMarker) {
		return fmt.Errorf("missing %s declaration", guardMarker)
	}

	if err := verifyExtractions(text, param); err != nil {
		return err
	}

	if loc := referencePattern(param).FindStringIndex(text); loc != nil {
		return fmt.Errorf("unrewritten reference params.%s remains", param)
	}

	return nil
}

// verifyExtractions walks the text line by line and confirms that each
// normalized signature has a matching extraction statement somewhere before
// the next signature (or the end of file).
func verifyExtractions(text, param string) error {
	lines := strings.Split(text, "\n")
	stmt := extractionStmt(param)

	pending := -1 // line number of a signature awaiting its extraction

	for i, line := range lines {
		if strings.Contains(line, signatureMarker) {
			if pending >= 0 {
				return missingExtractionErr(pending, param)
			}

			pending = i + 1

			continue
		}

		if pending >= 0 && strings.Contains(line, stmt) {
			pending = -1
		}
	}

	if pending >= 0 {
		return missingExtractionErr(pending, param)
	}

	return nil
}

func missingExtractionErr(line int, param string) error {
	return fmt.Errorf("handler signature at line %d has no `%s` extraction", line, extractionStmt(param))
}
