package xmlexchange

import (
	"encoding/xml"
	"fmt"
	"io"

	"panbank/pkg/validation"
)

// CheckDocument structurally validates an exported document without touching
// any store: the root must be Citizens, and every Citizen must carry a
// well-formed PAN and a non-empty Name. It returns one error per violation.
func CheckDocument(r io.Reader) []error {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return []error{fmt.Errorf("parse document: %w", err)}
	}

	var errs []error
	for i, c := range doc.Citizens {
		if !validation.ValidIdentityNumber(c.PAN) {
			errs = append(errs, fmt.Errorf("citizen %d: malformed PAN %q", i, c.PAN))
		}
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("citizen %d: missing Name", i))
		}
	}
	return errs
}
