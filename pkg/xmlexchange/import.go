package xmlexchange

import (
	"encoding/xml"
	"fmt"
	"io"

	"panbank/infra/jsonstore"
)

// ImportResult reports what happened to each candidate record. Rejections are
// collected per record rather than aborting the whole import.
type ImportResult struct {
	Created  int
	Rejected []RejectedCitizen
}

// RejectedCitizen pairs a candidate identity number with the store's
// rejection.
type RejectedCitizen struct {
	IdentityNumber string
	Err            error
}

// Import parses an XML document and creates each citizen through the store,
// so format and uniqueness rules are enforced identically to interactive use.
func Import(r io.Reader, store *jsonstore.Store) (ImportResult, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return ImportResult{}, fmt.Errorf("parse document: %w", err)
	}

	var res ImportResult
	for _, c := range doc.Citizens {
		rec := jsonstore.CitizenRecord{
			IdentityNumber: c.PAN,
			Name:           c.Name,
			DateOfBirth:    c.DOB,
			Address:        c.Address,
		}
		if err := store.CreateCitizen(rec); err != nil {
			res.Rejected = append(res.Rejected, RejectedCitizen{IdentityNumber: c.PAN, Err: err})
			continue
		}
		res.Created++
	}
	return res, nil
}
