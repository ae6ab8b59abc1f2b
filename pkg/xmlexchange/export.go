// Package xmlexchange translates citizen records between the JSON store and
// the external XML interchange format. The exporter is read-only over a
// snapshot; the importer feeds candidate records through the store's create
// operations so every format, uniqueness, and referential rule applies
// exactly as in interactive use.
package xmlexchange

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io"

	"panbank/infra/jsonstore"
)

// Document is the interchange form: a Citizens root with one Citizen element
// per record.
type Document struct {
	XMLName  xml.Name  `xml:"Citizens"`
	Citizens []Citizen `xml:"Citizen"`
}

// Citizen is the XML element form of a citizen record. The PAN element
// carries the identity number.
type Citizen struct {
	PAN     string `xml:"PAN"`
	Name    string `xml:"Name"`
	DOB     string `xml:"DOB"`
	Address string `xml:"Address"`
}

// Export writes the snapshot's citizens as an XML document and returns the
// hex SHA-256 digest of the emitted bytes. It never mutates the snapshot.
func Export(snap *jsonstore.Snapshot, w io.Writer) (string, error) {
	doc := Document{Citizens: make([]Citizen, 0, len(snap.Citizens))}
	for _, c := range snap.Citizens {
		doc.Citizens = append(doc.Citizens, Citizen{
			PAN:     c.IdentityNumber,
			Name:    c.Name,
			DOB:     c.DateOfBirth,
			Address: c.Address,
		})
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode citizens: %w", err)
	}
	out := append([]byte(xml.Header), body...)
	out = append(out, '\n')

	if _, err := w.Write(out); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	sum := sha256.Sum256(out)
	return hex.EncodeToString(sum[:]), nil
}
