package docs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Signature returns a deterministic hash over every document's path, title and
// content fingerprint. Two loads of an unchanged docs tree share a signature.
func (d *Directory) Signature() string {
	h := sha256.New()
	d.Walk(func(_ *Directory, doc *Document) {
		_, _ = fmt.Fprintf(h, "%s|%s|%s|%t\n", doc.Path, doc.Title, doc.Fingerprint, doc.Synthesized)
	})
	return hex.EncodeToString(h.Sum(nil))
}
