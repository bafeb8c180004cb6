// Package catalog holds the product catalog: open-schema records parsed
// from the published inventory sheet, the ranked search over them, and the
// cache-or-fetch loader that keeps them populated.
package catalog

import (
	"strings"

	"github.com/ricardobolanios964-sudo/inventario3.0/internal/csvio"
)

// Record is one product row, headers uppercased. Columns beyond code and
// name are preserved verbatim for the UI.
type Record = csvio.Record

// Mapping names the code and name columns for one load. It is resolved
// once per parse by header keyword scan; records adopted from cache carry
// a zero Mapping and resolve per record through the fallback probes.
type Mapping struct {
	CodeCol string `json:"codigo"`
	NameCol string `json:"nombre"`
}

// Fallback probe order when the header scan resolved nothing.
var (
	codeFallbacks = []string{"CODIGO", "CÓDIGO", "ID", "CODE"}
	nameFallbacks = []string{"NOMBRE", "PRODUCTO", "DESCRIPCION", "DESCRIPTION"}
)

// Placeholders shown when a record has no resolvable code or name.
const (
	NoCode = "Sin código"
	NoName = "Sin nombre"
)

// DetectMapping scans headers for code-like and name-like columns.
// First matching header wins for each role.
func DetectMapping(headers []string) Mapping {
	var m Mapping
	for _, h := range headers {
		if m.CodeCol == "" && (strings.Contains(h, "CODIGO") || strings.Contains(h, "CÓDIGO") || h == "ID") {
			m.CodeCol = h
		}
		if m.NameCol == "" && (strings.Contains(h, "NOMBRE") || strings.Contains(h, "PRODUCTO") || strings.Contains(h, "DESCRIPCION")) {
			m.NameCol = h
		}
	}
	return m
}

// Code returns the record's product code, probing the fallback columns
// when the mapping is unresolved or the mapped cell is empty.
func (m Mapping) Code(rec Record) string {
	if m.CodeCol != "" && rec[m.CodeCol] != "" {
		return rec[m.CodeCol]
	}
	for _, k := range codeFallbacks {
		if rec[k] != "" {
			return rec[k]
		}
	}
	return NoCode
}

// Name returns the record's product name, same probing rules as Code.
func (m Mapping) Name(rec Record) string {
	if m.NameCol != "" && rec[m.NameCol] != "" {
		return rec[m.NameCol]
	}
	for _, k := range nameFallbacks {
		if rec[k] != "" {
			return rec[k]
		}
	}
	return NoName
}
