// Package history holds the order/dispatch feed: per-record role
// resolution over loosely-headed rows, the exact-code matcher and its
// chronological sort, and the cache-or-fetch loader.
package history

import "github.com/ricardobolanios964-sudo/inventario3.0/internal/csvio"

// Record is one order row with original header casing preserved, because
// the role probes below match literal spreadsheet spellings first.
type Record = csvio.Record

// Probe tables, canonical spelling first, then case variants seen in the
// wild. Resolution happens per record on every access; the orders sheet
// mixes header casings between tabs.
var (
	codeCols     = []string{"CODIGO", "Codigo"}
	productCols  = []string{"PRODUCTO", "Producto"}
	datetimeCols = []string{"Fecha y Hora", "FECHA Y HORA"}
	dateCols     = []string{"FECHA", "Fecha"}
	startCols    = []string{"INICIO", "Inicio"}
	endCols      = []string{"FIN", "Fin"}
	quantityCols = []string{"CANTIDAD", "Cantidad"}
	dispatchCols = []string{"DESPACHO", "Despacho"}
	branchCols   = []string{"Sucursal", "SUCURSAL"}
	labCols      = []string{"LABORATORIO", "Laboratorio"}
	requestCols  = []string{"SOLICITUD", "Solicitud"}
	emailCols    = []string{"Correo", "CORREO"}
	pickerCols   = []string{"PICKER", "Picker"}
	countedCols  = []string{"CONTADO", "Contado"}
	reviewedCols = []string{"REVISADO", "Revisado"}
)

func probe(rec Record, keys []string, def string) string {
	for _, k := range keys {
		if v := rec[k]; v != "" {
			return v
		}
	}
	return def
}

func Code(rec Record) string     { return probe(rec, codeCols, "-") }
func Product(rec Record) string  { return probe(rec, productCols, "-") }
func DateTime(rec Record) string { return probe(rec, datetimeCols, "-") }
func Date(rec Record) string     { return probe(rec, dateCols, "-") }
func Start(rec Record) string    { return probe(rec, startCols, "-") }
func End(rec Record) string      { return probe(rec, endCols, "-") }
func Quantity(rec Record) string { return probe(rec, quantityCols, "0") }
func Dispatch(rec Record) string { return probe(rec, dispatchCols, "-") }
func Branch(rec Record) string   { return probe(rec, branchCols, "-") }
func Lab(rec Record) string      { return probe(rec, labCols, "-") }
func Request(rec Record) string  { return probe(rec, requestCols, "-") }
func Email(rec Record) string    { return probe(rec, emailCols, "-") }
func Picker(rec Record) string   { return probe(rec, pickerCols, "-") }
func Counted(rec Record) string  { return probe(rec, countedCols, "-") }
func Reviewed(rec Record) string { return probe(rec, reviewedCols, "-") }
