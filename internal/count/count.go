// Package count builds and submits physical-count registrations.
package count

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Entry is the payload the ingestion sheet expects. The field names —
// including the "HORA INCIO" misspelling — are the remote contract; do not
// fix them here.
type Entry struct {
	RegistryID    string `json:"ID_REGISTRO"`
	Date          string `json:"FECHA"`
	StartTime     string `json:"HORA INCIO"`
	EndTime       string `json:"HORA FIN"`
	Code          string `json:"CODIGO"`
	Name          string `json:"NOMBRE"`
	PhysicalCount string `json:"CANTIDAD_FISICA"`
	Observations  string `json:"OBSERVACIONES"`
	Status        string `json:"ESTATUS"`
}

// StatusRegistered is the only status this service ever submits.
const StatusRegistered = "Registrado"

// GenerateID builds a count session id like FARM-260831-1430-042.
func GenerateID(now time.Time) string {
	return fmt.Sprintf("FARM-%s-%s-%03d", now.Format("060102"), now.Format("1504"), rand.Intn(1000))
}

// FormatDate renders the LATAM DD/MM/YYYY form the sheet stores.
func FormatDate(t time.Time) string { return t.Format("02/01/2006") }

// FormatTime renders 24-hour HH:MM.
func FormatTime(t time.Time) string { return t.Format("15:04") }

var keepNums = regexp.MustCompile(`[^\d.\-]`)

// ParseQuantity parses LATAM-formatted quantities: "1 234,50", NBSP or
// narrow-space thousand separators, decimal commas.
func ParseQuantity(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	repl := strings.NewReplacer("\u00A0", "", "\u202F", "", " ", "", "\t", "", ",", ".")
	s = repl.Replace(s)
	s = keepNums.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
