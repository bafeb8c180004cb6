package csvio

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitLine(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{`"123","Pan, blanco"`, []string{"123", "Pan, blanco"}},
		{`x,"y`, []string{"x", "y"}}, // unterminated quote tolerated
		{"", []string{""}},
		{"a,,c", []string{"a", "", "c"}},
		{`"a""b"`, []string{"ab"}}, // quotes toggle, never emitted
	}
	for _, c := range cases {
		if got := SplitLine(c.line); !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitLine(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}

func TestParseQuotedComma(t *testing.T) {
	headers, recs := Parse("CODIGO,NOMBRE\n\"123\",\"Pan, blanco\"\n", strings.ToUpper)
	if !reflect.DeepEqual(headers, []string{"CODIGO", "NOMBRE"}) {
		t.Fatalf("headers = %v", headers)
	}
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
	want := Record{"CODIGO": "123", "NOMBRE": "Pan, blanco"}
	if !reflect.DeepEqual(recs[0], want) {
		t.Errorf("record = %v, want %v", recs[0], want)
	}
}

func TestParseMissingTrailingValues(t *testing.T) {
	_, recs := Parse("A,B,C\n1,2\n", nil)
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
	if recs[0]["C"] != "" {
		t.Errorf("missing cell = %q, want empty", recs[0]["C"])
	}
}

func TestParseHeaderTransform(t *testing.T) {
	headers, _ := Parse("codigo,Nombre\n1,x\n", strings.ToUpper)
	if !reflect.DeepEqual(headers, []string{"CODIGO", "NOMBRE"}) {
		t.Errorf("headers = %v", headers)
	}

	headers, _ = Parse("Fecha y Hora,CODIGO\na,b\n", nil)
	if !reflect.DeepEqual(headers, []string{"Fecha y Hora", "CODIGO"}) {
		t.Errorf("case-preserving headers = %v", headers)
	}
}

func TestParseCRLF(t *testing.T) {
	_, recs := Parse("A,B\r\n1,2\r\n", nil)
	if len(recs) != 1 || recs[0]["B"] != "2" {
		t.Errorf("CRLF input mishandled: %v", recs)
	}
}

func TestParseHeaderOnly(t *testing.T) {
	headers, recs := Parse("A,B\n", nil)
	if len(headers) != 2 || len(recs) != 0 {
		t.Errorf("header-only blob: headers=%v recs=%v", headers, recs)
	}
}

func TestFromRowsEmpty(t *testing.T) {
	headers, recs := FromRows(nil, nil)
	if headers != nil || recs != nil {
		t.Errorf("empty rows: headers=%v recs=%v", headers, recs)
	}
}
