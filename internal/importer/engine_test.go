package importer

import (
	"strings"
	"testing"

	"agridesk/internal/types"
)

var financeColumns = []types.Column{
	{Key: "id", Header: "ID"},
	{Key: "name", Header: "Libellé"},
	{Key: "amount", Header: "Montant"},
}

func parse(t *testing.T, input string, nextID int64) Result {
	t.Helper()
	res, err := NewEngine().Parse(strings.NewReader(input), financeColumns, nextID)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return res
}

func TestParseAcceptsWellFormedLines(t *testing.T) {
	input := "id,name,amount\n1,Semences,120\n2,Engrais,80.5\n"
	res := parse(t, input, 10)

	if len(res.Accepted) != 2 || res.Rejected != 0 {
		t.Fatalf("accepted=%d rejected=%d, want 2/0", len(res.Accepted), res.Rejected)
	}

	first := res.Accepted[0]
	if id, _ := first.ID(); id != 10 {
		t.Errorf("first synthetic id = %d, want 10", id)
	}
	if id, _ := res.Accepted[1].ID(); id != 11 {
		t.Errorf("second synthetic id = %d, want 11", id)
	}
	if v, _ := first.Get("name"); v != "Semences" {
		t.Errorf("name = %v, want Semences", v)
	}
	if v, _ := first.Get("amount"); v != int64(120) {
		t.Errorf("amount = %v (%T), want int64 120", v, v)
	}
	if v, _ := res.Accepted[1].Get("amount"); v != 80.5 {
		t.Errorf("amount = %v, want 80.5", v)
	}
}

func TestParsePartialFile(t *testing.T) {
	// 10 data lines, 3 of them short
	input := strings.Join([]string{
		"id,name,amount",
		"1,a,10",
		"2,b,20",
		"3,c", // short
		"4,d,40",
		"5",   // short
		"6,f,60",
		"7,g,70",
		"8,h", // short
		"9,i,90",
		"10,j,100",
	}, "\n")

	res := parse(t, input, 1)
	if len(res.Accepted) != 7 {
		t.Errorf("accepted = %d, want 7", len(res.Accepted))
	}
	if res.Rejected != 3 {
		t.Errorf("rejected = %d, want 3", res.Rejected)
	}
}

func TestParseHeaderOnlyFile(t *testing.T) {
	res := parse(t, "id,name,amount\n", 1)
	if len(res.Accepted) != 0 || res.Rejected != 0 {
		t.Errorf("accepted=%d rejected=%d, want 0/0", len(res.Accepted), res.Rejected)
	}
}

func TestParseEmptyFile(t *testing.T) {
	res := parse(t, "", 1)
	if len(res.Accepted) != 0 || res.Rejected != 0 {
		t.Errorf("accepted=%d rejected=%d, want 0/0", len(res.Accepted), res.Rejected)
	}
}

func TestParseIgnoresWhitespaceOnlyLines(t *testing.T) {
	input := "id,name,amount\n1,a,10\n   \n\n2,b,20\n"
	res := parse(t, input, 1)
	if len(res.Accepted) != 2 {
		t.Errorf("accepted = %d, want 2", len(res.Accepted))
	}
	if res.Rejected != 0 {
		t.Errorf("whitespace lines counted as rejected: %d", res.Rejected)
	}
}

func TestParseOverwritesFileProvidedIDs(t *testing.T) {
	// The file claims id 999; the merged set renumbers from nextID instead
	res := parse(t, "id,name,amount\n999,a,10\n", 5)
	if id, _ := res.Accepted[0].ID(); id != 5 {
		t.Errorf("id = %d, want renumbered 5", id)
	}
}

func TestParseQuotedDelimiters(t *testing.T) {
	input := "id,name,amount\n1,\"Blé, hiver\",10\n"
	res := parse(t, input, 1)
	if len(res.Accepted) != 1 {
		t.Fatalf("accepted = %d, want 1", len(res.Accepted))
	}
	if v, _ := res.Accepted[0].Get("name"); v != "Blé, hiver" {
		t.Errorf("name = %v, want quoted value preserved", v)
	}
}

func TestParseExtraFieldsIgnored(t *testing.T) {
	res := parse(t, "id,name,amount,extra\n1,a,10,ignored\n", 1)
	if len(res.Accepted) != 1 {
		t.Fatalf("accepted = %d, want 1", len(res.Accepted))
	}
	if _, ok := res.Accepted[0].Get("extra"); ok {
		t.Error("field outside the column mapping was kept")
	}
}

func TestParseNoColumnsFails(t *testing.T) {
	if _, err := NewEngine().Parse(strings.NewReader("a\n1\n"), nil, 1); err == nil {
		t.Error("Parse() with no column mapping should fail")
	}
}
