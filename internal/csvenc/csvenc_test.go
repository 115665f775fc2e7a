package csvenc

import (
	"strings"
	"testing"

	"github.com/alexiusacademia/ncpunch/internal/layout"
	"github.com/alexiusacademia/ncpunch/internal/profile"
	"github.com/alexiusacademia/ncpunch/internal/punch"
)

func TestEncodeProducesSingleLineWithPrefix(t *testing.T) {
	spec := profile.NewProfileSpec(profile.JoistSingle)
	spec.LengthMM = 5200
	l, err := layout.Plan(spec)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	meta := Meta{PartCode: "J-5200-01", Qty: 12, LengthMM: spec.LengthMM}
	line := Encode(meta, l)

	if strings.Contains(line, "\n") {
		t.Fatalf("Encode must return a single line, got: %q", line)
	}
	fields := strings.Split(line, ",")
	if fields[0] != "csvCOMPONENT" {
		t.Fatalf("line must start with csvCOMPONENT, got %q", fields[0])
	}
	if fields[1] != "J1-1" {
		t.Fatalf("componentCode = %q, want J1-1 for a part code not starting with B", fields[1])
	}
	if fields[3] != "JOIST" {
		t.Fatalf("family = %q, want JOIST", fields[3])
	}
	if fields[4] != "NORMAL" {
		t.Fatalf("mode field = %q, want NORMAL", fields[4])
	}
	if fields[5] != "12" {
		t.Fatalf("qty field = %q, want 12", fields[5])
	}
	if fields[6] != "5200" || fields[9] != "5200" {
		t.Fatalf("length fields = %q/%q, want 5200/5200", fields[6], fields[9])
	}
}

// TestScenarioFiveBearerCSVHeader checks the exact header a bearer
// run produces: a part code beginning with "B" selects the B1-1
// component code and BEARER family.
func TestScenarioFiveBearerCSVHeader(t *testing.T) {
	spec := profile.NewProfileSpec(profile.BearerSingle)
	spec.LengthMM = 5200
	spec.JoistSpacingMM = 600
	spec.StubSpacingMM = 1200
	spec.StubsEnabled = true
	spec.StubPositions = []int{331, 1531, 2731, 3931, 4869}
	l, err := layout.Plan(spec)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	meta := Meta{PartCode: "B_5200_J600_S1200", Qty: 2, LengthMM: spec.LengthMM}
	line := Encode(meta, l)

	wantPrefix := "csvCOMPONENT,B1-1,B_5200_J600_S1200,BEARER,NORMAL,2,5200,0,0,5200,0,50,BOLT HOLE,30"
	if !strings.HasPrefix(line, wantPrefix) {
		t.Fatalf("line does not start with expected header:\ngot:  %q\nwant prefix: %q", line, wantPrefix)
	}

	// The merged punch set is sorted by position ascending across all
	// five lists, so the record stream ends at the global-max position
	// (the end bolt at 5170), not at the last stub (4869/5069).
	wantSuffix := ",BOLT HOLE,5170.0"
	if !strings.HasSuffix(line, wantSuffix) {
		t.Fatalf("line does not end at the global-max position:\ngot:  %q\nwant suffix: %q", line, wantSuffix)
	}
}

// TestRoundTripDecodeMatchesEncode exercises P5: decoding an encoded
// layout recovers the same station/position pairs in the same order.
func TestRoundTripDecodeMatchesEncode(t *testing.T) {
	spec := profile.NewProfileSpec(profile.BearerSingle)
	spec.LengthMM = 6500
	l, err := layout.Plan(spec)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	meta := Meta{PartCode: "B-6500-01", Qty: 4, LengthMM: spec.LengthMM}
	line := Encode(meta, l)

	_, records, err := Decode(line)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}

	var active []punch.Punch
	for _, p := range l.All() {
		if p.Active {
			active = append(active, p)
		}
	}
	if len(records) != len(active) {
		t.Fatalf("Decode returned %d records, want %d", len(records), len(active))
	}
	for i, rec := range records {
		if rec.Station != active[i].Kind.StationName() {
			t.Errorf("record %d station = %q, want %q", i, rec.Station, active[i].Kind.StationName())
		}
		if rec.Position != punch.RoundHalf(active[i].Position) {
			t.Errorf("record %d position = %v, want %v", i, rec.Position, punch.RoundHalf(active[i].Position))
		}
	}

	// Records must be globally sorted by position ascending, not just
	// sorted within each of the five source lists.
	for i := 1; i < len(records); i++ {
		if records[i].Position < records[i-1].Position {
			t.Fatalf("records not sorted by position ascending: %v before %v", records[i-1], records[i])
		}
	}

	reencoded := Encode(meta, l)
	if line != reencoded {
		t.Fatalf("CSV encoding is not deterministic:\nfirst:  %q\nsecond: %q", line, reencoded)
	}
}

func TestDecodeRejectsMissingPrefix(t *testing.T) {
	_, _, err := Decode("J1-1,J-5200-01,JOIST,NORMAL,12,5200,0,0,5200,0,50,BOLT HOLE,30")
	if err == nil {
		t.Fatalf("expected an error for a line missing the csvCOMPONENT prefix")
	}
}

func TestDecodeRejectsUnpairedTrailingField(t *testing.T) {
	_, _, err := Decode("csvCOMPONENT,J1-1,J-5200-01,JOIST,NORMAL,12,5200,0,0,5200,0,50,BOLT HOLE")
	if err == nil {
		t.Fatalf("expected an error for an unpaired trailing station field")
	}
}

func TestCornerBracketsEncodeAsService(t *testing.T) {
	l := layout.Layout{
		Stubs: []punch.Punch{{Position: 131, Kind: punch.CornerBrackets, Active: true}},
	}
	meta := Meta{PartCode: "B-TEST", Qty: 1, LengthMM: 5200}
	line := Encode(meta, l)
	if !strings.HasSuffix(line, ",SERVICE,131.0") {
		t.Fatalf("CornerBrackets must encode its station as SERVICE, got %q", line)
	}
}
