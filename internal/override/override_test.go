package override

import (
	"testing"

	"github.com/alexiusacademia/ncpunch/internal/clash"
	"github.com/alexiusacademia/ncpunch/internal/profile"
	"github.com/alexiusacademia/ncpunch/internal/punch"
)

func TestNewEngineVersionStartsAtOne(t *testing.T) {
	spec := profile.NewProfileSpec(profile.JoistSingle)
	spec.LengthMM = 5200
	e, err := NewEngine(spec)
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}
	if e.GetUpdateVersion() != 1 {
		t.Fatalf("GetUpdateVersion() = %d, want 1", e.GetUpdateVersion())
	}
}

func TestUpdateCalculationsIncrementsVersion(t *testing.T) {
	spec := profile.NewProfileSpec(profile.JoistSingle)
	spec.LengthMM = 5200
	e, err := NewEngine(spec)
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}
	before := e.GetUpdateVersion()

	spec.LengthMM = 6000
	if err := e.UpdateCalculations(spec); err != nil {
		t.Fatalf("UpdateCalculations returned error: %v", err)
	}
	if e.GetUpdateVersion() <= before {
		t.Fatalf("GetUpdateVersion() did not increase: before=%d after=%d", before, e.GetUpdateVersion())
	}
}

func TestSetManualPunchesPinsOneListOnly(t *testing.T) {
	spec := profile.NewProfileSpec(profile.JoistSingle)
	spec.LengthMM = 5200
	e, err := NewEngine(spec)
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}

	manual := []punch.Punch{{Position: 1000, Kind: punch.Dimple, Active: true}}
	if err := e.SetManualPunches("dimples", manual); err != nil {
		t.Fatalf("SetManualPunches returned error: %v", err)
	}

	got := e.GetCalculations()
	if len(got.Dimples) != 1 || got.Dimples[0].Position != 1000 {
		t.Fatalf("dimples not pinned to manual value: %+v", got.Dimples)
	}
	if len(got.BoltHoles) == 0 {
		t.Fatalf("bolt holes should remain computed, not emptied by a dimple override")
	}
}

func TestSetManualPunchesUnknownListErrors(t *testing.T) {
	spec := profile.NewProfileSpec(profile.JoistSingle)
	spec.LengthMM = 5200
	e, err := NewEngine(spec)
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}
	if err := e.SetManualPunches("not_a_list", nil); err == nil {
		t.Fatalf("expected an error for an unknown list name")
	}
}

func TestClearManualModeRestoresComputedValues(t *testing.T) {
	spec := profile.NewProfileSpec(profile.JoistSingle)
	spec.LengthMM = 5200
	e, err := NewEngine(spec)
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}
	computed := e.GetCalculations().Dimples

	if err := e.SetManualPunches("dimples", nil); err != nil {
		t.Fatalf("SetManualPunches returned error: %v", err)
	}
	if err := e.ClearManualMode("dimples"); err != nil {
		t.Fatalf("ClearManualMode returned error: %v", err)
	}

	got := e.GetCalculations().Dimples
	if len(got) != len(computed) {
		t.Fatalf("ClearManualMode did not restore computed dimples: got %d, want %d", len(got), len(computed))
	}
}

func TestWebTabOverrideResyncsBearerBolts(t *testing.T) {
	spec := profile.NewProfileSpec(profile.BearerSingle)
	spec.LengthMM = 6000
	spec.JoistSpacingMM = 600
	e, err := NewEngine(spec)
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}

	newTabs := []punch.Punch{{Position: 1500, Kind: punch.WebTab, Active: true}}
	if err := e.SetManualPunches("web_tabs", newTabs); err != nil {
		t.Fatalf("SetManualPunches returned error: %v", err)
	}

	got := e.GetCalculations()
	found := false
	for _, b := range got.BoltHoles {
		if b.Position == 1500-29.5 || b.Position == 1500+29.5 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a bolt hole paired off the manual web tab at 1500, got %+v", got.BoltHoles)
	}
}

// TestSetManualPunchesFlatPartitionsByKindAndResyncsBearerBolts
// exercises the single-call, whole-layout flat override: a mixed
// punch set is routed to its five lists by Kind, the non-bolt lists
// equal the input partition exactly, and the bolt-hole list is
// derived fresh from the manual web tabs rather than taken from the
// input's own bolt-hole entries.
func TestSetManualPunchesFlatPartitionsByKindAndResyncsBearerBolts(t *testing.T) {
	spec := profile.NewProfileSpec(profile.BearerSingle)
	spec.LengthMM = 6000
	spec.JoistSpacingMM = 600
	e, err := NewEngine(spec)
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}

	flat := []punch.Punch{
		{Position: 9999, Kind: punch.BoltHole, Active: true}, // must be discarded by resync
		{Position: 1500, Kind: punch.WebTab, Active: true},
		{Position: 2000, Kind: punch.Dimple, Active: true},
	}
	if err := e.SetManualPunchesFlat(flat); err != nil {
		t.Fatalf("SetManualPunchesFlat returned error: %v", err)
	}

	got := e.GetCalculations()
	if len(got.WebTabs) != 1 || got.WebTabs[0].Position != 1500 {
		t.Fatalf("web_tabs should equal the input partition exactly, got %+v", got.WebTabs)
	}
	if len(got.Dimples) != 1 || got.Dimples[0].Position != 2000 {
		t.Fatalf("dimples should equal the input partition exactly, got %+v", got.Dimples)
	}
	if len(got.ServiceHoles) != 0 || len(got.Stubs) != 0 {
		t.Fatalf("lists absent from the flat input should become empty, got service_holes=%+v stubs=%+v", got.ServiceHoles, got.Stubs)
	}

	for _, b := range got.BoltHoles {
		if b.Position == 9999 {
			t.Fatalf("bearer bolt-hole list must be resynced off web tabs, not taken verbatim from the input partition: %+v", got.BoltHoles)
		}
	}
	found := false
	for _, b := range got.BoltHoles {
		if b.Position == 1500-29.5 || b.Position == 1500+29.5 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a resynced bolt hole paired off the manual web tab at 1500, got %+v", got.BoltHoles)
	}
}

// TestBoltHoleOverridePinsAgainstResyncAndFlagsAlignment pins the bolt
// hole list by hand, dropping the pair over one web tab, and confirms
// (a) the pin survives a web-tab change that would otherwise resync
// it and (b) the resulting layout fails the clash detector's
// bolt-over-web-tab alignment rule for the now-unpaired tab.
func TestBoltHoleOverridePinsAgainstResyncAndFlagsAlignment(t *testing.T) {
	spec := profile.NewProfileSpec(profile.BearerSingle)
	spec.LengthMM = 5200
	spec.JoistSpacingMM = 600
	e, err := NewEngine(spec)
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}

	full := e.GetCalculations().BoltHoles
	var pinned []punch.Punch
	for _, b := range full {
		if b.Position == 600-29.5 || b.Position == 600+29.5 {
			continue
		}
		pinned = append(pinned, b)
	}
	if err := e.SetManualPunches("bolt_holes", pinned); err != nil {
		t.Fatalf("SetManualPunches returned error: %v", err)
	}

	// A later web-tab change must not override the pinned bolt list.
	newTabs := append([]punch.Punch(nil), e.GetCalculations().WebTabs...)
	newTabs = append(newTabs, punch.Punch{Position: 5000, Kind: punch.WebTab, Active: true})
	if err := e.SetManualPunches("web_tabs", newTabs); err != nil {
		t.Fatalf("SetManualPunches returned error: %v", err)
	}

	got := e.GetCalculations()
	for _, b := range got.BoltHoles {
		if b.Position == 600-29.5 || b.Position == 600+29.5 {
			t.Fatalf("pinned bolt hole list was overwritten by web-tab resync: %+v", got.BoltHoles)
		}
	}

	report := clash.DetectClashes(spec, got)
	flagged := false
	for _, d := range report.Diagnostics {
		if d.Rule == "bolt_over_web_tab_alignment" && d.Position == 600 {
			flagged = true
		}
	}
	if !flagged {
		t.Fatalf("expected an alignment warning for the web tab at 600 left without its bolt pair, got %+v", report.Diagnostics)
	}
}
