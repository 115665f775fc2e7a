// Package override implements the manual override engine (C4): a
// small stateful wrapper around layout.Plan that lets an operator pin
// a punch list to Manual values while everything else stays Computed,
// tracked by a strictly monotonic update version. SetManualPunches
// pins one of the five lists at a time; SetManualPunchesFlat pins all
// five at once from a single kind-partitioned punch set.
package override

import (
	"fmt"
	"sort"

	"github.com/alexiusacademia/ncpunch/internal/layout"
	"github.com/alexiusacademia/ncpunch/internal/profile"
	"github.com/alexiusacademia/ncpunch/internal/punch"
)

// Mode is a single punch list's provenance: recomputed on every
// UpdateCalculations, or pinned to operator-supplied positions.
type Mode int

const (
	Computed Mode = iota
	Manual
)

// listKey identifies one of the five ordered punch lists a Layout
// carries, the granularity at which Manual/Computed mode is tracked.
type listKey int

const (
	boltHoles listKey = iota
	dimples
	webTabs
	serviceHoles
	stubs
)

// Engine holds the current layout plus per-list mode state for one
// ProfileSpec. Any of the five lists, bolt holes included, can be
// pinned to Manual; a Computed bearer bolt-hole list is resynced off a
// Manual web-tab list.
type Engine struct {
	spec    profile.ProfileSpec
	current layout.Layout
	modes   map[listKey]Mode
	manual  map[listKey][]punch.Punch
	version int
}

// NewEngine computes the initial Computed-mode layout for spec.
func NewEngine(spec profile.ProfileSpec) (*Engine, error) {
	l, err := layout.Plan(spec)
	if err != nil {
		return nil, err
	}
	return &Engine{
		spec:    spec,
		current: l,
		modes:   map[listKey]Mode{},
		manual:  map[listKey][]punch.Punch{},
		version: 1,
	}, nil
}

// GetUpdateVersion returns the engine's monotonically increasing
// revision counter; it increments on every state-changing call.
func (e *Engine) GetUpdateVersion() int { return e.version }

// GetCalculations returns the current layout, reflecting any pinned
// Manual lists.
func (e *Engine) GetCalculations() layout.Layout { return e.current }

// UpdateCalculations recomputes every list still in Computed mode
// against a (possibly changed) spec, then re-applies any Manual
// pins and, while the web tabs are pinned, bearer bolt resync,
// bumping the version.
func (e *Engine) UpdateCalculations(spec profile.ProfileSpec) error {
	l, err := layout.Plan(spec)
	if err != nil {
		return err
	}
	e.spec = spec
	e.applyComputed(&l)
	e.current = l
	if e.modes[webTabs] == Manual {
		e.resyncBearerBolts()
	}
	e.version++
	return nil
}

// applyComputed overwrites list in l with the recomputed Computed
// values, except for lists currently pinned to Manual.
func (e *Engine) applyComputed(l *layout.Layout) {
	if e.modes[boltHoles] == Manual {
		l.BoltHoles = e.manual[boltHoles]
	}
	if e.modes[dimples] == Manual {
		l.Dimples = e.manual[dimples]
	}
	if e.modes[webTabs] == Manual {
		l.WebTabs = e.manual[webTabs]
	}
	if e.modes[serviceHoles] == Manual {
		l.ServiceHoles = e.manual[serviceHoles]
	}
	if e.modes[stubs] == Manual {
		l.Stubs = e.manual[stubs]
	}
}

// SetManualPunches pins one of the five lists to an explicit set of
// punches, switching it to Manual mode. The list name must be one of
// "bolt_holes", "dimples", "web_tabs", "service_holes", "stubs".
func (e *Engine) SetManualPunches(list string, punches []punch.Punch) error {
	key, ok := listKeyFromName(list)
	if !ok {
		return fmt.Errorf("override: unknown punch list %q", list)
	}

	e.modes[key] = Manual
	e.manual[key] = append([]punch.Punch(nil), punches...)
	e.applyToList(key, e.manual[key])

	if key == webTabs {
		e.resyncBearerBolts()
	}
	e.version++
	return nil
}

// ClearManualMode reverts list to Computed by recomputing the full
// layout from the engine's current spec and re-applying any
// remaining Manual pins.
func (e *Engine) ClearManualMode(list string) error {
	key, ok := listKeyFromName(list)
	if !ok {
		return fmt.Errorf("override: unknown punch list %q", list)
	}

	delete(e.modes, key)
	delete(e.manual, key)

	l, err := layout.Plan(e.spec)
	if err != nil {
		return err
	}
	e.applyComputed(&l)
	e.current = l
	if e.modes[webTabs] == Manual {
		e.resyncBearerBolts()
	}
	e.version++
	return nil
}

func (e *Engine) applyToList(key listKey, punches []punch.Punch) {
	switch key {
	case boltHoles:
		e.current.BoltHoles = punches
	case dimples:
		e.current.Dimples = punches
	case webTabs:
		e.current.WebTabs = punches
	case serviceHoles:
		e.current.ServiceHoles = punches
	case stubs:
		e.current.Stubs = punches
	}
}

// resyncBearerBolts rebuilds the bolt-hole list for bearer variants
// against a Manual web-tab list (a Computed web-tab list already comes
// with the planner's own bolts): existing bolt entries at or beyond the 50mm end threshold
// are kept as end bolts, then a flanking pair of bolts (w_i-29.5 and
// w_i+29.5) is appended for every active web tab, provided the
// position falls strictly inside (50, length-50). Bolt holes pinned
// to Manual mode are left untouched — resync never overrides an
// explicit pin.
func (e *Engine) resyncBearerBolts() {
	if !e.spec.Variant.IsBearer() {
		return
	}
	if e.modes[boltHoles] == Manual {
		return
	}

	length := float64(e.spec.LengthMM)

	var ends []punch.Punch
	for _, b := range e.current.BoltHoles {
		if b.Position <= 50 || b.Position >= length-50 {
			ends = append(ends, b)
		}
	}

	paired := layout.ResyncBoltsOverWebTabs(e.current.WebTabs, length)

	all := append(ends, paired...)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Position < all[j].Position })
	e.current.BoltHoles = all
}

// SetManualPunchesFlat pins the whole layout from a single flat
// punch set, the way set_manual_punches(flat_list) partitions its
// input by kind before resyncing: every punch is routed to its list
// by Kind (BoltHole->bolt_holes, Dimple->dimples, WebTab->web_tabs,
// the three service-hole kinds->service_holes, Service/CornerBrackets
// ->stubs — a total, unambiguous mapping since each Kind is only ever
// emitted onto one of the five lists). The four non-bolt lists switch
// to Manual mode and equal the input partition exactly (a list absent
// from punches becomes empty, not untouched). The bolt-hole list is
// only pinned to the input partition for non-bearer variants; for
// bearers it stays Computed so a single bearer bolt resync can derive
// it from the (now Manual) web-tab partition, matching the
// whole-set resync semantics of a one-call partition rather than
// five independent pins.
func (e *Engine) SetManualPunchesFlat(punches []punch.Punch) error {
	partitions := map[listKey][]punch.Punch{}
	for _, p := range punches {
		key, ok := listKeyFromKind(p.Kind)
		if !ok {
			return fmt.Errorf("override: punch kind %v has no target list", p.Kind)
		}
		partitions[key] = append(partitions[key], p)
	}

	nonBoltKeys := []listKey{dimples, webTabs, serviceHoles, stubs}
	for _, key := range nonBoltKeys {
		e.modes[key] = Manual
		e.manual[key] = append([]punch.Punch(nil), partitions[key]...)
		e.applyToList(key, e.manual[key])
	}

	if e.spec.Variant.IsBearer() {
		delete(e.modes, boltHoles)
		delete(e.manual, boltHoles)
	} else {
		e.modes[boltHoles] = Manual
		e.manual[boltHoles] = append([]punch.Punch(nil), partitions[boltHoles]...)
		e.applyToList(boltHoles, e.manual[boltHoles])
	}

	e.resyncBearerBolts()
	e.version++
	return nil
}

func listKeyFromKind(k punch.Kind) (listKey, bool) {
	switch k {
	case punch.BoltHole:
		return boltHoles, true
	case punch.Dimple:
		return dimples, true
	case punch.WebTab:
		return webTabs, true
	case punch.SmallServiceHole, punch.MServiceHole, punch.LargeServiceHole:
		return serviceHoles, true
	case punch.Service, punch.CornerBrackets:
		return stubs, true
	default:
		return 0, false
	}
}

func listKeyFromName(name string) (listKey, bool) {
	switch name {
	case "bolt_holes":
		return boltHoles, true
	case "dimples":
		return dimples, true
	case "web_tabs":
		return webTabs, true
	case "service_holes":
		return serviceHoles, true
	case "stubs":
		return stubs, true
	default:
		return 0, false
	}
}
