// Package csvenc implements the CSV wire encoder (C6): it serialises
// a layout.Layout into the single-line record the press-brake loader
// expects, and parses that record back for round-trip testing.
package csvenc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/ncpunch/internal/layout"
	"github.com/alexiusacademia/ncpunch/internal/punch"
)

// Meta carries the header fields one CSV record repeats: the part
// identity and quantity the press uses to route a job.
type Meta struct {
	PartCode string
	Qty      int
	LengthMM int // fallback 5200 if zero
}

// componentFamily returns "BEARER" or "JOIST" token used in the wire
// header, inferred from the part code's leading character the way
// componentCode itself is: "B..." is a bearer, anything else is a joist.
func componentFamily(partCode string) string {
	if strings.HasPrefix(partCode, "B") {
		return "BEARER"
	}
	return "JOIST"
}

// componentCode returns "B1-1" if partCode begins with "B", else
// "J1-1".
func componentCode(partCode string) string {
	if strings.HasPrefix(partCode, "B") {
		return "B1-1"
	}
	return "J1-1"
}

// Encode writes the single-line wire record for l to a string:
//
//	csvCOMPONENT,<componentCode>,<partCode>,<BEARER|JOIST>,NORMAL,<qty>,<length>,0,0,<length>,0,50[,<station>,<pos>]*
//
// No newline, no header row, comma-separated.
func Encode(meta Meta, l layout.Layout) string {
	length := meta.LengthMM
	if length == 0 {
		length = 5200
	}

	fields := []string{
		"csvCOMPONENT",
		componentCode(meta.PartCode),
		meta.PartCode,
		componentFamily(meta.PartCode),
		"NORMAL",
		strconv.Itoa(meta.Qty),
		strconv.Itoa(length),
		"0", "0",
		strconv.Itoa(length),
		"0", "50",
	}

	for _, p := range l.All() {
		if !p.Active {
			continue
		}
		fields = append(fields, p.Kind.StationName(), formatPosition(p.Position))
	}

	return strings.Join(fields, ",")
}

// formatPosition renders a half-millimetre-quantised position with
// exactly one decimal place, matching the layout's half-millimetre quantisation.
func formatPosition(pos float64) string {
	return strconv.FormatFloat(punch.RoundHalf(pos), 'f', 1, 64)
}

// Record is one decoded (station, position) pair from a CSV record.
type Record struct {
	Station  string
	Position float64
}

// Header is the fixed, non-repeating portion of a decoded CSV record.
type Header struct {
	ComponentCode string
	PartCode      string
	Family        string
	Qty           int
	LengthMM      int
}

// Decode parses a line written by Encode back into its Header and
// ordered Records, used by round-trip tests. It does
// not attempt to reconstruct a layout.Layout: the wire format discards
// which of the five lists a punch came from, recoverable only via its
// station name.
func Decode(line string) (Header, []Record, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, ",")
	if len(fields) < 12 {
		return Header{}, nil, fmt.Errorf("csvenc: expected at least 12 fields, got %d", len(fields))
	}
	if fields[0] != "csvCOMPONENT" {
		return Header{}, nil, fmt.Errorf("csvenc: missing csvCOMPONENT prefix")
	}

	qty, err := strconv.Atoi(fields[5])
	if err != nil {
		return Header{}, nil, fmt.Errorf("csvenc: invalid qty %q: %w", fields[5], err)
	}
	length, err := strconv.Atoi(fields[6])
	if err != nil {
		return Header{}, nil, fmt.Errorf("csvenc: invalid length %q: %w", fields[6], err)
	}

	header := Header{
		ComponentCode: fields[1],
		PartCode:      fields[2],
		Family:        fields[3],
		Qty:           qty,
		LengthMM:      length,
	}

	rest := fields[12:]
	if len(rest)%2 != 0 {
		return Header{}, nil, fmt.Errorf("csvenc: trailing station/position fields are not paired")
	}

	var records []Record
	for i := 0; i < len(rest); i += 2 {
		pos, err := strconv.ParseFloat(rest[i+1], 64)
		if err != nil {
			return Header{}, nil, fmt.Errorf("csvenc: invalid position %q: %w", rest[i+1], err)
		}
		records = append(records, Record{Station: rest[i], Position: pos})
	}
	return header, records, nil
}
