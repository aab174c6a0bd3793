package view

import (
	"fmt"
	"math"
	"strconv"

	"github.com/idilsaglam/faraway/internal/model"
)

const (
	MsgEmpty     = "Start adding items to the list"
	MsgAllPacked = "You got everything! Ready to go"
)

// Stats is the progress summary of a list snapshot.
type Stats struct {
	Total  int
	Packed int
}

// Compute counts items and packed items.
func Compute(items []model.Item) Stats {
	st := Stats{Total: len(items)}
	for _, it := range items {
		if it.Packed {
			st.Packed++
		}
	}
	return st
}

// Empty reports the "nothing on the list" state, where no ratio exists.
func (s Stats) Empty() bool { return s.Total == 0 }

func (s Stats) AllPacked() bool { return s.Total > 0 && s.Packed == s.Total }

// Ratio is Packed/Total. ok is false for an empty list.
func (s Stats) Ratio() (ratio float64, ok bool) {
	if s.Total <= 0 {
		return 0, false
	}
	return float64(s.Packed) / float64(s.Total), true
}

// Percent is the ratio kept to 4 decimals and scaled to a percentage with at
// most 2 decimals. ok is false for an empty list.
func (s Stats) Percent() (pct float64, ok bool) {
	r, ok := s.Ratio()
	if !ok {
		return 0, false
	}
	r = roundTo(r, 4)
	return roundTo(r*100, 2), true
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// FormatPercent renders a percentage in its shortest form: 50, 33.33, 66.67.
func FormatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64)
}

// Summary picks the footer line for s.
func Summary(s Stats) string {
	switch {
	case s.Empty():
		return MsgEmpty
	case s.AllPacked():
		return MsgAllPacked
	}
	pct, _ := s.Percent()
	return fmt.Sprintf("You have %d items on your list, and you already packed %d (%s%%)",
		s.Total, s.Packed, FormatPercent(pct))
}
