package session

import (
	"fmt"
	"strings"
)

// Placement selects where the layout manager carves out the panel surface.
type Placement int

const (
	ReuseWindow Placement = iota
	BelowTarget
	BottomOfFrame
	SideLeft
	SideRight
	SideTop
	SideBottom
)

var placementNames = map[Placement]string{
	ReuseWindow:   "reuse-window",
	BelowTarget:   "below-target",
	BottomOfFrame: "bottom-of-frame",
	SideLeft:      "side-left",
	SideRight:     "side-right",
	SideTop:       "side-top",
	SideBottom:    "side-bottom",
}

func (p Placement) String() string {
	if name, ok := placementNames[p]; ok {
		return name
	}
	return fmt.Sprintf("placement(%d)", int(p))
}

// ParsePlacement maps a configuration string onto a Placement.
func ParsePlacement(value string) (Placement, error) {
	needle := strings.ToLower(strings.TrimSpace(value))
	for placement, name := range placementNames {
		if name == needle {
			return placement, nil
		}
	}
	return ReuseWindow, fmt.Errorf("unknown placement %q", value)
}

// Placements lists every supported placement in display order.
func Placements() []Placement {
	return []Placement{
		ReuseWindow,
		BelowTarget,
		BottomOfFrame,
		SideLeft,
		SideRight,
		SideTop,
		SideBottom,
	}
}

// Policy pairs a placement with its desired size. Rows wins when both Rows
// and Fraction are set; a zero value falls back to the layout default.
type Policy struct {
	Placement Placement
	Rows      int
	Fraction  float64
}

func (p Policy) String() string {
	switch {
	case p.Rows > 0:
		return fmt.Sprintf("%s:%d", p.Placement, p.Rows)
	case p.Fraction > 0:
		return fmt.Sprintf("%s:%.2f", p.Placement, p.Fraction)
	default:
		return p.Placement.String()
	}
}
