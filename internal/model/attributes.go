package model

import (
	"fmt"

	"github.com/udisondev/emberfall/internal/constants"
)

// AttributeKind identifies one of the six character attributes.
type AttributeKind int32

const (
	AttrSTR AttributeKind = iota
	AttrDEX
	AttrCON
	AttrINT
	AttrWIS
	AttrCHA

	// NumAttributes is the attribute count; kinds are dense from 0.
	NumAttributes = 6
)

// AllAttributeKinds lists kinds in canonical order. Every loop over
// attributes iterates this slice so rolls stay deterministic.
var AllAttributeKinds = [NumAttributes]AttributeKind{
	AttrSTR, AttrDEX, AttrCON, AttrINT, AttrWIS, AttrCHA,
}

// String returns the short attribute name.
func (k AttributeKind) String() string {
	switch k {
	case AttrSTR:
		return "STR"
	case AttrDEX:
		return "DEX"
	case AttrCON:
		return "CON"
	case AttrINT:
		return "INT"
	case AttrWIS:
		return "WIS"
	case AttrCHA:
		return "CHA"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(k))
	}
}

// Attributes holds the six attribute values.
type Attributes struct {
	STR int `json:"str"`
	DEX int `json:"dex"`
	CON int `json:"con"`
	INT int `json:"int"`
	WIS int `json:"wis"`
	CHA int `json:"cha"`
}

// NewBaseAttributes returns a fresh attribute block at the base value.
func NewBaseAttributes() Attributes {
	b := constants.BaseAttributeValue
	return Attributes{STR: b, DEX: b, CON: b, INT: b, WIS: b, CHA: b}
}

// Get returns the value of the given kind.
func (a Attributes) Get(k AttributeKind) int {
	switch k {
	case AttrSTR:
		return a.STR
	case AttrDEX:
		return a.DEX
	case AttrCON:
		return a.CON
	case AttrINT:
		return a.INT
	case AttrWIS:
		return a.WIS
	case AttrCHA:
		return a.CHA
	default:
		return 0
	}
}

// Add increases the given kind by delta.
func (a *Attributes) Add(k AttributeKind, delta int) {
	switch k {
	case AttrSTR:
		a.STR += delta
	case AttrDEX:
		a.DEX += delta
	case AttrCON:
		a.CON += delta
	case AttrINT:
		a.INT += delta
	case AttrWIS:
		a.WIS += delta
	case AttrCHA:
		a.CHA += delta
	}
}

// Total returns the sum of all six values.
func (a Attributes) Total() int {
	return a.STR + a.DEX + a.CON + a.INT + a.WIS + a.CHA
}

// AttributeCap returns the per-attribute ceiling at a prestige rank.
func AttributeCap(prestigeRank int) int {
	return constants.BaseAttributeValue + constants.AttributeCapPerPrestige*prestigeRank
}

// Uncapped returns the kinds still below the cap, in canonical order.
func (a Attributes) Uncapped(cap int) []AttributeKind {
	out := make([]AttributeKind, 0, NumAttributes)
	for _, k := range AllAttributeKinds {
		if a.Get(k) < cap {
			out = append(out, k)
		}
	}
	return out
}

// AttributeModifier is the d20-style modifier: floor((value-10)/2).
// Integer division truncates toward zero, so odd values below 10 need
// the explicit floor adjustment.
func AttributeModifier(value int) int {
	d := value - 10
	if d >= 0 {
		return d / 2
	}
	return (d - 1) / 2
}
