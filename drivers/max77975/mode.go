package max77975

// Mode selects the charger power-path operating state (CHARGER_CONFIG_0,
// bits 3:0). The hardware codes are not contiguous.
type Mode uint8

const (
	// Charger = off, OTG = off, buck = off, boost = off. QBATT is on so the
	// battery supports the system; BYP may or may not be biased depending on
	// CHGIN availability.
	ModeOff Mode = 0x0
	// Charger = off, OTG = off, buck = on, boost = off. With a valid input the
	// buck regulates VSYS to max(VSYSMIN, VBATT + 4%).
	ModeBuck Mode = 0x4
	// Charger = on, OTG = off, buck = on, boost = off. With a valid input the
	// battery charges; VSYS is the larger of VSYSMIN and ~VBATT + IBATT·RBAT2SYS.
	ModeCharge Mode = 0x5
	// Charger = off, OTG = off, buck = off, boost = on. The DC-DC runs as a
	// boost converter regulating BYP to VBYPSET; QCHGIN is off.
	ModeBoost Mode = 0x9
	// Charger = off, OTG = on, buck = off, boost = on. As ModeBoost, but QCHGIN
	// is on and may source up to ICHGIN.OTG.LIM.
	ModeOtg Mode = 0xa
)

// Valid reports whether m is one of the five hardware mode codes. Any other
// 4-bit pattern read back from the device decodes without failure but is not
// a state the mode field can be programmed to.
func (m Mode) Valid() bool {
	switch m {
	case ModeOff, ModeBuck, ModeCharge, ModeBoost, ModeOtg:
		return true
	default:
		return false
	}
}

func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeBuck:
		return "buck"
	case ModeCharge:
		return "charge"
	case ModeBoost:
		return "boost"
	case ModeOtg:
		return "otg"
	default:
		return "invalid"
	}
}
