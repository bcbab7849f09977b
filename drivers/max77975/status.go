package max77975

// ---------------- Charger interrupt flags (CHG_INT / CHG_INT_MASK / CHG_INT_OK) ----------------

// ChargerInterrupts is the 8-bit charger interrupt flag set. The same bit
// layout is used by the interrupt, mask and status registers; bit 2 is
// reserved. In the mask register the hardware polarity is active-low-enable,
// which SetChargerIRQMask handles for the caller.
type ChargerInterrupts uint8

const (
	IrqBypassNode        ChargerInterrupts = 1 << 0
	IrqDisQBat           ChargerInterrupts = 1 << 1
	IrqBattery           ChargerInterrupts = 1 << 3
	IrqCharger           ChargerInterrupts = 1 << 4
	IrqInputCurrentLimit ChargerInterrupts = 1 << 5
	IrqChgin             ChargerInterrupts = 1 << 6
	// Adaptive input current loop (AICL) event.
	IrqAdaptiveInputCurrentLoop ChargerInterrupts = 1 << 7
)

func (b ChargerInterrupts) Has(flag ChargerInterrupts) bool { return b&flag != 0 }

// ---------------- Bypass node flags (BYP_DTLS) ----------------

// BypassNodeDetails is the 4-bit bypass-node flag set from CHG_DTLS_02.
type BypassNodeDetails uint8

const (
	BypOtgCurrentLimit   BypassNodeDetails = 1 << 0
	BypBoostCurrentLimit BypassNodeDetails = 1 << 1
	BypBuckCurrentLimit  BypassNodeDetails = 1 << 2
	BypBoostOn           BypassNodeDetails = 1 << 3
)

func (b BypassNodeDetails) Has(flag BypassNodeDetails) bool { return b&flag != 0 }

// ---------------- Detail sub-field enumerations ----------------

// BatterySense is the SPSN remote-sense line state (2 bits).
type BatterySense uint8

const (
	SenseConnected    BatterySense = iota // both sense lines connected
	SensePositiveOpen                     // SP detected open
	SenseNegativeOpen                     // SN detected open
	SenseBothOpen                         // SP and SN detected open
)

func (s BatterySense) String() string {
	switch s {
	case SenseConnected:
		return "connected"
	case SensePositiveOpen:
		return "positive_open"
	case SenseNegativeOpen:
		return "negative_open"
	case SenseBothOpen:
		return "both_open"
	default:
		return "invalid"
	}
}

// ChgIn is the CHGIN input validity state (2 bits).
type ChgIn uint8

const (
	// VBUS invalid: VCHGIN below UVLO (rising) or below VCHGIN_REG (falling, AICL).
	ChgInUndervoltage ChgIn = iota
	// VBUS invalid: above UVLO but below VBATT + VCHGIN2SYS.
	ChgInBelowBatt
	// VBUS invalid: VCHGIN above OVLO.
	ChgInOvervoltage
	// VBUS valid.
	ChgInValid
)

func (c ChgIn) String() string {
	switch c {
	case ChgInUndervoltage:
		return "undervoltage"
	case ChgInBelowBatt:
		return "below_batt"
	case ChgInOvervoltage:
		return "overvoltage"
	case ChgInValid:
		return "valid"
	default:
		return "invalid"
	}
}

// TemperatureRegulation reports whether the junction temperature has crossed
// the REGTEMP threshold and charge current may be folding back (1 bit).
type TemperatureRegulation uint8

const (
	TempBelowThreshold TemperatureRegulation = iota
	TempAboveThreshold
)

func (t TemperatureRegulation) String() string {
	switch t {
	case TempBelowThreshold:
		return "below_threshold"
	case TempAboveThreshold:
		return "above_threshold"
	default:
		return "invalid"
	}
}

// BatteryDetails is the BAT_DTLS field (3 bits). Code 6 is reserved but may
// be reported transiently by the hardware; it decodes to BatReserved rather
// than failing.
type BatteryDetails uint8

const (
	// Valid adapter present, battery detached (detected on THM pin).
	BatRemoved BatteryDetails = iota
	// Valid adapter present, VBATT < VTRICKLE. Also reported as CHG_DTLS 0x0.
	BatPrequalVoltage
	// Charging exceeded tFC; charger is in timer-fault mode. Also CHG_DTLS 0x6.
	BatTimerFault
	// VSYSMIN < VBATT < VBATTREG + VCOV; VSYS ≈ VBATT.
	BatRegularVoltage
	// VTRICKLE < VBATT < VSYSMIN; VSYS regulated at least to VSYSMIN.
	BatLowVoltage
	// VBATT above VBATTREG + VCOV for the last 30ms (valid input only).
	BatOvervoltage
	BatReserved
	// No valid adapter present; battery monitoring unavailable.
	BatOnly
)

func (b BatteryDetails) String() string {
	switch b {
	case BatRemoved:
		return "removed"
	case BatPrequalVoltage:
		return "prequal_voltage"
	case BatTimerFault:
		return "timer_fault"
	case BatRegularVoltage:
		return "regular_voltage"
	case BatLowVoltage:
		return "low_voltage"
	case BatOvervoltage:
		return "overvoltage"
	case BatReserved:
		return "reserved"
	case BatOnly:
		return "battery_only"
	default:
		return "invalid"
	}
}

// ChargerDetails is the CHG_DTLS field (4 bits). Codes 0x5, 0x9 and 0xf are
// reserved and decode to their Reserved variants.
type ChargerDetails uint8

const (
	// Dead-battery or low-battery prequalification. CHG_OK = 1.
	ChgPrequalification ChargerDetails = 0x0
	// Fast-charge constant current. CHG_OK = 1.
	ChgConstantCurrent ChargerDetails = 0x1
	// Fast-charge constant voltage. CHG_OK = 1.
	ChgConstantVoltage ChargerDetails = 0x2
	// Top-off. CHG_OK = 1.
	ChgTopOff ChargerDetails = 0x3
	// Done. CHG_OK = 0.
	ChgDone         ChargerDetails = 0x4
	ChgReserved05   ChargerDetails = 0x5
	ChgTimerFault   ChargerDetails = 0x6
	ChgQBatDisabled ChargerDetails = 0x7
	// Off: input invalid and/or charger disabled. CHG_OK = 1.
	ChgOff        ChargerDetails = 0x8
	ChgReserved09 ChargerDetails = 0x9
	// Off, junction temperature above TSHDN. CHG_OK = 0.
	ChgHighTemperature ChargerDetails = 0xa
	// Off, watchdog timer expired. CHG_OK = 0.
	ChgWatchdogTimer ChargerDetails = 0xb
	// Suspended or current/voltage reduced by JEITA control. Also in THM_DTLS.
	ChgJeita ChargerDetails = 0xc
	// Suspended, battery removal detected on THM pin. Also in THM_DTLS.
	ChgThermistorRemoval ChargerDetails = 0xd
	// Suspended because the SUSPEND pin is high.
	ChgSuspendPin ChargerDetails = 0xe
	ChgReserved0F ChargerDetails = 0xf
)

func (c ChargerDetails) String() string {
	switch c {
	case ChgPrequalification:
		return "prequalification"
	case ChgConstantCurrent:
		return "constant_current"
	case ChgConstantVoltage:
		return "constant_voltage"
	case ChgTopOff:
		return "top_off"
	case ChgDone:
		return "done"
	case ChgTimerFault:
		return "timer_fault"
	case ChgQBatDisabled:
		return "qbat_disabled"
	case ChgOff:
		return "off"
	case ChgHighTemperature:
		return "high_temperature"
	case ChgWatchdogTimer:
		return "watchdog_timer"
	case ChgJeita:
		return "jeita"
	case ChgThermistorRemoval:
		return "thermistor_removal"
	case ChgSuspendPin:
		return "suspend_pin"
	case ChgReserved05, ChgReserved09, ChgReserved0F:
		return "reserved"
	default:
		return "invalid"
	}
}

// ThermistorDetails is the THM_DTLS field (3 bits). Code 7 is reserved.
type ThermistorDetails uint8

const (
	ThmCold     ThermistorDetails = iota // low temperature, charging suspended
	ThmCool                              // low temperature charging
	ThmNormal                            // normal temperature charging
	ThmWarm                              // high temperature charging
	ThmHot                               // high temperature, charging suspended
	ThmRemoved                           // battery removal detected on THM pin
	ThmDisabled                          // thermistor monitoring disabled
	ThmReserved
)

func (t ThermistorDetails) String() string {
	switch t {
	case ThmCold:
		return "cold"
	case ThmCool:
		return "cool"
	case ThmNormal:
		return "normal"
	case ThmWarm:
		return "warm"
	case ThmHot:
		return "hot"
	case ThmRemoved:
		return "removed"
	case ThmDisabled:
		return "disabled"
	case ThmReserved:
		return "reserved"
	default:
		return "invalid"
	}
}

// ---------------- Details composite (CHG_DTLS_00..02) ----------------

// Details is the decoded 24-bit status snapshot read from CHARGER_DETAILS_0
// through CHARGER_DETAILS_2 in one burst.
type Details struct {
	Sense      BatterySense
	ChgIn      ChgIn
	Charger    ChargerDetails
	Battery    BatteryDetails
	Temp       TemperatureRegulation
	Bypass     BypassNodeDetails
	Thermistor ThermistorDetails
}

// Field layout of the 24-bit details word, LSB first. Bits 0, 3:4, 7 and 23
// are reserved and ignored.
const (
	dtlsSenseShift      = 1
	dtlsChgInShift      = 5
	dtlsChargerShift    = 8
	dtlsBatteryShift    = 12
	dtlsTempShift       = 15
	dtlsBypassShift     = 16
	dtlsThermistorShift = 20
)

// decodeDetails unpacks the three detail registers. Total: every bit pattern
// decodes, reserved hardware codes map to the Reserved variants.
func decodeDetails(b0, b1, b2 byte) Details {
	w := uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16
	return Details{
		Sense:      BatterySense(w >> dtlsSenseShift & 0x3),
		ChgIn:      ChgIn(w >> dtlsChgInShift & 0x3),
		Charger:    ChargerDetails(w >> dtlsChargerShift & 0xf),
		Battery:    BatteryDetails(w >> dtlsBatteryShift & 0x7),
		Temp:       TemperatureRegulation(w >> dtlsTempShift & 0x1),
		Bypass:     BypassNodeDetails(w >> dtlsBypassShift & 0xf),
		Thermistor: ThermistorDetails(w >> dtlsThermistorShift & 0x7),
	}
}

// ---------------- Display tables for bitfields ----------------

// BitName pairs a flag bit with a printable name.
// T is a uint8-like flag set (ChargerInterrupts, BypassNodeDetails).
type BitName[T ~uint8] struct {
	Bit  T
	Name string
}

// BitIter is a zero-alloc iterator over set bits in a value, filtered by a
// table. Caller advances with Next(); no callbacks, no closures.
type BitIter[T ~uint8] struct {
	v     uint8
	i     int
	table []BitName[T]
}

// NewBitIter constructs an iterator over set bits present in v that also
// exist in table.
func NewBitIter[T ~uint8](v T, table []BitName[T]) BitIter[T] {
	return BitIter[T]{v: uint8(v), table: table}
}

// Next returns the next SET bit: (name, ok). ok=false when done.
func (it *BitIter[T]) Next() (string, bool) {
	for it.i < len(it.table) {
		e := it.table[it.i]
		it.i++
		if (it.v & uint8(e.Bit)) != 0 {
			return e.Name, true
		}
	}
	return "", false
}

// Reset allows reusing the iterator.
func (it *BitIter[T]) Reset() { it.i = 0 }

// ChargerInterrupts display (ordering is cosmetic).
var ChargerInterruptTable = [...]BitName[ChargerInterrupts]{
	{IrqBypassNode, "bypass_node"},
	{IrqDisQBat, "disqbat"},
	{IrqBattery, "battery"},
	{IrqCharger, "charger"},
	{IrqInputCurrentLimit, "input_current_limit"},
	{IrqChgin, "chgin"},
	{IrqAdaptiveInputCurrentLoop, "aicl"},
}

// BypassNodeDetails display.
var BypassNodeTable = [...]BitName[BypassNodeDetails]{
	{BypOtgCurrentLimit, "otg_ilim"},
	{BypBoostCurrentLimit, "boost_ilim"},
	{BypBuckCurrentLimit, "buck_ilim"},
	{BypBoostOn, "boost_on"},
}
