// Package max77975 provides constants for register addresses and fixed
// control bytes used in the operation of the MAX77975/MAX77976 battery
// charger.
package max77975

const (
	// 7-bit I2C address (110_1011b). Shared by MAX77975 and MAX77976.
	AddressDefault = 0x6b

	// --- Register sub-addresses (8-bit byte registers) ---

	// Identity
	regChipID       = 0x00 // R
	regChipRevision = 0x01 // R
	regOTPRevision  = 0x02 // R

	// Top block
	regTopInterrupt     = 0x03 // R/Clear
	regTopInterruptMask = 0x04 // R/W
	regTopControl       = 0x05 // R/W
	regI2CConfig        = 0x40 // R/W
	regSoftwareReset    = 0x50 // W
	regShipModeControl  = 0x51 // W

	// Charger block
	regChargerInterrupt       = 0x10 // R/Clear
	regChargerInterruptMask   = 0x11 // R/W, 0 = enabled
	regChargerInterruptStatus = 0x12 // R
	regChargerDetails0        = 0x13 // R
	regChargerDetails1        = 0x14 // R
	regChargerDetails2        = 0x15 // R
	regChargerConfig0         = 0x16 // R/W, MODE field
	regChargerConfig1         = 0x17 // R/W
	regChargerConfig2         = 0x18 // R/W*, CHG_CC
	regChargerConfig3         = 0x19 // R/W
	regChargerConfig4         = 0x1a // R/W
	regChargerConfig5         = 0x1b // R/W*, VSYS current limit
	regChargerConfig6         = 0x1c // R/W, CHGPROT write-protect key
	regChargerConfig7         = 0x1d // R/W
	regChargerConfig8         = 0x1e // R/W
	regChargerConfig9         = 0x1f // R/W, CHGIN current limit
	regChargerConfig10        = 0x20 // R/W
	regChargerConfig11        = 0x21 // R/W
	regChargerConfig12        = 0x22 // R/W
	regChargerConfig13        = 0x23 // R/W
	regStatusLEDConfig        = 0x24 // R/W

	// Registers marked R/W* are locked unless CHGPROT is open.

	// --- Fixed control bytes ---

	// CHGPROT key on CHARGER_CONFIG_6: 0b1100 in bits 3:2 opens the
	// charge-sensitive registers, anything else closes them.
	chgProtUnlock = 0x0c
	chgProtLock   = 0x00

	// SHIP_MODE_CONTROL: bit 0 requests ship mode entry.
	shipModeEnter = 0x01

	// SOFTWARE_RESET key byte (family-wide SWR convention).
	softwareResetKey = 0xa5
)
