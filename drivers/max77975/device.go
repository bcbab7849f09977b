// Package max77975 provides a minimal TinyGo driver for the MAX77975/MAX77976
// 19VIN, 3.5/5.5A 1-cell Li+ battery charger with smart power selector and
// OTG.
//
// Design notes (datasheet references):
// • I2C, 7-bit address 0x6b; single-byte registers, auto-increment reads.
// • Charge-sensitive config registers are locked behind the CHGPROT key
//   (CHARGER_CONFIG_6); the driver brackets those writes with unlock/lock.
// • Interrupt flags clear on read; the interrupt/mask/status triple and the
//   three detail registers are each read in one burst so a latched flag
//   cannot be lost mid-sequence.
//
// Concurrency: methods are not safe for concurrent use from multiple
// goroutines, and no two driver instances may share one device address.
// Serialise calls externally if needed.
package max77975

import (
	"tinygo.org/x/drivers"
)

// Config controls construction. All fields are optional.
type Config struct {
	// Address defaults to 0x6b if zero.
	Address uint16
}

// Device represents a MAX77975/MAX77976 instance on an I²C bus.
type Device struct {
	i2c  drivers.I2C
	addr uint16

	// Fixed buffers to avoid per-call heap allocations.
	w [2]byte
	r [3]byte
}

// New constructs a Device. The I2C bus must already be configured. This
// function only creates the Device object; it does not touch the hardware.
func New(i2c drivers.I2C, cfg Config) *Device {
	addr := cfg.Address
	if addr == 0 {
		addr = AddressDefault
	}
	return &Device{i2c: i2c, addr: addr}
}

// ---------------- Identity ----------------

func (d *Device) ChipID() (byte, error)       { return d.readReg(regChipID) }
func (d *Device) ChipRevision() (byte, error) { return d.readReg(regChipRevision) }
func (d *Device) OTPRevision() (byte, error)  { return d.readReg(regOTPRevision) }

// ---------------- Charge parameter setting ----------------

// SetSysILim_mA sets the current limit for Vsys out, in 500mA steps from
// 2.5A to 10A. If the limit is exceeded, Vsys shuts off; with recycleEn it
// retries after 150ms, otherwise it stays off until a valid charger is
// present.
func (d *Device) SetSysILim_mA(mA uint16, recycleEn bool) error {
	val := sysILimCode(mA)
	if recycleEn {
		val |= sysILimRecycleEn
	}
	return d.writeProtectedReg(regChargerConfig5, val)
}

// SetChginILim_mA sets the CHGIN input current limit, in 50mA steps from
// 100mA to 3.2A. The top two bits of CHARGER_CONFIG_9 are preserved.
func (d *Device) SetChginILim_mA(mA uint16) error {
	code := chginILimCode(mA)
	return d.modifyReg(regChargerConfig9, func(val byte) byte {
		return (val & 0xc0) | code
	})
}

// SetFastChargeCurrent_mA sets the current used during the constant-current
// charging phase, in 50mA steps up to 6.35A.
func (d *Device) SetFastChargeCurrent_mA(mA uint16) error {
	return d.writeProtectedReg(regChargerConfig2, fastChargeCode(mA))
}

// ---------------- Mode and power state ----------------

// SetMode programs the charger power-path mode.
func (d *Device) SetMode(mode Mode) error {
	return d.writeReg(regChargerConfig0, byte(mode))
}

// Mode reads back the programmed mode field. Any 4-bit pattern decodes;
// check Valid() if the device may have been written out of band.
func (d *Device) Mode() (Mode, error) {
	val, err := d.readReg(regChargerConfig0)
	return Mode(val & 0x0f), err
}

// EnterShipMode shuts down all power until a valid charger is present. The
// device refuses ship mode while a valid input is present; checking that
// precondition is the caller's responsibility.
func (d *Device) EnterShipMode() error {
	return d.writeReg(regShipModeControl, shipModeEnter)
}

// SoftwareReset writes the SWR key, resetting the register file to OTP
// defaults.
func (d *Device) SoftwareReset() error {
	return d.writeReg(regSoftwareReset, softwareResetKey)
}

// ---------------- Interrupts and status ----------------

// SetChargerIRQMask enables the interrupts whose flags are set in irqs. The
// mask register is active-low-enable, so the encoded byte is complemented
// before writing.
func (d *Device) SetChargerIRQMask(irqs ChargerInterrupts) error {
	return d.writeReg(regChargerInterruptMask, ^byte(irqs))
}

// ChargerIRQFlags reads and clears the latched charger interrupt flags.
func (d *Device) ChargerIRQFlags() (ChargerInterrupts, error) {
	val, err := d.readReg(regChargerInterrupt)
	return ChargerInterrupts(val), err
}

// ChargerStatus clears the interrupt flags and returns the current status
// bits. CHG_INT through CHG_INT_OK are read in a single burst so the
// clear-on-read and the status capture are atomic.
func (d *Device) ChargerStatus() (ChargerInterrupts, error) {
	if err := d.readBuf(regChargerInterrupt, d.r[:3]); err != nil {
		return 0, err
	}
	return ChargerInterrupts(d.r[2]), nil
}

// ChargerDetails returns the detailed charger status, reading the three
// detail registers in a single burst.
func (d *Device) ChargerDetails() (Details, error) {
	if err := d.readBuf(regChargerDetails0, d.r[:3]); err != nil {
		return Details{}, err
	}
	return decodeDetails(d.r[0], d.r[1], d.r[2]), nil
}
