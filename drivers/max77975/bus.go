package max77975

// I2C 8-bit register operations. The device auto-increments the register
// pointer on multi-byte reads, and I2C.Tx performs write-then-read as a
// single transaction (repeated start), so readBuf captures a coherent
// snapshot even of clear-on-read registers.

func (d *Device) readReg(reg byte) (byte, error) {
	d.w[0] = reg
	if err := d.i2c.Tx(d.addr, d.w[:1], d.r[:1]); err != nil {
		return 0, err
	}
	return d.r[0], nil
}

func (d *Device) readBuf(base byte, buf []byte) error {
	d.w[0] = base
	return d.i2c.Tx(d.addr, d.w[:1], buf)
}

func (d *Device) writeReg(reg, val byte) error {
	d.w[0] = reg
	d.w[1] = val
	return d.i2c.Tx(d.addr, d.w[:2], nil)
}

// writeProtectedReg brackets a write to a charge-sensitive register with the
// CHGPROT unlock/lock key. The lock write is always attempted once the unlock
// succeeded, so the device is not left unprotected on an error path; the
// first error encountered is the one surfaced.
func (d *Device) writeProtectedReg(reg, val byte) error {
	if err := d.writeReg(regChargerConfig6, chgProtUnlock); err != nil {
		return err
	}
	err := d.writeReg(reg, val)
	if lockErr := d.writeReg(regChargerConfig6, chgProtLock); err == nil {
		err = lockErr
	}
	return err
}

// modifyReg is the read-modify-write helper. Not atomic against another bus
// master; the driver assumes single ownership of the device (see package doc).
func (d *Device) modifyReg(reg byte, fn func(byte) byte) error {
	val, err := d.readReg(reg)
	if err != nil {
		return err
	}
	return d.writeReg(reg, fn(val))
}
