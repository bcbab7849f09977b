package max77975

import "chargercode-go/x/mathx"

// Quantisation of physical units onto register codes. Integer-only; inputs
// below the first step clamp to code 0, oversized inputs saturate at the
// field maximum.

// VSYS current limit (CHARGER_CONFIG_5 bits 3:0): 2.5A + code*0.5A.
func sysILimCode(mA uint16) byte {
	return byte(mathx.Clamp(int32(mA)/500-5, 0, 0xf))
}

// CHARGER_CONFIG_5 bit 4: recycle Vsys 150ms after an overcurrent trip.
const sysILimRecycleEn = 0x10

// CHGIN input current limit (CHARGER_CONFIG_9 bits 5:0): (code+1)*50mA.
func chginILimCode(mA uint16) byte {
	return byte(mathx.Clamp(int32(mA)/50-1, 0, 0x3f))
}

// Fast-charge constant current (CHARGER_CONFIG_2 bits 6:0): code*50mA.
func fastChargeCode(mA uint16) byte {
	return byte(mathx.Clamp(int32(mA)/50, 0, 0x7f))
}
