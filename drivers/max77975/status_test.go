package max77975

import "testing"

func TestModeRoundTrip(t *testing.T) {
	for _, m := range []Mode{ModeOff, ModeBuck, ModeCharge, ModeBoost, ModeOtg} {
		if got := Mode(byte(m) & 0x0f); got != m {
			t.Fatalf("round trip %v: got %#x", m, byte(got))
		}
		if !m.Valid() {
			t.Fatalf("%v.Valid() = false", m)
		}
	}
}

func TestModeDecodeIsTotal(t *testing.T) {
	valid := 0
	for code := byte(0); code < 0x10; code++ {
		m := Mode(code)
		if m.String() == "" {
			t.Fatalf("Mode(%#x).String() empty", code)
		}
		if m.Valid() {
			valid++
		}
	}
	if valid != 5 {
		t.Fatalf("%d valid mode codes, want 5", valid)
	}
}

func TestChargerInterruptsRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		flags := ChargerInterrupts(byte(b))
		if byte(flags) != byte(b) {
			t.Fatalf("round trip %#x: got %#x", b, byte(flags))
		}
	}
}

func TestBypassNodeDetailsRoundTrip(t *testing.T) {
	for b := 0; b < 16; b++ {
		flags := BypassNodeDetails(byte(b))
		if byte(flags) != byte(b) {
			t.Fatalf("round trip %#x: got %#x", b, byte(flags))
		}
	}
}

func TestDecodeDetails_FieldExtraction(t *testing.T) {
	// sense=NegativeOpen, chgin=Valid, charger=Done, battery=RegularVoltage,
	// temp=AboveThreshold, bypass=BoostOn, thermistor=Warm.
	w := uint32(SenseNegativeOpen)<<dtlsSenseShift |
		uint32(ChgInValid)<<dtlsChgInShift |
		uint32(ChgDone)<<dtlsChargerShift |
		uint32(BatRegularVoltage)<<dtlsBatteryShift |
		uint32(TempAboveThreshold)<<dtlsTempShift |
		uint32(BypBoostOn)<<dtlsBypassShift |
		uint32(ThmWarm)<<dtlsThermistorShift
	want := Details{
		Sense:      SenseNegativeOpen,
		ChgIn:      ChgInValid,
		Charger:    ChgDone,
		Battery:    BatRegularVoltage,
		Temp:       TempAboveThreshold,
		Bypass:     BypBoostOn,
		Thermistor: ThmWarm,
	}

	got := decodeDetails(byte(w), byte(w>>8), byte(w>>16))
	if got != want {
		t.Fatalf("decode = %+v, want %+v", got, want)
	}

	// Reserved padding (bits 0, 3:4, 7, 23) must not leak into any field.
	w |= 1<<0 | 1<<3 | 1<<4 | 1<<7 | 1<<23
	got = decodeDetails(byte(w), byte(w>>8), byte(w>>16))
	if got != want {
		t.Fatalf("decode with reserved bits set = %+v, want %+v", got, want)
	}
}

func TestDecodeDetails_ReservedCodes(t *testing.T) {
	// Hardware may transiently report reserved codes; they must decode to the
	// Reserved variants, never fail.
	w := uint32(ChgReserved09)<<dtlsChargerShift |
		uint32(BatReserved)<<dtlsBatteryShift |
		uint32(ThmReserved)<<dtlsThermistorShift
	got := decodeDetails(byte(w), byte(w>>8), byte(w>>16))
	if got.Charger != ChgReserved09 || got.Battery != BatReserved || got.Thermistor != ThmReserved {
		t.Fatalf("reserved decode = %+v", got)
	}
	if got.Charger.String() != "reserved" || got.Battery.String() != "reserved" ||
		got.Thermistor.String() != "reserved" {
		t.Fatalf("reserved names: %q %q %q",
			got.Charger.String(), got.Battery.String(), got.Thermistor.String())
	}
}

func TestBitIter(t *testing.T) {
	it := NewBitIter(IrqBypassNode|IrqChgin, ChargerInterruptTable[:])
	var names []string
	for {
		name, ok := it.Next()
		if !ok {
			break
		}
		names = append(names, name)
	}
	if len(names) != 2 || names[0] != "bypass_node" || names[1] != "chgin" {
		t.Fatalf("names = %v, want [bypass_node chgin]", names)
	}

	it.Reset()
	if name, ok := it.Next(); !ok || name != "bypass_node" {
		t.Fatalf("after Reset: %q, %v", name, ok)
	}

	bypIt := NewBitIter(BypBuckCurrentLimit, BypassNodeTable[:])
	if name, ok := bypIt.Next(); !ok || name != "buck_ilim" {
		t.Fatalf("bypass iter: %q, %v", name, ok)
	}
}

func TestDetailTables_CoverAllFlags(t *testing.T) {
	var all ChargerInterrupts
	for _, e := range ChargerInterruptTable {
		all |= e.Bit
	}
	if all != 0xfb { // every bit except reserved bit 2
		t.Fatalf("interrupt table covers %#x, want 0xfb", byte(all))
	}

	var byp BypassNodeDetails
	for _, e := range BypassNodeTable {
		byp |= e.Bit
	}
	if byp != 0x0f {
		t.Fatalf("bypass table covers %#x, want 0x0f", byte(byp))
	}
}
