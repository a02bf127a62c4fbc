package schema

// FieldSpec names one field of a command's ordered response layout.
type FieldSpec struct {
	Name string
	Type FieldType
}

// Registry is the static command -> field layout table. It is built once
// at init and never mutated afterwards.
var Registry = map[byte][]FieldSpec{
	0x11: {{"Result", "A20"}},
	0x12: {{"Password", "A10"}},
	0x13: {{"ChallengeString", "A20"}},
	0x14: {
		{"DateTime", "T6"},
		{"Inst1", "F4"},
		{"Inst2", "F4"},
		{"Inst3", "F4"},
	},
	0x20: {{"ActiveEnergy", "F4"}, {"Demand", "F4"}, {"PF", "F4"}},
	0x21: {{"CurrentActiveEnergy", "F4"}, {"MeanCurrent", "F4"}},
	0x22: {{"PrevActiveEnergy", "F4"}, {"PrevDemand", "F4"}},
	0x23: {{"LastResetRegister", "F4"}},
	0x24: {{"LastResetDemand", "F4"}},
	0x25: {{"OutageStart", "T6"}, {"OutageEnd", "T6"}},
	0x26: {
		{"Serial", "U4"},
		{"DateTime", "T6"},
		{"V1", "F4"},
		{"V2", "F4"},
		{"V3", "F4"},
	},
	0x27: {{"PrevMassMemory", "A30"}},
	0x28: {{"ChangeLog1", "A10"}, {"ChangeLog2", "A10"}},
	0x29: {{"NewDate", "T6"}},
	0x30: {{"NewTime", "T6"}},
	0x31: {{"DemandInterval", "U2"}},
	0x32: {{"NationalHolidays", "A20"}},
	0x33: {{"MultiplicationConstants", "F4"}},
	0x35: {{"TimeSegments", "A10"}},
	0x36: {{"ReservedSchedule", "A10"}},
	0x37: {{"DigitalRegisterCondition", "B1"}},
	0x38: {{"DigitalRegisterInit", "A10"}},
	0x39: {{"NotImplementedResponse", "A20"}},
	0x40: {{"DigitalRegisterOccurrence", "A20"}},
	0x41: {{"PriorChannel1", "F4"}},
	0x42: {{"PriorChannel2", "F4"}},
	0x43: {{"PriorChannel3", "F4"}},
	0x44: {{"CurrentChannel1", "F4"}},
	0x45: {{"CurrentChannel2", "F4"}},
	0x46: {{"CurrentChannel3", "F4"}},
	0x47: {{"MaxDemandMethod", "A10"}},
	0x51: {{"ParamsNoResetWithMassMemory", "A30"}},
	0x52: {{"FullMassMemory", "A50"}},
	0x53: {{"ProgramLoadInit", "A10"}},
	0x54: {{"ProgramTransfer", "A10"}},
	0x55: {{"ProgramLoadEnd", "A10"}},
	0x63: {{"AutoResetDateTime", "T6"}},
	0x64: {{"DstChange", "A10"}},
	0x65: {{"TimeSegmentSet2Change", "A10"}},
	0x66: {{"ChannelQuantityChange", "A20"}},
	0x67: {{"ReactiveTariffChange", "A20"}},
	0x73: {{"MassMemoryIntervalChange", "U2"}},
	0x77: {{"WeekendHolidaySegments", "A10"}},
	0x78: {{"TariffTypeChange", "A10"}},
	0x79: {{"DisplayCodeCondition", "A10"}},
	0x80: {
		{"PT", "F4"},
		{"CT", "F4"},
		{"Ke", "F4"},
		{"Ident", "A14"},
	},
	0x81: {{"ExtendedConsumerSerialChange", "A20"}},
	0x87: {{"InstallationCodeChangeOrRead", "A20"}},
	0x90: {{"QuantityDisplayModeChange", "A10"}},
	0x95: {{"TPTCKeConstantsChange", "F4"}, {"User", "A10"}},
	// 0x98 sub-command dispatch (e.g. [12] password registration, [30]
	// clock adjust, [32] extended holidays) is intentionally not
	// implemented; SubLookup always reports NoSchema for it rather than
	// guess at an undocumented layout.
	0x98: {{"ExtendedCommand", "A10"}, {"Subcommand", "U1"}},
}

// Lookup returns the field layout for command, and whether one is
// registered. Unknown commands report ok=false; callers must still
// surface the raw payload to the caller in that case.
func Lookup(command byte) ([]FieldSpec, bool) {
	spec, ok := Registry[command]
	return spec, ok
}

// SubLookup returns the field layout for a 0x98 extended sub-command.
// No sub-codes are currently mapped; it always reports ok=false.
func SubLookup(subcommand byte) (spec []FieldSpec, ok bool) {
	return nil, false
}
