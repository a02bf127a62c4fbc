package schema

import "fmt"

// DateTime is the decoded form of a T6 (6-byte calendar) field. Valid
// reports whether the source bytes held an in-range date - month in
// [1,12], day in [1,31], hour in [0,23], minute/second in [0,59].
type DateTime struct {
	Valid  bool
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// String renders DateTime as "DD/MM/YYYY HH:MM:SS", or the invalid
// sentinel when Valid is false.
func (dt DateTime) String() string {
	if !dt.Valid {
		return "[data/hora inválida]"
	}
	return fmt.Sprintf("%02d/%02d/%04d %02d:%02d:%02d", dt.Day, dt.Month, dt.Year, dt.Hour, dt.Minute, dt.Second)
}

// decodeT6 decodes a 6-byte calendar block: (year-2000, month, day, hour,
// minute, second).
func decodeT6(b []byte) DateTime {
	year := 2000 + int(b[0])
	month := int(b[1])
	day := int(b[2])
	hour := int(b[3])
	minute := int(b[4])
	second := int(b[5])

	valid := month >= 1 && month <= 12 &&
		day >= 1 && day <= 31 &&
		hour >= 0 && hour <= 23 &&
		minute >= 0 && minute <= 59 &&
		second >= 0 && second <= 59

	return DateTime{
		Valid: valid, Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second,
	}
}
