package domain

// DayMarker flags a calendar day for display.
type DayMarker struct {
	HasEntry bool
	Selected bool
}

// BuildMonthData indexes a month's entries by date. Duplicate dates should
// not occur given the per-user uniqueness invariant; if they do, the last
// entry wins.
func BuildMonthData(year, month int, entries []DayEntry) MonthData {
	indexed := make(map[string]DayEntry, len(entries))
	for _, entry := range entries {
		indexed[entry.Date] = entry
	}
	return MonthData{Year: year, Month: month, Entries: indexed}
}

// BuildMarkers derives display markers from month data. Every populated day
// is marked HasEntry; the selected date, when set, is marked Selected whether
// or not it has an entry.
func BuildMarkers(data MonthData, selectedDate string) map[string]DayMarker {
	markers := make(map[string]DayMarker, len(data.Entries)+1)
	for date := range data.Entries {
		markers[date] = DayMarker{HasEntry: true, Selected: date == selectedDate}
	}
	if selectedDate != "" {
		if _, ok := markers[selectedDate]; !ok {
			markers[selectedDate] = DayMarker{Selected: true}
		}
	}
	return markers
}
