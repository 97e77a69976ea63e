package clock

import "time"

// ParseDate parses a ledger date key (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DatesBetween enumerates every calendar day strictly after `after` and
// strictly before `before`, both given as ledger date keys. Returns nil when
// the exclusive range is empty or either bound is unparseable.
func DatesBetween(after, before string) []string {
	start, err := ParseDate(after)
	if err != nil {
		return nil
	}
	end, err := ParseDate(before)
	if err != nil {
		return nil
	}

	var dates []string
	for d := start.AddDate(0, 0, 1); d.Before(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates
}

// MonthBounds returns the first and last ledger dates of a YYYY-MM month.
func MonthBounds(month string) (string, string, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", err
	}
	last := first.AddDate(0, 1, -1)
	return first.Format(DateLayout), last.Format(DateLayout), nil
}
