package weather

import (
	"fmt"
	"strconv"
	"strings"
)

// TomorrowCutoffHour bounds how far into tomorrow the upcoming window reaches.
const TomorrowCutoffHour = 9

// UpcomingHours builds the "next hours" window: the rest of today (entries of
// days[0] at or after currentHour) followed by early tomorrow (entries of days[1]
// before TomorrowCutoffHour). Order within each day is preserved and a missing
// day contributes nothing.
//
// An entry whose hour is not numeric counts as hour 0. An entry without a time
// part at all is a fault and fails the whole window.
func UpcomingHours(days []DayForecast, currentHour int) ([]HourEntry, error) {
	var upcoming []HourEntry

	if len(days) > 0 {
		for _, h := range days[0].Hours {
			hour, err := hourOfDay(h.Time)
			if err != nil {
				return nil, err
			}
			if hour >= currentHour {
				upcoming = append(upcoming, h)
			}
		}
	}

	if len(days) > 1 {
		for _, h := range days[1].Hours {
			hour, err := hourOfDay(h.Time)
			if err != nil {
				return nil, err
			}
			if hour < TomorrowCutoffHour {
				upcoming = append(upcoming, h)
			}
		}
	}

	return upcoming, nil
}

// hourOfDay extracts HH from "YYYY-MM-DD HH:MM".
func hourOfDay(ts string) (int, error) {
	parts := strings.Split(ts, " ")
	if len(parts) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, ts)
	}
	hh, _, _ := strings.Cut(parts[1], ":")
	hour, err := strconv.Atoi(hh)
	if err != nil {
		// TODO: non-numeric hours fall into the "hour 0" bucket and so always
		// land in tomorrow's slice; revisit once upstream data proves it never happens.
		return 0, nil
	}
	return hour, nil
}
