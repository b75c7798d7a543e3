package booking

import (
	"bytes"
	"encoding/json"
)

// DayGroup holds the bookings of one calendar day.
type DayGroup struct {
	Day      string
	Bookings []View
}

// Grouped is an ordered day grouping. It encodes as a JSON object whose keys
// keep the slice order.
type Grouped []DayGroup

// GroupByDay groups views by BookingDate. A day's position is that of its
// first booking.
func GroupByDay(views []View) Grouped {
	g := Grouped{}
	index := map[string]int{}
	for _, v := range views {
		i, ok := index[v.BookingDate]
		if !ok {
			i = len(g)
			index[v.BookingDate] = i
			g = append(g, DayGroup{Day: v.BookingDate})
		}
		g[i].Bookings = append(g[i].Bookings, v)
	}
	return g
}

// Day returns the bookings for day, or nil.
func (g Grouped) Day(day string) []View {
	for _, d := range g {
		if d.Day == day {
			return d.Bookings
		}
	}
	return nil
}

func (g Grouped) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(d.Day)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(d.Bookings)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
