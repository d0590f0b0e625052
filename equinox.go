// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jpholiday

import "cloudeng.io/jpholiday/dates"

// The equinox days are computed using the piecewise linear
// approximation published by the National Astronomical Observatory of
// Japan:
//
//	day = int(coeff + 0.242194*(year-1980)) - (year-offset)/4
//
// where the integer conversion and division truncate towards zero. The
// coefficient and correction offset vary across three eras, 1949-1979,
// 1980-2099 and 2100-2150. Outside 1949-2150 the approximation is not
// defined and no equinox day is reported.

const (
	equinoxMinYear = 1949
	equinoxMaxYear = 2150
)

func equinoxDay(year int, coeffEarly, coeffMid, coeffLate float64) int {
	var coeff float64
	offset := 1980
	switch {
	case year <= 1979:
		coeff = coeffEarly
		offset = 1983
	case year <= 2099:
		coeff = coeffMid
	default:
		coeff = coeffLate
	}
	return int(coeff+0.242194*float64(year-1980)) - (year-offset)/4
}

// vernalEquinoxDay returns the day in March of the vernal equinox for
// the given year, or 0 if the year is outside 1949-2150.
func vernalEquinoxDay(year int) int {
	if year < equinoxMinYear || year > equinoxMaxYear {
		return 0
	}
	return equinoxDay(year, 20.8357, 20.8431, 21.8510)
}

// autumnalEquinoxDay returns the day in September of the autumnal
// equinox for the given year, or 0 if the year is outside 1949-2150.
func autumnalEquinoxDay(year int) int {
	if year < equinoxMinYear || year > equinoxMaxYear {
		return 0
	}
	return equinoxDay(year, 23.2588, 23.2488, 24.2488)
}

func isVernalEquinox(cd dates.CalendarDate) bool {
	day := vernalEquinoxDay(cd.Year())
	return day != 0 && cd.Day() == day
}

func isAutumnalEquinox(cd dates.CalendarDate) bool {
	day := autumnalEquinoxDay(cd.Year())
	return day != 0 && cd.Day() == day
}
