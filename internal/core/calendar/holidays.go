package calendar

import (
	"fmt"
	"sort"
	"sync"
	"time"

	apperrors "github.com/qualitania/availability-service/internal/core/errors"
)

// Region identifies a national holiday profile.
type Region string

// RegionColombia is the only profile currently supported.
const RegionColombia Region = "CO"

// Holiday is a public holiday resolved for a concrete year. Transferred
// marks days moved to the following Monday under Ley Emiliani.
type Holiday struct {
	Date        Date   `json:"date"`
	Name        string `json:"name"`
	Transferred bool   `json:"transferred"`
}

// fixedHoliday is a table entry for a holiday anchored to a month/day.
type fixedHoliday struct {
	month    time.Month
	day      int
	name     string
	emiliani bool
}

// easterHoliday is a table entry for a holiday at a fixed offset (in
// days) from Easter Sunday.
type easterHoliday struct {
	offset   int
	name     string
	emiliani bool
}

// Colombian civil and liturgical holidays. Entries with emiliani=true
// move to the following Monday when they do not already fall on one;
// the rest stay on their literal date (Ley 51 de 1983 exemptions).
var colombiaFixed = []fixedHoliday{
	{time.January, 1, "Año Nuevo", false},
	{time.January, 6, "Día de los Reyes Magos", true},
	{time.March, 19, "Día de San José", true},
	{time.May, 1, "Día del Trabajo", false},
	{time.June, 29, "San Pedro y San Pablo", true},
	{time.July, 20, "Día de la Independencia", false},
	{time.August, 7, "Batalla de Boyacá", false},
	{time.August, 15, "Asunción de la Virgen", true},
	{time.October, 12, "Día de la Raza", true},
	{time.November, 1, "Todos los Santos", true},
	{time.November, 11, "Independencia de Cartagena", true},
	{time.December, 8, "Inmaculada Concepción", false},
	{time.December, 25, "Navidad", false},
}

var colombiaEaster = []easterHoliday{
	{-3, "Jueves Santo", false},
	{-2, "Viernes Santo", false},
	{39, "Ascensión del Señor", true},
	{60, "Corpus Christi", true},
	{68, "Sagrado Corazón de Jesús", true},
}

// nextMonday applies the Emiliani transfer: a date not already on a
// Monday moves forward to the following Monday.
func nextMonday(d Date) Date {
	shift := (8 - int(d.Weekday())) % 7
	return d.AddDays(shift)
}

// HolidaysForYear resolves the public holidays of a region for one
// year, sorted ascending. An unknown region is a programming error and
// fails with ErrUnsupportedRegion.
func HolidaysForYear(region Region, year int) ([]Holiday, error) {
	if region != RegionColombia {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedRegion, string(region))
	}

	holidays := make([]Holiday, 0, len(colombiaFixed)+len(colombiaEaster))

	for _, h := range colombiaFixed {
		date := NewDate(year, h.month, h.day)
		holidays = append(holidays, resolve(date, h.name, h.emiliani))
	}

	easter := easterSunday(year)
	for _, h := range colombiaEaster {
		date := easter.AddDays(h.offset)
		holidays = append(holidays, resolve(date, h.name, h.emiliani))
	}

	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})
	return holidays, nil
}

func resolve(date Date, name string, emiliani bool) Holiday {
	if !emiliani {
		return Holiday{Date: date, Name: name}
	}
	observed := nextMonday(date)
	return Holiday{
		Date:        observed,
		Name:        name,
		Transferred: !observed.Equal(date),
	}
}

// Calendar answers working-day queries for one region. Holiday tables
// are computed lazily per year and memoized; entries are immutable once
// stored, so concurrent readers need no coordination beyond the lock
// and a duplicated computation during a populate race is harmless.
type Calendar struct {
	region Region

	mu    sync.RWMutex
	years map[int]map[Date]Holiday
}

// New builds a Calendar for a region. The region is validated here so
// that every later query is infallible.
func New(region Region) (*Calendar, error) {
	if _, err := HolidaysForYear(region, time.Now().Year()); err != nil {
		return nil, err
	}
	return &Calendar{
		region: region,
		years:  make(map[int]map[Date]Holiday),
	}, nil
}

// Region returns the profile this calendar was built for.
func (c *Calendar) Region() Region {
	return c.region
}

// Holidays returns the resolved holiday table for a year.
func (c *Calendar) Holidays(year int) []Holiday {
	byDate := c.yearTable(year)
	holidays := make([]Holiday, 0, len(byDate))
	for _, h := range byDate {
		holidays = append(holidays, h)
	}
	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})
	return holidays
}

// IsHoliday reports whether the date is an observed public holiday.
func (c *Calendar) IsHoliday(d Date) (Holiday, bool) {
	h, ok := c.yearTable(d.Year)[d]
	return h, ok
}

func (c *Calendar) yearTable(year int) map[Date]Holiday {
	c.mu.RLock()
	table, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		return table
	}

	// Region was validated at construction.
	holidays, _ := HolidaysForYear(c.region, year)
	table = make(map[Date]Holiday, len(holidays))
	for _, h := range holidays {
		table[h.Date] = h
	}

	c.mu.Lock()
	if existing, ok := c.years[year]; ok {
		table = existing
	} else {
		c.years[year] = table
	}
	c.mu.Unlock()
	return table
}
