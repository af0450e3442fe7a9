/*
 * Copyright (c) 2023. Anton Starikov -- All Rights Reserved
 *
 * This file is part of HPXDEFAULTS project.
 *
 * HPXDEFAULTS is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as the Free Software Foundation,
 * either version 3 of the License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package calc

import (
	"github.com/pkg/errors"

	"github.com/antst/hpxdefaults/internal/hpxml"
)

// LoadFraction holds the annual energy of a miscellaneous load and the
// fractions of it that end up as sensible and latent gains.
type LoadFraction struct {
	Annual   float64
	Sensible float64
	Latent   float64
}

// UsageFactor scales pool, spa and fuel loads by house size.
func UsageFactor(cfa, nbeds float64) float64 {
	return 0.5 + 0.25*nbeds/3.0 + 0.25*cfa/1920.0
}

// PoolPumpKwh and friends return annual energy for the reference pool or
// permanent spa.
func PoolPumpKwh(cfa, nbeds float64) float64 {
	return 158.6 / 0.070 * UsageFactor(cfa, nbeds)
}

func SpaPumpKwh(cfa, nbeds float64) float64 {
	return 59.5 / 0.059 * UsageFactor(cfa, nbeds)
}

// PoolHeaterLoad returns the annual load and its units.
func PoolHeaterLoad(t hpxml.PoolHeaterType, spa bool, cfa, nbeds float64) (float64, hpxml.Units, error) {
	f := UsageFactor(cfa, nbeds)
	kwh, therm := 8.3/0.004*f, 3.0/0.014*f
	if spa {
		kwh, therm = 49.0/0.048*f, 0.87/0.011*f
	}
	switch t {
	case hpxml.PoolHeaterElectricResistance:
		return kwh, hpxml.UnitsKwhPerYear, nil
	case hpxml.PoolHeaterHeatPump:
		return kwh / 5.0, hpxml.UnitsKwhPerYear, nil
	case hpxml.PoolHeaterGas:
		return therm, hpxml.UnitsThermPerYear, nil
	}
	return 0, "", errors.Wrapf(ErrNoEntry, "pool heater %q", t)
}

// PlugLoadDefault returns the reference plug load of type t.
func PlugLoadDefault(t hpxml.PlugLoadType, cfa, nbeds float64) (LoadFraction, error) {
	switch t {
	case hpxml.PlugLoadOther:
		return LoadFraction{Annual: 0.91 * cfa, Sensible: 0.855, Latent: 0.045}, nil
	case hpxml.PlugLoadTV:
		return LoadFraction{Annual: 413.0 + 69.0*nbeds, Sensible: 1.0}, nil
	case hpxml.PlugLoadEVCharging:
		return LoadFraction{Annual: 4500.0 * 0.3 / 0.81}, nil
	case hpxml.PlugLoadWellPump:
		return LoadFraction{Annual: 50.8 / 0.127 * UsageFactor(cfa, nbeds)}, nil
	}
	return LoadFraction{}, errors.Wrapf(ErrNoEntry, "plug load %q", t)
}

// FuelLoadDefault returns the reference fuel load of type t, therm/yr.
func FuelLoadDefault(t hpxml.FuelLoadType, cfa, nbeds float64) (LoadFraction, error) {
	f := UsageFactor(cfa, nbeds)
	switch t {
	case hpxml.FuelLoadGrill:
		return LoadFraction{Annual: 0.87 / 0.029 * f}, nil
	case hpxml.FuelLoadLighting:
		return LoadFraction{Annual: 0.22 / 0.012 * f}, nil
	case hpxml.FuelLoadFireplace:
		return LoadFraction{Annual: 1.95 / 0.032 * f, Sensible: 0.5, Latent: 0.1}, nil
	}
	return LoadFraction{}, errors.Wrapf(ErrNoEntry, "fuel load %q", t)
}

// HolidayLightingKwhPerDay for exterior holiday lighting.
func HolidayLightingKwhPerDay(facility hpxml.ResidentialFacilityType) float64 {
	if facility == hpxml.FacilitySingleFamilyDetached {
		return 1.1
	}
	return 0.55
}
