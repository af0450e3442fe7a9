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

import "math"

// Stationary battery defaults.
const (
	BatteryNominalKwh     = 10.0
	BatteryNominalVoltage = 50.0
	BatteryUsableFraction = 0.9
	BatteryRoundTrip      = 0.925
)

// Electric vehicle defaults. Vehicle batteries share the battery voltage
// and round trip efficiency.
const (
	EVMilesPerYear        = 5000.0
	EVHoursPerWeek        = 11.6
	EVFuelEconomy         = 0.22
	EVFractionChargedHome = 0.8
	EVNominalKwh          = 100.0
	EVUsableFraction      = 0.8
	EVChargingPower       = 5690.0
	EVChargingLevel       = 2
)

// batteryCRate is rated kW per kWh of nominal capacity.
const batteryCRate = 0.5

// KwhFromAh converts amp-hours at voltage v to kWh.
func KwhFromAh(ah, v float64) float64 {
	return ah * v / 1000.0
}

// NominalFromPower sizes a battery from its rated power, W.
func NominalFromPower(w float64) float64 {
	return Round(w/1000.0/batteryCRate, 2)
}

// RatedPowerFromNominal is the rated power, W, of a battery of nominal
// capacity kwh.
func RatedPowerFromNominal(kwh float64) float64 {
	return math.Round(kwh * 1000.0 * batteryCRate)
}
