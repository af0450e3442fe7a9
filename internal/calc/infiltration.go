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
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/antst/hpxdefaults/internal/hpxml"
)

const (
	infiltrationExponent = 0.65
	ft2ToIn2             = 144.0
	ft2ToM2              = 0.09290304
	ftToM                = 0.3048
)

// ACH50FromSLA converts a specific leakage area to air changes at 50 Pa.
func ACH50FromSLA(sla, n, cfa, volume float64) float64 {
	return (sla * cfa * ft2ToIn2 * math.Pow(50, n) * 60) / (0.283316478 * math.Pow(4, n) * volume)
}

// SLAFromACH50 is the inverse of ACH50FromSLA.
func SLAFromACH50(ach50, n, cfa, volume float64) float64 {
	return (ach50 * 0.283316478 * math.Pow(4, n) * volume) / (cfa * ft2ToIn2 * math.Pow(50, n) * 60)
}

// FoundationArea is one foundation type and its footprint area.
type FoundationArea struct {
	Type hpxml.FoundationType
	Area float64
}

// DuctShare is the part of the house air flow running through ducts in
// one location: HVACFraction of the load, DuctFraction of the duct area.
type DuctShare struct {
	HVACFraction float64
	DuctFraction float64
	Location     hpxml.Location
}

// ACH50Inputs holds the regression inputs of DefaultACH50.
type ACH50Inputs struct {
	CFA           float64
	NCflAG        float64
	CeilingHeight float64
	Volume        float64
	YearBuilt     int
	IECCZone      string
	Foundations   []FoundationArea
	Ducts         []DuctShare
	Leakiness     hpxml.LeakinessDescription
}

func vintageCoefficient(year int) float64 {
	switch {
	case year < 1960:
		return -0.2498
	case year <= 1969:
		return -0.4327
	case year <= 1979:
		return -0.4521
	case year <= 1989:
		return -0.6536
	case year <= 1999:
		return -0.9152
	}
	return -1.058
}

var ieccCoefficients = map[string]float64{
	"1A": 0.4727, "2A": 0.4727,
	"3A": 0.2529,
	"4A": 0.3261,
	"5A": 0.1118,
	"6A": 0.0, "7": 0.0,
	"1B": -0.03755, "2B": -0.03755, "3B": -0.03755,
	"4B": -0.008774, "5B": -0.008774,
	"6B": 0.01944, "6C": 0.01944,
	"3C": 0.04827,
	"4C": 0.2584, "5C": 0.2584,
	"8": -0.5119,
}

func foundationCoefficient(t hpxml.FoundationType) (float64, error) {
	switch t {
	case hpxml.FoundationSlab, hpxml.FoundationAboveApartment:
		return -0.036992, nil
	case hpxml.FoundationConditionedBasement, hpxml.FoundationUnventedCrawlspace, hpxml.FoundationConditionedCrawlspace:
		return 0.108713, nil
	case hpxml.FoundationUnconditionedBasement, hpxml.FoundationVentedCrawlspace, hpxml.FoundationBellyAndWing:
		return 0.180352, nil
	}
	return 0, errors.Wrapf(ErrNoEntry, "foundation type %q", t)
}

func ductLocationCoefficient(l hpxml.Location) (float64, error) {
	switch l {
	case hpxml.LocationConditionedSpace, hpxml.LocationBasementConditioned, hpxml.LocationCrawlspaceConditioned,
		hpxml.LocationUnderSlab, hpxml.LocationExteriorWall, hpxml.LocationOutside, hpxml.LocationRoofDeck,
		hpxml.LocationOtherHousingUnit, hpxml.LocationOtherHeatedSpace, hpxml.LocationOtherMultifamilyBuffer,
		hpxml.LocationOtherNonFreezingSpace:
		return -0.12381, nil
	case hpxml.LocationAtticVented, hpxml.LocationAtticUnvented, hpxml.LocationBasementUnconditioned, hpxml.LocationGarage:
		return 0.07126, nil
	case hpxml.LocationCrawlspaceVented, hpxml.LocationManufacturedHomeBelly:
		return 0.18072, nil
	case hpxml.LocationCrawlspaceUnvented:
		return 0.07126, nil
	}
	return 0, errors.Wrapf(ErrNoEntry, "duct location %q", l)
}

var leakinessMultipliers = map[hpxml.LeakinessDescription]float64{
	hpxml.LeakinessVeryTight: 0.5,
	hpxml.LeakinessTight:     math.Exp(-0.288),
	hpxml.LeakinessAverage:   1.0,
	hpxml.LeakinessLeaky:     1.5,
	hpxml.LeakinessVeryLeaky: 2.0,
}

// DefaultACH50 estimates the blower door result of a house from its
// vintage, size, climate, foundation mix and duct locations. Ductless
// shares of the load count as ducts in conditioned space.
func DefaultACH50(in ACH50Inputs) (float64, error) {
	cIECC, ok := ieccCoefficients[in.IECCZone]
	if !ok {
		return 0, errors.Wrapf(ErrNoEntry, "IECC zone %q", in.IECCZone)
	}
	mult := 1.0
	if in.Leakiness != "" {
		if mult, ok = leakinessMultipliers[in.Leakiness]; !ok {
			return 0, errors.Wrapf(ErrNoEntry, "leakiness %q", in.Leakiness)
		}
	}

	cFoundation := 0.0
	if len(in.Foundations) > 0 {
		coeffs := make([]float64, len(in.Foundations))
		areas := make([]float64, len(in.Foundations))
		for i, f := range in.Foundations {
			c, err := foundationCoefficient(f.Type)
			if err != nil {
				return 0, err
			}
			coeffs[i], areas[i] = c, f.Area
		}
		if total := floats.Sum(areas); total > 0 {
			cFoundation = floats.Dot(coeffs, areas) / total
		}
	}

	ducts := append([]DuctShare(nil), in.Ducts...)
	sum := 0.0
	for _, d := range ducts {
		sum += d.HVACFraction * d.DuctFraction
	}
	if sum > 1.0001 {
		return 0, errors.Errorf("duct fractions sum to %.4f", sum)
	}
	if sum < 1.0 {
		ducts = append(ducts, DuctShare{HVACFraction: 1.0 - sum, DuctFraction: 1.0, Location: hpxml.LocationConditionedSpace})
	}
	cDuct := 0.0
	for _, d := range ducts {
		c, err := ductLocationCoefficient(d.Location)
		if err != nil {
			return 0, err
		}
		cDuct += c * d.DuctFraction * d.HVACFraction
	}

	floorAreaM2 := in.CFA * ft2ToM2
	heightM := in.NCflAG*in.CeilingHeight*ftToM + 0.5
	nl := math.Exp(floorAreaM2*-0.002078 + heightM*0.06375 + vintageCoefficient(in.YearBuilt) + cIECC + cFoundation + cDuct)
	sla := nl / (1000.0 * math.Pow(in.NCflAG, 0.3))
	return ACH50FromSLA(sla, infiltrationExponent, in.CFA, in.Volume) * mult, nil
}

// InfiltrationHeight is the vertical distance between the lowest and highest
// above-grade points of the pressure boundary. condBasementAG is the highest
// above-grade part of conditioned basement walls, rimJoist is true when a
// conditioned basement has exterior rim joists.
func InfiltrationHeight(volume, cfa, ncflAG float64, walkout bool, condBasementAG float64, rimJoist bool) float64 {
	h := ncflAG * volume / cfa
	if walkout {
		return h
	}
	if rimJoist {
		h += 9.0 / 12.0
	}
	return h + condBasementAG
}

// DefaultBathrooms is nbeds/2 + 0.5, truncated.
func DefaultBathrooms(nbeds int) int {
	return int(float64(nbeds)/2.0 + 0.5)
}

// NBedsAdjusted is the number of bedrooms equivalent to the occupant count
// of an operational calculation.
func NBedsAdjusted(facility hpxml.ResidentialFacilityType, occupants float64) float64 {
	switch facility {
	case hpxml.FacilityApartment, hpxml.FacilitySingleFamilyAttached:
		return -0.68 + 1.09*occupants
	}
	return -1.47 + 1.69*occupants
}

// OccupantsFromBedrooms is the inverse of NBedsAdjusted for the asset case.
func OccupantsFromBedrooms(facility hpxml.ResidentialFacilityType, nbeds float64) float64 {
	switch facility {
	case hpxml.FacilityApartment, hpxml.FacilitySingleFamilyAttached:
		return (nbeds + 0.68) / 1.09
	}
	return (nbeds + 1.47) / 1.69
}
