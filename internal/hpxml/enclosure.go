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

package hpxml

type Enclosure struct {
	AirInfiltration []*AirInfiltrationMeasurement `yaml:"air_infiltration_measurements,omitempty"`
	Attics          []*Attic                      `yaml:"attics,omitempty"`
	Foundations     []*Foundation                 `yaml:"foundations,omitempty"`
	Roofs           []*Roof                       `yaml:"roofs,omitempty"`
	RimJoists       []*RimJoist                   `yaml:"rim_joists,omitempty"`
	Walls           []*Wall                       `yaml:"walls,omitempty"`
	FoundationWalls []*FoundationWall             `yaml:"foundation_walls,omitempty"`
	Floors          []*Floor                      `yaml:"floors,omitempty"`
	Slabs           []*Slab                       `yaml:"slabs,omitempty"`
	Windows         []*Window                     `yaml:"windows,omitempty"`
	Skylights       []*Skylight                   `yaml:"skylights,omitempty"`
	Doors           []*Door                       `yaml:"doors,omitempty"`

	PartitionWallMass PartitionWallMass `yaml:"partition_wall_mass,omitempty"`
	FurnitureMass     FurnitureMass     `yaml:"furniture_mass,omitempty"`
}

type AirInfiltrationMeasurement struct {
	ID                   string                    `yaml:"id"`
	HousePressure        Opt[float64]              `yaml:"house_pressure,omitempty"`
	UnitOfMeasure        Opt[Units]                `yaml:"unit_of_measure,omitempty"`
	AirLeakage           Opt[float64]              `yaml:"air_leakage,omitempty"`
	EffectiveLeakageArea Opt[float64]              `yaml:"effective_leakage_area,omitempty"`
	LeakinessDescription Opt[LeakinessDescription] `yaml:"leakiness_description,omitempty"`
	InfiltrationVolume   Opt[float64]              `yaml:"infiltration_volume,omitempty"`
	InfiltrationHeight   Opt[float64]              `yaml:"infiltration_height,omitempty"`
	AExt                 Opt[float64]              `yaml:"a_ext,omitempty"`
}

// IsQuantitative reports measurements that carry an air leakage rate usable
// for infiltration modeling.
func (m *AirInfiltrationMeasurement) IsQuantitative() bool {
	u, ok := m.UnitOfMeasure.Get()
	if !ok {
		return false
	}
	switch u {
	case UnitsACH, UnitsCFM:
		return m.HousePressure.IsSet()
	case UnitsACHNatural:
		return true
	}
	return false
}

type Attic struct {
	ID                       string       `yaml:"id"`
	AtticType                AtticType    `yaml:"attic_type"`
	VentedSLA                Opt[float64] `yaml:"vented_attic_sla,omitempty"`
	VentedACH                Opt[float64] `yaml:"vented_attic_ach,omitempty"`
	WithinInfiltrationVolume Opt[bool]    `yaml:"within_infiltration_volume,omitempty"`
}

type Foundation struct {
	ID                       string         `yaml:"id"`
	FoundationType           FoundationType `yaml:"foundation_type"`
	VentedSLA                Opt[float64]   `yaml:"vented_crawlspace_sla,omitempty"`
	WithinInfiltrationVolume Opt[bool]      `yaml:"within_infiltration_volume,omitempty"`
	BellySkirtPresent        Opt[bool]      `yaml:"belly_wing_skirt_present,omitempty"`
}

// Surface holds what all opaque enclosure surfaces share.
type Surface struct {
	ID                 string           `yaml:"id"`
	InteriorAdjacentTo Location         `yaml:"interior_adjacent_to"`
	ExteriorAdjacentTo Location         `yaml:"exterior_adjacent_to"`
	Area               Opt[float64]     `yaml:"area,omitempty"`
	Azimuth            Opt[int]         `yaml:"azimuth,omitempty"`
	Orientation        Opt[Orientation] `yaml:"orientation,omitempty"`
	AttachedToSpace    string           `yaml:"attached_to_space,omitempty"`
}

// IsExterior reports surfaces facing the outdoors.
func (s *Surface) IsExterior() bool {
	return s.ExteriorAdjacentTo == LocationOutside || s.ExteriorAdjacentTo == LocationGround ||
		s.ExteriorAdjacentTo == LocationManufacturedHomeUnder
}

// IsThermalBoundary reports surfaces between conditioned and unconditioned space.
func (s *Surface) IsThermalBoundary() bool {
	return s.InteriorAdjacentTo.IsConditioned() != s.ExteriorAdjacentTo.IsConditioned()
}

// Finish is the interior finish of a surface.
type Finish struct {
	Type      Opt[InteriorFinish] `yaml:"interior_finish_type,omitempty"`
	Thickness Opt[float64]        `yaml:"interior_finish_thickness,omitempty"`
}

type Roof struct {
	Surface             `yaml:",inline"`
	Finish              `yaml:",inline"`
	RoofType            Opt[RoofType] `yaml:"roof_type,omitempty"`
	Color               Opt[Color]    `yaml:"roof_color,omitempty"`
	SolarAbsorptance    Opt[float64]  `yaml:"solar_absorptance,omitempty"`
	Emittance           Opt[float64]  `yaml:"emittance,omitempty"`
	Pitch               float64       `yaml:"pitch"`
	RadiantBarrier      Opt[bool]     `yaml:"radiant_barrier,omitempty"`
	RadiantBarrierGrade Opt[int]      `yaml:"radiant_barrier_grade,omitempty"`
	InsulationR         float64       `yaml:"insulation_assembly_r_value"`
}

type RimJoist struct {
	Surface          `yaml:",inline"`
	Siding           Opt[Siding]  `yaml:"siding,omitempty"`
	Color            Opt[Color]   `yaml:"color,omitempty"`
	SolarAbsorptance Opt[float64] `yaml:"solar_absorptance,omitempty"`
	Emittance        Opt[float64] `yaml:"emittance,omitempty"`
	InsulationR      float64      `yaml:"insulation_assembly_r_value"`
}

type Wall struct {
	Surface          `yaml:",inline"`
	Finish           `yaml:",inline"`
	WallType         WallType     `yaml:"wall_type"`
	Siding           Opt[Siding]  `yaml:"siding,omitempty"`
	Color            Opt[Color]   `yaml:"color,omitempty"`
	SolarAbsorptance Opt[float64] `yaml:"solar_absorptance,omitempty"`
	Emittance        Opt[float64] `yaml:"emittance,omitempty"`
	RadiantBarrier   Opt[bool]    `yaml:"radiant_barrier,omitempty"`
	InsulationR      float64      `yaml:"insulation_assembly_r_value"`
}

type FoundationWall struct {
	Surface               `yaml:",inline"`
	Finish                `yaml:",inline"`
	Type                  Opt[FoundationWallType] `yaml:"type,omitempty"`
	Length                float64                 `yaml:"length"`
	Height                float64                 `yaml:"height"`
	DepthBelowGrade       float64                 `yaml:"depth_below_grade"`
	Thickness             Opt[float64]            `yaml:"thickness,omitempty"`
	InteriorInsulationR   float64                 `yaml:"insulation_interior_r_value"`
	InteriorInsulationTop Opt[float64]            `yaml:"insulation_interior_distance_to_top,omitempty"`
	InteriorInsulationBot Opt[float64]            `yaml:"insulation_interior_distance_to_bottom,omitempty"`
	ExteriorInsulationR   float64                 `yaml:"insulation_exterior_r_value"`
	ExteriorInsulationTop Opt[float64]            `yaml:"insulation_exterior_distance_to_top,omitempty"`
	ExteriorInsulationBot Opt[float64]            `yaml:"insulation_exterior_distance_to_bottom,omitempty"`
}

type Floor struct {
	Surface        `yaml:",inline"`
	Finish         `yaml:",inline"`
	FloorOrCeiling Opt[FloorOrCeiling] `yaml:"floor_or_ceiling,omitempty"`
	InsulationR    float64             `yaml:"insulation_assembly_r_value"`
}

// IsCeiling reports floors that are the ceiling of their interior space.
func (f *Floor) IsCeiling() bool {
	if v, ok := f.FloorOrCeiling.Get(); ok {
		return v == FloorIsCeiling
	}
	switch f.ExteriorAdjacentTo {
	case LocationAtticVented, LocationAtticUnvented, LocationOtherHousingUnit, LocationOtherHeatedSpace,
		LocationOtherMultifamilyBuffer, LocationOtherNonFreezingSpace:
		return f.InteriorAdjacentTo.IsConditioned()
	}
	return false
}

type Slab struct {
	ID                  string       `yaml:"id"`
	InteriorAdjacentTo  Location     `yaml:"interior_adjacent_to"`
	Area                float64      `yaml:"area"`
	ExposedPerimeter    float64      `yaml:"exposed_perimeter"`
	Thickness           Opt[float64] `yaml:"thickness,omitempty"`
	DepthBelowGrade     Opt[float64] `yaml:"depth_below_grade,omitempty"`
	CarpetR             Opt[float64] `yaml:"carpet_r_value,omitempty"`
	CarpetFraction      Opt[float64] `yaml:"carpet_fraction,omitempty"`
	PerimeterInsulation float64      `yaml:"perimeter_insulation_r_value"`
	AttachedToSpace     string       `yaml:"attached_to_space,omitempty"`
}

// Fenestration holds what windows and skylights share.
type Fenestration struct {
	ID           string           `yaml:"id"`
	Area         float64          `yaml:"area"`
	Azimuth      Opt[int]         `yaml:"azimuth,omitempty"`
	Orientation  Opt[Orientation] `yaml:"orientation,omitempty"`
	UFactor      Opt[float64]     `yaml:"ufactor,omitempty"`
	SHGC         Opt[float64]     `yaml:"shgc,omitempty"`
	FrameType    FrameType        `yaml:"frame_type,omitempty"`
	ThermalBreak Opt[bool]        `yaml:"thermal_break,omitempty"`
	GlassLayers  GlassLayers      `yaml:"glass_layers,omitempty"`
	GlassType    Opt[GlassType]   `yaml:"glass_type,omitempty"`
	GasFill      Opt[GasFill]     `yaml:"gas_fill,omitempty"`

	InteriorShadingType    Opt[InteriorShadingType]  `yaml:"interior_shading_type,omitempty"`
	InteriorCoverageSummer Opt[float64]              `yaml:"interior_shading_coverage_summer,omitempty"`
	InteriorCoverageWinter Opt[float64]              `yaml:"interior_shading_coverage_winter,omitempty"`
	BlindsSummer           Opt[BlindsPosition]       `yaml:"interior_blinds_summer_closed_or_open,omitempty"`
	BlindsWinter           Opt[BlindsPosition]       `yaml:"interior_blinds_winter_closed_or_open,omitempty"`
	InteriorFactorSummer   Opt[float64]              `yaml:"interior_shading_factor_summer,omitempty"`
	InteriorFactorWinter   Opt[float64]              `yaml:"interior_shading_factor_winter,omitempty"`
	ExteriorShadingType    Opt[ExteriorShadingType]  `yaml:"exterior_shading_type,omitempty"`
	ExteriorCoverageSummer Opt[float64]              `yaml:"exterior_shading_coverage_summer,omitempty"`
	ExteriorCoverageWinter Opt[float64]              `yaml:"exterior_shading_coverage_winter,omitempty"`
	ExteriorFactorSummer   Opt[float64]              `yaml:"exterior_shading_factor_summer,omitempty"`
	ExteriorFactorWinter   Opt[float64]              `yaml:"exterior_shading_factor_winter,omitempty"`
	InsectScreenPresent    bool                      `yaml:"insect_screen_present,omitempty"`
	InsectScreenLocation   Opt[InsectScreenLocation] `yaml:"insect_screen_location,omitempty"`
	InsectCoverageSummer   Opt[float64]              `yaml:"insect_screen_coverage_summer,omitempty"`
	InsectCoverageWinter   Opt[float64]              `yaml:"insect_screen_coverage_winter,omitempty"`
	InsectFactorSummer     Opt[float64]              `yaml:"insect_screen_factor_summer,omitempty"`
	InsectFactorWinter     Opt[float64]              `yaml:"insect_screen_factor_winter,omitempty"`
}

type Window struct {
	Fenestration     `yaml:",inline"`
	FractionOperable Opt[float64] `yaml:"fraction_operable,omitempty"`
	AttachedToWall   string       `yaml:"attached_to_wall"`
}

type Skylight struct {
	Fenestration   `yaml:",inline"`
	AttachedToRoof string `yaml:"attached_to_roof"`
}

type Door struct {
	ID             string           `yaml:"id"`
	Area           float64          `yaml:"area"`
	Azimuth        Opt[int]         `yaml:"azimuth,omitempty"`
	Orientation    Opt[Orientation] `yaml:"orientation,omitempty"`
	RValue         float64          `yaml:"r_value"`
	AttachedToWall string           `yaml:"attached_to_wall"`
}

type PartitionWallMass struct {
	AreaFraction Opt[float64] `yaml:"area_fraction,omitempty"`
	Finish       `yaml:",inline"`
}

type FurnitureMass struct {
	AreaFraction Opt[float64]           `yaml:"area_fraction,omitempty"`
	Type         Opt[FurnitureMassType] `yaml:"type,omitempty"`
}
