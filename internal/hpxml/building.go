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

// Building is one dwelling unit.
type Building struct {
	ID string `yaml:"id"`

	Header       BuildingHeader       `yaml:"building_header"`
	Site         Site                 `yaml:"site"`
	Neighbors    []*NeighborBuilding  `yaml:"neighbor_buildings,omitempty"`
	Occupancy    BuildingOccupancy    `yaml:"building_occupancy"`
	Construction BuildingConstruction `yaml:"building_construction"`
	ClimateZones ClimateAndRiskZones  `yaml:"climate_and_risk_zones"`
	Zones        []*Zone              `yaml:"zones,omitempty"`

	Enclosure  Enclosure  `yaml:"enclosure"`
	Systems    Systems    `yaml:"systems"`
	Appliances Appliances `yaml:"appliances"`
	Lighting   Lighting   `yaml:"lighting"`
	MiscLoads  MiscLoads  `yaml:"misc_loads"`

	// HVACPlant carries the whole-building design loads written after sizing.
	HVACPlant *DesignLoads `yaml:"hvac_plant,omitempty"`
}

type BuildingHeader struct {
	DSTEnabled     Opt[bool]    `yaml:"dst_enabled,omitempty"`
	DSTBeginMonth  Opt[int]     `yaml:"dst_begin_month,omitempty"`
	DSTBeginDay    Opt[int]     `yaml:"dst_begin_day,omitempty"`
	DSTEndMonth    Opt[int]     `yaml:"dst_end_month,omitempty"`
	DSTEndDay      Opt[int]     `yaml:"dst_end_day,omitempty"`
	StateCode      Opt[string]  `yaml:"state_code,omitempty"`
	City           Opt[string]  `yaml:"city,omitempty"`
	ZipCode        Opt[string]  `yaml:"zip_code,omitempty"`
	Latitude       Opt[float64] `yaml:"latitude,omitempty"`
	Longitude      Opt[float64] `yaml:"longitude,omitempty"`
	Elevation      Opt[float64] `yaml:"elevation,omitempty"`
	TimeZoneOffset Opt[float64] `yaml:"time_zone_utc_offset,omitempty"`

	NaturalVentilationDaysPerWeek Opt[int]  `yaml:"natvent_days_per_week,omitempty"`
	AllowIncreasedFixedCapacities Opt[bool] `yaml:"allow_increased_fixed_capacities,omitempty"`
	ShadingSummerBeginMonth       Opt[int]  `yaml:"shading_summer_begin_month,omitempty"`
	ShadingSummerBeginDay         Opt[int]  `yaml:"shading_summer_begin_day,omitempty"`
	ShadingSummerEndMonth         Opt[int]  `yaml:"shading_summer_end_month,omitempty"`
	ShadingSummerEndDay           Opt[int]  `yaml:"shading_summer_end_day,omitempty"`

	HeatPumpSizingMethodology Opt[HeatPumpSizing] `yaml:"heat_pump_sizing_methodology,omitempty"`
	HeatPumpBackupSizing      Opt[HeatPumpSizing] `yaml:"heat_pump_backup_sizing_methodology,omitempty"`

	ManualJ ManualJInputs `yaml:"manualj_inputs,omitempty"`
}

// ManualJInputs configures the design load calculation.
type ManualJInputs struct {
	HeatingDesignTemp     Opt[float64]   `yaml:"heating_design_temperature,omitempty"`
	CoolingDesignTemp     Opt[float64]   `yaml:"cooling_design_temperature,omitempty"`
	DailyTempRange        Opt[string]    `yaml:"daily_temperature_range,omitempty"`
	HeatingSetpoint       Opt[float64]   `yaml:"heating_setpoint,omitempty"`
	CoolingSetpoint       Opt[float64]   `yaml:"cooling_setpoint,omitempty"`
	HumiditySetpoint      Opt[float64]   `yaml:"humidity_setpoint,omitempty"`
	HumidityDifference    Opt[float64]   `yaml:"humidity_difference,omitempty"`
	InternalLoadsSensible Opt[float64]   `yaml:"internal_loads_sensible,omitempty"`
	InternalLoadsLatent   Opt[float64]   `yaml:"internal_loads_latent,omitempty"`
	NumberOfOccupants     Opt[float64]   `yaml:"number_of_occupants,omitempty"`
	InfiltrationShielding Opt[Shielding] `yaml:"infiltration_shielding_class,omitempty"`
	InfiltrationMethod    Opt[string]    `yaml:"infiltration_method,omitempty"`
}

type Site struct {
	SiteType           Opt[SiteType]     `yaml:"site_type,omitempty"`
	Shielding          Opt[Shielding]    `yaml:"shielding_of_home,omitempty"`
	SoilType           Opt[SoilType]     `yaml:"soil_type,omitempty"`
	MoistureType       Opt[MoistureType] `yaml:"moisture_type,omitempty"`
	GroundConductivity Opt[float64]      `yaml:"ground_conductivity,omitempty"`
	GroundDiffusivity  Opt[float64]      `yaml:"ground_diffusivity,omitempty"`
}

type NeighborBuilding struct {
	Azimuth     Opt[int]         `yaml:"azimuth,omitempty"`
	Orientation Opt[Orientation] `yaml:"orientation,omitempty"`
	Distance    float64          `yaml:"distance"`
	Height      Opt[float64]     `yaml:"height,omitempty"`
}

// Schedule is the weekday/weekend/monthly shape of a load.
type Schedule struct {
	WeekdayFractions   Opt[string] `yaml:"weekday_fractions,omitempty"`
	WeekendFractions   Opt[string] `yaml:"weekend_fractions,omitempty"`
	MonthlyMultipliers Opt[string] `yaml:"monthly_multipliers,omitempty"`
}

type BuildingOccupancy struct {
	NumberOfResidents Opt[float64] `yaml:"number_of_residents,omitempty"`
	Schedule          `yaml:",inline"`
}

type BuildingConstruction struct {
	ResidentialFacilityType   Opt[ResidentialFacilityType] `yaml:"residential_facility_type,omitempty"`
	YearBuilt                 Opt[int]                     `yaml:"year_built,omitempty"`
	NumberOfUnits             Opt[int]                     `yaml:"number_of_units,omitempty"`
	NumberOfConditionedFloors float64                      `yaml:"number_of_conditioned_floors"`
	NumberOfFloorsAboveGrade  float64                      `yaml:"number_of_conditioned_floors_above_grade"`
	NumberOfBedrooms          int                          `yaml:"number_of_bedrooms"`
	NumberOfBathrooms         Opt[int]                     `yaml:"number_of_bathrooms,omitempty"`
	ConditionedFloorArea      float64                      `yaml:"conditioned_floor_area"`
	ConditionedBuildingVolume Opt[float64]                 `yaml:"conditioned_building_volume,omitempty"`
	AverageCeilingHeight      Opt[float64]                 `yaml:"average_ceiling_height,omitempty"`
	HasFlueOrChimney          Opt[bool]                    `yaml:"has_flue_or_chimney_in_conditioned_space,omitempty"`
}

type ClimateAndRiskZones struct {
	IECCZone Opt[string] `yaml:"iecc_zone,omitempty"`
	IECCYear Opt[int]    `yaml:"iecc_year,omitempty"`
	// WeatherStationWMO identifies the weather file the Building is simulated with.
	WeatherStationWMO Opt[string] `yaml:"weather_station_wmo,omitempty"`
}

type ZoneType string

const (
	ZoneConditioned   ZoneType = "conditioned"
	ZoneUnconditioned ZoneType = "unconditioned"
)

type Zone struct {
	ID       string   `yaml:"id"`
	ZoneType ZoneType `yaml:"zone_type"`
	Spaces   []*Space `yaml:"spaces,omitempty"`

	synthetic bool
}

type Space struct {
	ID                    string       `yaml:"id"`
	FloorArea             float64      `yaml:"floor_area"`
	InternalLoadsSensible Opt[float64] `yaml:"manualj_internal_loads_sensible,omitempty"`
	InternalLoadsLatent   Opt[float64] `yaml:"manualj_internal_loads_latent,omitempty"`
	NumberOfOccupants     Opt[float64] `yaml:"manualj_number_of_occupants,omitempty"`

	synthetic bool
}

// NewSyntheticZone returns a conditioned zone with a single space covering
// the whole conditioned floor area. It is never written to a Document.
func NewSyntheticZone(id string, cfa float64) *Zone {
	return &Zone{
		ID:        id,
		ZoneType:  ZoneConditioned,
		Spaces:    []*Space{{ID: id + "_Space", FloorArea: cfa, synthetic: true}},
		synthetic: true,
	}
}

func (z *Zone) IsSynthetic() bool {
	return z.synthetic
}

func (s *Space) IsSynthetic() bool {
	return s.synthetic
}

// ConditionedZones returns zones of type conditioned.
func (b *Building) ConditionedZones() []*Zone {
	var zs []*Zone
	for _, z := range b.Zones {
		if z.ZoneType == ZoneConditioned {
			zs = append(zs, z)
		}
	}
	return zs
}

// ConditionedSpaces returns the spaces of all conditioned zones.
func (b *Building) ConditionedSpaces() []*Space {
	var ss []*Space
	for _, z := range b.ConditionedZones() {
		ss = append(ss, z.Spaces...)
	}
	return ss
}

// DesignLoads is a heating/cooling design load breakdown in Btu/hr.
type DesignLoads struct {
	HeatingTotal       float64 `yaml:"hdl_total"`
	HeatingWalls       float64 `yaml:"hdl_walls"`
	HeatingCeilings    float64 `yaml:"hdl_ceilings"`
	HeatingRoofs       float64 `yaml:"hdl_roofs"`
	HeatingFloors      float64 `yaml:"hdl_floors"`
	HeatingSlabs       float64 `yaml:"hdl_slabs"`
	HeatingWindows     float64 `yaml:"hdl_windows"`
	HeatingSkylights   float64 `yaml:"hdl_skylights"`
	HeatingDoors       float64 `yaml:"hdl_doors"`
	HeatingInfilVent   float64 `yaml:"hdl_infilvent"`
	HeatingDucts       float64 `yaml:"hdl_ducts"`
	CoolingSensTotal   float64 `yaml:"cdl_sens_total"`
	CoolingSensWalls   float64 `yaml:"cdl_sens_walls"`
	CoolingSensCeiling float64 `yaml:"cdl_sens_ceilings"`
	CoolingSensRoofs   float64 `yaml:"cdl_sens_roofs"`
	CoolingSensFloors  float64 `yaml:"cdl_sens_floors"`
	CoolingSensWindows float64 `yaml:"cdl_sens_windows"`
	CoolingSensSkylite float64 `yaml:"cdl_sens_skylights"`
	CoolingSensDoors   float64 `yaml:"cdl_sens_doors"`
	CoolingSensInfil   float64 `yaml:"cdl_sens_infilvent"`
	CoolingSensDucts   float64 `yaml:"cdl_sens_ducts"`
	CoolingSensIntGain float64 `yaml:"cdl_sens_intgains"`
	CoolingLatTotal    float64 `yaml:"cdl_lat_total"`
	CoolingLatDucts    float64 `yaml:"cdl_lat_ducts"`
	CoolingLatInfil    float64 `yaml:"cdl_lat_infilvent"`
	CoolingLatIntGain  float64 `yaml:"cdl_lat_intgains"`
}

// HeatingComponentSum is the sum of the heating components, without the total.
func (d DesignLoads) HeatingComponentSum() float64 {
	return d.HeatingWalls + d.HeatingCeilings + d.HeatingRoofs + d.HeatingFloors + d.HeatingSlabs +
		d.HeatingWindows + d.HeatingSkylights + d.HeatingDoors + d.HeatingInfilVent + d.HeatingDucts
}

func (d DesignLoads) CoolingSensComponentSum() float64 {
	return d.CoolingSensWalls + d.CoolingSensCeiling + d.CoolingSensRoofs + d.CoolingSensFloors +
		d.CoolingSensWindows + d.CoolingSensSkylite + d.CoolingSensDoors + d.CoolingSensInfil +
		d.CoolingSensDucts + d.CoolingSensIntGain
}

func (d DesignLoads) CoolingLatComponentSum() float64 {
	return d.CoolingLatDucts + d.CoolingLatInfil + d.CoolingLatIntGain
}
