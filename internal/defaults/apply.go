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

// Package defaults fills every optional field of a building description
// that the user left unset. Each filled value is marked as defaulted.
package defaults

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/antst/hpxdefaults/internal/calc"
	"github.com/antst/hpxdefaults/internal/hpxml"
	"github.com/antst/hpxdefaults/internal/hvac_perf"
	"github.com/antst/hpxdefaults/internal/logger"
	"github.com/antst/hpxdefaults/internal/lookup"
	"github.com/antst/hpxdefaults/internal/sizing"
	"github.com/antst/hpxdefaults/internal/weather"
)

const syntheticZoneID = "ConditionedZone"

type pass int

const (
	passHeader pass = iota
	passLocation
	passScenarios
	passBuildingHeader
	passSite
	passNeighbors
	passOccupancy
	passConstruction
	passZones
	passClimateZones
	passAttics
	passFoundations
	passRoofs
	passRimJoists
	passWalls
	passFoundationWalls
	passFloors
	passSlabs
	passWindows
	passSkylights
	passDoors
	passPartitionWallMass
	passFurnitureMass
	passHVAC
	passHVACControl
	passDistribution
	passInfiltration
	passHVACLocation
	passVentilation
	passWaterHeaters
	passFlue
	passHotWaterDistribution
	passWaterFixtures
	passSolarThermal
	passAppliances
	passLighting
	passCeilingFans
	passPools
	passPlugLoads
	passFuelLoads
	passPV
	passGenerators
	passBatteries
	passVehicles
	passSizing
	passPerformance
	passCFIS
	passCrankcase
	passPanel
	numPasses
)

var passNames = [numPasses]string{
	"header", "location", "scenarios", "building header", "site", "neighbors",
	"occupancy", "construction", "zones", "climate zones", "attics", "foundations",
	"roofs", "rim joists", "walls", "foundation walls", "floors", "slabs", "windows",
	"skylights", "doors", "partition wall mass", "furniture mass", "hvac",
	"hvac control", "hvac distribution", "infiltration", "hvac location",
	"ventilation fans", "water heaters", "flue", "hot water distribution",
	"water fixtures", "solar thermal", "appliances", "lighting", "ceiling fans",
	"pools", "plug loads", "fuel loads", "pv", "generators", "batteries", "vehicles",
	"sizing", "performance", "cfis", "crankcase", "panel",
}

func (p pass) String() string {
	if p < 0 || p >= numPasses {
		return fmt.Sprintf("pass(%d)", int(p))
	}
	return passNames[p]
}

// passSet records the passes that completed.
type passSet uint64

func (s *passSet) add(p pass) {
	*s |= 1 << uint(p)
}

func (s passSet) has(p pass) bool {
	return s&(1<<uint(p)) != 0
}

// Options tune one run of the engine. The zero value uses the latest ERI
// version, embedded lookup tables and the block load sizer.
type Options struct {
	ERIVersion string
	// UnitIndex numbers synthesized record ids of multi-unit documents;
	// 0 means the document has a single building.
	UnitIndex int
	Schedules ScheduleFile
	Sizer     sizing.Sizer
	Cache     *lookup.Cache
}

// Result carries the design loads computed for the building and the
// warnings of the run.
type Result struct {
	BuildingID  string
	Building    hpxml.DesignLoads
	ZoneLoads   map[string]hpxml.DesignLoads
	SpaceLoads  map[string]hpxml.DesignLoads
	Diagnostics Diagnostics
}

type engine struct {
	hdr   *hpxml.Header
	b     *hpxml.Building
	w     *weather.Weather
	cache *lookup.Cache
	sched ScheduleFile
	eri   string
	unit  int
	sizer sizing.Sizer
	store *hvac_perf.Store
	gen   *hvac_perf.Generator
	diag  *Diagnostics
	done  passSet

	station   *lookup.Station
	azimuths  []int
	synthetic *hpxml.Zone
	attached  []*string
	sized     *sizing.Result
}

type stage struct {
	pass pass
	run  func(*engine) error
}

var stages = []stage{
	{passHeader, (*engine).applyHeader},
	{passLocation, (*engine).applyLocation},
	{passScenarios, (*engine).applyScenarios},
	{passBuildingHeader, (*engine).applyBuildingHeader},
	{passSite, (*engine).applySite},
	{passNeighbors, (*engine).applyNeighbors},
	{passOccupancy, (*engine).applyOccupancy},
	{passConstruction, (*engine).applyConstruction},
	{passZones, (*engine).applyZones},
	{passClimateZones, (*engine).applyClimateZones},
	{passAttics, (*engine).applyAttics},
	{passFoundations, (*engine).applyFoundations},
	{passRoofs, (*engine).applyRoofs},
	{passRimJoists, (*engine).applyRimJoists},
	{passWalls, (*engine).applyWalls},
	{passFoundationWalls, (*engine).applyFoundationWalls},
	{passFloors, (*engine).applyFloors},
	{passSlabs, (*engine).applySlabs},
	{passWindows, (*engine).applyWindows},
	{passSkylights, (*engine).applySkylights},
	{passDoors, (*engine).applyDoors},
	{passPartitionWallMass, (*engine).applyPartitionWallMass},
	{passFurnitureMass, (*engine).applyFurnitureMass},
	{passHVAC, (*engine).applyHVAC},
	{passHVACControl, (*engine).applyHVACControl},
	{passDistribution, (*engine).applyDistribution},
	{passInfiltration, (*engine).applyInfiltration},
	{passHVACLocation, (*engine).applyHVACLocation},
	{passVentilation, (*engine).applyVentilationFans},
	{passWaterHeaters, (*engine).applyWaterHeaters},
	{passFlue, (*engine).applyFlue},
	{passHotWaterDistribution, (*engine).applyHotWaterDistribution},
	{passWaterFixtures, (*engine).applyWaterFixtures},
	{passSolarThermal, (*engine).applySolarThermal},
	{passAppliances, (*engine).applyAppliances},
	{passLighting, (*engine).applyLighting},
	{passCeilingFans, (*engine).applyCeilingFans},
	{passPools, (*engine).applyPools},
	{passPlugLoads, (*engine).applyPlugLoads},
	{passFuelLoads, (*engine).applyFuelLoads},
	{passPV, (*engine).applyPV},
	{passGenerators, (*engine).applyGenerators},
	{passBatteries, (*engine).applyBatteries},
	{passVehicles, (*engine).applyVehicles},
	{passSizing, (*engine).applySizing},
	{passPerformance, (*engine).applyPerformance},
	{passCFIS, (*engine).applyCFIS},
	{passCrankcase, (*engine).applyCrankcase},
	{passPanel, (*engine).applyPanels},
}

// Apply defaults one building in place. The header is shared by every
// building of a document and is defaulted on each call.
func Apply(hdr *hpxml.Header, b *hpxml.Building, w *weather.Weather, opts Options) (*Result, error) {
	if w == nil {
		return nil, errors.New("weather is required")
	}
	e := &engine{
		hdr:   hdr,
		b:     b,
		w:     w,
		cache: opts.Cache,
		sched: opts.Schedules,
		eri:   opts.ERIVersion,
		unit:  opts.UnitIndex,
		sizer: opts.Sizer,
		store: hvac_perf.NewStore(),
		diag:  &Diagnostics{},
	}
	if e.eri == "" {
		e.eri = hdr.ERICalculationVersion.Or(calc.ERILatest)
	}
	if e.cache == nil {
		e.cache = lookup.New(nil)
	}
	if e.sizer == nil {
		e.sizer = sizing.NewBlockLoad()
	}
	if err := e.cache.LoadSchedules(); err != nil {
		return nil, errors.Wrap(err, "load default schedules")
	}

	e.ensureConditionedZone()
	defer e.removeSyntheticZone()

	logger.L().Infof("defaulting building %s (ERI %s)", b.ID, e.eri)
	for _, s := range stages {
		if err := s.run(e); err != nil {
			return nil, errors.WithMessagef(err, "building %s: %s", b.ID, s.pass)
		}
		e.done.add(s.pass)
	}

	res := &Result{
		BuildingID:  b.ID,
		ZoneLoads:   map[string]hpxml.DesignLoads{},
		SpaceLoads:  map[string]hpxml.DesignLoads{},
		Diagnostics: *e.diag,
	}
	if e.sized != nil {
		res.Building = e.sized.Building
		for k, v := range e.sized.Zones {
			res.ZoneLoads[k] = v
		}
		for k, v := range e.sized.Spaces {
			res.SpaceLoads[k] = v
		}
	}
	logger.L().Infof("building %s defaulted with %d warnings", b.ID, e.diag.Len())
	return res, nil
}

// ApplyDocument defaults every building of doc in order.
func ApplyDocument(doc *hpxml.Document, w *weather.Weather, opts Options) ([]*Result, error) {
	var res []*Result
	for i, b := range doc.Buildings {
		o := opts
		if len(doc.Buildings) > 1 {
			o.UnitIndex = i + 1
		}
		r, err := Apply(&doc.Header, b, w, o)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

// requirePasses fails when a prerequisite of the running pass has not run.
func (e *engine) requirePasses(ps ...pass) error {
	for _, p := range ps {
		if !e.done.has(p) {
			return errors.Wrapf(ErrPassOrder, "%s has not run", p)
		}
	}
	return nil
}

// ensureConditionedZone adds a zone spanning the conditioned floor area
// when the building has none. It is removed again when Apply returns.
func (e *engine) ensureConditionedZone() {
	if len(e.b.ConditionedSpaces()) > 0 {
		return
	}
	e.synthetic = hpxml.NewSyntheticZone(e.id(syntheticZoneID), e.b.Construction.ConditionedFloorArea)
	e.b.Zones = append(e.b.Zones, e.synthetic)
}

func (e *engine) removeSyntheticZone() {
	if e.synthetic == nil {
		return
	}
	zones := e.b.Zones[:0]
	for _, z := range e.b.Zones {
		if !z.IsSynthetic() {
			zones = append(zones, z)
		}
	}
	e.b.Zones = zones
	for _, ref := range e.attached {
		*ref = ""
	}
	e.attached = nil
	e.synthetic = nil
}

// id names a synthesized record. Buildings of multi-unit documents get
// their unit number appended.
func (e *engine) id(base string) string {
	if e.unit > 0 {
		return fmt.Sprintf("%s_%d", base, e.unit)
	}
	return base
}
