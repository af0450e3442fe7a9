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

package sizing

import (
	"math"

	"github.com/pkg/errors"

	"github.com/antst/hpxdefaults/internal/calc"
	"github.com/antst/hpxdefaults/internal/hpxml"
	"github.com/antst/hpxdefaults/internal/hvac_perf"
	"github.com/antst/hpxdefaults/internal/logger"
)

const (
	heatingCFMPerTon = 350.0
	coolingCFMPerTon = 400.0
)

// served returns the loads a system sees: its zone's when attached to one,
// the whole building's otherwise.
func served(res *Result, zoneID string) (hpxml.DesignLoads, error) {
	if zoneID == "" {
		return res.Building, nil
	}
	l, ok := res.Zones[zoneID]
	if !ok {
		return hpxml.DesignLoads{}, errors.Errorf("zone %s has no design loads", zoneID)
	}
	return l, nil
}

// retention is the heat pump capacity at odb relative to its 47F capacity,
// linear through the 17F ratio.
func retention(d *hvac_perf.Derived, odb float64) float64 {
	if d == nil || d.Qm17Full <= 0 || odb >= hvac_perf.HeatRatedODB {
		return 1
	}
	r := 1 - (1-d.Qm17Full)*(hvac_perf.HeatRatedODB-odb)/(hvac_perf.HeatRatedODB-hvac_perf.HeatSecondODB)
	return math.Max(r, 0.1)
}

func defaultCapacity(o *hpxml.Opt[float64], id, field string, v float64) {
	if o.DefaultIfUnset(math.Round(v)) {
		logger.L().Debugf("%s.%s autosized to %v", id, field, o.Val())
	}
}

func sizeEquipment(b *hpxml.Building, res *Result, store *hvac_perf.Store, heatingDesign float64) error {
	backupOf := make(map[string]*hpxml.HeatPump)
	for _, hp := range b.Systems.HeatPumps {
		if hp.BackupSystem != "" {
			backupOf[hp.BackupSystem] = hp
		}
	}

	for _, hp := range b.Systems.HeatPumps {
		if err := sizeHeatPump(b, res, store, hp, heatingDesign); err != nil {
			return err
		}
	}

	for _, hs := range b.Systems.HeatingSystems {
		l, err := served(res, hs.AttachedToZone)
		if err != nil {
			return err
		}
		fraction := hs.FractionHeatLoad
		if hp, ok := backupOf[hs.ID]; ok {
			fraction = hp.FractionHeatLoad
		}
		defaultCapacity(&hs.HeatingCapacity, hs.ID, "heating_capacity", l.HeatingTotal*fraction)
		if hs.HeatingSystemType == hpxml.HeatingFurnace {
			hs.HeatingAirflowCFM.DefaultIfUnset(math.Round(calc.RatedAirflow(hs.HeatingCapacity.Val(), heatingCFMPerTon)))
		}
	}

	for _, cs := range b.Systems.CoolingSystems {
		l, err := served(res, cs.AttachedToZone)
		if err != nil {
			return err
		}
		defaultCapacity(&cs.CoolingCapacity, cs.ID, "cooling_capacity",
			(l.CoolingSensTotal+l.CoolingLatTotal)*cs.FractionCoolLoad)
		if cs.CoolingSystemType == hpxml.CoolingEvaporative {
			continue
		}
		cfm := coolingCFMPerTon
		if d, ok := store.Get(cs.ID); ok && d.CoolRatedCFMPerTon > 0 {
			cfm = d.CoolRatedCFMPerTon
		}
		cs.CoolingAirflowCFM.DefaultIfUnset(math.Round(calc.RatedAirflow(cs.CoolingCapacity.Val(), cfm)))
	}
	return nil
}

func sizeHeatPump(b *hpxml.Building, res *Result, store *hvac_perf.Store, hp *hpxml.HeatPump, heatingDesign float64) error {
	l, err := served(res, hp.AttachedToZone)
	if err != nil {
		return err
	}
	d, _ := store.Get(hp.ID)
	htg := l.HeatingTotal * hp.FractionHeatLoad
	clg := (l.CoolingSensTotal + l.CoolingLatTotal) * hp.FractionCoolLoad

	ret := 1.0
	if hp.IsAirSource() {
		ret = retention(d, heatingDesign)
	}

	var nominal float64
	switch b.Header.HeatPumpSizingMethodology.Or(hpxml.HeatPumpSizingHERS) {
	case hpxml.HeatPumpSizingACCA:
		nominal = clg
		if nominal == 0 {
			nominal = htg
		}
	case hpxml.HeatPumpSizingMaxLoad:
		nominal = math.Max(htg/ret, clg)
	default:
		nominal = math.Max(htg, clg)
	}

	switch {
	case hp.HeatingCapacity.IsSet() && !hp.CoolingCapacity.IsSet():
		nominal = hp.HeatingCapacity.Val()
	case hp.CoolingCapacity.IsSet() && !hp.HeatingCapacity.IsSet():
		nominal = hp.CoolingCapacity.Val()
	}
	defaultCapacity(&hp.HeatingCapacity, hp.ID, "heating_capacity", nominal)
	defaultCapacity(&hp.CoolingCapacity, hp.ID, "cooling_capacity", nominal)

	if hp.BackupType.Val() == hpxml.BackupIntegrated {
		backup := htg
		if b.Header.HeatPumpBackupSizing.Or(hpxml.HeatPumpBackupEmergency) == hpxml.HeatPumpBackupSupplement {
			backup = math.Max(0, htg-hp.HeatingCapacity.Val()*ret)
		}
		defaultCapacity(&hp.BackupCapacity, hp.ID, "backup_heating_capacity", backup)
	}

	heatCFM, coolCFM := coolingCFMPerTon, coolingCFMPerTon
	if d != nil {
		if d.HeatRatedCFMPerTon > 0 {
			heatCFM = d.HeatRatedCFMPerTon
		}
		if d.CoolRatedCFMPerTon > 0 {
			coolCFM = d.CoolRatedCFMPerTon
		}
	}
	hp.HeatingAirflowCFM.DefaultIfUnset(math.Round(calc.RatedAirflow(hp.HeatingCapacity.Val(), heatCFM)))
	hp.CoolingAirflowCFM.DefaultIfUnset(math.Round(calc.RatedAirflow(hp.CoolingCapacity.Val(), coolCFM)))
	return nil
}
