package service

import (
	"fmt"
	"math/rand"

	"mcomock/internal/activity/models"
	"mcomock/internal/catalog"
	"mcomock/internal/query"
	"mcomock/internal/synth"
)

// setCombo writes the breakdown cells in spec order at the front of the row.
func setCombo(row *synth.Row, combo []query.ColValue) {
	for _, cv := range combo {
		row.Set(cv.Col, cv.Val)
	}
}

// resumeRows builds the activity summary. The stay-duration breakdown swaps
// the whole layout for a duration histogram.
func (s *Service) resumeRows(seed int64, fs *query.FilterSet, spec query.Spec, req models.Request) []*synth.Row {
	if req.Var == "duree" {
		return s.dureeRows(seed)
	}

	combos := query.Combinations(spec)
	rows := make([]*synth.Row, 0, len(combos))
	for i, combo := range combos {
		rng := s.engine.RowRand(seed, i)
		base := s.engine.DrawBase(rng, fs.Narrowing(), req.SimulateSmall)
		pat := s.engine.DrawPatients(rng, base.StayCount)

		row := synth.NewRow()
		setCombo(row, combo)
		row.Set("nb_sej", base.StayCount)
		// ventilated rows always carry the patient count; the toggle only
		// governs the no-breakdown perimeter summary
		if len(combo) > 0 {
			row.Set("nb_pat", pat)
		}
		row.Set("duree_moy_sej", base.MeanStay)
		row.Set("tx_dc", base.DeathRate)
		row.Set("tx_male", base.MaleRate)
		row.Set("age_moy", base.MeanAge)
		if len(combo) == 0 && req.IncludePatients {
			row.Set("nb_pat", pat)
		}
		rows = append(rows, row)
	}
	return rows
}

// dureeRows distributes a yearly stay total over durations 0 to 15 days,
// decaying with length of stay.
func (s *Service) dureeRows(seed int64) []*synth.Row {
	total := 50000 + s.engine.RowRand(seed, totalIndex).Intn(100001)
	rows := make([]*synth.Row, 0, 16)
	for d := 0; d <= 15; d++ {
		rng := s.engine.RowRand(seed, d)
		n := int(float64(total) / (float64(d) + 1.5) * (0.8 + rng.Float64()*0.4))
		if n < 100 {
			n = 100
		}
		row := synth.NewRow()
		row.Set("duree", d)
		row.Set("nb_sej", n)
		rows = append(rows, row)
	}
	return rows
}

// multiYearRows prepends a five-year span to the breakdown, ending at the
// requested discharge year.
func (s *Service) multiYearRows(seed int64, fs *query.FilterSet, spec query.Spec, req models.Request) []*synth.Row {
	year := yearOf(fs)
	combos := query.Combinations(spec)
	rows := make([]*synth.Row, 0, 5*len(combos))
	idx := 0
	for y := year - 4; y <= year; y++ {
		for _, combo := range combos {
			rng := s.engine.RowRand(seed, idx)
			idx++
			base := s.engine.DrawBase(rng, fs.Narrowing(), req.SimulateSmall)
			pat := s.engine.DrawPatients(rng, base.StayCount)

			row := synth.NewRow()
			row.Set("annee", y)
			setCombo(row, combo)
			row.Set("nb_sej", base.StayCount)
			row.Set("nb_pat", pat)
			row.Set("duree_moy_sej", base.MeanStay)
			row.Set("tx_dc", base.DeathRate)
			row.Set("tx_male", base.MaleRate)
			row.Set("age_moy", base.MeanAge)
			rows = append(rows, row)
		}
	}
	return rows
}

// diagAssocRows enumerates associated diagnoses crossed with the breakdown.
func (s *Service) diagAssocRows(seed int64, fs *query.FilterSet, spec query.Spec, req models.Request) []*synth.Row {
	combos := query.Combinations(spec)
	rows := make([]*synth.Row, 0, len(catalog.CIM10Codes)*len(combos))
	idx := 0
	for _, diag := range catalog.CIM10Codes {
		for _, combo := range combos {
			rng := s.engine.RowRand(seed, idx)
			idx++
			base := s.engine.DrawBase(rng, fs.Narrowing(), req.SimulateSmall)

			row := synth.NewRow()
			row.Set("diag", diag)
			setCombo(row, combo)
			row.Set("nb_sej", base.StayCount)
			row.Set("duree_moy_sej", base.MeanStay)
			row.Set("tx_dc", base.DeathRate)
			row.Set("tx_male", base.MaleRate)
			row.Set("age_moy", base.MeanAge)
			rows = append(rows, row)
		}
	}
	return rows
}

// umRows enumerates medical unit types. The in-unit mean stay is a fraction
// of the whole-stay mean, a unit never outlasting its stay.
func (s *Service) umRows(seed int64, fs *query.FilterSet, spec query.Spec, req models.Request) []*synth.Row {
	combos := query.Combinations(spec)
	rows := make([]*synth.Row, 0, len(catalog.TypeUMCodes)*len(combos))
	idx := 0
	for _, um := range catalog.TypeUMCodes {
		for _, combo := range combos {
			rng := s.engine.RowRand(seed, idx)
			idx++
			base := s.engine.DrawBase(rng, fs.Narrowing(), req.SimulateSmall)

			row := synth.NewRow()
			row.Set("um", um)
			setCombo(row, combo)
			row.Set("nb_sej", base.StayCount)
			row.Set("duree_moy_sej", base.MeanStay)
			row.Set("duree_moy_rum", synth.Round2(base.MeanStay*(0.5+rng.Float64()*0.45)))
			row.Set("tx_dc", base.DeathRate)
			row.Set("tx_male", base.MaleRate)
			row.Set("age_moy", base.MeanAge)
			rows = append(rows, row)
		}
	}
	return rows
}

// actesRows enumerates procedures. Act counts exceed stay counts since one
// stay may repeat a procedure.
func (s *Service) actesRows(seed int64, fs *query.FilterSet, spec query.Spec, req models.Request) []*synth.Row {
	combos := query.Combinations(spec)
	rows := make([]*synth.Row, 0, len(catalog.CCAMCodes)*len(combos))
	idx := 0
	for _, acte := range catalog.CCAMCodes {
		for _, combo := range combos {
			rng := s.engine.RowRand(seed, idx)
			idx++
			base := s.engine.DrawBase(rng, fs.Narrowing(), req.SimulateSmall)

			var acts, stays int
			if req.SimulateSmall {
				acts = base.StayCount
				stays = base.StayCount
			} else {
				acts = synth.IntIn(rng, s.engine.Bounds().ActCount)
				stays = intBetween(rng, int(0.8*float64(acts)), acts)
			}

			row := synth.NewRow()
			row.Set("acte", acte)
			setCombo(row, combo)
			row.Set("extension_pmsi", fmt.Sprintf("%d", rng.Intn(2)))
			row.Set("nb_acte", acts)
			row.Set("nb_sej", stays)
			row.Set("duree_moy_sej", base.MeanStay)
			row.Set("tx_male", base.MaleRate)
			row.Set("age_moy", base.MeanAge)
			row.Set("acte_activ", fmt.Sprintf("%d", 1+rng.Intn(5)))
			row.Set("is_classant", rng.Intn(2))
			rows = append(rows, row)
		}
	}
	return rows
}

// dmiMedRows lists expensive medications then implantable devices, tagged by
// datasource. Device rows omit the medication-only columns.
func (s *Service) dmiMedRows(seed int64, fs *query.FilterSet, spec query.Spec, req models.Request) []*synth.Row {
	combos := query.Combinations(spec)
	rows := make([]*synth.Row, 0, (len(catalog.UCDCodes)+len(catalog.LPPCodes))*len(combos))
	idx := 0

	for _, ucd := range catalog.UCDCodes {
		for _, combo := range combos {
			rng := s.engine.RowRand(seed, idx)
			idx++
			base := s.engine.DrawBase(rng, fs.Narrowing(), req.SimulateSmall)

			units := synth.IntIn(rng, s.engine.Bounds().UnitCountMed)
			stays := intBetween(rng, int(0.3*float64(units)), units)
			if req.SimulateSmall {
				units = base.StayCount
				stays = base.StayCount
			}
			atc := catalog.UCDATC[ucd]

			row := synth.NewRow()
			setCombo(row, combo)
			row.Set("datasource", "med")
			row.Set("code", ucd)
			row.Set("code_ucd", ucd)
			row.Set("lib_ucd", catalog.UCDLabels[ucd])
			row.Set("atc1", atc.L1)
			row.Set("atc2", atc.L2)
			row.Set("atc3", atc.L3)
			row.Set("atc4", atc.L4)
			row.Set("atc5", atc.L5)
			row.Set("nb", units)
			row.Set("nb_sej", stays)
			row.Set("nb_pat", s.engine.DrawPatients(rng, stays))
			row.Set("mnt_remb", synth.Round2(synth.FloatIn(rng, s.engine.Bounds().ReimbursedMed)))
			row.Set("duree_moy_sej", base.MeanStay)
			row.Set("age_moy", base.MeanAge)
			rows = append(rows, row)
		}
	}

	for _, lpp := range catalog.LPPCodes {
		for _, combo := range combos {
			rng := s.engine.RowRand(seed, idx)
			idx++
			base := s.engine.DrawBase(rng, fs.Narrowing(), req.SimulateSmall)

			units := synth.IntIn(rng, s.engine.Bounds().UnitCountDMI)
			if req.SimulateSmall {
				units = base.StayCount
			}
			hiera := catalog.LPPHiera(lpp)

			row := synth.NewRow()
			setCombo(row, combo)
			row.Set("datasource", "dmi")
			row.Set("code", lpp)
			row.Set("nb", units)
			row.Set("nb_sej", units)
			row.Set("nb_pat", s.engine.DrawPatients(rng, units))
			row.Set("mnt_remb", synth.Round2(synth.FloatIn(rng, s.engine.Bounds().ReimbursedDMI)))
			row.Set("duree_moy_sej", base.MeanStay)
			row.Set("age_moy", base.MeanAge)
			row.Set("code_lpp", lpp)
			row.Set("hiera", hiera)
			row.Set("hiera_libelle", catalog.HieraLabels[hiera])
			rows = append(rows, row)
		}
	}
	return rows
}

// geoCodes maps a recourse-rate geographic level to its code table.
func geoCodes(level string) (string, []string) {
	switch level {
	case "reg":
		return "reg", catalog.RegionCodes
	case "zon":
		return "zon", catalog.ZoneARSCodes
	case "ts":
		return "ts", catalog.TerritoireCodes
	case "geo":
		return "geo", catalog.CodeGeoCodes
	default:
		return "dep", catalog.DepartementCodes
	}
}

// txRecoursRows computes crude and standardized recourse rates per geographic
// unit, stays per thousand inhabitants.
func (s *Service) txRecoursRows(seed int64, fs *query.FilterSet, req models.Request) []*synth.Row {
	level, codes := geoCodes(req.GeoLevel)
	rows := make([]*synth.Row, 0, len(codes))
	for i, code := range codes {
		rng := s.engine.RowRand(seed, i)
		pop := synth.IntIn(rng, s.engine.Bounds().Population)
		brutSej := synth.Round2(synth.FloatIn(rng, s.engine.Bounds().CrudeRate))
		stays := int(float64(pop) * brutSej / 1000)
		if req.SimulateSmall {
			stays = 1 + rng.Intn(synth.SmallCellThreshold-1)
		}
		brutPat := synth.Round2(brutSej * (0.80 + rng.Float64()*0.15))

		row := synth.NewRow()
		row.Set("typ_geo", level)
		row.Set("code", code)
		row.Set("nb_sej", stays)
		row.Set("nb_pat", s.engine.DrawPatients(rng, stays))
		row.Set("nb_pop", pop)
		row.Set("tx_recours_brut_sej", brutSej)
		row.Set("tx_recours_brut_pat", brutPat)
		row.Set("tx_recours_standard_sej", synth.Round2(brutSej*(0.95+rng.Float64()*0.10)))
		row.Set("tx_recours_standard_pat", synth.Round2(brutPat*(0.95+rng.Float64()*0.10)))
		rows = append(rows, row)
	}
	return rows
}

// dernierTransRows reports the latest transmission date per establishment,
// always early in the year following the discharge year.
func (s *Service) dernierTransRows(seed int64, fs *query.FilterSet) []*synth.Row {
	year := yearOf(fs)
	rows := make([]*synth.Row, 0, len(catalog.FinessCodes))
	for i, finess := range catalog.FinessCodes {
		rng := s.engine.RowRand(seed, i)
		row := synth.NewRow()
		row.Set("annee", year)
		row.Set("finess", finess)
		row.Set("rs", catalog.FinessLabels[finess])
		row.Set("secteur", catalog.FinessSector(finess))
		row.Set("categ", catalog.FinessCateg(finess))
		row.Set("derniere_transmission",
			fmt.Sprintf("%d-%02d-%02d", year+1, 1+rng.Intn(3), 1+rng.Intn(28)))
		rows = append(rows, row)
	}
	return rows
}

func intBetween(rng *rand.Rand, lo, hi int) int {
	if lo >= hi {
		return hi
	}
	return lo + rng.Intn(hi-lo+1)
}
