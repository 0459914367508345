package mmu

// Page ranges that participate in shadowing (spec.md §4.3(b), §4.6). These
// exact boundaries are not spelled out character-for-character in spec.md
// beyond naming the regions (TXT1/TXT2/HGR1/HGR2/SHGR/AUX); the page
// numbers below follow the well-known Apple II/IIgs memory map and are
// recorded here, rather than guessed silently, per the instruction to
// record Open Question resolutions (see DESIGN.md).
const (
	pageText1Lo = 0x04
	pageText1Hi = 0x07
	pageText2Lo = 0x08
	pageText2Hi = 0x0B
	pageHGR1Lo  = 0x20
	pageHGR1Hi  = 0x3F
	pageHGR2Lo  = 0x40
	pageHGR2Hi  = 0x5F
	pageSHGRLo  = 0x20 // aux bank only
	pageSHGRHi  = 0x9F
)

// RebuildPageMaps regenerates every page of bank 0 and bank 1 from the
// current soft-switch state, in the precedence order documented in
// spec.md §4.3: (a) ALTZPLC for pages 0x00-0x01, (b) RAMRD/RAMWRT (with
// shadow write-through) for 0x02-0xBF, (c) NIOLC for 0xC0-0xCF, (d)
// language-card rules for 0xD0-0xFF.
//
// Grounded on beevik-apple2go's mmu.activateBank/deactivateBank pattern
// (iterate a page range, overwrite the page table's read/write slot),
// generalized from a hard-coded Apple II bank table to a rebuild driven
// by the full IIgs soft-switch set.
func RebuildPageMaps(pm *PageMap, sw SoftSwitches) {
	buildZeroPage(pm, sw)
	buildMainRegion(pm, sw)
	buildIORegion(pm, sw)
	buildLanguageCard(pm, sw)
}

// (a) pages 0x00-0x01: zero page + stack follow ALTZPLC.
func buildZeroPage(pm *PageMap, sw SoftSwitches) {
	auxReadWrite := sw.AltZPLC
	for page := 0; page <= 0x01; page++ {
		pm.Bank0[page] = directFPIPage(auxBank(auxReadWrite), auxBank(auxReadWrite))
		pm.Bank1[page] = directFPIPage(1, 1) // bank 1 addressed directly is always itself
	}
}

func auxBank(aux bool) uint8 {
	if aux {
		return 1
	}
	return 0
}

// (b) pages 0x02-0xBF: RAMRD/RAMWRT independently for read/write, with
// shadow write-through for the text/hires/super-hires regions.
func buildMainRegion(pm *PageMap, sw SoftSwitches) {
	for page := 0x02; page <= 0xBF; page++ {
		readBank := auxBank(sw.RAMRD)
		writeBank := auxBank(sw.RAMWRT)

		p := Page{
			ReadKind:   KindFPI,
			ReadBank:   readBank,
			WriteKind:  KindFPI,
			WriteBank:  writeBank,
			Flags:      WriteOK | MainAux,
			ShadowBank: -1,
		}
		if shadowed, mega2Bank := shadowTargetMain(page, sw); shadowed {
			p.ShadowBank = mega2Bank
		}
		pm.Bank0[page] = p

		// Bank 1 (aux) addressed directly bypasses RAMRD/RAMWRT
		// substitution (spec.md §3 "DIRECT bypasses substitution").
		p1 := Page{
			ReadKind:   KindFPI,
			ReadBank:   1,
			WriteKind:  KindFPI,
			WriteBank:  1,
			Flags:      WriteOK | Direct,
			ShadowBank: -1,
		}
		if shadowed, mega2Bank := shadowTargetAux(page, sw); shadowed {
			p1.ShadowBank = mega2Bank
		}
		pm.Bank1[page] = p1
	}
}

// shadowTargetMain reports whether a write to this page number, via the
// main (bank 0) 64K space, must mirror into Mega2 bank 0 (0xE0) for video
// visibility (spec.md §3 "Shadowing").
func shadowTargetMain(page int, sw SoftSwitches) (bool, int8) {
	switch {
	case page >= pageText1Lo && page <= pageText1Hi:
		return !sw.NShadow.Text1, 0
	case page >= pageText2Lo && page <= pageText2Hi:
		return !sw.NShadow.Text2, 0
	case page >= pageHGR1Lo && page <= pageHGR1Hi:
		return !sw.NShadow.HGR1, 0
	case page >= pageHGR2Lo && page <= pageHGR2Hi:
		return !sw.NShadow.HGR2, 0
	default:
		return false, -1
	}
}

// shadowTargetAux reports the same, for the aux (bank 1) 64K space, which
// additionally carries the super-hi-res shadow region.
func shadowTargetAux(page int, sw SoftSwitches) (bool, int8) {
	if page >= pageSHGRLo && page <= pageSHGRHi {
		return !sw.NShadow.SHGR, 1
	}
	if shadow, _ := shadowTargetMain(page, sw); shadow {
		return !sw.NShadow.Aux, 1
	}
	return false, -1
}

// (c) pages 0xC0-0xCF: $C000-$C0FF (the soft-switch page itself) is
// always IOADDR; $C100-$CFFF follows NIOLC.
func buildIORegion(pm *PageMap, sw SoftSwitches) {
	ioPage := Page{Flags: IOADDR, ShadowBank: -1}
	pm.Bank0[0xC0] = ioPage
	pm.Bank1[0xC0] = ioPage // aux bank has no I/O of its own; mirrors main for simplicity

	for page := 0xC1; page <= 0xCF; page++ {
		if !sw.NIOLC {
			pm.Bank0[page] = ioPage
			pm.Bank1[page] = ioPage
			continue
		}
		// ROM-mapped: CXROM selects slot ROM for C100-CFFF and C3ROM
		// does the same for slot 3 (spec.md §4.3(d)). No slot cards are modeled
		// in this core (spec.md §1 Non-goals / external collaborators),
		// so "slot ROM" falls back to the same internal ROM image.
		romPage := Page{ReadKind: KindROM, Flags: 0, ShadowBank: -1}
		_ = sw.CXROM
		_ = sw.C3ROM
		pm.Bank0[page] = romPage
		pm.Bank1[page] = romPage
	}
}

// (d) pages 0xD0-0xFF: language-card rules.
func buildLanguageCard(pm *PageMap, sw SoftSwitches) {
	var writeFlag PageFlag
	if sw.WRLCRAM {
		writeFlag = WriteOK
	}

	for page := 0xD0; page <= 0xFF; page++ {
		bank2 := page <= 0xDF && sw.LCBank2

		mainP := Page{ShadowBank: -1}
		auxP := Page{ShadowBank: -1}

		if sw.RDLCRAM {
			mainP.ReadKind = KindLC
			mainP.ReadBank = lcIndex(false, bank2)
			auxP.ReadKind = KindLC
			auxP.ReadBank = lcIndex(true, bank2)
		} else {
			mainP.ReadKind = KindROM
			auxP.ReadKind = KindROM
		}

		mainP.WriteKind = KindLC
		mainP.WriteBank = lcIndex(false, bank2)
		mainP.Flags = writeFlag

		auxP.WriteKind = KindLC
		auxP.WriteBank = lcIndex(true, bank2)
		auxP.Flags = writeFlag

		pm.Bank0[page] = mainP
		pm.Bank1[page] = auxP
	}
}

func directFPIPage(readBank, writeBank uint8) Page {
	return Page{
		ReadKind:   KindFPI,
		ReadBank:   readBank,
		WriteKind:  KindFPI,
		WriteBank:  writeBank,
		Flags:      WriteOK | Direct,
		ShadowBank: -1,
	}
}
