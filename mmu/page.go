package mmu

// PageFlag is a bitmask describing how a page descriptor should be
// interpreted (spec.md §3 "Page descriptor").
type PageFlag uint8

const (
	// WriteOK marks the page as writable. When clear, writes are silent
	// no-ops (ROM, write-protected language card).
	WriteOK PageFlag = 1 << iota
	// MainAux marks a page whose bank was substituted based on the
	// current RAMRD/RAMWRT soft switches (informational; the
	// substitution itself happens once, at rebuild time).
	MainAux
	// Direct marks a page that bypasses main/aux substitution: a
	// direct reference to whichever bank number is already stored in
	// the descriptor (used for explicit aux-bank (bank $01) access;
	// banks outside 0x00/0x01 have no page descriptors at all).
	Direct
	// IOADDR marks a page redirected to the MMIO dispatcher instead of
	// any backing RAM/ROM.
	IOADDR
)

// PageKind discriminates which physical store a page descriptor's
// ReadBank/WriteBank indices refer to. This is an engineering addition
// beyond the literal field list in spec.md §3 (which names only
// read_bank/write_bank/flags): a single "bank index" is not enough to
// address FPI RAM, Mega2 RAM, ROM, and the language card's private
// bank-switched storage uniformly, so PageKind disambiguates. See
// DESIGN.md.
type PageKind uint8

const (
	KindFPI   PageKind = iota // ReadBank/WriteBank index Banks.FPI
	KindMega2                 // ReadBank/WriteBank index Banks.Mega2 (0 or 1)
	KindROM                   // read directly from the ROM image at this page's own address
	KindLC                    // language card private RAM; see lcIndex
)

// Page is a single 256-byte page descriptor: independent read and write
// targets, plus flags (spec.md §3, §4.3).
type Page struct {
	ReadKind  PageKind
	ReadBank  uint8
	WriteKind PageKind
	WriteBank uint8
	Flags     PageFlag

	// ShadowBank is the Mega2 bank index (0 or 1) that a write to this
	// page must also be mirrored into for video visibility, or -1 if
	// this page is not shadowed (spec.md §3 "Shadowing").
	ShadowBank int8
}

// lcAux reports whether a KindLC page's ReadBank/WriteBank addresses the
// aux (bank $01) language card instance rather than the main one.
func lcAux(v uint8) bool { return v&0x01 != 0 }

// lcBank2 reports whether a KindLC page's ReadBank/WriteBank addresses
// sub-bank 2 of the $D000-$DFFF language-card window.
func lcBank2(v uint8) bool { return v&0x02 != 0 }

func lcIndex(aux, bank2 bool) uint8 {
	var v uint8
	if aux {
		v |= 0x01
	}
	if bank2 {
		v |= 0x02
	}
	return v
}

// PageMap holds the rebuildable page tables for the two banks whose
// layout soft switches affect: bank $00 (main) and bank $01 (aux). Every
// other bank is plain, unswitched FPI or Mega2 RAM and needs no table
// (spec.md §4.3: "rebuilds every page of bank 0 and bank 1").
type PageMap struct {
	Bank0 [256]Page
	Bank1 [256]Page
}

func (pm *PageMap) pages(bank uint8) *[256]Page {
	if bank == 1 {
		return &pm.Bank1
	}
	return &pm.Bank0
}
