package model

import "time"

// MenuType identifies one of the fixed menu kinds.
type MenuType string

// Language is one of the supported locale codes.
type Language string

const (
	MenuDaily     MenuType = "daily"
	MenuRegular   MenuType = "menu"
	MenuWine      MenuType = "wine"
	MenuBeverages MenuType = "beverages"
)

const (
	LangGerman  Language = "de"
	LangEnglish Language = "en"
	LangFrench  Language = "fr"
	LangItalian Language = "it"
)

// MenuTypes is the authoritative list of menu types. Validation, seeding and
// routing all consume this slice; there is no second copy anywhere.
var MenuTypes = []MenuType{MenuDaily, MenuRegular, MenuWine, MenuBeverages}

// Languages is the authoritative list of supported languages.
var Languages = []Language{LangGerman, LangEnglish, LangFrench, LangItalian}

// ValidMenuType reports whether t is one of the fixed menu types.
func ValidMenuType(t MenuType) bool {
	for _, m := range MenuTypes {
		if m == t {
			return true
		}
	}
	return false
}

// ValidLanguage reports whether l is one of the supported languages.
func ValidLanguage(l Language) bool {
	for _, v := range Languages {
		if v == l {
			return true
		}
	}
	return false
}

// PdfAsset is the stored metadata for one uploaded menu PDF.
type PdfAsset struct {
	URL        string    `json:"url"`
	FileName   string    `json:"fileName"`
	PublicID   string    `json:"publicId"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// MenuEntry is the state of a single menu type: whether it is shown to guests
// and which per-language PDFs have been uploaded. A missing language key means
// no PDF has been uploaded for that language yet.
type MenuEntry struct {
	Type    MenuType              `json:"type"`
	Enabled bool                  `json:"enabled"`
	PDFs    map[Language]PdfAsset `json:"pdfs"`
}

// MenuCatalog maps every menu type to its entry. All four type keys are
// present at all times; the store seeds them at first boot.
type MenuCatalog map[MenuType]MenuEntry

// NewMenuCatalog returns the seed catalog: every menu type disabled with no
// PDFs uploaded.
func NewMenuCatalog() MenuCatalog {
	catalog := make(MenuCatalog, len(MenuTypes))
	for _, t := range MenuTypes {
		catalog[t] = MenuEntry{
			Type:    t,
			Enabled: false,
			PDFs:    make(map[Language]PdfAsset),
		}
	}
	return catalog
}
