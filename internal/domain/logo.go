package domain

// BlankLogoName is the placeholder logo used when a supplier has no logo of its own.
const BlankLogoName = "blank.png"

type LogoAsset struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Content []byte `json:"-"`
}
