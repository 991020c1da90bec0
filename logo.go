package vimlogo

import "fmt"

// maskID names the mask that clips the diamond by the letter m silhouette.
const maskID = "letter_m_mask"

// Generate computes the full logo from the given design constants. The
// result is deterministic: identical Params always produce an identical
// Document. Constants describing impossible geometry or unreachable bevel
// colors fail here; nothing is written anywhere.
func Generate(p Params) (*Document, error) {
	lights, err := resolveLights(p.Lights)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	diamond, err := newDiamond(p, lights)
	if err != nil {
		return nil, fmt.Errorf("generate diamond: %w", err)
	}
	letterV, err := newLetterV(p, lights)
	if err != nil {
		return nil, fmt.Errorf("generate letter v: %w", err)
	}
	letterI, letterM, mSilhouette := newLettersIM(p)

	// The diamond is clipped by the m silhouette so the letter never sits
	// on green; the letters paint over it afterwards.
	diamond.MaskID = maskID

	doc := &Document{
		ViewBox: p.ViewBox,
		Masks:   []MaskDef{{ID: maskID, Cutouts: []Polygon{mSilhouette}}},
		Groups:  []ShapeGroup{diamond, letterV, letterI, letterM},
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	Logger().Debug("generated logo",
		"groups", len(doc.Groups),
		"masks", len(doc.Masks))
	return doc, nil
}
