/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package canvas

import (
	"github.com/lazypdf/lazypdf/core"
	"github.com/lazypdf/lazypdf/model"
)

// Page is a typed, read-only view over one leaf of the document's page tree. It resolves the
// inheritable attributes (Resources, MediaBox, CropBox, Rotate) up the Parent chain on demand:
// MediaBox/CropBox/Rotate take the first value found walking toward the root, and Resources is a
// true key-by-key merge of every Resources dictionary from the root down to the page, so a
// category (Font, XObject, ...) defined on an ancestor survives even when the page or a closer
// ancestor defines other categories of its own.
type Page struct {
	doc    *Document
	page   *model.PdfPage
	Number int

	resources *model.PdfPageResources
}

func newPage(doc *Document, page *model.PdfPage, number int) *Page {
	return &Page{doc: doc, page: page, Number: number}
}

// MediaBox returns the page's inheritable media box.
func (p *Page) MediaBox() (*model.PdfRectangle, error) {
	return p.page.GetMediaBox()
}

// CropBox returns the page's inheritable crop box, falling back to MediaBox per PDF 7.7.3.3 when
// no CropBox is set anywhere in the Parent chain.
func (p *Page) CropBox() (*model.PdfRectangle, error) {
	return p.page.GetCropBox()
}

// Rotate returns the page's inheritable rotation in degrees (a multiple of 90), defaulting to 0.
func (p *Page) Rotate() (int64, error) {
	return p.page.GetRotate()
}

// Annots returns the page's /Annots array, each entry resolved to a Dict the same way every other
// accessor in this package exposes a dictionary. Annotation content (appearance streams, actions)
// is not modeled further than that; rendering/authoring them is out of scope, but a field like
// /Subj on an individual annotation dictionary is reachable through the returned Dict.
func (p *Page) Annots() []*Dict {
	if p.page.Annots == nil {
		return nil
	}
	arr, ok := core.GetArray(p.page.Annots)
	if !ok {
		return nil
	}
	dicts := make([]*Dict, 0, arr.Len())
	for _, elem := range arr.Elements() {
		if d := p.doc.dictFromObject(elem); d != nil {
			dicts = append(dicts, d)
		}
	}
	return dicts
}

// Parent returns the page's immediate parent Pages node as a Dict, or nil at the tree root.
func (p *Page) Parent() *Dict {
	if p.page.Parent == nil {
		return nil
	}
	return p.doc.dictFromObject(p.page.Parent)
}

// Resources returns the page's effective resource dictionary, merged key-by-key from the page
// tree root down to this page. Unlike a plain ancestor lookup, a Font or XObject entry inherited
// from the Pages root is visible even when the page itself (or a nearer ancestor) only overrides
// a different resource category.
func (p *Page) Resources() *model.PdfPageResources {
	if p.resources != nil {
		return p.resources
	}
	p.resources = mergedResources(p.page)
	return p.resources
}

// mergedResources walks the page's Parent chain from the page up to the tree root, collecting
// each ancestor's raw /Resources dictionary, then merges them root-to-leaf so a closer Resources
// entry overrides same-named entries in an ancestor's Resources, category by category, rather
// than one ancestor's whole Resources dictionary shadowing all the others.
func mergedResources(page *model.PdfPage) *model.PdfPageResources {
	var chain []*core.PdfObjectDictionary

	if own := page.OwnResources(); own != nil {
		chain = append(chain, own)
	}

	parent := page.Parent
	for parent != nil {
		dict, ok := core.GetDict(parent)
		if !ok {
			break
		}
		if res := resourcesDict(dict); res != nil {
			chain = append(chain, res)
		}
		parent = dict.Get("Parent")
	}

	if len(chain) == 0 {
		return model.NewPdfPageResources()
	}

	merged := mergeResourceDicts(chain)
	resources, err := model.NewPdfPageResourcesFromDict(merged)
	if err != nil {
		return model.NewPdfPageResources()
	}
	return resources
}

// resourceCategories lists the Resources sub-dictionaries merged key-by-key (PDF 7.8.3, Table 33).
// ProcSet is an array rather than a dictionary, so closer ancestors simply replace it wholesale.
var resourceCategories = []string{"ExtGState", "ColorSpace", "Pattern", "Shading", "XObject", "Font", "Properties"}

// mergeResourceDicts merges a leaf-first ordered chain of raw /Resources dictionaries into one,
// overriding each resource category key-by-key as closer ancestors are applied.
func mergeResourceDicts(chainLeafFirst []*core.PdfObjectDictionary) *core.PdfObjectDictionary {
	merged := core.MakeDict()
	categoryDicts := make(map[string]*core.PdfObjectDictionary, len(resourceCategories))
	for _, name := range resourceCategories {
		categoryDicts[name] = core.MakeDict()
	}

	// chainLeafFirst is ordered page-first; apply root-to-leaf so the page's own entries win.
	for i := len(chainLeafFirst) - 1; i >= 0; i-- {
		dict := chainLeafFirst[i]
		for _, name := range resourceCategories {
			obj := dict.Get(core.PdfObjectName(name))
			if obj == nil {
				continue
			}
			sub, ok := core.GetDict(obj)
			if !ok {
				continue
			}
			categoryDicts[name].Merge(sub)
		}
		if procSet := dict.Get("ProcSet"); procSet != nil {
			merged.Set("ProcSet", procSet)
		}
	}

	for _, name := range resourceCategories {
		if cat := categoryDicts[name]; len(cat.Keys()) > 0 {
			merged.Set(core.PdfObjectName(name), cat)
		}
	}
	return merged
}

// resourcesDict returns pageOrPagesDict's own (non-inherited) /Resources dictionary, or nil.
func resourcesDict(pageOrPagesDict *core.PdfObjectDictionary) *core.PdfObjectDictionary {
	obj := pageOrPagesDict.Get("Resources")
	if obj == nil || core.IsNullObject(obj) {
		return nil
	}
	dict, ok := core.GetDict(obj)
	if !ok {
		return nil
	}
	return dict
}
