/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package canvas

import (
	"github.com/lazypdf/lazypdf/core"
)

// Dict is a typed, read-only view over a PDF dictionary. It exposes a fixed
// set of convenience accessors for the common value kinds, resolving
// indirect references through the owning document as they are reached,
// rather than eagerly walking the whole subtree up front. Any key not
// covered by a convenience accessor can still be reached through Get.
type Dict struct {
	dict *core.PdfObjectDictionary
	doc  *Document
}

// newDict wraps dict as a Dict bound to doc. Returns nil if dict is nil.
func newDict(doc *Document, dict *core.PdfObjectDictionary) *Dict {
	if dict == nil {
		return nil
	}
	return &Dict{dict: dict, doc: doc}
}

// dictFromObject resolves obj and returns it as a Dict, or nil if it is not
// (after resolution) a dictionary. Stream objects carry a dictionary too, so
// those resolve successfully as well.
func (doc *Document) dictFromObject(obj core.PdfObject) *Dict {
	if obj == nil {
		return nil
	}
	resolved, err := doc.reader.Resolve(obj)
	if err != nil || resolved == nil {
		return nil
	}
	switch t := resolved.(type) {
	case *core.PdfObjectDictionary:
		return newDict(doc, t)
	case *core.PdfObjectStream:
		return newDict(doc, t.PdfObjectDictionary)
	case *core.PdfIndirectObject:
		return doc.dictFromObject(t.PdfObject)
	default:
		return nil
	}
}

// Get returns the raw (unresolved) value stored under key, or nil if absent.
func (v *Dict) Get(key string) core.PdfObject {
	if v == nil || v.dict == nil {
		return nil
	}
	return v.dict.Get(core.PdfObjectName(key))
}

// Keys returns the dictionary's keys in no particular order.
func (v *Dict) Keys() []string {
	if v == nil || v.dict == nil {
		return nil
	}
	names := v.dict.Keys()
	keys := make([]string, len(names))
	for i, n := range names {
		keys[i] = string(n)
	}
	return keys
}

// Dict resolves the value under key and returns it as a nested Dict, or nil
// if the key is absent or not a dictionary.
func (v *Dict) Dict(key string) *Dict {
	if v == nil {
		return nil
	}
	return v.doc.dictFromObject(v.Get(key))
}

// Name returns the resolved Name value of key, or "" if absent or of another kind.
func (v *Dict) Name(key string) string {
	if v == nil {
		return ""
	}
	obj, err := v.resolve(key)
	if err != nil {
		return ""
	}
	val, _ := core.GetNameVal(obj)
	return val
}

// Type is shorthand for Name("Type"), the dictionary's /Type entry.
func (v *Dict) Type() string {
	return v.Name("Type")
}

// Str returns the resolved literal/hex string value of key as text, or "" if absent.
func (v *Dict) Str(key string) string {
	if v == nil {
		return ""
	}
	obj, err := v.resolve(key)
	if err != nil {
		return ""
	}
	val, _ := core.GetStringVal(obj)
	return val
}

// Bytes returns the resolved literal/hex string value of key as raw bytes, or nil if absent.
func (v *Dict) Bytes(key string) []byte {
	if v == nil {
		return nil
	}
	obj, err := v.resolve(key)
	if err != nil {
		return nil
	}
	val, _ := core.GetStringBytes(obj)
	return val
}

// Int returns the resolved integer value of key, or (0, false) if absent or of another kind.
func (v *Dict) Int(key string) (int, bool) {
	if v == nil {
		return 0, false
	}
	obj, err := v.resolve(key)
	if err != nil {
		return 0, false
	}
	return core.GetIntVal(obj)
}

// Array returns the resolved array value of key as the raw *core.PdfObjectArray, or nil if key
// is absent or not an array. Its elements are not resolved; ArrayDicts resolves them as Dicts.
func (v *Dict) Array(key string) *core.PdfObjectArray {
	if v == nil {
		return nil
	}
	obj, err := v.resolve(key)
	if err != nil {
		return nil
	}
	arr, _ := core.GetArray(obj)
	return arr
}

// ArrayDicts resolves key as an array and returns each element as a Dict,
// skipping elements that do not resolve to dictionaries.
func (v *Dict) ArrayDicts(key string) []*Dict {
	arr := v.Array(key)
	if arr == nil {
		return nil
	}
	dicts := make([]*Dict, 0, arr.Len())
	for _, elem := range arr.Elements() {
		if d := v.doc.dictFromObject(elem); d != nil {
			dicts = append(dicts, d)
		}
	}
	return dicts
}

// resolve looks up key and resolves it through the document if it is an indirect reference.
func (v *Dict) resolve(key string) (core.PdfObject, error) {
	obj := v.Get(key)
	if obj == nil {
		return nil, nil
	}
	return v.doc.reader.Resolve(obj)
}
