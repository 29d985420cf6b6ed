package main

import (
	"github.com/fwojciec/docname"
	"github.com/fwojciec/docname/etree"
	"github.com/fwojciec/docname/excelize"
	"github.com/fwojciec/docname/extract"
	"github.com/fwojciec/docname/fs"
	"github.com/fwojciec/docname/pdf"
)

// NewRegistry registers every supported format. conv renders EPUB chapters;
// nil keeps their markup.
func NewRegistry(conv docname.Converter) *extract.Registry {
	r := extract.NewRegistry()
	r.Register(fs.NewTextExtractor(), ".txt")
	r.Register(fs.NewJSONExtractor(), ".json")
	r.Register(excelize.NewExtractor(), ".xlsx")
	r.Register(fs.NewCSVExtractor(), ".csv")
	r.Register(fs.NewTextExtractor(), extract.CodeExtensions...)
	r.Register(etree.NewEpubExtractor(conv), ".epub")
	r.Register(pdf.NewExtractor(), ".pdf")
	r.Register(etree.NewDocxExtractor(), ".docx")
	r.Register(etree.NewPptxExtractor(), ".ppt", ".pptx")
	return r
}
