package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// placement locates a chart part on a worksheet.
type placement struct {
	sheet  string
	anchor string
}

// drawingAnchor is one chart frame of a drawing part.
// Corners are zero-based {col, row} pairs.
type drawingAnchor struct {
	rID      string
	from, to [2]int
	twoCell  bool
}

// chartPlacements maps chart part paths to the sheet and cell range they are
// anchored to. Packages without drawings yield an empty map.
func chartPlacements(r *zip.Reader) map[string]placement {
	result := make(map[string]placement)

	for sheetName, drawingPath := range sheetDrawings(r) {
		drawingXML, err := readZipFile(r, drawingPath)
		if err != nil {
			continue
		}
		relsXML, err := readZipFile(r, path.Join(path.Dir(drawingPath), "_rels", path.Base(drawingPath)+".rels"))
		if err != nil {
			continue
		}

		targets := parseRelationships(relsXML, "/chart")
		for _, a := range parseDrawingAnchors(drawingXML) {
			target, ok := targets[a.rID]
			if !ok {
				continue
			}
			result[resolveRelativePath(target, path.Dir(drawingPath))] = placement{
				sheet:  sheetName,
				anchor: a.cells(),
			}
		}
	}

	return result
}

// sheetDrawings returns a mapping of sheet names to their drawing part paths.
func sheetDrawings(r *zip.Reader) map[string]string {
	result := make(map[string]string)

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil {
		return result
	}
	sheetsInfo := parseWorkbookSheets(workbookXML)
	if len(sheetsInfo) == 0 {
		return result
	}

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return result
	}

	for rID, target := range parseRelationships(wbRelsXML, "/worksheet") {
		sheetName, ok := sheetsInfo[rID]
		if !ok {
			continue
		}
		sheetPath := resolveRelativePath(target, "xl")
		relsPath := path.Join(path.Dir(sheetPath), "_rels", path.Base(sheetPath)+".rels")

		sheetRelsXML, err := readZipFile(r, relsPath)
		if err != nil {
			continue
		}
		for _, drawing := range parseRelationships(sheetRelsXML, "/drawing") {
			result[sheetName] = resolveRelativePath(drawing, path.Dir(sheetPath))
			break
		}
	}

	return result
}

// parseWorkbookSheets maps relationship IDs to sheet names.
func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, rID := attrValue(se, "name"), attrValue(se, "id")
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

// parseRelationships maps relationship IDs to targets for relationship types
// ending in typeSuffix.
func parseRelationships(data []byte, typeSuffix string) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			if strings.HasSuffix(attrValue(se, "Type"), typeSuffix) {
				result[attrValue(se, "Id")] = attrValue(se, "Target")
			}
		}
	}

	return result
}

// parseDrawingAnchors returns the chart frames of a drawing part.
func parseDrawingAnchors(data []byte) []drawingAnchor {
	var (
		result  []drawingAnchor
		current *drawingAnchor
		corner  *[2]int
	)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "twoCellAnchor", "oneCellAnchor":
				current = &drawingAnchor{twoCell: t.Name.Local == "twoCellAnchor"}
			case "from":
				if current != nil {
					corner = &current.from
				}
			case "to":
				if current != nil {
					corner = &current.to
				}
			case "col", "row":
				if corner == nil {
					continue
				}
				text, _ := readElementText(decoder)
				n, err := strconv.Atoi(strings.TrimSpace(text))
				if err != nil {
					continue
				}
				if t.Name.Local == "col" {
					corner[0] = n
				} else {
					corner[1] = n
				}
			case "chart":
				if current != nil {
					current.rID = attrValue(t, "id")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "from", "to":
				corner = nil
			case "twoCellAnchor", "oneCellAnchor":
				if current != nil && current.rID != "" {
					result = append(result, *current)
				}
				current = nil
			}
		}
	}

	return result
}

// cells formats the anchor as an A1-style cell or range.
func (a drawingAnchor) cells() string {
	from, err := excelize.CoordinatesToCellName(a.from[0]+1, a.from[1]+1)
	if err != nil {
		return ""
	}
	if !a.twoCell {
		return from
	}
	to, err := excelize.CoordinatesToCellName(a.to[0]+1, a.to[1]+1)
	if err != nil {
		return from
	}
	return from + ":" + to
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			return readZipEntry(f)
		}
	}
	return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
}

// resolveRelativePath resolves a relationship target against the directory
// of its source part.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(baseDir, target)
}
