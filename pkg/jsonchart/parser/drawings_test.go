package parser

import (
	"testing"
)

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target   string
		baseDir  string
		expected string
	}{
		{"../drawings/drawing1.xml", "xl/worksheets", "xl/drawings/drawing1.xml"},
		{"../charts/chart2.xml", "xl/drawings", "xl/charts/chart2.xml"},
		{"worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
		{"/xl/worksheets/sheet3.xml", "xl", "xl/worksheets/sheet3.xml"},
	}

	for _, tt := range tests {
		result := resolveRelativePath(tt.target, tt.baseDir)
		if result != tt.expected {
			t.Errorf("resolveRelativePath(%q, %q) = %q, expected %q",
				tt.target, tt.baseDir, result, tt.expected)
		}
	}
}

func TestParseRelationships(t *testing.T) {
	data := []byte(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/chart" Target="../charts/chart1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/image1.png"/>
</Relationships>`)

	result := parseRelationships(data, "/chart")
	if len(result) != 1 {
		t.Fatalf("Expected 1 chart relationship, got %d", len(result))
	}
	if result["rId1"] != "../charts/chart1.xml" {
		t.Errorf("Unexpected target %q", result["rId1"])
	}
}

func TestParseDrawingAnchors(t *testing.T) {
	data := []byte(`<xdr:wsDr xmlns:xdr="http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
<xdr:twoCellAnchor>
  <xdr:from><xdr:col>2</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>0</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:from>
  <xdr:to><xdr:col>7</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>8</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:to>
  <xdr:graphicFrame><a:graphic><a:graphicData>
    <c:chart xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" r:id="rId1"/>
  </a:graphicData></a:graphic></xdr:graphicFrame>
  <xdr:clientData/>
</xdr:twoCellAnchor>
<xdr:oneCellAnchor>
  <xdr:from><xdr:col>0</xdr:col><xdr:row>10</xdr:row></xdr:from>
  <xdr:pic/>
</xdr:oneCellAnchor>
</xdr:wsDr>`)

	anchors := parseDrawingAnchors(data)
	if len(anchors) != 1 {
		t.Fatalf("Expected 1 chart anchor, got %d", len(anchors))
	}
	if anchors[0].rID != "rId1" {
		t.Errorf("Expected rId1, got %q", anchors[0].rID)
	}
	if got := anchors[0].cells(); got != "C1:H9" {
		t.Errorf("Expected C1:H9, got %q", got)
	}
}

func TestDrawingAnchorCells(t *testing.T) {
	tests := []struct {
		anchor   drawingAnchor
		expected string
	}{
		{drawingAnchor{from: [2]int{0, 0}, to: [2]int{1, 1}, twoCell: true}, "A1:B2"},
		{drawingAnchor{from: [2]int{3, 4}}, "D5"},
	}

	for _, tt := range tests {
		if result := tt.anchor.cells(); result != tt.expected {
			t.Errorf("cells() = %q, expected %q", result, tt.expected)
		}
	}
}
