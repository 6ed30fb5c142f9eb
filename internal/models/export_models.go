package models

import "time"

// ExportBundle is the downloadable backup document.
type ExportBundle struct {
	Company    *Company   `json:"company"`
	Employees  []Employee `json:"employees"`
	Shifts     []Shift    `json:"shifts"`
	ExportInfo ExportInfo `json:"exportInfo"`
}

// ExportInfo carries the export metadata.
type ExportInfo struct {
	ExportedBy  string      `json:"exportedBy"`
	ExportedAt  time.Time   `json:"exportedAt"`
	Version     string      `json:"version"`
	RecordCount RecordCount `json:"recordCount"`
}

// RecordCount summarizes the bundle contents.
type RecordCount struct {
	Employees int `json:"employees"`
	Shifts    int `json:"shifts"`
}

// ExportFormatVersion identifies the bundle layout.
const ExportFormatVersion = "2.0"
