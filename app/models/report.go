package models

// SummaryEntry is one labeled statistic of the scalar metrics report.
type SummaryEntry struct {
	Description string      `json:"description"`
	Value       interface{} `json:"value"`
}

// SummaryReport always holds six entries in a fixed order; clients index it by position.
type SummaryReport []SummaryEntry

type CountByKey map[string]int

type NamesByKey map[string][]string

type CountByCenterProgram map[string]map[string]int
