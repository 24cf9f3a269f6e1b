package service

import (
	models "enrollment-metrics-report/app/models"
)

// Descriptions of the six report entries, in output order.
const (
	DescStudentsByCenter        = "Cantidad de aprendices inscritos por centro de formación"
	DescInstructorsByCenter     = "Instructores recomendados por aprendices inscritos por centro de formación"
	DescStudentsByCenterProgram = "Cantidad de aprendices inscritos por centro y programa de formación"
	DescStudentsByDepartment    = "Cantidad de aprendices por departamento de Colombia donde residen"
	DescStudentsWithGithub      = "Cantidad de aprendices que reportan tener un usuario de GitHub"
	DescEnglishB1B2ByCenter     = "Cantidad de aprendices con nivel de inglés B1 o B2 por centro de formación"
)

// AllowedPrograms are the only programs broken down per center.
var AllowedPrograms = []string{
	"Desarrollo de Software",
	"Análisis y Desarrollo de Sistemas",
	"Diseño de Software",
	"Administración de Redes",
}

type reducer interface {
	add(r models.EnrollmentRecord)
	entry() models.SummaryEntry
}

// Aggregate folds the records into the six-entry report in one pass.
// Records with an empty grouping key are left out of the entries keyed by it.
func Aggregate(records []models.EnrollmentRecord) models.SummaryReport {
	reducers := newReducers()
	for _, r := range records {
		for _, red := range reducers {
			red.add(r)
		}
	}

	report := make(models.SummaryReport, 0, len(reducers))
	for _, red := range reducers {
		report = append(report, red.entry())
	}
	return report
}

// newReducers returns fresh accumulators in report order.
func newReducers() []reducer {
	return []reducer{
		&centerCounter{counts: models.CountByKey{}},
		&instructorsByCenter{names: models.NamesByKey{}},
		newCenterProgramCounter(AllowedPrograms),
		&departmentCounter{counts: models.CountByKey{}},
		&githubCounter{},
		&englishByCenter{counts: models.CountByKey{}},
	}
}

// 1. students per training center
type centerCounter struct {
	counts models.CountByKey
}

func (c *centerCounter) add(r models.EnrollmentRecord) {
	if r.TrainingCenter == "" {
		return
	}
	c.counts[r.TrainingCenter]++
}

func (c *centerCounter) entry() models.SummaryEntry {
	return models.SummaryEntry{Description: DescStudentsByCenter, Value: c.counts}
}

// 2. distinct recommended instructors per center, first-seen order
type instructorsByCenter struct {
	names models.NamesByKey
	seen  map[string]map[string]struct{}
}

func (i *instructorsByCenter) add(r models.EnrollmentRecord) {
	if r.TrainingCenter == "" {
		return
	}
	if i.seen == nil {
		i.seen = make(map[string]map[string]struct{})
	}

	seen, ok := i.seen[r.TrainingCenter]
	if !ok {
		seen = make(map[string]struct{})
		i.seen[r.TrainingCenter] = seen
		i.names[r.TrainingCenter] = []string{}
	}

	if r.RecommendedInstructor == "" {
		return
	}
	if _, dup := seen[r.RecommendedInstructor]; dup {
		return
	}
	seen[r.RecommendedInstructor] = struct{}{}
	i.names[r.TrainingCenter] = append(i.names[r.TrainingCenter], r.RecommendedInstructor)
}

func (i *instructorsByCenter) entry() models.SummaryEntry {
	return models.SummaryEntry{Description: DescInstructorsByCenter, Value: i.names}
}

// 3. students per center and allow-listed program
type centerProgramCounter struct {
	allowed map[string]struct{}
	counts  models.CountByCenterProgram
}

func newCenterProgramCounter(programs []string) *centerProgramCounter {
	allowed := make(map[string]struct{}, len(programs))
	for _, p := range programs {
		allowed[p] = struct{}{}
	}
	return &centerProgramCounter{allowed: allowed, counts: models.CountByCenterProgram{}}
}

func (c *centerProgramCounter) add(r models.EnrollmentRecord) {
	if r.TrainingCenter == "" {
		return
	}
	if _, ok := c.allowed[r.Program]; !ok {
		return
	}

	byProgram, ok := c.counts[r.TrainingCenter]
	if !ok {
		byProgram = make(map[string]int)
		c.counts[r.TrainingCenter] = byProgram
	}
	byProgram[r.Program]++
}

func (c *centerProgramCounter) entry() models.SummaryEntry {
	return models.SummaryEntry{Description: DescStudentsByCenterProgram, Value: c.counts}
}

// 4. students per department of residence
type departmentCounter struct {
	counts models.CountByKey
}

func (d *departmentCounter) add(r models.EnrollmentRecord) {
	if r.Department == "" {
		return
	}
	d.counts[r.Department]++
}

func (d *departmentCounter) entry() models.SummaryEntry {
	return models.SummaryEntry{Description: DescStudentsByDepartment, Value: d.counts}
}

// 5. students reporting a GitHub account
type githubCounter struct {
	total int
}

func (g *githubCounter) add(r models.EnrollmentRecord) {
	if r.HasGithub {
		g.total++
	}
}

func (g *githubCounter) entry() models.SummaryEntry {
	return models.SummaryEntry{Description: DescStudentsWithGithub, Value: g.total}
}

// 6. students with English level B1 or B2 per center
type englishByCenter struct {
	counts models.CountByKey
}

func (e *englishByCenter) add(r models.EnrollmentRecord) {
	if r.TrainingCenter == "" {
		return
	}
	if r.EnglishLevel != "B1" && r.EnglishLevel != "B2" {
		return
	}
	e.counts[r.TrainingCenter]++
}

func (e *englishByCenter) entry() models.SummaryEntry {
	return models.SummaryEntry{Description: DescEnglishB1B2ByCenter, Value: e.counts}
}
