package repository

import (
	"context"
	"database/sql"
	"fmt"

	models "enrollment-metrics-report/app/models"

	"github.com/lib/pq"
)

type EnrollmentRepository interface {
	FindAll(ctx context.Context) ([]models.EnrollmentRecord, error)
}

type enrollmentRepository struct {
	db    *sql.DB
	table string
}

func NewEnrollmentRepository(db *sql.DB, table string) EnrollmentRepository {
	return &enrollmentRepository{db: db, table: table}
}

func (r *enrollmentRepository) FindAll(ctx context.Context) ([]models.EnrollmentRecord, error) {
	query := fmt.Sprintf(`
        SELECT aprendiz, centro_formacion, programa, departamento,
               instructor_recomendado, github, nivel_ingles
        FROM %s
    `, pq.QuoteIdentifier(r.table))

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query enrollments: %w", err)
	}
	defer rows.Close()

	records := make([]models.EnrollmentRecord, 0)
	for rows.Next() {
		var (
			student, center, program, department, instructor, english sql.NullString
			github                                                  sql.NullBool
		)
		if err := rows.Scan(&student, &center, &program, &department, &instructor, &github, &english); err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}

		records = append(records, models.EnrollmentRecord{
			Student:               student.String,
			TrainingCenter:        center.String,
			Program:               program.String,
			Department:            department.String,
			RecommendedInstructor: instructor.String,
			HasGithub:             github.Valid && github.Bool,
			EnglishLevel:          english.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read enrollments: %w", err)
	}

	return records, nil
}
