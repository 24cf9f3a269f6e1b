package repository

import (
	"context"
	"fmt"

	models "enrollment-metrics-report/app/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type EnrollmentRepository interface {
	FindAll(ctx context.Context) ([]models.EnrollmentRecord, error)
}

type enrollmentRepository struct {
	collection *mongo.Collection
}

func NewEnrollmentRepository(db *mongo.Database, collection string) EnrollmentRepository {
	return &enrollmentRepository{collection: db.Collection(collection)}
}

// FindAll reads every document of the collection. Documents are decoded
// field by field so a malformed one never fails the whole read.
func (r *enrollmentRepository) FindAll(ctx context.Context) ([]models.EnrollmentRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find enrollments: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]models.EnrollmentRecord, 0)
	for cursor.Next(ctx) {
		records = append(records, decodeEnrollment(cursor.Current))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("read enrollments: %w", err)
	}

	return records, nil
}

func decodeEnrollment(doc bson.Raw) models.EnrollmentRecord {
	github, ok := doc.Lookup("github").BooleanOK()

	return models.EnrollmentRecord{
		Student:               stringField(doc, "aprendiz"),
		TrainingCenter:        stringField(doc, "centroFormacion"),
		Program:               stringField(doc, "programa"),
		Department:            stringField(doc, "departamento"),
		RecommendedInstructor: stringField(doc, "instructorRecomendado"),
		HasGithub:             ok && github,
		EnglishLevel:          stringField(doc, "nivelIngles"),
	}
}

// stringField returns "" for absent and non-string values.
func stringField(doc bson.Raw, key string) string {
	s, _ := doc.Lookup(key).StringValueOK()
	return s
}
