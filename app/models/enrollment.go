package models

// EnrollmentRecord is one student's self-reported profile as stored in the
// enrollment collection. Missing or mistyped text fields decode to "".
type EnrollmentRecord struct {
	Student               string `json:"aprendiz" bson:"aprendiz"`
	TrainingCenter        string `json:"centroFormacion" bson:"centroFormacion"`
	Program               string `json:"programa" bson:"programa"`
	Department            string `json:"departamento" bson:"departamento"`
	RecommendedInstructor string `json:"instructorRecomendado" bson:"instructorRecomendado"`
	HasGithub             bool   `json:"github" bson:"github"`
	EnglishLevel          string `json:"nivelIngles" bson:"nivelIngles"`
}
