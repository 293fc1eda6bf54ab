package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"cow-inspection/internal/domain/cows"
	"cow-inspection/internal/platform/apperr"
)

// CowsRepo guarda cada vaca como una fila con las listas en JSONB.
// Los append son un solo UPDATE ... || ... RETURNING, atómico por fila.
type CowsRepo struct {
	db *sql.DB
}

func NewCowsRepo(db *sql.DB) *CowsRepo {
	return &CowsRepo{db: db}
}

// Forma de los elementos dentro de las columnas JSONB.
type vaccinationDoc struct {
	Name    string     `json:"name"`
	Date    time.Time  `json:"date"`
	NextDue *time.Time `json:"nextDue,omitempty"`
}

type medicalEntryDoc struct {
	Date         time.Time `json:"date"`
	Diagnosis    string    `json:"diagnosis"`
	Treatment    string    `json:"treatment"`
	Veterinarian string    `json:"veterinarian"`
}

const cowColumns = `cow_id, name, breed, age, weight, region, health_status, last_inspection,
	vaccinations, medical_history, created_at, updated_at`

func (r *CowsRepo) Create(ctx context.Context, c cows.Cow) error {
	vacc, err := marshalVaccinations(c.Vaccinations)
	if err != nil {
		return err
	}
	hist, err := marshalMedicalHistory(c.MedicalHistory)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO cows (`+cowColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		c.CowID,
		c.Name,
		c.Breed,
		c.Age,
		c.Weight,
		c.Region,
		string(c.HealthStatus),
		c.LastInspection,
		vacc,
		hist,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return mapError(err)
}

func (r *CowsRepo) GetByCowID(ctx context.Context, cowID string) (cows.Cow, error) {
	cowID = strings.TrimSpace(cowID)
	if cowID == "" {
		return cows.Cow{}, apperr.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+cowColumns+` FROM cows WHERE cow_id = $1`, cowID)

	var (
		c          cows.Cow
		status     string
		vacc, hist []byte
	)
	if err := row.Scan(
		&c.CowID,
		&c.Name,
		&c.Breed,
		&c.Age,
		&c.Weight,
		&c.Region,
		&status,
		&c.LastInspection,
		&vacc,
		&hist,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return cows.Cow{}, mapError(err)
	}
	c.HealthStatus = cows.HealthStatus(status)

	var err error
	if c.Vaccinations, err = unmarshalVaccinations(vacc); err != nil {
		return cows.Cow{}, err
	}
	if c.MedicalHistory, err = unmarshalMedicalHistory(hist); err != nil {
		return cows.Cow{}, err
	}
	return c, nil
}

func (r *CowsRepo) AppendVaccination(ctx context.Context, cowID string, v cows.Vaccination, at time.Time) ([]cows.Vaccination, error) {
	doc, err := json.Marshal(vaccinationDoc(v))
	if err != nil {
		return nil, err
	}

	var out []byte
	err = r.db.QueryRowContext(ctx, `
		UPDATE cows
		SET vaccinations = vaccinations || jsonb_build_array($2::jsonb),
			updated_at = $3
		WHERE cow_id = $1
		RETURNING vaccinations
	`, cowID, doc, at).Scan(&out)
	if err != nil {
		return nil, mapError(err)
	}
	return unmarshalVaccinations(out)
}

func (r *CowsRepo) AppendMedicalEntry(ctx context.Context, cowID string, e cows.MedicalEntry, at time.Time) ([]cows.MedicalEntry, error) {
	doc, err := json.Marshal(medicalEntryDoc(e))
	if err != nil {
		return nil, err
	}

	var out []byte
	err = r.db.QueryRowContext(ctx, `
		UPDATE cows
		SET medical_history = medical_history || jsonb_build_array($2::jsonb),
			updated_at = $3
		WHERE cow_id = $1
		RETURNING medical_history
	`, cowID, doc, at).Scan(&out)
	if err != nil {
		return nil, mapError(err)
	}
	return unmarshalMedicalHistory(out)
}

func marshalVaccinations(in []cows.Vaccination) ([]byte, error) {
	docs := make([]vaccinationDoc, 0, len(in))
	for _, v := range in {
		docs = append(docs, vaccinationDoc(v))
	}
	return json.Marshal(docs)
}

func unmarshalVaccinations(raw []byte) ([]cows.Vaccination, error) {
	var docs []vaccinationDoc
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &docs); err != nil {
			return nil, err
		}
	}
	out := make([]cows.Vaccination, 0, len(docs))
	for _, d := range docs {
		out = append(out, cows.Vaccination(d))
	}
	return out, nil
}

func marshalMedicalHistory(in []cows.MedicalEntry) ([]byte, error) {
	docs := make([]medicalEntryDoc, 0, len(in))
	for _, e := range in {
		docs = append(docs, medicalEntryDoc(e))
	}
	return json.Marshal(docs)
}

func unmarshalMedicalHistory(raw []byte) ([]cows.MedicalEntry, error) {
	var docs []medicalEntryDoc
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &docs); err != nil {
			return nil, err
		}
	}
	out := make([]cows.MedicalEntry, 0, len(docs))
	for _, d := range docs {
		out = append(out, cows.MedicalEntry(d))
	}
	return out, nil
}
