package candidatestore

import (
	"cmp"
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"candidatescout/internal/candidate"
	"candidatescout/internal/components/assert"
	"candidatescout/internal/components/chrono"
	"candidatescout/internal/components/telemetry"
	"candidatescout/internal/db"
	"candidatescout/lib/textutil"
)

const (
	report_upsert      = "candidatestore.upsert"
	report_empty_name  = "candidatestore.empty-name"
	report_experiences = "candidatestore.experiences"
)

type Store struct {
	qry    *db.Queries
	makeTx db.MakeTx
	time   chrono.TimeAPI
	tel    telemetry.API
}

func NewStore(database *sql.DB, time chrono.TimeAPI, tel telemetry.API) Store {
	assert.NotNil(database)
	assert.NotNil(time)
	assert.NotNil(tel)

	return Store{
		qry:    db.New(database),
		makeTx: db.NewMakeTx(database),
		time:   time,
		tel:    tel,
	}
}

// Record is a stored candidate.
type Record struct {
	ID        int64
	CreatedAt string
	UpdatedAt string
	candidate.Candidate
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: true}
}

func recordFromRow(row db.Candidato) Record {
	return Record{
		ID:        row.ID,
		CreatedAt: row.DataCriacao.String,
		UpdatedAt: row.DataAtualizacao.String,
		Candidate: candidate.Candidate{
			Name:       row.Nome,
			Title:      row.Titulo.String,
			Company:    row.Empresa.String,
			Location:   row.Localizacao.String,
			Experience: row.Experiencia.String,
		},
	}
}

// Upsert refreshes every row with the candidate's name or inserts a new one
// when there is none. It uses a connection of its own for the duration of
// the call.
func (s Store) Upsert(ctx context.Context, c candidate.Candidate) error {
	if c.Name == "" {
		s.tel.ReportWarning(report_empty_name, c.Title, c.Company)
	}

	txqry, discard, commit, err := s.makeTx(ctx)
	if err != nil {
		s.tel.ReportBroken(report_upsert, err)
		return fmt.Errorf("upsert '%s': %w", c.Name, err)
	}
	defer discard()

	now := nullString(s.time.Now().UTC().Format(time.RFC3339))
	affected, err := txqry.UpdateCandidateByName(ctx, db.UpdateCandidateByNameParams{
		Titulo:          nullString(c.Title),
		Empresa:         nullString(c.Company),
		Localizacao:     nullString(c.Location),
		Experiencia:     nullString(c.Experience),
		DataAtualizacao: now,
		Nome:            c.Name,
	})
	if err != nil {
		s.tel.ReportBroken(report_upsert, err, c.Name)
		return fmt.Errorf("upsert '%s': %w", c.Name, err)
	}

	if affected == 0 {
		_, err = txqry.CreateCandidate(ctx, db.CreateCandidateParams{
			Nome:            c.Name,
			Titulo:          nullString(c.Title),
			Empresa:         nullString(c.Company),
			Localizacao:     nullString(c.Location),
			Experiencia:     nullString(c.Experience),
			DataAtualizacao: now,
		})
		if err != nil {
			s.tel.ReportBroken(report_upsert, err, c.Name)
			return fmt.Errorf("upsert '%s': %w", c.Name, err)
		}
		s.tel.ReportDebug("candidatestore: inserted", c.Name)
	} else {
		s.tel.ReportDebug("candidatestore: updated", c.Name, affected)
	}

	err = commit()
	if err != nil {
		s.tel.ReportBroken(report_upsert, err, c.Name)
		return fmt.Errorf("upsert '%s': %w", c.Name, err)
	}
	return nil
}

func (s Store) All(ctx context.Context) ([]Record, error) {
	rows, err := s.qry.GetAllCandidates(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = recordFromRow(r)
	}
	return out, nil
}

func (s Store) Count(ctx context.Context) (int64, error) {
	return s.qry.CountCandidates(ctx)
}

// FindByName returns the candidates whose name matches exactly.
func (s Store) FindByName(ctx context.Context, name string) ([]Record, error) {
	rows, err := s.qry.GetCandidatesByName(ctx, name)
	if err != nil {
		return nil, err
	}
	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = recordFromRow(r)
	}
	return out, nil
}

type Match struct {
	Record
	Score float64
}

// Similar returns the candidates whose name scores at least `threshold`
// against `name`, best match first.
func (s Store) Similar(ctx context.Context, name string, threshold float64) ([]Match, error) {
	records, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	var out []Match
	for _, r := range records {
		score := textutil.NameSimilarity(name, r.Name)
		if score < threshold {
			continue
		}
		out = append(out, Match{Record: r, Score: score})
	}
	slices.SortStableFunc(out, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return out, nil
}

func (s Store) AddExperience(ctx context.Context, exp candidate.Experience) (int64, error) {
	id, err := s.qry.CreateExperience(ctx, db.CreateExperienceParams{
		CandidatoID: sql.NullInt64{Int64: exp.CandidateID, Valid: true},
		Empresa:     nullString(exp.Company),
		Cargo:       nullString(exp.Role),
		Periodo:     nullString(exp.Period),
		Descricao:   nullString(exp.Description),
	})
	if err != nil {
		s.tel.ReportBroken(report_experiences, err, exp.CandidateID)
		return 0, err
	}
	return id, nil
}

func (s Store) Experiences(ctx context.Context, candidateID int64) ([]candidate.Experience, error) {
	rows, err := s.qry.GetCandidateExperiences(ctx, sql.NullInt64{Int64: candidateID, Valid: true})
	if err != nil {
		return nil, err
	}
	out := make([]candidate.Experience, len(rows))
	for i, r := range rows {
		out[i] = candidate.Experience{
			CandidateID: r.CandidatoID.Int64,
			Company:     r.Empresa.String,
			Role:        r.Cargo.String,
			Period:      r.Periodo.String,
			Description: r.Descricao.String,
		}
	}
	return out, nil
}

// Candidates strips the store metadata off records.
func Candidates(records []Record) []candidate.Candidate {
	out := make([]candidate.Candidate, len(records))
	for i, r := range records {
		out[i] = r.Candidate
	}
	return out
}
