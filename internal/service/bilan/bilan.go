// Package bilan builds, reviews and exports the clinical report derived
// from a finished passation. Reports are versioned per prescription and
// become immutable once finalized.
package bilan

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/nats-io/nats.go"

	"github.com/ortholab/depisto_backend/internal/events"
	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/repo"
	entbilan "github.com/ortholab/depisto_backend/internal/repo/bilan"
	entpass "github.com/ortholab/depisto_backend/internal/repo/passation"
	entpresc "github.com/ortholab/depisto_backend/internal/repo/prescription"
	"github.com/ortholab/depisto_backend/internal/service/catalog"
	"github.com/ortholab/depisto_backend/pkg/s3"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// ReviewRequest carries the practitioner's additions during review.
type ReviewRequest struct {
	PractitionerID  uuid.UUID
	Comments        *string
	Recommendations *string
}

// Summary is the executive one-glance view of a bilan.
type Summary struct {
	BilanID                uuid.UUID `json:"bilan_id"`
	Version                int       `json:"version"`
	GlobalRisk             string    `json:"global_risk"`
	GlobalRiskName         string    `json:"global_risk_name"`
	GlobalRiskColor        string    `json:"global_risk_color"`
	DGScore                int       `json:"dg_score"`
	DevelopmentalAge       string    `json:"developmental_age"`
	DevelopmentalAgeMonths int       `json:"developmental_age_months"`
	Headline               string    `json:"headline"`
	StrengthCount          int       `json:"strength_count"`
	WatchPointCount        int       `json:"watch_point_count"`
}

// DomainEvolution compares one domain across two bilans. Deltas within
// ±2 points count as stable.
type DomainEvolution struct {
	Domain    string `json:"domain"`
	Name      string `json:"name"`
	Before    int    `json:"before"`
	After     int    `json:"after"`
	Delta     int    `json:"delta"`
	Evolution string `json:"evolution"` // amélioration | stable | régression
}

// Comparison is the longitudinal view across two bilans of one patient.
type Comparison struct {
	OlderBilanID uuid.UUID         `json:"older_bilan_id"`
	NewerBilanID uuid.UUID         `json:"newer_bilan_id"`
	DGDelta      int               `json:"dg_delta"`
	Domains      []DomainEvolution `json:"domains"`
}

// Stats aggregates bilan figures for the practitioner dashboard.
type Stats struct {
	ByStatus     map[string]int `json:"by_status"`
	ByGlobalRisk map[string]int `json:"by_global_risk"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Generate builds a new bilan version from a finished passation and
	// publishes a bilan-ready event.
	Generate(ctx context.Context, passationID uuid.UUID) (*repo.Bilan, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.Bilan, error)

	// Review adds practitioner comments and recommendations and moves the
	// bilan to in_review, including a validated one: edited content needs
	// a fresh validation.
	Review(ctx context.Context, id uuid.UUID, req ReviewRequest) (*repo.Bilan, error)
	// Validate signs the bilan off clinically, optionally recording final
	// practitioner comments.
	Validate(ctx context.Context, id, practitionerID uuid.UUID, comments *string) (*repo.Bilan, error)
	Finalize(ctx context.Context, id, practitionerID uuid.UUID) (*repo.Bilan, error)

	ForPrescription(ctx context.Context, prescriptionID uuid.UUID) ([]*repo.Bilan, error)
	ForPatient(ctx context.Context, patientID uuid.UUID) ([]*repo.Bilan, error)
	PendingValidation(ctx context.Context, practitionerID uuid.UUID) ([]*repo.Bilan, error)

	ExecutiveSummary(ctx context.Context, id uuid.UUID) (*Summary, error)
	Compare(ctx context.Context, olderID, newerID uuid.UUID) (*Comparison, error)

	// ExportPDF renders the bilan, uploads it and returns a presigned URL.
	ExportPDF(ctx context.Context, id uuid.UUID) (string, error)

	Stats(ctx context.Context, practitionerID uuid.UUID) (*Stats, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db      *repo.Client
	catalog catalog.Service
	clock   clockwork.Clock
	nc      *nats.Conn
	storage *s3.Client
}

func New(db *repo.Client, cat catalog.Service, clock clockwork.Clock, nc *nats.Conn, storage *s3.Client) Service {
	return &service{db: db, catalog: cat, clock: clock, nc: nc, storage: storage}
}

func (s *service) Generate(ctx context.Context, passationID uuid.UUID) (*repo.Bilan, error) {
	p, err := s.db.Passation.Query().
		Where(entpass.ID(passationID)).
		WithPrescription().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPassationNotFound
		}
		return nil, fmt.Errorf("get passation: %w", err)
	}
	if p.Status != entpass.StatusFinished {
		return nil, ErrPassationNotFinished
	}
	presc := p.Edges.Prescription

	scores := p.Scores
	if len(scores) == 0 {
		items, err := s.catalog.Items(ctx, presc.TestID)
		if err != nil {
			return nil, err
		}
		scores, err = ide.ComputeScores(items, p.Answers, p.ChronologicalAgeMonths)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoScores, err)
		}
	}

	dg, ok := scores.DG()
	globalRisk := ide.RiskModerate
	dgScore := 0
	if ok {
		globalRisk = dg.Risk
		dgScore = dg.Score
	}

	interpretation := ide.Interpretation(scores, p.ChronologicalAgeMonths)
	applicable, err := s.catalog.ApplicableCount(ctx, presc.TestID, p.ChronologicalAgeMonths)
	if err != nil {
		return nil, err
	}
	report := ide.ValidateConsistency(p.Answers, applicable)
	if warnings := append(report.Errors, report.Warnings...); len(warnings) > 0 {
		interpretation += "\n\nAVERTISSEMENTS :\n- " + strings.Join(warnings, "\n- ")
	}

	recommendations := ide.Recommendation(globalRisk)

	// The unique (prescription_id, version) index guards the max+1 read
	// against a concurrent generation; one retry re-reads the max.
	var b *repo.Bilan
	for attempt := 0; attempt < 2; attempt++ {
		version, err := s.nextVersion(ctx, presc.ID)
		if err != nil {
			return nil, err
		}

		b, err = s.db.Bilan.Create().
			SetPrescriptionID(presc.ID).
			SetVersion(version).
			SetDetailedScores(scores).
			SetDgScore(dgScore).
			SetGlobalRisk(entbilan.GlobalRisk(globalRisk)).
			SetDevelopmentalAgeMonths(ide.EstimateDevelopmentalAge(dgScore, p.ChronologicalAgeMonths)).
			SetGraphicProfile(ide.GraphicProfile(scores)).
			SetStrengths(ide.Strengths(scores)).
			SetWatchPoints(ide.WatchPoints(scores)).
			SetInterpretation(interpretation).
			SetRecommendations(recommendations).
			SetGeneratedAt(s.clock.Now()).
			Save(ctx)
		if err == nil {
			break
		}
		if repo.IsConstraintError(err) && attempt == 0 {
			continue
		}
		return nil, fmt.Errorf("create bilan: %w", err)
	}

	events.Publish(s.nc, events.SubjectBilanReady, presc.ID.String(), []byte(b.ID.String()))

	return b, nil
}

func (s *service) nextVersion(ctx context.Context, prescriptionID uuid.UUID) (int, error) {
	last, err := s.db.Bilan.Query().
		Where(entbilan.PrescriptionID(prescriptionID)).
		Order(entbilan.ByVersion(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("read last bilan version: %w", err)
	}
	return last.Version + 1, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*repo.Bilan, error) {
	b, err := s.db.Bilan.Query().
		Where(entbilan.ID(id)).
		WithPrescription().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrBilanNotFound
		}
		return nil, fmt.Errorf("get bilan: %w", err)
	}
	return b, nil
}

func (s *service) Review(ctx context.Context, id uuid.UUID, req ReviewRequest) (*repo.Bilan, error) {
	b, err := s.getOwned(ctx, id, req.PractitionerID)
	if err != nil {
		return nil, err
	}
	if b.Status == entbilan.StatusFinalized {
		return nil, ErrBilanImmutable
	}

	// Touching the content of a validated bilan sends it back for
	// re-validation.
	b, err = s.db.Bilan.UpdateOne(b).
		SetNillablePractitionerComments(req.Comments).
		SetNillableRecommendations(req.Recommendations).
		SetStatus(entbilan.StatusInReview).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("review bilan: %w", err)
	}
	return b, nil
}

func (s *service) Validate(ctx context.Context, id, practitionerID uuid.UUID, comments *string) (*repo.Bilan, error) {
	b, err := s.getOwned(ctx, id, practitionerID)
	if err != nil {
		return nil, err
	}
	if b.Status == entbilan.StatusFinalized {
		return nil, ErrBilanImmutable
	}

	update := s.db.Bilan.UpdateOne(b).
		SetStatus(entbilan.StatusValidated).
		SetNillablePractitionerComments(comments)
	if b.ValidatedAt == nil {
		update = update.SetValidatedAt(s.clock.Now())
	}

	b, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("validate bilan: %w", err)
	}

	// The prescription's screening cycle is complete once a bilan is
	// clinically validated.
	if _, err := s.db.Prescription.UpdateOneID(b.PrescriptionID).
		SetStatus(entpresc.StatusValidated).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("mark prescription validated: %w", err)
	}

	return b, nil
}

func (s *service) Finalize(ctx context.Context, id, practitionerID uuid.UUID) (*repo.Bilan, error) {
	b, err := s.getOwned(ctx, id, practitionerID)
	if err != nil {
		return nil, err
	}
	if b.Status == entbilan.StatusFinalized {
		return nil, ErrBilanImmutable
	}
	if b.Status != entbilan.StatusValidated {
		return nil, ErrNotValidated
	}

	b, err = s.db.Bilan.UpdateOne(b).
		SetStatus(entbilan.StatusFinalized).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("finalize bilan: %w", err)
	}
	return b, nil
}

// getOwned loads a bilan and checks the caller owns the prescription.
func (s *service) getOwned(ctx context.Context, id, practitionerID uuid.UUID) (*repo.Bilan, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Edges.Prescription.PractitionerID != practitionerID {
		return nil, ErrAccessDenied
	}
	return b, nil
}

// ---------------------------------------------------------------------------
// Listings
// ---------------------------------------------------------------------------

func (s *service) ForPrescription(ctx context.Context, prescriptionID uuid.UUID) ([]*repo.Bilan, error) {
	rows, err := s.db.Bilan.Query().
		Where(entbilan.PrescriptionID(prescriptionID)).
		Order(entbilan.ByVersion(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bilans for prescription: %w", err)
	}
	return rows, nil
}

func (s *service) ForPatient(ctx context.Context, patientID uuid.UUID) ([]*repo.Bilan, error) {
	rows, err := s.db.Bilan.Query().
		Where(entbilan.HasPrescriptionWith(entpresc.PatientID(patientID))).
		Order(entbilan.ByGeneratedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bilans for patient: %w", err)
	}
	return rows, nil
}

func (s *service) PendingValidation(ctx context.Context, practitionerID uuid.UUID) ([]*repo.Bilan, error) {
	rows, err := s.db.Bilan.Query().
		Where(
			entbilan.StatusIn(entbilan.StatusGenerated, entbilan.StatusInReview),
			entbilan.HasPrescriptionWith(entpresc.PractitionerID(practitionerID)),
		).
		Order(entbilan.ByGeneratedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bilans pending validation: %w", err)
	}
	return rows, nil
}

// ---------------------------------------------------------------------------
// Derived views
// ---------------------------------------------------------------------------

func (s *service) ExecutiveSummary(ctx context.Context, id uuid.UUID) (*Summary, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	risk := ide.RiskLevel(b.GlobalRisk)
	headline := fmt.Sprintf(
		"Développement général : score %d, âge développemental estimé %s (%s).",
		b.DgScore,
		ide.FormatAgeMonths(b.DevelopmentalAgeMonths),
		risk.Name(),
	)

	return &Summary{
		BilanID:                b.ID,
		Version:                b.Version,
		GlobalRisk:             string(b.GlobalRisk),
		GlobalRiskName:         risk.Name(),
		GlobalRiskColor:        risk.Color(),
		DGScore:                b.DgScore,
		DevelopmentalAge:       ide.FormatAgeMonths(b.DevelopmentalAgeMonths),
		DevelopmentalAgeMonths: b.DevelopmentalAgeMonths,
		Headline:               headline,
		StrengthCount:          len(b.Strengths),
		WatchPointCount:        len(b.WatchPoints),
	}, nil
}

func (s *service) Compare(ctx context.Context, olderID, newerID uuid.UUID) (*Comparison, error) {
	older, err := s.Get(ctx, olderID)
	if err != nil {
		return nil, err
	}
	newer, err := s.Get(ctx, newerID)
	if err != nil {
		return nil, err
	}
	if older.Edges.Prescription.PatientID != newer.Edges.Prescription.PatientID {
		return nil, ErrDifferentPatients
	}

	cmp := &Comparison{
		OlderBilanID: older.ID,
		NewerBilanID: newer.ID,
		DGDelta:      newer.DgScore - older.DgScore,
	}

	for _, d := range ide.ProfileDomains {
		before := older.DetailedScores[d].Score
		after := newer.DetailedScores[d].Score
		delta := after - before

		evolution := "stable"
		switch {
		case delta > 2:
			evolution = "amélioration"
		case delta < -2:
			evolution = "régression"
		}

		cmp.Domains = append(cmp.Domains, DomainEvolution{
			Domain:    string(d),
			Name:      d.Name(),
			Before:    before,
			After:     after,
			Delta:     delta,
			Evolution: evolution,
		})
	}

	return cmp, nil
}

// ---------------------------------------------------------------------------
// PDF export
// ---------------------------------------------------------------------------

func (s *service) ExportPDF(ctx context.Context, id uuid.UUID) (string, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}

	buf, err := renderPDF(b)
	if err != nil {
		return "", fmt.Errorf("render bilan pdf: %w", err)
	}

	key := fmt.Sprintf("bilans/%s/v%d-%s.pdf", b.PrescriptionID, b.Version, b.ID)
	if err := s.storage.Upload(ctx, key, "application/pdf", buf, int64(buf.Len())); err != nil {
		return "", err
	}

	if _, err := s.db.Bilan.UpdateOne(b).SetPdfKey(key).Save(ctx); err != nil {
		return "", fmt.Errorf("store pdf key: %w", err)
	}

	return s.storage.PresignDownload(ctx, key)
}

// ---------------------------------------------------------------------------
// Stats
// ---------------------------------------------------------------------------

func (s *service) Stats(ctx context.Context, practitionerID uuid.UUID) (*Stats, error) {
	base := func() *repo.BilanQuery {
		return s.db.Bilan.Query().
			Where(entbilan.HasPrescriptionWith(entpresc.PractitionerID(practitionerID)))
	}

	var byStatus []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	if err := base().
		GroupBy(entbilan.FieldStatus).
		Aggregate(repo.Count()).
		Scan(ctx, &byStatus); err != nil {
		return nil, fmt.Errorf("aggregate bilan statuses: %w", err)
	}

	var byRisk []struct {
		GlobalRisk string `json:"global_risk"`
		Count      int    `json:"count"`
	}
	if err := base().
		GroupBy(entbilan.FieldGlobalRisk).
		Aggregate(repo.Count()).
		Scan(ctx, &byRisk); err != nil {
		return nil, fmt.Errorf("aggregate bilan risks: %w", err)
	}

	stats := &Stats{
		ByStatus:     make(map[string]int, len(byStatus)),
		ByGlobalRisk: make(map[string]int, len(byRisk)),
	}
	for _, row := range byStatus {
		stats.ByStatus[row.Status] = row.Count
	}
	for _, row := range byRisk {
		stats.ByGlobalRisk[row.GlobalRisk] = row.Count
	}
	return stats, nil
}
