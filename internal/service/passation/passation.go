// Package passation drives the lifecycle of a test-taking session:
// started → in_progress ⇄ suspended → finished | abandoned, answer
// accumulation and progress tracking.
package passation

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/ortholab/depisto_backend/config"
	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/repo"
	entpass "github.com/ortholab/depisto_backend/internal/repo/passation"
	entpresc "github.com/ortholab/depisto_backend/internal/repo/prescription"
	enttest "github.com/ortholab/depisto_backend/internal/repo/test"
	"github.com/ortholab/depisto_backend/internal/service/catalog"
)

// activeStatuses are the non-terminal passation states.
var activeStatuses = []entpass.Status{
	entpass.StatusStarted,
	entpass.StatusInProgress,
	entpass.StatusSuspended,
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// StartRequest carries the data needed to open a session.
type StartRequest struct {
	BirthDate time.Time
	IPAddress *string
	UserAgent *string
}

// Stats aggregates passation figures for the practitioner dashboard.
type Stats struct {
	ByStatus           map[string]int `json:"by_status"`
	AvgDurationMinutes float64        `json:"avg_duration_minutes"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Start(ctx context.Context, prescriptionID uuid.UUID, req StartRequest) (*repo.Passation, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.Passation, error)

	Resume(ctx context.Context, id uuid.UUID) (*repo.Passation, error)
	Suspend(ctx context.Context, id uuid.UUID) error
	Abandon(ctx context.Context, id uuid.UUID) error
	Finish(ctx context.Context, id uuid.UUID) error

	RecordAnswer(ctx context.Context, id uuid.UUID, itemKey, value string, currentPart *string) (*repo.Passation, error)
	RecordAnswers(ctx context.Context, id uuid.UUID, answers map[string]string, currentPart *string) (*repo.Passation, error)

	// ComputeScores runs the IDE calculator over the catalog and stores the
	// snapshot on the passation.
	ComputeScores(ctx context.Context, id uuid.UUID) (ide.ScoreSet, error)
	// ValidateConsistency is advisory; it never blocks a transition.
	ValidateConsistency(ctx context.Context, id uuid.UUID) (ide.ConsistencyReport, error)

	ActiveForPrescription(ctx context.Context, prescriptionID uuid.UUID) (*repo.Passation, error)
	LastForPrescription(ctx context.Context, prescriptionID uuid.UUID) (*repo.Passation, error)
	FinishedForPatient(ctx context.Context, patientID uuid.UUID) ([]*repo.Passation, error)
	SuspendedSince(ctx context.Context, olderThan time.Duration) ([]*repo.Passation, error)

	Stats(ctx context.Context) (*Stats, error)
	// CleanupAbandoned deletes abandoned passations older than the given
	// retention window. Returns the number of rows removed.
	CleanupAbandoned(ctx context.Context, olderThan time.Duration) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db      *repo.Client
	catalog catalog.Service
	clock   clockwork.Clock

	// estimatedItems is the progress denominator. The reference grid
	// estimate (200) overstates the denominator for younger children who
	// face fewer applicable items; kept configurable rather than derived.
	estimatedItems int
}

func New(db *repo.Client, cat catalog.Service, clock clockwork.Clock, cfg *config.Config) Service {
	estimated := cfg.Tests.IDE.EstimatedItemCount
	if estimated <= 0 {
		estimated = 200
	}
	return &service{db: db, catalog: cat, clock: clock, estimatedItems: estimated}
}

func (s *service) Start(ctx context.Context, prescriptionID uuid.UUID, req StartRequest) (*repo.Passation, error) {
	presc, err := s.db.Prescription.Query().
		Where(entpresc.ID(prescriptionID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPrescriptionNotFound
		}
		return nil, fmt.Errorf("get prescription: %w", err)
	}

	if presc.Status != entpresc.StatusPending || !presc.GdprConsent {
		return nil, ErrPrescriptionNotStartable
	}

	// Business invariant, also guarded by a partial unique index below.
	active, err := s.ActiveForPrescription(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrActivePassationExists
	}

	now := s.clock.Now()

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	create := tx.Passation.Create().
		SetPrescriptionID(prescriptionID).
		SetStatus(entpass.StatusStarted).
		SetBirthDate(req.BirthDate).
		SetStartedAt(now).
		SetLastActivityAt(now).
		SetChronologicalAgeMonths(ide.AgeInMonths(req.BirthDate, now)).
		SetAnswers(ide.AnswerSet{}).
		SetNillableIPAddress(req.IPAddress).
		SetNillableUserAgent(req.UserAgent)

	p, err := create.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		if repo.IsConstraintError(err) {
			// Lost the check-then-create race to a concurrent start.
			return nil, ErrActivePassationExists
		}
		return nil, fmt.Errorf("create passation: %w", err)
	}

	if _, err := tx.Prescription.UpdateOneID(prescriptionID).
		SetStatus(entpresc.StatusInProgress).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("update prescription status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit start: %w", err)
	}

	return p, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*repo.Passation, error) {
	p, err := s.db.Passation.Query().
		Where(entpass.ID(id)).
		WithPrescription().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPassationNotFound
		}
		return nil, fmt.Errorf("get passation: %w", err)
	}
	return p, nil
}

func (s *service) Resume(ctx context.Context, id uuid.UUID) (*repo.Passation, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != entpass.StatusSuspended {
		return nil, ErrNotResumable
	}

	p, err = s.db.Passation.UpdateOne(p).
		SetStatus(entpass.StatusInProgress).
		SetLastActivityAt(s.clock.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("resume passation: %w", err)
	}
	return p, nil
}

func (s *service) Suspend(ctx context.Context, id uuid.UUID) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	// A session must have been actively worked before suspension is
	// meaningful; suspending from started is rejected.
	if p.Status != entpass.StatusInProgress {
		return ErrNotSuspendable
	}

	if _, err := s.db.Passation.UpdateOne(p).
		SetStatus(entpass.StatusSuspended).
		Save(ctx); err != nil {
		return fmt.Errorf("suspend passation: %w", err)
	}
	return nil
}

func (s *service) Abandon(ctx context.Context, id uuid.UUID) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if isTerminal(p.Status) {
		return ErrAlreadyTerminated
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.Passation.UpdateOne(p).
		SetStatus(entpass.StatusAbandoned).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("abandon passation: %w", err)
	}

	// The prescription goes back to pending so the test can be retaken.
	if _, err := tx.Prescription.UpdateOneID(p.PrescriptionID).
		SetStatus(entpresc.StatusPending).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("reset prescription status: %w", err)
	}

	return tx.Commit()
}

func (s *service) Finish(ctx context.Context, id uuid.UUID) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if p.Status != entpass.StatusStarted && p.Status != entpass.StatusInProgress {
		return ErrNotFinishable
	}

	now := s.clock.Now()

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.Passation.UpdateOne(p).
		SetStatus(entpass.StatusFinished).
		SetEndedAt(now).
		SetDurationMinutes(ide.DurationMinutes(p.StartedAt, now)).
		SetProgress(100).
		SetLastActivityAt(now).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("finish passation: %w", err)
	}

	if _, err := tx.Prescription.UpdateOneID(p.PrescriptionID).
		SetStatus(entpresc.StatusCompleted).
		Save(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("update prescription status: %w", err)
	}

	return tx.Commit()
}

// ---------------------------------------------------------------------------
// Answers
// ---------------------------------------------------------------------------

func (s *service) RecordAnswer(ctx context.Context, id uuid.UUID, itemKey, value string, currentPart *string) (*repo.Passation, error) {
	return s.RecordAnswers(ctx, id, map[string]string{itemKey: value}, currentPart)
}

func (s *service) RecordAnswers(ctx context.Context, id uuid.UUID, answers map[string]string, currentPart *string) (*repo.Passation, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if isTerminal(p.Status) {
		return nil, ErrAlreadyTerminated
	}

	// Validate the whole batch before touching anything.
	validated := make(ide.AnswerSet, len(answers))
	for rawKey, rawValue := range answers {
		key, err := ide.ParseItemKey(rawKey)
		if err != nil {
			return nil, err
		}
		answer, err := ide.ParseAnswer(rawValue)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", rawKey, err)
		}
		validated[key.String()] = answer
	}
	if currentPart != nil && !ide.Part(*currentPart).Valid() {
		return nil, fmt.Errorf("%w: unknown part %q", ide.ErrInvalidItemKey, *currentPart)
	}

	merged := make(ide.AnswerSet, len(p.Answers)+len(validated))
	for k, v := range p.Answers {
		merged[k] = v
	}
	for k, v := range validated {
		merged[k] = v
	}

	update := s.db.Passation.UpdateOne(p).
		SetAnswers(merged).
		SetProgress(ide.Progress(len(merged), s.estimatedItems)).
		SetLastActivityAt(s.clock.Now()).
		SetNillableCurrentPart(currentPart)

	// First answer moves a freshly started session into in_progress.
	if p.Status == entpass.StatusStarted {
		update = update.SetStatus(entpass.StatusInProgress)
	}

	p, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record answers: %w", err)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Scoring
// ---------------------------------------------------------------------------

func (s *service) ComputeScores(ctx context.Context, id uuid.UUID) (ide.ScoreSet, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.itemsForPassation(ctx, p)
	if err != nil {
		return nil, err
	}

	scores, err := ide.ComputeScores(items, p.Answers, p.ChronologicalAgeMonths)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.Passation.UpdateOne(p).
		SetScores(scores).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("store score snapshot: %w", err)
	}

	return scores, nil
}

func (s *service) ValidateConsistency(ctx context.Context, id uuid.UUID) (ide.ConsistencyReport, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return ide.ConsistencyReport{}, err
	}

	presc := p.Edges.Prescription
	applicable, err := s.catalog.ApplicableCount(ctx, presc.TestID, p.ChronologicalAgeMonths)
	if err != nil {
		return ide.ConsistencyReport{}, err
	}

	return ide.ValidateConsistency(p.Answers, applicable), nil
}

// itemsForPassation loads the active item grid of the passation's test,
// checking the test kind first.
func (s *service) itemsForPassation(ctx context.Context, p *repo.Passation) ([]ide.Item, error) {
	presc := p.Edges.Prescription
	if presc == nil {
		loaded, err := s.db.Prescription.Query().
			Where(entpresc.ID(p.PrescriptionID)).
			Only(ctx)
		if err != nil {
			return nil, fmt.Errorf("load prescription: %w", err)
		}
		presc = loaded
	}

	t, err := s.catalog.GetTest(ctx, presc.TestID)
	if err != nil {
		return nil, err
	}
	if t.Kind != enttest.KindIDE {
		return nil, ErrWrongTestKind
	}

	return s.catalog.Items(ctx, t.ID)
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func (s *service) ActiveForPrescription(ctx context.Context, prescriptionID uuid.UUID) (*repo.Passation, error) {
	p, err := s.db.Passation.Query().
		Where(
			entpass.PrescriptionID(prescriptionID),
			entpass.StatusIn(activeStatuses...),
		).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find active passation: %w", err)
	}
	return p, nil
}

func (s *service) LastForPrescription(ctx context.Context, prescriptionID uuid.UUID) (*repo.Passation, error) {
	p, err := s.db.Passation.Query().
		Where(entpass.PrescriptionID(prescriptionID)).
		Order(entpass.ByStartedAt(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPassationNotFound
		}
		return nil, fmt.Errorf("find last passation: %w", err)
	}
	return p, nil
}

func (s *service) FinishedForPatient(ctx context.Context, patientID uuid.UUID) ([]*repo.Passation, error) {
	rows, err := s.db.Passation.Query().
		Where(
			entpass.StatusEQ(entpass.StatusFinished),
			entpass.HasPrescriptionWith(entpresc.PatientID(patientID)),
		).
		Order(entpass.ByStartedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list finished passations: %w", err)
	}
	return rows, nil
}

func (s *service) SuspendedSince(ctx context.Context, olderThan time.Duration) ([]*repo.Passation, error) {
	cutoff := s.clock.Now().Add(-olderThan)
	rows, err := s.db.Passation.Query().
		Where(
			entpass.StatusEQ(entpass.StatusSuspended),
			entpass.LastActivityAtLT(cutoff),
		).
		WithPrescription().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stale suspended passations: %w", err)
	}
	return rows, nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	var byStatus []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	if err := s.db.Passation.Query().
		GroupBy(entpass.FieldStatus).
		Aggregate(repo.Count()).
		Scan(ctx, &byStatus); err != nil {
		return nil, fmt.Errorf("aggregate passation statuses: %w", err)
	}

	stats := &Stats{ByStatus: make(map[string]int, len(byStatus))}
	for _, row := range byStatus {
		stats.ByStatus[row.Status] = row.Count
	}

	durations, err := s.db.Passation.Query().
		Where(entpass.StatusEQ(entpass.StatusFinished), entpass.DurationMinutesNotNil()).
		Select(entpass.FieldDurationMinutes).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("list finished durations: %w", err)
	}
	if len(durations) > 0 {
		total := 0
		for _, d := range durations {
			total += d
		}
		stats.AvgDurationMinutes = float64(total) / float64(len(durations))
	}

	return stats, nil
}

func (s *service) CleanupAbandoned(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := s.clock.Now().Add(-olderThan)
	n, err := s.db.Passation.Delete().
		Where(
			entpass.StatusEQ(entpass.StatusAbandoned),
			entpass.LastActivityAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("cleanup abandoned passations: %w", err)
	}
	return n, nil
}

func isTerminal(st entpass.Status) bool {
	return st == entpass.StatusFinished || st == entpass.StatusAbandoned
}
