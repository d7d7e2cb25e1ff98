package passation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ortholab/depisto_backend/config"
	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/repo"
	"github.com/ortholab/depisto_backend/internal/repo/enttest"
	entpass "github.com/ortholab/depisto_backend/internal/repo/passation"
	entpresc "github.com/ortholab/depisto_backend/internal/repo/prescription"
	"github.com/ortholab/depisto_backend/internal/service/catalog"
)

type fixture struct {
	client       *repo.Client
	svc          Service
	clock        *clockwork.FakeClock
	prescription *repo.Prescription
	birthDate    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC))

	practitioner, err := client.User.Create().
		SetFirstName("Claire").
		SetLastName("Moreau").
		SetEmail("claire.moreau@example.fr").
		SetPasswordHash("x").
		Save(ctx)
	if err != nil {
		t.Fatalf("create practitioner: %v", err)
	}

	birthDate := time.Date(2021, time.December, 1, 0, 0, 0, 0, time.UTC) // 30 months old

	patient, err := client.Patient.Create().
		SetPractitionerID(practitioner.ID).
		SetFirstName("Léo").
		SetLastName("Moreau").
		SetBirthDate(birthDate).
		SetGuardianEmail("parent@example.fr").
		Save(ctx)
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}

	test, err := client.Test.Create().
		SetName("Inventaire du Développement de l'Enfant").
		Save(ctx)
	if err != nil {
		t.Fatalf("create test: %v", err)
	}

	items := []struct {
		part     string
		domain   string
		order    int
		countsDG bool
	}{
		{"A", "SO", 1, true},
		{"A", "SO", 2, false},
		{"A", "MG", 1, true},
		{"B", "LEX", 1, true},
	}
	for _, it := range items {
		if _, err := client.TestItem.Create().
			SetTestID(test.ID).
			SetPart(it.part).
			SetDomain(it.domain).
			SetItemOrder(it.order).
			SetText("item").
			SetCountsDg(it.countsDG).
			Save(ctx); err != nil {
			t.Fatalf("create item: %v", err)
		}
	}

	presc, err := client.Prescription.Create().
		SetPractitionerID(practitioner.ID).
		SetPatientID(patient.ID).
		SetTestID(test.ID).
		SetGdprConsent(true).
		Save(ctx)
	if err != nil {
		t.Fatalf("create prescription: %v", err)
	}

	cfg := &config.Config{}
	cfg.Tests.IDE.EstimatedItemCount = 4

	return &fixture{
		client:       client,
		svc:          New(client, catalog.New(client, nil), clock, cfg),
		clock:        clock,
		prescription: presc,
		birthDate:    birthDate,
	}
}

func (f *fixture) start(t *testing.T) *repo.Passation {
	t.Helper()
	p, err := f.svc.Start(context.Background(), f.prescription.ID, StartRequest{BirthDate: f.birthDate})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return p
}

func TestStart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.start(t)

	if p.Status != entpass.StatusStarted {
		t.Errorf("status = %s, want started", p.Status)
	}
	if p.ChronologicalAgeMonths != 30 {
		t.Errorf("chronological age = %d, want 30", p.ChronologicalAgeMonths)
	}
	if p.Progress != 0 {
		t.Errorf("progress = %d, want 0", p.Progress)
	}

	presc, err := f.client.Prescription.Get(ctx, f.prescription.ID)
	if err != nil {
		t.Fatalf("reload prescription: %v", err)
	}
	if presc.Status != entpresc.StatusInProgress {
		t.Errorf("prescription status = %s, want in_progress", presc.Status)
	}
}

func TestStartRequiresConsent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.client.Prescription.UpdateOneID(f.prescription.ID).
		SetGdprConsent(false).
		Save(ctx); err != nil {
		t.Fatalf("withdraw consent: %v", err)
	}

	_, err := f.svc.Start(ctx, f.prescription.ID, StartRequest{BirthDate: f.birthDate})
	if !errors.Is(err, ErrPrescriptionNotStartable) {
		t.Errorf("Start() error = %v, want ErrPrescriptionNotStartable", err)
	}
}

func TestStartRejectsSecondActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.start(t)

	// The prescription moved to in_progress, so the status gate fires first.
	_, err := f.svc.Start(ctx, f.prescription.ID, StartRequest{BirthDate: f.birthDate})
	if !errors.Is(err, ErrPrescriptionNotStartable) {
		t.Errorf("second Start() error = %v, want ErrPrescriptionNotStartable", err)
	}
}

func TestStartUnknownPrescription(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Start(context.Background(), uuid.New(), StartRequest{BirthDate: f.birthDate})
	if !errors.Is(err, ErrPrescriptionNotFound) {
		t.Errorf("Start() error = %v, want ErrPrescriptionNotFound", err)
	}
}

func TestRecordAnswers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.start(t)

	part := "A"
	p, err := f.svc.RecordAnswer(ctx, p.ID, "A:SO:1", "yes", &part)
	if err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}
	if p.Status != entpass.StatusInProgress {
		t.Errorf("status after first answer = %s, want in_progress", p.Status)
	}
	if p.Progress != 25 {
		t.Errorf("progress = %d, want 25 (1 of 4)", p.Progress)
	}
	if p.CurrentPart == nil || *p.CurrentPart != "A" {
		t.Errorf("current part = %v, want A", p.CurrentPart)
	}

	// Batch merge keeps earlier answers and overwrites re-answered items.
	p, err = f.svc.RecordAnswers(ctx, p.ID, map[string]string{
		"A:SO:1": "no",
		"A:MG:1": "yes",
	}, nil)
	if err != nil {
		t.Fatalf("RecordAnswers() error = %v", err)
	}
	if len(p.Answers) != 2 {
		t.Errorf("answer count = %d, want 2", len(p.Answers))
	}
	if p.Answers["A:SO:1"] != ide.AnswerNo {
		t.Errorf("re-answered item = %q, want no", p.Answers["A:SO:1"])
	}
	if p.Progress != 50 {
		t.Errorf("progress = %d, want 50", p.Progress)
	}
}

func TestRecordAnswersValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.start(t)

	tests := []struct {
		name    string
		answers map[string]string
		wantErr error
	}{
		{"bad item key", map[string]string{"nonsense": "yes"}, ide.ErrInvalidItemKey},
		{"bad answer value", map[string]string{"A:SO:1": "oui"}, ide.ErrInvalidAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.RecordAnswers(ctx, p.ID, tt.answers, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RecordAnswers() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	// A failed batch must not partially apply.
	reloaded, err := f.svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(reloaded.Answers) != 0 {
		t.Errorf("answers after failed batches = %v, want empty", reloaded.Answers)
	}
}

func TestSuspendResume(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.start(t)

	// Suspending a session nobody worked on is rejected.
	if err := f.svc.Suspend(ctx, p.ID); !errors.Is(err, ErrNotSuspendable) {
		t.Errorf("Suspend(started) error = %v, want ErrNotSuspendable", err)
	}

	if _, err := f.svc.RecordAnswer(ctx, p.ID, "A:SO:1", "yes", nil); err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}
	if err := f.svc.Suspend(ctx, p.ID); err != nil {
		t.Fatalf("Suspend() error = %v", err)
	}

	resumed, err := f.svc.Resume(ctx, p.ID)
	if err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	if resumed.Status != entpass.StatusInProgress {
		t.Errorf("status after resume = %s, want in_progress", resumed.Status)
	}

	// Resume only applies to suspended sessions.
	if _, err := f.svc.Resume(ctx, p.ID); !errors.Is(err, ErrNotResumable) {
		t.Errorf("Resume(in_progress) error = %v, want ErrNotResumable", err)
	}
}

func TestFinish(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.start(t)

	if _, err := f.svc.RecordAnswer(ctx, p.ID, "A:SO:1", "yes", nil); err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}

	f.clock.Advance(42 * time.Minute)
	if err := f.svc.Finish(ctx, p.ID); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	p, err := f.svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p.Status != entpass.StatusFinished {
		t.Errorf("status = %s, want finished", p.Status)
	}
	if p.DurationMinutes == nil || *p.DurationMinutes != 42 {
		t.Errorf("duration = %v, want 42", p.DurationMinutes)
	}
	if p.Progress != 100 {
		t.Errorf("progress = %d, want 100", p.Progress)
	}

	presc, err := f.client.Prescription.Get(ctx, f.prescription.ID)
	if err != nil {
		t.Fatalf("reload prescription: %v", err)
	}
	if presc.Status != entpresc.StatusCompleted {
		t.Errorf("prescription status = %s, want completed", presc.Status)
	}

	// Terminal states reject every further mutation.
	if _, err := f.svc.RecordAnswer(ctx, p.ID, "A:SO:2", "yes", nil); !errors.Is(err, ErrAlreadyTerminated) {
		t.Errorf("RecordAnswer(finished) error = %v, want ErrAlreadyTerminated", err)
	}
	if err := f.svc.Finish(ctx, p.ID); !errors.Is(err, ErrNotFinishable) {
		t.Errorf("Finish(finished) error = %v, want ErrNotFinishable", err)
	}
	if err := f.svc.Abandon(ctx, p.ID); !errors.Is(err, ErrAlreadyTerminated) {
		t.Errorf("Abandon(finished) error = %v, want ErrAlreadyTerminated", err)
	}
}

func TestFinishFromSuspendedRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.start(t)

	if _, err := f.svc.RecordAnswer(ctx, p.ID, "A:SO:1", "yes", nil); err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}
	if err := f.svc.Suspend(ctx, p.ID); err != nil {
		t.Fatalf("Suspend() error = %v", err)
	}

	if err := f.svc.Finish(ctx, p.ID); !errors.Is(err, ErrNotFinishable) {
		t.Errorf("Finish(suspended) error = %v, want ErrNotFinishable", err)
	}
}

func TestAbandonResetsPrescription(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.start(t)

	if err := f.svc.Abandon(ctx, p.ID); err != nil {
		t.Fatalf("Abandon() error = %v", err)
	}

	presc, err := f.client.Prescription.Get(ctx, f.prescription.ID)
	if err != nil {
		t.Fatalf("reload prescription: %v", err)
	}
	if presc.Status != entpresc.StatusPending {
		t.Errorf("prescription status = %s, want pending (retake allowed)", presc.Status)
	}

	// After the reset a fresh passation can start on the same prescription.
	again := f.start(t)
	if again.ID == p.ID {
		t.Error("restart reused the abandoned passation")
	}
}

func TestComputeScores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.start(t)

	if _, err := f.svc.RecordAnswers(ctx, p.ID, map[string]string{
		"A:SO:1": "yes",
		"A:SO:2": "yes",
		"A:MG:1": "no",
		"B:LEX:1": "yes",
	}, nil); err != nil {
		t.Fatalf("RecordAnswers() error = %v", err)
	}

	scores, err := f.svc.ComputeScores(ctx, p.ID)
	if err != nil {
		t.Fatalf("ComputeScores() error = %v", err)
	}

	if got := scores[ide.DomainSO].Score; got != 2 {
		t.Errorf("SO score = %d, want 2", got)
	}
	dg, _ := scores.DG()
	if dg.Score != 2 { // A:SO:1 and B:LEX:1 count toward DG
		t.Errorf("DG score = %d, want 2", dg.Score)
	}

	// Snapshot persisted on the passation.
	reloaded, err := f.svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if reloaded.Scores == nil {
		t.Fatal("score snapshot was not stored")
	}
	if reloaded.Scores[ide.DomainSO].Score != 2 {
		t.Errorf("stored SO score = %d, want 2", reloaded.Scores[ide.DomainSO].Score)
	}
}

func TestComputeScoresNoAnswers(t *testing.T) {
	f := newFixture(t)
	p := f.start(t)

	_, err := f.svc.ComputeScores(context.Background(), p.ID)
	if !errors.Is(err, ide.ErrNoAnswers) {
		t.Errorf("ComputeScores() error = %v, want ErrNoAnswers", err)
	}
}

func TestValidateConsistency(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.start(t)

	if _, err := f.svc.RecordAnswers(ctx, p.ID, map[string]string{
		"A:SO:1": "yes",
		"A:SO:2": "yes",
		"A:MG:1": "yes",
		"B:LEX:1": "yes",
	}, nil); err != nil {
		t.Fatalf("RecordAnswers() error = %v", err)
	}

	report, err := f.svc.ValidateConsistency(ctx, p.ID)
	if err != nil {
		t.Fatalf("ValidateConsistency() error = %v", err)
	}
	if !report.Valid {
		t.Errorf("report invalid: %v", report.Errors)
	}
	if len(report.Warnings) != 1 {
		t.Errorf("got %d warnings %v, want 1 (all answers yes)", len(report.Warnings), report.Warnings)
	}
}

func TestActiveAndLastForPrescription(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	active, err := f.svc.ActiveForPrescription(ctx, f.prescription.ID)
	if err != nil {
		t.Fatalf("ActiveForPrescription() error = %v", err)
	}
	if active != nil {
		t.Errorf("active = %v, want nil before any start", active)
	}
	if _, err := f.svc.LastForPrescription(ctx, f.prescription.ID); !errors.Is(err, ErrPassationNotFound) {
		t.Errorf("LastForPrescription() error = %v, want ErrPassationNotFound", err)
	}

	first := f.start(t)
	if err := f.svc.Abandon(ctx, first.ID); err != nil {
		t.Fatalf("Abandon() error = %v", err)
	}

	f.clock.Advance(time.Hour)
	second := f.start(t)

	active, err = f.svc.ActiveForPrescription(ctx, f.prescription.ID)
	if err != nil {
		t.Fatalf("ActiveForPrescription() error = %v", err)
	}
	if active == nil || active.ID != second.ID {
		t.Errorf("active = %v, want the second passation", active)
	}

	last, err := f.svc.LastForPrescription(ctx, f.prescription.ID)
	if err != nil {
		t.Fatalf("LastForPrescription() error = %v", err)
	}
	if last.ID != second.ID {
		t.Errorf("last = %s, want the most recently started", last.ID)
	}
}

func TestSuspendedSince(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.start(t)

	if _, err := f.svc.RecordAnswer(ctx, p.ID, "A:SO:1", "yes", nil); err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}
	if err := f.svc.Suspend(ctx, p.ID); err != nil {
		t.Fatalf("Suspend() error = %v", err)
	}

	rows, err := f.svc.SuspendedSince(ctx, 48*time.Hour)
	if err != nil {
		t.Fatalf("SuspendedSince() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d stale passations, want 0 (recent activity)", len(rows))
	}

	f.clock.Advance(72 * time.Hour)
	rows, err = f.svc.SuspendedSince(ctx, 48*time.Hour)
	if err != nil {
		t.Fatalf("SuspendedSince() error = %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d stale passations, want 1", len(rows))
	}
}

func TestCleanupAbandoned(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.start(t)

	if err := f.svc.Abandon(ctx, p.ID); err != nil {
		t.Fatalf("Abandon() error = %v", err)
	}

	n, err := f.svc.CleanupAbandoned(ctx, 90*24*time.Hour)
	if err != nil {
		t.Fatalf("CleanupAbandoned() error = %v", err)
	}
	if n != 0 {
		t.Errorf("removed %d rows, want 0 (inside retention)", n)
	}

	f.clock.Advance(91 * 24 * time.Hour)
	n, err = f.svc.CleanupAbandoned(ctx, 90*24*time.Hour)
	if err != nil {
		t.Fatalf("CleanupAbandoned() error = %v", err)
	}
	if n != 1 {
		t.Errorf("removed %d rows, want 1", n)
	}

	if _, err := f.svc.Get(ctx, p.ID); !errors.Is(err, ErrPassationNotFound) {
		t.Errorf("Get(cleaned) error = %v, want ErrPassationNotFound", err)
	}
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.start(t)

	if _, err := f.svc.RecordAnswer(ctx, p.ID, "A:SO:1", "yes", nil); err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}
	f.clock.Advance(30 * time.Minute)
	if err := f.svc.Finish(ctx, p.ID); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	stats, err := f.svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.ByStatus["finished"] != 1 {
		t.Errorf("finished count = %d, want 1", stats.ByStatus["finished"])
	}
	if stats.AvgDurationMinutes != 30 {
		t.Errorf("avg duration = %v, want 30", stats.AvgDurationMinutes)
	}
}
