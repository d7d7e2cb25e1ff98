package bilan

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/repo"
	entbilan "github.com/ortholab/depisto_backend/internal/repo/bilan"
	"github.com/ortholab/depisto_backend/internal/repo/enttest"
	entpass "github.com/ortholab/depisto_backend/internal/repo/passation"
	entpresc "github.com/ortholab/depisto_backend/internal/repo/prescription"
	"github.com/ortholab/depisto_backend/internal/service/catalog"
)

type fixture struct {
	client       *repo.Client
	svc          Service
	clock        *clockwork.FakeClock
	practitioner *repo.User
	patient      *repo.Patient
	prescription *repo.Prescription
	passation    *repo.Passation
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
		SetStatus(entpresc.StatusCompleted).
		SetGdprConsent(true).
		Save(ctx)
	if err != nil {
		t.Fatalf("create prescription: %v", err)
	}

	pass, err := client.Passation.Create().
		SetPrescriptionID(presc.ID).
		SetStatus(entpass.StatusFinished).
		SetBirthDate(birthDate).
		SetStartedAt(clock.Now().Add(-time.Hour)).
		SetEndedAt(clock.Now()).
		SetLastActivityAt(clock.Now()).
		SetChronologicalAgeMonths(30).
		SetAnswers(ide.AnswerSet{
			"A:SO:1":  ide.AnswerYes,
			"A:SO:2":  ide.AnswerYes,
			"A:MG:1":  ide.AnswerNo,
			"B:LEX:1": ide.AnswerYes,
		}).
		SetProgress(100).
		Save(ctx)
	if err != nil {
		t.Fatalf("create passation: %v", err)
	}

	return &fixture{
		client:       client,
		svc:          New(client, catalog.New(client, nil), clock, nil, nil),
		clock:        clock,
		practitioner: practitioner,
		patient:      patient,
		prescription: presc,
		passation:    pass,
	}
}

func (f *fixture) generate(t *testing.T) *repo.Bilan {
	t.Helper()
	b, err := f.svc.Generate(context.Background(), f.passation.ID)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return b
}

func TestGenerate(t *testing.T) {
	f := newFixture(t)
	b := f.generate(t)

	if b.Status != entbilan.StatusGenerated {
		t.Errorf("status = %s, want generated", b.Status)
	}
	if b.Version != 1 {
		t.Errorf("version = %d, want 1", b.Version)
	}
	// DG counts A:SO:1 and B:LEX:1 (yes on DG items): 2 points, far below
	// the very-high-risk threshold at 30 months.
	if b.DgScore != 2 {
		t.Errorf("dg score = %d, want 2", b.DgScore)
	}
	if b.GlobalRisk != entbilan.GlobalRiskVeryHigh {
		t.Errorf("global risk = %s, want very_high", b.GlobalRisk)
	}
	if b.DevelopmentalAgeMonths != 2 {
		t.Errorf("developmental age = %d, want 2 (equal to DG score)", b.DevelopmentalAgeMonths)
	}
	if !strings.Contains(b.Interpretation, "SCORE DE DÉVELOPPEMENT GÉNÉRAL") {
		t.Error("interpretation is missing the DG headline")
	}
	if len(b.GraphicProfile) != len(ide.ProfileDomains) {
		t.Errorf("graphic profile has %d entries, want %d", len(b.GraphicProfile), len(ide.ProfileDomains))
	}
	if b.Recommendations == nil || *b.Recommendations == "" {
		t.Error("recommendations not set")
	}
}

func TestGenerateVersioning(t *testing.T) {
	f := newFixture(t)

	first := f.generate(t)
	second := f.generate(t)

	if first.Version != 1 || second.Version != 2 {
		t.Errorf("versions = %d, %d, want 1, 2", first.Version, second.Version)
	}

	rows, err := f.svc.ForPrescription(context.Background(), f.prescription.ID)
	if err != nil {
		t.Fatalf("ForPrescription() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d bilans, want 2", len(rows))
	}
	if rows[0].Version != 2 {
		t.Errorf("first listed version = %d, want newest first", rows[0].Version)
	}
}

func TestGenerateRequiresFinishedPassation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.client.Passation.UpdateOneID(f.passation.ID).
		SetStatus(entpass.StatusInProgress).
		Save(ctx); err != nil {
		t.Fatalf("reset passation status: %v", err)
	}

	_, err := f.svc.Generate(ctx, f.passation.ID)
	if !errors.Is(err, ErrPassationNotFinished) {
		t.Errorf("Generate() error = %v, want ErrPassationNotFinished", err)
	}
}

func TestGenerateUnknownPassation(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Generate(context.Background(), uuid.New())
	if !errors.Is(err, ErrPassationNotFound) {
		t.Errorf("Generate() error = %v, want ErrPassationNotFound", err)
	}
}

func TestGenerateAppendsConsistencyWarnings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// One answer out of four applicable items: incomplete passation.
	if _, err := f.client.Passation.UpdateOneID(f.passation.ID).
		SetAnswers(ide.AnswerSet{"A:SO:1": ide.AnswerYes}).
		Save(ctx); err != nil {
		t.Fatalf("shrink answers: %v", err)
	}

	b := f.generate(t)
	if !strings.Contains(b.Interpretation, "AVERTISSEMENTS") {
		t.Error("interpretation is missing the warnings section")
	}
	if !strings.Contains(b.Interpretation, "Passation incomplète") {
		t.Error("interpretation is missing the completeness warning")
	}
}

func TestReview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.generate(t)

	comments := "Profil cohérent avec l'anamnèse."
	reco := "Orientation vers un bilan orthophonique complet."
	b, err := f.svc.Review(ctx, b.ID, ReviewRequest{
		PractitionerID:  f.practitioner.ID,
		Comments:        &comments,
		Recommendations: &reco,
	})
	if err != nil {
		t.Fatalf("Review() error = %v", err)
	}
	if b.Status != entbilan.StatusInReview {
		t.Errorf("status = %s, want in_review", b.Status)
	}
	if b.PractitionerComments == nil || *b.PractitionerComments != comments {
		t.Errorf("comments = %v, want %q", b.PractitionerComments, comments)
	}
	if b.Recommendations == nil || *b.Recommendations != reco {
		t.Errorf("recommendations = %v, want %q", b.Recommendations, reco)
	}
}

func TestReviewOwnership(t *testing.T) {
	f := newFixture(t)
	b := f.generate(t)

	_, err := f.svc.Review(context.Background(), b.ID, ReviewRequest{PractitionerID: uuid.New()})
	if !errors.Is(err, ErrAccessDenied) {
		t.Errorf("Review() error = %v, want ErrAccessDenied", err)
	}
}

func TestReviewAfterValidationReopensReview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.generate(t)

	if _, err := f.svc.Validate(ctx, b.ID, f.practitioner.ID, nil); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	// New comments on a validated bilan reopen the review cycle.
	comments := "Complément après relecture du dossier."
	b, err := f.svc.Review(ctx, b.ID, ReviewRequest{
		PractitionerID: f.practitioner.ID,
		Comments:       &comments,
	})
	if err != nil {
		t.Fatalf("Review(validated) error = %v", err)
	}
	if b.Status != entbilan.StatusInReview {
		t.Errorf("status = %s, want in_review", b.Status)
	}

	// The bilan can then be validated again.
	b, err = f.svc.Validate(ctx, b.ID, f.practitioner.ID, nil)
	if err != nil {
		t.Fatalf("re-Validate() error = %v", err)
	}
	if b.Status != entbilan.StatusValidated {
		t.Errorf("status = %s, want validated", b.Status)
	}
}

func TestValidateWithComments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.generate(t)

	comments := "Validé après entretien avec les parents."
	b, err := f.svc.Validate(ctx, b.ID, f.practitioner.ID, &comments)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if b.Status != entbilan.StatusValidated {
		t.Errorf("status = %s, want validated", b.Status)
	}
	if b.PractitionerComments == nil || *b.PractitionerComments != comments {
		t.Errorf("comments = %v, want %q", b.PractitionerComments, comments)
	}
}

func TestValidate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.generate(t)

	b, err := f.svc.Validate(ctx, b.ID, f.practitioner.ID, nil)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if b.Status != entbilan.StatusValidated {
		t.Errorf("status = %s, want validated", b.Status)
	}
	if b.ValidatedAt == nil {
		t.Fatal("validated_at not set")
	}
	firstValidation := *b.ValidatedAt

	presc, err := f.client.Prescription.Get(ctx, f.prescription.ID)
	if err != nil {
		t.Fatalf("reload prescription: %v", err)
	}
	if presc.Status != entpresc.StatusValidated {
		t.Errorf("prescription status = %s, want validated", presc.Status)
	}

	// Re-validating keeps the original timestamp.
	f.clock.Advance(time.Hour)
	b, err = f.svc.Validate(ctx, b.ID, f.practitioner.ID, nil)
	if err != nil {
		t.Fatalf("second Validate() error = %v", err)
	}
	if !b.ValidatedAt.Equal(firstValidation) {
		t.Errorf("validated_at moved from %v to %v", firstValidation, *b.ValidatedAt)
	}
}

func TestFinalize(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.generate(t)

	// Finalizing skips nothing: validation comes first.
	if _, err := f.svc.Finalize(ctx, b.ID, f.practitioner.ID); !errors.Is(err, ErrNotValidated) {
		t.Errorf("Finalize(generated) error = %v, want ErrNotValidated", err)
	}

	if _, err := f.svc.Validate(ctx, b.ID, f.practitioner.ID, nil); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	b, err := f.svc.Finalize(ctx, b.ID, f.practitioner.ID)
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if b.Status != entbilan.StatusFinalized {
		t.Errorf("status = %s, want finalized", b.Status)
	}

	// A finalized bilan is immutable.
	if _, err := f.svc.Review(ctx, b.ID, ReviewRequest{PractitionerID: f.practitioner.ID}); !errors.Is(err, ErrBilanImmutable) {
		t.Errorf("Review(finalized) error = %v, want ErrBilanImmutable", err)
	}
	if _, err := f.svc.Validate(ctx, b.ID, f.practitioner.ID, nil); !errors.Is(err, ErrBilanImmutable) {
		t.Errorf("Validate(finalized) error = %v, want ErrBilanImmutable", err)
	}
	if _, err := f.svc.Finalize(ctx, b.ID, f.practitioner.ID); !errors.Is(err, ErrBilanImmutable) {
		t.Errorf("Finalize(finalized) error = %v, want ErrBilanImmutable", err)
	}
}

func TestExecutiveSummary(t *testing.T) {
	f := newFixture(t)
	b := f.generate(t)

	summary, err := f.svc.ExecutiveSummary(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("ExecutiveSummary() error = %v", err)
	}
	if summary.BilanID != b.ID || summary.Version != 1 {
		t.Errorf("summary identity = %+v", summary)
	}
	if summary.GlobalRisk != "very_high" {
		t.Errorf("global risk = %q, want very_high", summary.GlobalRisk)
	}
	if summary.GlobalRiskName != "Très haut risque (THR)" {
		t.Errorf("risk name = %q", summary.GlobalRiskName)
	}
	if summary.DGScore != 2 {
		t.Errorf("dg score = %d, want 2", summary.DGScore)
	}
	if !strings.Contains(summary.Headline, "2 mois") {
		t.Errorf("headline = %q, want developmental age mention", summary.Headline)
	}
}

func TestCompare(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	older := f.generate(t)

	// The child progresses: second passation scores higher in SO.
	if _, err := f.client.Passation.UpdateOneID(f.passation.ID).
		SetAnswers(ide.AnswerSet{
			"A:SO:1":  ide.AnswerYes,
			"A:SO:2":  ide.AnswerYes,
			"A:MG:1":  ide.AnswerYes,
			"B:LEX:1": ide.AnswerYes,
		}).
		SetScores(nil).
		Save(ctx); err != nil {
		t.Fatalf("update answers: %v", err)
	}
	newer := f.generate(t)

	cmp, err := f.svc.Compare(ctx, older.ID, newer.ID)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if cmp.DGDelta != 1 { // MG item joins the DG count
		t.Errorf("DG delta = %d, want 1", cmp.DGDelta)
	}
	if len(cmp.Domains) != len(ide.ProfileDomains) {
		t.Fatalf("got %d domain rows, want %d", len(cmp.Domains), len(ide.ProfileDomains))
	}
	for _, d := range cmp.Domains {
		if d.Domain == "MG" {
			if d.Delta != 1 || d.Evolution != "stable" {
				t.Errorf("MG evolution = %+v, want delta 1 within the stable band", d)
			}
		}
	}
}

func TestCompareDifferentPatients(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mine := f.generate(t)

	other, err := f.client.Patient.Create().
		SetPractitionerID(f.practitioner.ID).
		SetFirstName("Emma").
		SetLastName("Petit").
		SetBirthDate(time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC)).
		SetGuardianEmail("autre.parent@example.fr").
		Save(ctx)
	if err != nil {
		t.Fatalf("create other patient: %v", err)
	}
	otherPresc, err := f.client.Prescription.Create().
		SetPractitionerID(f.practitioner.ID).
		SetPatientID(other.ID).
		SetTestID(f.prescription.TestID).
		SetStatus(entpresc.StatusCompleted).
		SetGdprConsent(true).
		Save(ctx)
	if err != nil {
		t.Fatalf("create other prescription: %v", err)
	}
	otherPass, err := f.client.Passation.Create().
		SetPrescriptionID(otherPresc.ID).
		SetStatus(entpass.StatusFinished).
		SetBirthDate(other.BirthDate).
		SetStartedAt(f.clock.Now()).
		SetLastActivityAt(f.clock.Now()).
		SetChronologicalAgeMonths(27).
		SetAnswers(ide.AnswerSet{"A:SO:1": ide.AnswerYes}).
		Save(ctx)
	if err != nil {
		t.Fatalf("create other passation: %v", err)
	}
	theirs, err := f.svc.Generate(ctx, otherPass.ID)
	if err != nil {
		t.Fatalf("Generate(other) error = %v", err)
	}

	if _, err := f.svc.Compare(ctx, mine.ID, theirs.ID); !errors.Is(err, ErrDifferentPatients) {
		t.Errorf("Compare() error = %v, want ErrDifferentPatients", err)
	}
}

func TestPendingValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.generate(t)

	pending, err := f.svc.PendingValidation(ctx, f.practitioner.ID)
	if err != nil {
		t.Fatalf("PendingValidation() error = %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("got %d pending bilans, want 1", len(pending))
	}

	if _, err := f.svc.Validate(ctx, b.ID, f.practitioner.ID, nil); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	pending, err = f.svc.PendingValidation(ctx, f.practitioner.ID)
	if err != nil {
		t.Fatalf("PendingValidation() error = %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("got %d pending bilans after validation, want 0", len(pending))
	}

	// Other practitioners see nothing.
	pending, err = f.svc.PendingValidation(ctx, uuid.New())
	if err != nil {
		t.Fatalf("PendingValidation() error = %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("got %d pending bilans for a stranger, want 0", len(pending))
	}
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.generate(t)
	if _, err := f.svc.Validate(ctx, b.ID, f.practitioner.ID, nil); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	stats, err := f.svc.Stats(ctx, f.practitioner.ID)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.ByStatus["validated"] != 1 {
		t.Errorf("validated count = %d, want 1", stats.ByStatus["validated"])
	}
	if stats.ByGlobalRisk["very_high"] != 1 {
		t.Errorf("very_high count = %d, want 1", stats.ByGlobalRisk["very_high"])
	}
}
