package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/ortholab/depisto_backend/config"
	"github.com/ortholab/depisto_backend/internal/events"
	"github.com/ortholab/depisto_backend/internal/repo"
	entbilan "github.com/ortholab/depisto_backend/internal/repo/bilan"
	entpass "github.com/ortholab/depisto_backend/internal/repo/passation"
	entpresc "github.com/ortholab/depisto_backend/internal/repo/prescription"
	"github.com/ortholab/depisto_backend/internal/service/patientaccount"
	"github.com/ortholab/depisto_backend/pkg/email"
)

// WorkerModule registers all NATS event workers and periodic jobs.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc         fx.Lifecycle
	NC         *nats.Conn
	DB         *repo.Client
	RDB        *redis.Client
	Mail       *email.Client
	AccountSvc patientaccount.Service
	Cfg        *config.Config
}

func RegisterWorkers(p WorkerParams) {
	ctx, cancel := context.WithCancel(context.Background())

	p.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			startBilanReadyWorker(p.NC, p.DB, p.Mail, p.Cfg)
			startActivationWorker(p.NC, p.DB, p.AccountSvc)
			go runReminderLoop(ctx, p.DB, p.RDB, p.Mail, p.Cfg)
			return nil
		},
		OnStop: func(context.Context) error {
			// NATS drain handled by ProvideNatsClient
			cancel()
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// bilan_worker
// ---------------------------------------------------------------------------

// startBilanReadyWorker mails the prescribing practitioner when a bilan
// has been generated.
func startBilanReadyWorker(nc *nats.Conn, db *repo.Client, mail *email.Client, cfg *config.Config) {
	_, err := nc.Subscribe(events.Wildcard(events.SubjectBilanReady), func(msg *nats.Msg) {
		bilanIDStr := strings.TrimSpace(string(msg.Data))
		bilanID, err := uuid.Parse(bilanIDStr)
		if err != nil {
			return
		}

		ctx := context.Background()

		b, err := db.Bilan.Query().
			Where(entbilan.ID(bilanID)).
			WithPrescription(func(q *repo.PrescriptionQuery) {
				q.WithPractitioner().WithPatient().WithTest()
			}).
			Only(ctx)
		if err != nil {
			slog.Warn("bilan_worker: bilan not found", "id", bilanIDStr, "err", err)
			return
		}

		presc := b.Edges.Prescription
		if presc == nil || presc.Edges.Practitioner == nil || presc.Edges.Patient == nil {
			slog.Warn("bilan_worker: prescription edges missing", "bilan_id", bilanIDStr)
			return
		}
		practitioner := presc.Edges.Practitioner
		patient := presc.Edges.Patient

		testName := ""
		if presc.Edges.Test != nil {
			testName = presc.Edges.Test.Name
		}

		m := email.BuildBilanReadyEmail(email.BilanReadyEmailData{
			PractitionerEmail: practitioner.Email,
			PractitionerName:  practitioner.FirstName + " " + practitioner.LastName,
			PatientName:       patient.FirstName + " " + patient.LastName,
			TestName:          testName,
			BilanURL:          fmt.Sprintf("https://%s/bilans/%s", cfg.Server.Domain, b.ID),
		})
		if err := mail.Send(ctx, m); err != nil {
			slog.Warn("bilan_worker: email failed", "bilan_id", bilanIDStr, "err", err)
		}
	})
	if err != nil {
		slog.Error("bilan_worker: subscribe bilan.ready failed", "err", err)
	}

	slog.Info("bilan_worker: started")
}

// ---------------------------------------------------------------------------
// activation_worker
// ---------------------------------------------------------------------------

// startActivationWorker issues a guardian activation link when a test is
// prescribed to a patient whose family space was never activated.
func startActivationWorker(nc *nats.Conn, db *repo.Client, accounts patientaccount.Service) {
	_, err := nc.Subscribe(events.Wildcard(events.SubjectPrescriptionCreated), func(msg *nats.Msg) {
		prescIDStr := strings.TrimSpace(string(msg.Data))
		prescID, err := uuid.Parse(prescIDStr)
		if err != nil {
			return
		}

		ctx := context.Background()

		presc, err := db.Prescription.Query().
			Where(entpresc.ID(prescID)).
			WithPatient().
			Only(ctx)
		if err != nil {
			slog.Warn("activation_worker: prescription not found", "id", prescIDStr, "err", err)
			return
		}
		if presc.Edges.Patient == nil || presc.Edges.Patient.Activated {
			return
		}

		err = accounts.IssueActivation(ctx, presc.PractitionerID, presc.PatientID)
		switch err {
		case nil:
			slog.Info("activation_worker: activation issued", "patient_id", presc.PatientID)
		case patientaccount.ErrAlreadyActivated:
			// raced with a manual activation, nothing to do
		default:
			slog.Warn("activation_worker: issue activation failed", "patient_id", presc.PatientID, "err", err)
		}
	})
	if err != nil {
		slog.Error("activation_worker: subscribe prescription.created failed", "err", err)
	}

	slog.Info("activation_worker: started")
}

// ---------------------------------------------------------------------------
// reminder_loop
// ---------------------------------------------------------------------------

// runReminderLoop periodically nudges guardians whose passation has been
// suspended beyond the configured window. A Redis key with a 24h TTL keeps
// reminders to at most one per day per passation.
func runReminderLoop(ctx context.Context, db *repo.Client, rdb *redis.Client, mail *email.Client, cfg *config.Config) {
	window := time.Duration(cfg.Tests.SuspendedReminderHours) * time.Hour
	if window <= 0 {
		window = 48 * time.Hour
	}

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	slog.Info("reminder_loop: started", "window", window)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sendSuspendedReminders(ctx, db, rdb, mail, cfg.Server.Domain, window)
		}
	}
}

func sendSuspendedReminders(ctx context.Context, db *repo.Client, rdb *redis.Client, mail *email.Client, domain string, window time.Duration) {
	cutoff := time.Now().Add(-window)

	stale, err := db.Passation.Query().
		Where(
			entpass.StatusEQ(entpass.StatusSuspended),
			entpass.UpdatedAtLT(cutoff),
		).
		WithPrescription(func(q *repo.PrescriptionQuery) {
			q.WithPatient().WithTest()
		}).
		All(ctx)
	if err != nil {
		slog.Warn("reminder_loop: query suspended passations failed", "err", err)
		return
	}

	for _, p := range stale {
		presc := p.Edges.Prescription
		if presc == nil || presc.Edges.Patient == nil {
			continue
		}
		patient := presc.Edges.Patient

		key := "passation:reminder:" + p.ID.String()
		ok, err := rdb.SetNX(ctx, key, "1", 24*time.Hour).Result()
		if err != nil || !ok {
			continue
		}

		testName := ""
		if presc.Edges.Test != nil {
			testName = presc.Edges.Test.Name
		}

		m := email.BuildSuspendedReminderEmail(email.ReminderEmailData{
			GuardianEmail:   patient.GuardianEmail,
			PatientName:     patient.FirstName + " " + patient.LastName,
			TestName:        testName,
			ProgressPercent: p.Progress,
			ResumeURL:       fmt.Sprintf("https://%s/passations/%s", domain, p.ID),
		})
		if err := mail.Send(ctx, m); err != nil {
			slog.Warn("reminder_loop: email failed", "passation_id", p.ID, "err", err)
		}
	}
}
