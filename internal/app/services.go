package app

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/ortholab/depisto_backend/config"
	"github.com/ortholab/depisto_backend/internal/repo"
	"github.com/ortholab/depisto_backend/internal/service/auth"
	"github.com/ortholab/depisto_backend/internal/service/bilan"
	"github.com/ortholab/depisto_backend/internal/service/catalog"
	"github.com/ortholab/depisto_backend/internal/service/passation"
	"github.com/ortholab/depisto_backend/internal/service/patient"
	"github.com/ortholab/depisto_backend/internal/service/patientaccount"
	"github.com/ortholab/depisto_backend/internal/service/prescription"
	"github.com/ortholab/depisto_backend/internal/service/user"
	"github.com/ortholab/depisto_backend/pkg/authorize"
	"github.com/ortholab/depisto_backend/pkg/crypto"
	"github.com/ortholab/depisto_backend/pkg/email"
	pasetotoken "github.com/ortholab/depisto_backend/pkg/paseto"
	s3pkg "github.com/ortholab/depisto_backend/pkg/s3"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideClock,
		ProvidePasetoManager,
		ProvideCatalogService,
		ProvideUserService,
		ProvideAuthService,
		ProvidePatientService,
		ProvidePatientAccountService,
		ProvidePrescriptionService,
		ProvidePassationService,
		ProvideBilanService,
	),
)

func ProvideClock() clockwork.Clock {
	return clockwork.NewRealClock()
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}

func ProvideCatalogService(db *repo.Client, rdb *redis.Client) catalog.Service {
	return catalog.New(db, rdb)
}

func ProvideUserService(db *repo.Client, clock clockwork.Clock) user.Service {
	return user.New(db, clock)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	clock clockwork.Clock,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, authz, clock, cfg)
}

func ProvidePatientService(db *repo.Client, clock clockwork.Clock, cfg *config.Config) (patient.Service, error) {
	aesKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("patient service: invalid encryption key: %w", err)
	}
	return patient.New(db, clock, aesKey), nil
}

func ProvidePatientAccountService(
	db *repo.Client,
	rdb *redis.Client,
	mail *email.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	clock clockwork.Clock,
	nc *nats.Conn,
	cfg *config.Config,
) patientaccount.Service {
	return patientaccount.New(db, rdb, mail, paseto, authz, clock, nc, cfg)
}

func ProvidePrescriptionService(db *repo.Client, cat catalog.Service, clock clockwork.Clock, nc *nats.Conn) prescription.Service {
	return prescription.New(db, cat, clock, nc)
}

func ProvidePassationService(db *repo.Client, cat catalog.Service, clock clockwork.Clock, cfg *config.Config) passation.Service {
	return passation.New(db, cat, clock, cfg)
}

func ProvideBilanService(db *repo.Client, cat catalog.Service, clock clockwork.Clock, nc *nats.Conn, storage *s3pkg.Client) bilan.Service {
	return bilan.New(db, cat, clock, nc, storage)
}
