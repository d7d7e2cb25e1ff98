// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/repo/activationtoken"
	"github.com/ortholab/depisto_backend/internal/repo/bilan"
	"github.com/ortholab/depisto_backend/internal/repo/passation"
	"github.com/ortholab/depisto_backend/internal/repo/patient"
	"github.com/ortholab/depisto_backend/internal/repo/prescription"
	"github.com/ortholab/depisto_backend/internal/repo/test"
	"github.com/ortholab/depisto_backend/internal/repo/testitem"
	"github.com/ortholab/depisto_backend/internal/repo/user"
	"github.com/ortholab/depisto_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activationtokenMixin := schema.ActivationToken{}.Mixin()
	activationtokenMixinFields0 := activationtokenMixin[0].Fields()
	_ = activationtokenMixinFields0
	activationtokenMixinFields1 := activationtokenMixin[1].Fields()
	_ = activationtokenMixinFields1
	activationtokenFields := schema.ActivationToken{}.Fields()
	_ = activationtokenFields
	// activationtokenDescCreatedAt is the schema descriptor for created_at field.
	activationtokenDescCreatedAt := activationtokenMixinFields1[0].Descriptor()
	// activationtoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	activationtoken.DefaultCreatedAt = activationtokenDescCreatedAt.Default.(func() time.Time)
	// activationtokenDescTokenHash is the schema descriptor for token_hash field.
	activationtokenDescTokenHash := activationtokenFields[1].Descriptor()
	// activationtoken.TokenHashValidator is a validator for the "token_hash" field. It is called by the builders before save.
	activationtoken.TokenHashValidator = activationtokenDescTokenHash.Validators[0].(func(string) error)
	// activationtokenDescID is the schema descriptor for id field.
	activationtokenDescID := activationtokenMixinFields0[0].Descriptor()
	// activationtoken.DefaultID holds the default value on creation for the id field.
	activationtoken.DefaultID = activationtokenDescID.Default.(func() uuid.UUID)
	bilanMixin := schema.Bilan{}.Mixin()
	bilanMixinFields0 := bilanMixin[0].Fields()
	_ = bilanMixinFields0
	bilanMixinFields1 := bilanMixin[1].Fields()
	_ = bilanMixinFields1
	bilanFields := schema.Bilan{}.Fields()
	_ = bilanFields
	// bilanDescCreatedAt is the schema descriptor for created_at field.
	bilanDescCreatedAt := bilanMixinFields1[0].Descriptor()
	// bilan.DefaultCreatedAt holds the default value on creation for the created_at field.
	bilan.DefaultCreatedAt = bilanDescCreatedAt.Default.(func() time.Time)
	// bilanDescUpdatedAt is the schema descriptor for updated_at field.
	bilanDescUpdatedAt := bilanMixinFields1[1].Descriptor()
	// bilan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bilan.DefaultUpdatedAt = bilanDescUpdatedAt.Default.(func() time.Time)
	// bilan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bilan.UpdateDefaultUpdatedAt = bilanDescUpdatedAt.UpdateDefault.(func() time.Time)
	// bilanDescVersion is the schema descriptor for version field.
	bilanDescVersion := bilanFields[2].Descriptor()
	// bilan.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	bilan.VersionValidator = bilanDescVersion.Validators[0].(func(int) error)
	// bilanDescDgScore is the schema descriptor for dg_score field.
	bilanDescDgScore := bilanFields[4].Descriptor()
	// bilan.DgScoreValidator is a validator for the "dg_score" field. It is called by the builders before save.
	bilan.DgScoreValidator = bilanDescDgScore.Validators[0].(func(int) error)
	// bilanDescDevelopmentalAgeMonths is the schema descriptor for developmental_age_months field.
	bilanDescDevelopmentalAgeMonths := bilanFields[6].Descriptor()
	// bilan.DevelopmentalAgeMonthsValidator is a validator for the "developmental_age_months" field. It is called by the builders before save.
	bilan.DevelopmentalAgeMonthsValidator = bilanDescDevelopmentalAgeMonths.Validators[0].(func(int) error)
	// bilanDescPdfKey is the schema descriptor for pdf_key field.
	bilanDescPdfKey := bilanFields[15].Descriptor()
	// bilan.PdfKeyValidator is a validator for the "pdf_key" field. It is called by the builders before save.
	bilan.PdfKeyValidator = bilanDescPdfKey.Validators[0].(func(string) error)
	// bilanDescID is the schema descriptor for id field.
	bilanDescID := bilanMixinFields0[0].Descriptor()
	// bilan.DefaultID holds the default value on creation for the id field.
	bilan.DefaultID = bilanDescID.Default.(func() uuid.UUID)
	passationMixin := schema.Passation{}.Mixin()
	passationMixinFields0 := passationMixin[0].Fields()
	_ = passationMixinFields0
	passationMixinFields1 := passationMixin[1].Fields()
	_ = passationMixinFields1
	passationFields := schema.Passation{}.Fields()
	_ = passationFields
	// passationDescCreatedAt is the schema descriptor for created_at field.
	passationDescCreatedAt := passationMixinFields1[0].Descriptor()
	// passation.DefaultCreatedAt holds the default value on creation for the created_at field.
	passation.DefaultCreatedAt = passationDescCreatedAt.Default.(func() time.Time)
	// passationDescUpdatedAt is the schema descriptor for updated_at field.
	passationDescUpdatedAt := passationMixinFields1[1].Descriptor()
	// passation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	passation.DefaultUpdatedAt = passationDescUpdatedAt.Default.(func() time.Time)
	// passation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	passation.UpdateDefaultUpdatedAt = passationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// passationDescAnswers is the schema descriptor for answers field.
	passationDescAnswers := passationFields[2].Descriptor()
	// passation.DefaultAnswers holds the default value on creation for the answers field.
	passation.DefaultAnswers = passationDescAnswers.Default.(ide.AnswerSet)
	// passationDescProgress is the schema descriptor for progress field.
	passationDescProgress := passationFields[4].Descriptor()
	// passation.DefaultProgress holds the default value on creation for the progress field.
	passation.DefaultProgress = passationDescProgress.Default.(int)
	// passation.ProgressValidator is a validator for the "progress" field. It is called by the builders before save.
	passation.ProgressValidator = func() func(int) error {
		validators := passationDescProgress.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(progress int) error {
			for _, fn := range fns {
				if err := fn(progress); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// passationDescCurrentPart is the schema descriptor for current_part field.
	passationDescCurrentPart := passationFields[5].Descriptor()
	// passation.CurrentPartValidator is a validator for the "current_part" field. It is called by the builders before save.
	passation.CurrentPartValidator = passationDescCurrentPart.Validators[0].(func(string) error)
	// passationDescChronologicalAgeMonths is the schema descriptor for chronological_age_months field.
	passationDescChronologicalAgeMonths := passationFields[6].Descriptor()
	// passation.ChronologicalAgeMonthsValidator is a validator for the "chronological_age_months" field. It is called by the builders before save.
	passation.ChronologicalAgeMonthsValidator = passationDescChronologicalAgeMonths.Validators[0].(func(int) error)
	// passationDescIPAddress is the schema descriptor for ip_address field.
	passationDescIPAddress := passationFields[12].Descriptor()
	// passation.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	passation.IPAddressValidator = passationDescIPAddress.Validators[0].(func(string) error)
	// passationDescID is the schema descriptor for id field.
	passationDescID := passationMixinFields0[0].Descriptor()
	// passation.DefaultID holds the default value on creation for the id field.
	passation.DefaultID = passationDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescFirstName is the schema descriptor for first_name field.
	patientDescFirstName := patientFields[1].Descriptor()
	// patient.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	patient.FirstNameValidator = patientDescFirstName.Validators[0].(func(string) error)
	// patientDescLastName is the schema descriptor for last_name field.
	patientDescLastName := patientFields[2].Descriptor()
	// patient.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	patient.LastNameValidator = patientDescLastName.Validators[0].(func(string) error)
	// patientDescGuardianEmail is the schema descriptor for guardian_email field.
	patientDescGuardianEmail := patientFields[4].Descriptor()
	// patient.GuardianEmailValidator is a validator for the "guardian_email" field. It is called by the builders before save.
	patient.GuardianEmailValidator = patientDescGuardianEmail.Validators[0].(func(string) error)
	// patientDescGuardianPhone is the schema descriptor for guardian_phone field.
	patientDescGuardianPhone := patientFields[5].Descriptor()
	// patient.GuardianPhoneValidator is a validator for the "guardian_phone" field. It is called by the builders before save.
	patient.GuardianPhoneValidator = patientDescGuardianPhone.Validators[0].(func(string) error)
	// patientDescActivated is the schema descriptor for activated field.
	patientDescActivated := patientFields[8].Descriptor()
	// patient.DefaultActivated holds the default value on creation for the activated field.
	patient.DefaultActivated = patientDescActivated.Default.(bool)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	prescriptionMixin := schema.Prescription{}.Mixin()
	prescriptionMixinFields0 := prescriptionMixin[0].Fields()
	_ = prescriptionMixinFields0
	prescriptionMixinFields1 := prescriptionMixin[1].Fields()
	_ = prescriptionMixinFields1
	prescriptionFields := schema.Prescription{}.Fields()
	_ = prescriptionFields
	// prescriptionDescCreatedAt is the schema descriptor for created_at field.
	prescriptionDescCreatedAt := prescriptionMixinFields1[0].Descriptor()
	// prescription.DefaultCreatedAt holds the default value on creation for the created_at field.
	prescription.DefaultCreatedAt = prescriptionDescCreatedAt.Default.(func() time.Time)
	// prescriptionDescUpdatedAt is the schema descriptor for updated_at field.
	prescriptionDescUpdatedAt := prescriptionMixinFields1[1].Descriptor()
	// prescription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prescription.DefaultUpdatedAt = prescriptionDescUpdatedAt.Default.(func() time.Time)
	// prescription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prescription.UpdateDefaultUpdatedAt = prescriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// prescriptionDescGdprConsent is the schema descriptor for gdpr_consent field.
	prescriptionDescGdprConsent := prescriptionFields[4].Descriptor()
	// prescription.DefaultGdprConsent holds the default value on creation for the gdpr_consent field.
	prescription.DefaultGdprConsent = prescriptionDescGdprConsent.Default.(bool)
	// prescriptionDescPriority is the schema descriptor for priority field.
	prescriptionDescPriority := prescriptionFields[5].Descriptor()
	// prescription.DefaultPriority holds the default value on creation for the priority field.
	prescription.DefaultPriority = prescriptionDescPriority.Default.(int)
	// prescription.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	prescription.PriorityValidator = func() func(int) error {
		validators := prescriptionDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// prescriptionDescID is the schema descriptor for id field.
	prescriptionDescID := prescriptionMixinFields0[0].Descriptor()
	// prescription.DefaultID holds the default value on creation for the id field.
	prescription.DefaultID = prescriptionDescID.Default.(func() uuid.UUID)
	testMixin := schema.Test{}.Mixin()
	testMixinFields0 := testMixin[0].Fields()
	_ = testMixinFields0
	testMixinFields1 := testMixin[1].Fields()
	_ = testMixinFields1
	testFields := schema.Test{}.Fields()
	_ = testFields
	// testDescCreatedAt is the schema descriptor for created_at field.
	testDescCreatedAt := testMixinFields1[0].Descriptor()
	// test.DefaultCreatedAt holds the default value on creation for the created_at field.
	test.DefaultCreatedAt = testDescCreatedAt.Default.(func() time.Time)
	// testDescUpdatedAt is the schema descriptor for updated_at field.
	testDescUpdatedAt := testMixinFields1[1].Descriptor()
	// test.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	test.DefaultUpdatedAt = testDescUpdatedAt.Default.(func() time.Time)
	// test.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	test.UpdateDefaultUpdatedAt = testDescUpdatedAt.UpdateDefault.(func() time.Time)
	// testDescName is the schema descriptor for name field.
	testDescName := testFields[1].Descriptor()
	// test.NameValidator is a validator for the "name" field. It is called by the builders before save.
	test.NameValidator = testDescName.Validators[0].(func(string) error)
	// testDescAgeMinMonths is the schema descriptor for age_min_months field.
	testDescAgeMinMonths := testFields[3].Descriptor()
	// test.DefaultAgeMinMonths holds the default value on creation for the age_min_months field.
	test.DefaultAgeMinMonths = testDescAgeMinMonths.Default.(int)
	// testDescAgeMaxMonths is the schema descriptor for age_max_months field.
	testDescAgeMaxMonths := testFields[4].Descriptor()
	// test.DefaultAgeMaxMonths holds the default value on creation for the age_max_months field.
	test.DefaultAgeMaxMonths = testDescAgeMaxMonths.Default.(int)
	// testDescIsActive is the schema descriptor for is_active field.
	testDescIsActive := testFields[5].Descriptor()
	// test.DefaultIsActive holds the default value on creation for the is_active field.
	test.DefaultIsActive = testDescIsActive.Default.(bool)
	// testDescID is the schema descriptor for id field.
	testDescID := testMixinFields0[0].Descriptor()
	// test.DefaultID holds the default value on creation for the id field.
	test.DefaultID = testDescID.Default.(func() uuid.UUID)
	testitemMixin := schema.TestItem{}.Mixin()
	testitemMixinFields0 := testitemMixin[0].Fields()
	_ = testitemMixinFields0
	testitemMixinFields1 := testitemMixin[1].Fields()
	_ = testitemMixinFields1
	testitemFields := schema.TestItem{}.Fields()
	_ = testitemFields
	// testitemDescCreatedAt is the schema descriptor for created_at field.
	testitemDescCreatedAt := testitemMixinFields1[0].Descriptor()
	// testitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	testitem.DefaultCreatedAt = testitemDescCreatedAt.Default.(func() time.Time)
	// testitemDescUpdatedAt is the schema descriptor for updated_at field.
	testitemDescUpdatedAt := testitemMixinFields1[1].Descriptor()
	// testitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	testitem.DefaultUpdatedAt = testitemDescUpdatedAt.Default.(func() time.Time)
	// testitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	testitem.UpdateDefaultUpdatedAt = testitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// testitemDescPart is the schema descriptor for part field.
	testitemDescPart := testitemFields[1].Descriptor()
	// testitem.PartValidator is a validator for the "part" field. It is called by the builders before save.
	testitem.PartValidator = testitemDescPart.Validators[0].(func(string) error)
	// testitemDescDomain is the schema descriptor for domain field.
	testitemDescDomain := testitemFields[2].Descriptor()
	// testitem.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	testitem.DomainValidator = testitemDescDomain.Validators[0].(func(string) error)
	// testitemDescItemOrder is the schema descriptor for item_order field.
	testitemDescItemOrder := testitemFields[3].Descriptor()
	// testitem.ItemOrderValidator is a validator for the "item_order" field. It is called by the builders before save.
	testitem.ItemOrderValidator = testitemDescItemOrder.Validators[0].(func(int) error)
	// testitemDescCountsDg is the schema descriptor for counts_dg field.
	testitemDescCountsDg := testitemFields[5].Descriptor()
	// testitem.DefaultCountsDg holds the default value on creation for the counts_dg field.
	testitem.DefaultCountsDg = testitemDescCountsDg.Default.(bool)
	// testitemDescIsActive is the schema descriptor for is_active field.
	testitemDescIsActive := testitemFields[8].Descriptor()
	// testitem.DefaultIsActive holds the default value on creation for the is_active field.
	testitem.DefaultIsActive = testitemDescIsActive.Default.(bool)
	// testitemDescID is the schema descriptor for id field.
	testitemDescID := testitemMixinFields0[0].Descriptor()
	// testitem.DefaultID holds the default value on creation for the id field.
	testitem.DefaultID = testitemDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[3].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescRppsNumber is the schema descriptor for rpps_number field.
	userDescRppsNumber := userFields[6].Descriptor()
	// user.RppsNumberValidator is a validator for the "rpps_number" field. It is called by the builders before save.
	user.RppsNumberValidator = userDescRppsNumber.Validators[0].(func(string) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
