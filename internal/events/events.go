// Package events centralizes the NATS subjects of the notification bus.
// Services publish scoped subjects (root + entity id); workers subscribe
// with the wildcard form.
package events

import "github.com/nats-io/nats.go"

const (
	SubjectBilanReady          = "depisto.bilan.ready"
	SubjectPrescriptionCreated = "depisto.prescription.created"
	SubjectActivationIssued    = "depisto.patient.activation"
	SubjectPatientActivated    = "depisto.patient.activated"
)

// Scoped builds the per-entity subject a service publishes to.
func Scoped(root, id string) string { return root + "." + id }

// Wildcard builds the subscription pattern matching every entity id.
func Wildcard(root string) string { return root + ".*" }

// Publish sends a scoped event, dropping it when no connection is wired.
// Notifications are best-effort: the state change they announce has already
// been committed.
func Publish(nc *nats.Conn, root, id string, payload []byte) {
	if nc == nil {
		return
	}
	_ = nc.Publish(Scoped(root, id), payload)
}
