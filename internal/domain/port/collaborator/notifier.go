package collaborator

// NotificationKind labels the lifecycle event a message is about
type NotificationKind string

// Notification kinds dispatched on state transitions
const (
	KindApplicationDecided   NotificationKind = "application_decided"
	KindContractReady        NotificationKind = "contract_ready"
	KindSignatureComplete    NotificationKind = "signature_complete"
	KindPaymentReceived      NotificationKind = "payment_received"
	KindLeaseActivated       NotificationKind = "lease_activated"
	KindTerminationScheduled NotificationKind = "termination_scheduled"
	KindLeaseCompleted       NotificationKind = "lease_completed"
)

// Notification is one fire-and-forget message to a party
type Notification struct {
	RecipientID uint64
	Kind        NotificationKind
	Title       string
	Body        string
}

// Notifier accepts fire-and-forget messages triggered by state transitions.
// Dispatch must never block a transition's commit and a delivery failure
// must never roll back a committed state change; retries belong to the
// external notification collaborator.
type Notifier interface {
	Notify(notification Notification)
}
