package messages

// Reconciliation engine messages.
const (
	ReconcileActionsFailed    = "one or more sdk actions failed"
	ReconcileListInstalledFmt = "list installed versions of %s: %w"
	ReconcileListAvailableFmt = "list available versions of %s: %w"
	ReconcileConfirmFmt       = "confirm plan for %s: %w"
	ReconcileExecutorRequired = "reconcile executor is required"
	ReconcileDiffInstalledFmt = "%s (installed)"
	ReconcileDiffDesiredFmt   = "%s (desired)"
)
