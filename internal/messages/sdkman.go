package messages

// SDKMAN collaborator messages.
const (
	SdkmanDirUnset         = "SDKMAN_DIR not set. Is SDKMAN installed?"
	SdkmanShellUnset       = "SHELL not set; sdk commands run through a login shell"
	SdkmanReadInstalledFmt = "read installed versions of %s in %s: %w"
	SdkmanListFailedFmt    = "sdk list %s failed: %s %s: %w"
	SdkmanQuoteArgFmt      = "quote sdk argument %q: %w"

	// SdkmanLockOpenFmt formats lock file open errors.
	SdkmanLockOpenFmt    = "open lock %s: %w"
	SdkmanLockFmt        = "lock %s: %w"
	SdkmanLockTimeoutFmt = "timed out after %s waiting for another sdkpin run to finish"
	SdkmanLockDirFmt     = "create lock directory %s: %w"
)
