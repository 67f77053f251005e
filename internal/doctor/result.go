// Package doctor checks that the environment sdkpin drives is usable.
package doctor

// Status is the severity of a check result.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is the outcome of a single check.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}
