package doctor

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/sdkpin/internal/messages"
	"github.com/conn-castle/sdkpin/internal/rules"
	"github.com/conn-castle/sdkpin/internal/sdkman"
)

var loadRulesFunc = rules.Load

// CheckSdkman verifies SDKMAN_DIR and its candidates directory.
func CheckSdkman(sys sdkman.System) []Result {
	client := sdkman.New(sys, false, false)
	dir, err := client.Dir()
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameSdkman,
			Message:        messages.DoctorSdkmanDirUnset,
			Recommendation: fmt.Sprintf(messages.DoctorSdkmanDirUnsetRecommend, defaultSdkmanDir()),
		}}
	}

	info, err := sys.Stat(dir)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameSdkman,
			Message:        fmt.Sprintf(messages.DoctorSdkmanDirMissingFmt, dir, err),
			Recommendation: messages.DoctorSdkmanDirRecommend,
		}}
	}
	if !info.IsDir() {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameSdkman,
			Message:        fmt.Sprintf(messages.DoctorSdkmanDirNotDirFmt, dir),
			Recommendation: messages.DoctorSdkmanDirRecommend,
		}}
	}
	results := []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameSdkman,
		Message:   fmt.Sprintf(messages.DoctorSdkmanDirOKFmt, dir),
	}}

	candidatesDir, _ := client.CandidatesDir()
	entries, err := sys.ReadDir(candidatesDir)
	if err != nil {
		// A fresh installation has no candidates yet; apply creates them.
		return append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameCandidates,
			Message:        fmt.Sprintf(messages.DoctorCandidatesMissingFmt, candidatesDir),
			Recommendation: messages.DoctorCandidatesRecommend,
		})
	}
	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			count++
		}
	}
	return append(results, Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameCandidates,
		Message:   fmt.Sprintf(messages.DoctorCandidatesFoundFmt, count),
	})
}

// CheckShell verifies SHELL names an executable file.
func CheckShell(sys sdkman.System) []Result {
	shell, ok := sys.LookupEnv(sdkman.EnvShell)
	if !ok || strings.TrimSpace(shell) == "" {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameShell,
			Message:        messages.DoctorShellUnset,
			Recommendation: messages.DoctorShellRecommend,
		}}
	}
	info, err := sys.Stat(shell)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameShell,
			Message:        fmt.Sprintf(messages.DoctorShellMissingFmt, shell, err),
			Recommendation: messages.DoctorShellRecommend,
		}}
	}
	if info.IsDir() || info.Mode().Perm()&0o111 == 0 {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameShell,
			Message:        fmt.Sprintf(messages.DoctorShellNotExecFmt, shell),
			Recommendation: messages.DoctorShellRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameShell,
		Message:   fmt.Sprintf(messages.DoctorShellOKFmt, shell),
	}}
}

// CheckRules loads and compiles the rule file at path. An empty path is a warning.
func CheckRules(path string) []Result {
	if strings.TrimSpace(path) == "" {
		return []Result{{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNameRules,
			Message:   messages.DoctorRulesSkipped,
		}}
	}
	rs, err := loadRulesFunc(path)
	if err == nil {
		_, err = rs.Compile()
	}
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameRules,
			Message:        fmt.Sprintf(messages.DoctorRulesLoadFailedFmt, err),
			Recommendation: messages.DoctorRulesRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameRules,
		Message:   fmt.Sprintf(messages.DoctorRulesOKFmt, path, len(rs.Candidates), rs.RuleCount()),
	}}
}

// HasFailure reports whether any result failed.
func HasFailure(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

func defaultSdkmanDir() string {
	dir, err := homedir.Expand("~/.sdkman")
	if err != nil {
		return "$HOME/.sdkman"
	}
	return dir
}
