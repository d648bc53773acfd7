package exec

import (
	"os"
	"sort"
	"strings"
)

// ComposeEnv layers the profile's env map over the process environment.
// LC_ALL=C keeps package manager output stable for the captured queries.
func ComposeEnv(profileEnv map[string]string) []string {
	overrides := []string{"LC_ALL=C"}

	keys := make([]string, 0, len(profileEnv))
	for k := range profileEnv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		overrides = append(overrides, k+"="+profileEnv[k])
	}

	return MergeEnv(os.Environ(), overrides)
}

func MergeEnv(base, override []string) []string {
	envMap := make(map[string]string)

	for _, e := range base {
		idx := strings.Index(e, "=")
		if idx != -1 {
			envMap[e[:idx]] = e[idx+1:]
		}
	}

	for _, e := range override {
		idx := strings.Index(e, "=")
		if idx != -1 {
			envMap[e[:idx]] = e[idx+1:]
		}
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)

	return result
}
