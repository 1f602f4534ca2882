// Command ldflags prints the -X linker flags that inject the Unsplash access
// key and the app version at build time:
//
//	go build -ldflags "$(go run ./cmd/ldflags)" ./cmd/backdrop
//
// Values come from the environment first, then from .backdrop_secrets.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

const secretsFile = ".backdrop_secrets"

// flagTargets maps secret names to the variables they set.
var flagTargets = map[string]string{
	"UNSPLASH_ACCESS_KEY": "github.com/dixieflatline76/Backdrop/config.UnsplashAccessKey",
	"BACKDROP_VERSION":    "github.com/dixieflatline76/Backdrop/config.AppVersion",
}

func main() {
	values := make(map[string]string)
	if f, err := os.Open(secretsFile); err == nil {
		parseSecrets(f, values)
		f.Close()
	}
	for key := range flagTargets {
		if v := os.Getenv(key); v != "" {
			values[key] = trimValue(v)
		}
	}
	fmt.Print(buildFlags(values))
}

// parseSecrets reads KEY=VALUE lines, skipping blanks, comments and unknown keys.
func parseSecrets(r io.Reader, into map[string]string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if _, known := flagTargets[key]; known {
			into[key] = trimValue(value)
		}
	}
}

// buildFlags renders values as -X flags in a stable order.
func buildFlags(values map[string]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if values[k] != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	flags := make([]string, 0, len(keys))
	for _, k := range keys {
		flags = append(flags, fmt.Sprintf("-X %s=%s", flagTargets[k], values[k]))
	}
	return strings.Join(flags, " ")
}

func trimValue(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	return s
}
