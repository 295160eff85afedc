package dynasql

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// EnvProvider resolves ${ENV_VAR}-style placeholders that may appear
// inside a driver DSN or similar configuration string — grounded
// on the teacher's EnvValueProvider (configuration.go), which resolves
// the same shape of placeholder against os.Getenv when parsing
// environment XML. This module additionally loads a .env file ahead of
// the process environment, the same pattern the pack's termfx-morfx
// CLI uses: `godotenv.Load()` once at startup, ignoring a missing file,
// then falling through to os.Getenv.
type EnvProvider struct {
	once     sync.Once
	loadPath string
}

// NewEnvProvider builds an EnvProvider that loads path (".env" if
// empty) on first use. A missing .env file is not an error — it only
// means no extra variables are defined beyond the process environment.
func NewEnvProvider(path string) *EnvProvider {
	if path == "" {
		path = ".env"
	}
	return &EnvProvider{loadPath: path}
}

func (p *EnvProvider) load() {
	p.once.Do(func() {
		_ = godotenv.Load(p.loadPath)
	})
}

// Get returns the value of the named environment variable, loading the
// .env file on first call.
func (p *EnvProvider) Get(name string) string {
	p.load()
	return os.Getenv(name)
}

// envOpen and envClose delimit ${NAME}, the same syntax the teacher's
// EnvValueProvider resolves in environment XML attribute values.
const envOpen, envClose = "${", "}"

// Expand replaces every ${NAME} occurrence in s with the named
// environment variable's value (empty string if unset), used for
// resolving a driver DSN or similar configuration string that itself
// embeds environment references. This is independent of the template
// engine's own ${…} raw-splice syntax (§4.5) — Expand operates on plain
// configuration strings, never on compiled template text.
func (p *EnvProvider) Expand(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, envOpen)
		if start < 0 {
			b.WriteString(s)
			break
		}
		end := strings.Index(s[start:], envClose)
		if end < 0 {
			b.WriteString(s)
			break
		}
		end += start
		b.WriteString(s[:start])
		name := s[start+len(envOpen) : end]
		b.WriteString(p.Get(name))
		s = s[end+len(envClose):]
	}
	return b.String()
}
