package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest is mixed into scopes built by tests. Providers that reach
// outside the process (proxies, systemd journal) check the mode and stay local.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
