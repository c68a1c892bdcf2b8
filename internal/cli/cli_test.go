package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kosa-java-team2/Hanger/internal/adapter/memory"
	"github.com/kosa-java-team2/Hanger/internal/platform/logger"
	"github.com/kosa-java-team2/Hanger/internal/platform/metrics"
	"github.com/kosa-java-team2/Hanger/internal/platform/profanity"
	"github.com/kosa-java-team2/Hanger/internal/service"
)

func newShell(t *testing.T, script string) (*CLI, *memory.Store, *bytes.Buffer) {
	t.Helper()

	store := memory.New()
	log := logger.NewNop()
	filter := profanity.NewFilter()
	m := metrics.NewManager("clitest")

	auth := service.NewAuthService(store, log, filter, service.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	})
	listings := service.NewListingService(store, log, filter)
	trades := service.NewTradeService(store, log, m)
	notifications := service.NewNotificationService(store, log)
	admin := service.NewAdminService(store, log)

	var out bytes.Buffer
	shell := New(strings.NewReader(script), &out, log, auth, listings, trades, notifications, admin)
	return shell, store, &out
}

func TestSignupLoginLogout(t *testing.T) {
	script := strings.Join([]string{
		"2",              // sign up
		"carol1",         // handle
		"carol",          // display name
		"Carol Park",     // full name
		"920202-2345678", // verification ID
		"F",              // gender
		"33",             // age
		"pw123456",       // password
		"pw123456",       // confirm
		"1",              // login
		"carol1",
		"pw123456",
		"5", // logout
		"0", // exit
	}, "\n") + "\n"

	shell, store, out := newShell(t, script)
	shell.Run()

	require.Contains(t, store.Accounts(), "carol1")
	text := out.String()
	assert.Contains(t, text, "Account created")
	assert.Contains(t, text, "Welcome, carol1.")
	assert.Contains(t, text, "Bye.")
}

func TestLoginRejectsBadPassword(t *testing.T) {
	script := strings.Join([]string{
		"2",
		"dave99",
		"dave",
		"Dave Lee",
		"930303-3456789",
		"M",
		"32",
		"pw123456",
		"pw123456",
		"1",
		"dave99",
		"wrongpw",
		"0",
	}, "\n") + "\n"

	shell, _, out := newShell(t, script)
	shell.Run()

	assert.Contains(t, out.String(), "Login failed")
	assert.NotContains(t, out.String(), "Welcome, dave99")
}

func TestRunStopsWhenInputEnds(t *testing.T) {
	shell, _, _ := newShell(t, "")
	done := make(chan struct{})
	go func() {
		shell.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("shell did not stop on closed input")
	}
}
