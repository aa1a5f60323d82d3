package catalog

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/storefront/internal/console"
)

func runAs(t *testing.T, svc Service, userID int, input string) string {
	t.Helper()
	logger, _ := test.NewNullLogger()
	out := &bytes.Buffer{}
	principal := console.Principal{UserID: userID}

	c := console.New(console.VerifierFunc(func(ctx context.Context, token string) (console.Principal, error) {
		return principal, nil
	}), logger)
	NewHandler(svc).RegisterCommands(c.UserMenu())

	s := console.NewSession(strings.NewReader(input), out)
	s.SignIn("token", principal)
	require.NoError(t, c.Run(context.Background(), s))
	return out.String()
}

func TestHandlerUpdateProduct(t *testing.T) {
	t.Run("Success then recent updates", func(t *testing.T) {
		svc, repo := setup(t)
		out := runAs(t, svc, 2, "5\n1\nWidget\nnumberofunits\n40\n6\n21\n")
		assert.Contains(t, out, "Update 1 recorded")
		assert.Contains(t, out, "updatenumber")
		require.Len(t, repo.applied, 1)
		assert.Equal(t, 40, repo.applied[0].Units)
	})

	t.Run("Not the manager is stopped before the product prompt", func(t *testing.T) {
		svc, repo := setup(t)
		out := runAs(t, svc, 3, "5\n1\n21\n")
		assert.Contains(t, out, "You don't manage this store.")
		assert.NotContains(t, out, "Which product do you want to edit?")
		assert.Empty(t, repo.applied)
	})

	t.Run("Unknown field", func(t *testing.T) {
		svc, repo := setup(t)
		out := runAs(t, svc, 2, "5\n1\nWidget\ncolour\n21\n")
		assert.Contains(t, out, "Editable fields are productname, numberofunits and priceperunit.")
		assert.NotContains(t, out, "What do you want to change it to?")
		assert.Empty(t, repo.applied)
	})

	t.Run("Negative units", func(t *testing.T) {
		svc, repo := setup(t)
		out := runAs(t, svc, 2, "5\n1\nWidget\n2\n-4\n21\n")
		assert.Contains(t, out, "Your input is invalid! (invalid number of units)")
		assert.Empty(t, repo.applied)
	})

	t.Run("No updates yet", func(t *testing.T) {
		svc, _ := setup(t)
		out := runAs(t, svc, 2, "6\n21\n")
		assert.Contains(t, out, "6. View 5 recent Product Updates Info")
		assert.Contains(t, out, "No product updates found")
	})
}
