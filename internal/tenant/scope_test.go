package tenant_test

import (
	"testing"

	"github.com/DeboraBSilva/Punchclock/internal/tenant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestVisibleCompanies(t *testing.T) {
	own := uuid.New().String()

	t.Run("super sees all companies", func(t *testing.T) {
		companies, all := tenant.VisibleCompanies(tenant.RoleSuper, own)

		assert.True(t, all)
		assert.Nil(t, companies)
	})

	t.Run("employee sees only own company", func(t *testing.T) {
		companies, all := tenant.VisibleCompanies("EMPLOYEE", own)

		assert.False(t, all)
		assert.Equal(t, []string{own}, companies)
	})
}

func TestResolveCompanyID(t *testing.T) {
	own := uuid.New().String()
	foreign := uuid.New().String()

	t.Run("super may target any company", func(t *testing.T) {
		assert.Equal(t, foreign, tenant.ResolveCompanyID(tenant.RoleSuper, own, foreign))
	})

	t.Run("super without explicit target keeps own", func(t *testing.T) {
		assert.Equal(t, own, tenant.ResolveCompanyID(tenant.RoleSuper, own, ""))
	})

	t.Run("employee foreign company is overridden to own", func(t *testing.T) {
		assert.Equal(t, own, tenant.ResolveCompanyID("EMPLOYEE", own, foreign))
	})

	t.Run("employee empty request resolves to own", func(t *testing.T) {
		assert.Equal(t, own, tenant.ResolveCompanyID("EMPLOYEE", own, ""))
	})
}
