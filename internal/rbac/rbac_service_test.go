package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OutLand606/FinancePro-sub001/internal/rbac"
)

func TestService_Enforce(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{name: "hr computes runs", role: "hr", resource: "payroll_run", action: "compute", allowed: true},
		{name: "hr locks runs", role: "hr", resource: "payroll_run", action: "lock", allowed: true},
		{name: "hr cannot pay", role: "hr", resource: "payroll_run", action: "pay", allowed: false},
		{name: "hr cannot unlock", role: "hr", resource: "payroll_run", action: "unlock", allowed: false},
		{name: "finance pays runs", role: "finance", resource: "payroll_run", action: "pay", allowed: true},
		{name: "finance cannot compute", role: "finance", resource: "payroll_run", action: "compute", allowed: false},
		{name: "finance cannot edit catalog", role: "finance", resource: "salary_catalog", action: "write", allowed: false},
		{name: "only admin unlocks", role: "admin", resource: "payroll_run", action: "unlock", allowed: true},
		{name: "hr records inputs", role: "hr", resource: "payroll_inputs", action: "write", allowed: true},
		{name: "finance cannot record inputs", role: "finance", resource: "payroll_inputs", action: "write", allowed: false},
		{name: "finance manages cash accounts", role: "finance", resource: "cash_accounts", action: "write", allowed: true},
		{name: "hr cannot read cash accounts", role: "hr", resource: "cash_accounts", action: "read", allowed: false},
		{name: "unknown role denied", role: "intern", resource: "payroll_run", action: "read", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tt.role, tt.resource, tt.action)
			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}
