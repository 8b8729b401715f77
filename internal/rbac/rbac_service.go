package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Role-based access model. Subjects are roles from the auth token, not
// individual users.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// Unlocking a run is deliberately admin-only: it is the single exception to
// the forward-only run lifecycle.
var defaultPolicies = [][]string{
	{"admin", "payroll_run", "read"},
	{"admin", "payroll_run", "compute"},
	{"admin", "payroll_run", "lock"},
	{"admin", "payroll_run", "unlock"},
	{"admin", "payroll_run", "pay"},
	{"admin", "salary_catalog", "read"},
	{"admin", "salary_catalog", "write"},
	{"admin", "payroll_inputs", "write"},
	{"admin", "cash_accounts", "read"},
	{"admin", "cash_accounts", "write"},
	{"hr", "payroll_run", "read"},
	{"hr", "payroll_run", "compute"},
	{"hr", "payroll_run", "lock"},
	{"hr", "salary_catalog", "read"},
	{"hr", "salary_catalog", "write"},
	{"hr", "payroll_inputs", "write"},
	{"finance", "payroll_run", "read"},
	{"finance", "payroll_run", "pay"},
	{"finance", "salary_catalog", "read"},
	{"finance", "cash_accounts", "read"},
	{"finance", "cash_accounts", "write"},
}

type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range defaultPolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(role, resource, action)
}
