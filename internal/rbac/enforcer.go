package rbac

import "github.com/casbin/casbin/v2"

// NewEnforcer loads the file-backed model and policy. Policy administration
// happens outside this service; the engine only ever asks questions.
func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcer(modelPath, policyPath)
}
