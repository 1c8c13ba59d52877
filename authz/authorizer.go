package authz

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/fatih/structs"
	"github.com/open-policy-agent/opa/ast"
	"github.com/open-policy-agent/opa/rego"
	"go.uber.org/zap"

	"github.com/tidepool-org/dieticians/auth"
	"github.com/tidepool-org/dieticians/dieticians"
)

const (
	policyPackage = "http.authz.dieticians"

	adminRule           = "admin"
	dieticianAccessRule = "dietician_access"
)

var (
	//go:embed policy.rego
	authzPolicy string
)

// Authorizer decides whether the caller of a request may perform an action. It never
// fails the request: missing credentials and evaluation errors result in a denial.
type Authorizer interface {
	HasAdminAccess(r *http.Request) bool
	HasDieticianAccess(r *http.Request, dietician *dieticians.Dietician) bool
}

func NewAuthorizer(logger *zap.SugaredLogger) (Authorizer, error) {
	compiler, err := ast.CompileModules(map[string]string{
		"policy.rego": authzPolicy,
	})
	if err != nil {
		return nil, err
	}

	return &embeddedOpaAuthorizer{
		logger: logger,
		policy: compiler,
	}, nil
}

type embeddedOpaAuthorizer struct {
	logger *zap.SugaredLogger
	policy *ast.Compiler
}

func (e *embeddedOpaAuthorizer) HasAdminAccess(r *http.Request) bool {
	in, ok := e.getInput(r)
	if !ok {
		return false
	}

	return e.evaluate(r.Context(), adminRule, in)
}

func (e *embeddedOpaAuthorizer) HasDieticianAccess(r *http.Request, dietician *dieticians.Dietician) bool {
	in, ok := e.getInput(r)
	if !ok || dietician == nil {
		return false
	}
	in["dietician"] = structs.Map(*dietician)

	return e.evaluate(r.Context(), dieticianAccessRule, in)
}

func (e *embeddedOpaAuthorizer) getInput(r *http.Request) (map[string]interface{}, bool) {
	if r == nil {
		return nil, false
	}
	data := auth.GetAuthData(r.Context())
	if data == nil {
		return nil, false
	}

	return map[string]interface{}{
		"auth": structs.Map(*data),
	}, true
}

func (e *embeddedOpaAuthorizer) evaluate(ctx context.Context, rule string, input map[string]interface{}) bool {
	allowed, err := e.EvaluatePolicy(ctx, rule, input)
	if err != nil {
		e.logger.Errorw("unable to evaluate authorization policy", "rule", rule, zap.Error(err))
		return false
	}

	return allowed
}

func (e *embeddedOpaAuthorizer) EvaluatePolicy(ctx context.Context, rule string, input map[string]interface{}) (bool, error) {
	r := rego.New(
		rego.Package(policyPackage),
		rego.Query(rule),
		rego.Compiler(e.policy),
		rego.Input(input),
	)

	results, err := r.Eval(ctx)
	if err != nil {
		return false, fmt.Errorf("unable to evaluate authorization policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return false, fmt.Errorf("evaluating authorization policy returned no results")
	}

	val, ok := results[0].Expressions[0].Value.(bool)
	if !ok {
		return false, fmt.Errorf("unexpected authorization result: %v", results[0].Expressions[0].Value)
	}

	e.logger.Debugw("authorization policy eval", "rule", rule, zap.Any("input", input), zap.Bool("allow", val))
	return val, nil
}
