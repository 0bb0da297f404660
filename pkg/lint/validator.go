package lint

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/doc"
	"github.com/yaklabco/docstyle/pkg/parser"
)

// ErrNilDocument is returned when Validate is called without a document.
var ErrNilDocument = errors.New("nil document")

// ErrRulePanic marks a RuleError caused by a panic inside a rule.
var ErrRulePanic = errors.New("rule panicked")

// RuleError reports an internal failure of a single rule.
type RuleError struct {
	RuleID string
	Err    error
}

// Error implements the error interface.
func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %s: %v", e.RuleID, e.Err)
}

// Unwrap returns the underlying error.
func (e *RuleError) Unwrap() error {
	return e.Err
}

// DocumentResult contains the results of validating a single document.
type DocumentResult struct {
	// ID is the document identifier.
	ID string

	// Document is the parsed document (nil when parsing failed).
	Document *doc.Document

	// Findings contains all issues found, in rule order then traversal order.
	Findings []Finding

	// ParseError is set when the document could not be parsed.
	ParseError *parser.ParseError

	// RuleErrors contains any errors from rule execution, keyed by rule ID.
	RuleErrors map[string]error
}

// Failed reports whether the document could not be parsed.
func (r *DocumentResult) Failed() bool {
	return r.ParseError != nil
}

// Validator applies resolved rules to documents.
type Validator struct {
	// Parser parses raw documents.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry
}

// NewValidator creates a new Validator with the given parser and registry.
func NewValidator(p Parser, registry *Registry) *Validator {
	return &Validator{
		Parser:   p,
		Registry: registry,
	}
}

// Validate runs every enabled rule against d.
//
// A rule that fails or panics yields one INTERNAL finding and the remaining
// rules still run. The only errors returned are ErrNilDocument and context
// cancellation.
func (v *Validator) Validate(ctx context.Context, d *doc.Document, cfg *config.Config) ([]Finding, error) {
	result, err := v.validate(ctx, d, cfg)
	if err != nil {
		return nil, err
	}
	return result.Findings, nil
}

// ValidateFile parses content and validates the resulting document.
//
// A parse failure becomes a single PARSE finding and no rules run for that
// document. Other parser errors and context cancellation are returned.
func (v *Validator) ValidateFile(
	ctx context.Context,
	id string,
	content []byte,
	cfg *config.Config,
) (*DocumentResult, error) {
	d, err := v.Parser.Parse(ctx, id, content)
	if err != nil {
		var parseErr *parser.ParseError
		if !errors.As(err, &parseErr) {
			return nil, fmt.Errorf("parse %s: %w", id, err)
		}
		return &DocumentResult{
			ID:         id,
			Findings:   []Finding{parseFinding(id, parseErr)},
			ParseError: parseErr,
		}, nil
	}

	return v.validate(ctx, d, cfg)
}

func (v *Validator) validate(ctx context.Context, d *doc.Document, cfg *config.Config) (*DocumentResult, error) {
	if d == nil {
		return nil, ErrNilDocument
	}

	result := &DocumentResult{
		ID:         d.ID,
		Document:   d,
		RuleErrors: make(map[string]error),
	}

	for _, rr := range ResolveRules(v.Registry, cfg) {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("validation cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, d, cfg, rr.Config)
		ruleCtx.Registry = v.Registry

		findings, err := applyRule(rr.Rule, ruleCtx)
		if err != nil {
			// Cancellation surfacing through a rule is not a rule failure.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("validation cancelled: %w", ctxErr)
			}
			result.RuleErrors[rr.Rule.ID()] = err
			result.Findings = append(result.Findings, internalFinding(d.ID, err))
			continue
		}

		// Findings are copied so rules may return shared slices.
		for _, f := range findings {
			f.Severity = rr.Severity
			if f.RuleID == "" {
				f.RuleID = rr.Rule.ID()
			}
			if f.RuleName == "" {
				f.RuleName = rr.Rule.Name()
			}
			if f.Location.Document == "" {
				f.Location.Document = d.ID
			}
			result.Findings = append(result.Findings, f)
		}
	}

	return result, nil
}

// applyRule runs one rule, converting errors and panics into a RuleError.
func applyRule(rule Rule, ruleCtx *RuleContext) (findings []Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			findings = nil
			err = &RuleError{RuleID: rule.ID(), Err: fmt.Errorf("%w: %v", ErrRulePanic, r)}
		}
	}()

	findings, err = rule.Apply(ruleCtx)
	if err != nil {
		return nil, &RuleError{RuleID: rule.ID(), Err: err}
	}
	return findings, nil
}

func parseFinding(id string, err *parser.ParseError) Finding {
	return NewFinding(ParseRuleID, At(id, doc.NoSection, err.Line), err.Message).
		WithRuleName("parse").
		WithSeverity(config.SeverityError).
		Build()
}

func internalFinding(id string, err error) Finding {
	return NewFinding(InternalRuleID, At(id, doc.NoSection, 0), err.Error()).
		WithRuleName("internal").
		WithSeverity(config.SeverityError).
		Build()
}
