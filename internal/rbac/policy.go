package rbac

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicy []byte

func DefaultPolicy() (Policy, error) {
	return ParsePolicy(defaultPolicy)
}

func ParsePolicy(data []byte) (Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Policy{}, fmt.Errorf("parse rbac policy: %w", err)
	}
	if len(p.Roles) == 0 {
		return Policy{}, fmt.Errorf("parse rbac policy: no roles defined")
	}
	return p, nil
}

// Rules flattens the policy into casbin p-lines, sorted for stable loading.
func (p Policy) Rules() [][]string {
	var rules [][]string
	for role, resources := range p.Roles {
		for resource, actions := range resources {
			for _, action := range actions {
				rules = append(rules, []string{role, resource, action})
			}
		}
	}
	sort.Slice(rules, func(i, j int) bool {
		a, b := rules[i], rules[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	return rules
}
