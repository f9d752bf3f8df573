package rbac

type EnforceRequest struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// Policy is the on-disk shape of policy.yaml: role -> resource -> actions.
type Policy struct {
	Roles map[string]map[string][]string `yaml:"roles"`
}
